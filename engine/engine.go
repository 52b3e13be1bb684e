// Package engine runs compiled expression code on an explicit operand stack
// of float64 values. It is the default backend behind easycalc.Compile: the
// compiler emits the instruction sequence, Build validates it once, Run
// executes it any number of times. A Program is immutable after Build and the
// operand stack is allocated fresh per call, so concurrent Run calls on the
// same Program are independent.
package engine

import (
	"errors"
	"fmt"
)

// ErrNumArgsMismatch is returned by Run when the caller supplies a wrong
// number of arguments. The program itself remains valid.
var ErrNumArgsMismatch = errors.New("wrong number of evaluation arguments")

type Program struct {
	code     []Instruction
	numArgs  int
	maxDepth int
}

// Build validates the instruction sequence against numArgs and pre-computes
// the maximum operand stack depth. The stack discipline is checked here once:
// every call must have its operands and the whole program must leave exactly
// one value. A sequence produced by the compiler always passes; Build guards
// against hand-assembled or corrupted code reaching Run.
func Build(code []Instruction, numArgs int) (*Program, error) {
	if numArgs < 0 {
		return nil, fmt.Errorf("negative number of arguments: %d", numArgs)
	}
	depth := 0
	maxDepth := 0
	for i, ins := range code {
		switch ins.Op {
		case OpPushLiteral:
			depth++
		case OpPushArg:
			if ins.Arg < 0 || ins.Arg >= numArgs {
				return nil, fmt.Errorf("instruction %d: argument index $%d out of range [0..%d)", i, ins.Arg, numArgs)
			}
			depth++
		case OpCallOperator, OpCallFunction:
			if ins.Fun == nil {
				return nil, fmt.Errorf("instruction %d: nil native operation for '%s'", i, ins.Sym)
			}
			if ins.Arity < 1 {
				return nil, fmt.Errorf("instruction %d: wrong arity %d for '%s'", i, ins.Arity, ins.Sym)
			}
			if depth < ins.Arity {
				return nil, fmt.Errorf("instruction %d: operand stack underflow in call to '%s'", i, ins.Sym)
			}
			depth -= ins.Arity - 1
		default:
			return nil, fmt.Errorf("instruction %d: wrong opcode %d", i, ins.Op)
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	if depth != 1 {
		return nil, fmt.Errorf("program leaves %d values on the stack instead of 1", depth)
	}
	return &Program{
		code:     code,
		numArgs:  numArgs,
		maxDepth: maxDepth,
	}, nil
}

func (p *Program) NumArgs() int {
	return p.numArgs
}

// Run executes the program. The argument count is checked on every call.
// Numeric domain issues follow IEEE-754: division by zero, log of a
// non-positive value etc. produce Inf/NaN results, never errors.
// If it panics, the program bytes were corrupted after Build.
func (p *Program) Run(args []float64) (float64, error) {
	if len(args) != p.numArgs {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrNumArgsMismatch, p.numArgs, len(args))
	}
	stack := make([]float64, 0, p.maxDepth)
	for _, ins := range p.code {
		switch ins.Op {
		case OpPushLiteral:
			stack = append(stack, ins.Value)
		case OpPushArg:
			stack = append(stack, args[ins.Arg])
		case OpCallOperator, OpCallFunction:
			top := len(stack) - ins.Arity
			if top < 0 {
				panic(fmt.Errorf("operand stack underflow in call to '%s'", ins.Sym))
			}
			ret := ins.Fun(stack[top:])
			stack = append(stack[:top], ret)
		default:
			panic(fmt.Errorf("wrong opcode %d", ins.Op))
		}
	}
	if len(stack) != 1 {
		panic(fmt.Errorf("%d values left on the stack instead of 1", len(stack)))
	}
	return stack[0], nil
}
