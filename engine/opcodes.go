package engine

import "fmt"

type OpCode byte

const (
	OpNop = OpCode(iota)
	// OpPushLiteral pushes Value
	OpPushLiteral
	// OpPushArg pushes the invocation argument with index Arg
	OpPushArg
	// OpCallOperator pops Arity operands, applies Fun, pushes the result
	OpCallOperator
	// OpCallFunction same as OpCallOperator, emitted for named functions
	OpCallFunction
)

// Instruction is one step of a compiled program. Call instructions carry the
// native operation already resolved by the compiler, so the engine never
// consults any symbol table at run time.
type Instruction struct {
	Op    OpCode
	Value float64 // OpPushLiteral only
	Arg   int     // OpPushArg only
	Sym   string  // call instructions: source symbol, for trace and errors
	Arity int     // call instructions: number of operands consumed
	Fun   func(args []float64) float64
}

func (op OpCode) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpPushLiteral:
		return "pushLiteral"
	case OpPushArg:
		return "pushArg"
	case OpCallOperator:
		return "callOperator"
	case OpCallFunction:
		return "callFunction"
	}
	return "(wrong opcode)"
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OpPushLiteral:
		return fmt.Sprintf("pushLiteral(%g)", ins.Value)
	case OpPushArg:
		return fmt.Sprintf("pushArg($%d)", ins.Arg)
	case OpCallOperator, OpCallFunction:
		return fmt.Sprintf("%s('%s'/%d)", ins.Op, ins.Sym, ins.Arity)
	}
	return ins.Op.String()
}
