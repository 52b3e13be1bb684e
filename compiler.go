package easycalc

import (
	"fmt"
	"strconv"

	"github.com/gammazero/deque"
	"go.uber.org/zap"

	"github.com/lunfardo314/easycalc/engine"
)

type entryKind byte

const (
	// entryMarker is the '(' of a group or of a function argument list
	entryMarker = entryKind(iota)
	entryOperator
	entryFunction
)

// stackEntry is an element of the shunting-yard operator stack. Symbols are
// resolved against the library before they are pushed, so emission never
// looks anything up.
type stackEntry struct {
	kind entryKind
	sym  string
	pos  int
	op   *operatorDef
	fun  *funDef
}

// compilation holds the transient state of one compile call: the emit
// buffer, the operator stack and the variable table. Nothing here is shared,
// concurrent compile calls are independent.
type compilation struct {
	code     []engine.Instruction
	depth    int // net operand stack effect of the code emitted so far
	varNames []string
	varIndex map[string]int
	stack    *deque.Deque[stackEntry]
	log      *zap.SugaredLogger // nil unless tracing
}

// compileTokens translates the token sequence into postfix instruction code
// with the shunting-yard algorithm. It returns the emitted code and the
// variable names in argument index order (first textual occurrence).
func compileTokens(tokens []token, log *zap.SugaredLogger) ([]engine.Instruction, []string, error) {
	ctx := &compilation{
		code:     make([]engine.Instruction, 0, len(tokens)),
		varNames: make([]string, 0),
		varIndex: make(map[string]int),
		stack:    new(deque.Deque[stackEntry]),
		log:      log,
	}
	for _, tok := range tokens {
		if ctx.log != nil {
			ctx.log.Debugf("token %s", tok)
		}
		var err error
		switch tok.kind {
		case tokenNumber:
			err = ctx.number(tok)
		case tokenIdent:
			err = ctx.ident(tok)
		case tokenOperator:
			err = ctx.operator(tok)
		case tokenOpen:
			ctx.stack.PushBack(stackEntry{kind: entryMarker, sym: tok.text, pos: tok.pos})
		case tokenClose:
			err = ctx.closeGroup(tok)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownSymbol, tok)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	// drain the operator stack. A leftover marker is an unclosed '('
	for ctx.stack.Len() > 0 {
		e := ctx.stack.PopBack()
		if e.kind == entryMarker {
			return nil, nil, fmt.Errorf("%w: unclosed '(' @ position %d", ErrUnbalancedParentheses, e.pos)
		}
		if err := ctx.emitCall(e); err != nil {
			return nil, nil, err
		}
	}
	if len(ctx.code) == 0 {
		return nil, nil, fmt.Errorf("%w: empty expression", ErrNotSingleValue)
	}
	if ctx.depth != 1 {
		return nil, nil, fmt.Errorf("%w: %d values left", ErrNotSingleValue, ctx.depth)
	}
	return ctx.code, ctx.varNames, nil
}

func (ctx *compilation) number(tok token) error {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return fmt.Errorf("%w: '%s' @ position %d", ErrMalformedNumber, tok.text, tok.pos)
	}
	ctx.emitPush(engine.Instruction{Op: engine.OpPushLiteral, Value: v})
	return nil
}

// ident resolves an identifier with the priority function -> constant ->
// variable. An unknown name is always a variable: its argument index is
// assigned at first occurrence.
func (ctx *compilation) ident(tok token) error {
	if fd, ok := functionBySym(tok.text); ok {
		ctx.stack.PushBack(stackEntry{kind: entryFunction, sym: tok.text, pos: tok.pos, fun: fd})
		return nil
	}
	if v, ok := constantBySym(tok.text); ok {
		ctx.emitPush(engine.Instruction{Op: engine.OpPushLiteral, Value: v})
		return nil
	}
	idx, ok := ctx.varIndex[tok.text]
	if !ok {
		idx = len(ctx.varNames)
		ctx.varIndex[tok.text] = idx
		ctx.varNames = append(ctx.varNames, tok.text)
	}
	ctx.emitPush(engine.Instruction{Op: engine.OpPushArg, Arg: idx})
	return nil
}

// operator pops while the top of the stack binds at least as tightly as the
// incoming operator, then pushes it. Equal precedence pops first, which makes
// all operators left-associative. A function on top binds tighter than any
// operator.
func (ctx *compilation) operator(tok token) error {
	od, ok := operatorBySym(tok.text)
	if !ok {
		return fmt.Errorf("%w: '%s' @ position %d", ErrUnknownSymbol, tok.text, tok.pos)
	}
	for ctx.stack.Len() > 0 {
		top := ctx.stack.Back()
		if top.kind == entryMarker {
			break
		}
		if top.kind == entryOperator && top.op.precedence < od.precedence {
			break
		}
		if err := ctx.emitCall(ctx.stack.PopBack()); err != nil {
			return err
		}
	}
	ctx.stack.PushBack(stackEntry{kind: entryOperator, sym: tok.text, pos: tok.pos, op: od})
	return nil
}

// closeGroup pops and emits until the matching '(' marker, discards the
// marker and, if a function is then on top, emits its call: this is how the
// ')' of an argument list triggers the function.
func (ctx *compilation) closeGroup(tok token) error {
	for {
		if ctx.stack.Len() == 0 {
			return fmt.Errorf("%w: ')' without '(' @ position %d", ErrUnbalancedParentheses, tok.pos)
		}
		e := ctx.stack.PopBack()
		if e.kind == entryMarker {
			break
		}
		if err := ctx.emitCall(e); err != nil {
			return err
		}
	}
	if ctx.stack.Len() > 0 && ctx.stack.Back().kind == entryFunction {
		return ctx.emitCall(ctx.stack.PopBack())
	}
	return nil
}

func (ctx *compilation) emitPush(ins engine.Instruction) {
	ctx.depth++
	ctx.emit(ins)
}

func (ctx *compilation) emitCall(e stackEntry) error {
	var ins engine.Instruction
	switch e.kind {
	case entryOperator:
		ins = engine.Instruction{Op: engine.OpCallOperator, Sym: e.sym, Arity: 2, Fun: e.op.evalFunc}
	case entryFunction:
		ins = engine.Instruction{Op: engine.OpCallFunction, Sym: e.sym, Arity: e.fun.numParams, Fun: e.fun.evalFunc}
	default:
		return fmt.Errorf("%w: '%s' @ position %d", ErrUnknownSymbol, e.sym, e.pos)
	}
	if ctx.depth < ins.Arity {
		return fmt.Errorf("%w: not enough operands for '%s' @ position %d", ErrNotSingleValue, e.sym, e.pos)
	}
	ctx.depth -= ins.Arity - 1
	ctx.emit(ins)
	return nil
}

func (ctx *compilation) emit(ins engine.Instruction) {
	if ctx.log != nil {
		ctx.log.Debugf("emit %s", ins)
	}
	ctx.code = append(ctx.code, ins)
}
