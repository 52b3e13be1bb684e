package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func add(args []float64) float64 { return args[0] + args[1] }
func mul(args []float64) float64 { return args[0] * args[1] }

func TestBuild(t *testing.T) {
	t.Run("1", func(t *testing.T) {
		p, err := Build([]Instruction{
			{Op: OpPushLiteral, Value: 42},
		}, 0)
		require.NoError(t, err)
		require.EqualValues(t, 0, p.NumArgs())
	})
	t.Run("leftover values", func(t *testing.T) {
		_, err := Build([]Instruction{
			{Op: OpPushLiteral, Value: 1},
			{Op: OpPushLiteral, Value: 2},
		}, 0)
		require.Error(t, err)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := Build(nil, 0)
		require.Error(t, err)
	})
	t.Run("underflow", func(t *testing.T) {
		_, err := Build([]Instruction{
			{Op: OpPushLiteral, Value: 1},
			{Op: OpCallOperator, Sym: "+", Arity: 2, Fun: add},
		}, 0)
		require.Error(t, err)
	})
	t.Run("arg out of range", func(t *testing.T) {
		_, err := Build([]Instruction{
			{Op: OpPushArg, Arg: 1},
		}, 1)
		require.Error(t, err)
	})
	t.Run("nil fun", func(t *testing.T) {
		_, err := Build([]Instruction{
			{Op: OpPushLiteral, Value: 1},
			{Op: OpCallFunction, Sym: "abs", Arity: 1},
		}, 0)
		require.Error(t, err)
	})
	t.Run("wrong opcode", func(t *testing.T) {
		_, err := Build([]Instruction{
			{Op: OpCode(99)},
		}, 0)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("1", func(t *testing.T) {
		p, err := Build([]Instruction{
			{Op: OpPushLiteral, Value: 2},
			{Op: OpPushLiteral, Value: 3},
			{Op: OpPushLiteral, Value: 4},
			{Op: OpCallOperator, Sym: "*", Arity: 2, Fun: mul},
			{Op: OpCallOperator, Sym: "+", Arity: 2, Fun: add},
		}, 0)
		require.NoError(t, err)
		ret, err := p.Run(nil)
		require.NoError(t, err)
		require.EqualValues(t, 14, ret)
	})
	t.Run("2", func(t *testing.T) {
		p, err := Build([]Instruction{
			{Op: OpPushArg, Arg: 0},
			{Op: OpPushArg, Arg: 1},
			{Op: OpCallOperator, Sym: "+", Arity: 2, Fun: add},
			{Op: OpPushArg, Arg: 0},
			{Op: OpCallOperator, Sym: "*", Arity: 2, Fun: mul},
		}, 2)
		require.NoError(t, err)
		ret, err := p.Run([]float64{5, 2})
		require.NoError(t, err)
		require.EqualValues(t, 35, ret)
	})
	t.Run("function call", func(t *testing.T) {
		p, err := Build([]Instruction{
			{Op: OpPushLiteral, Value: -3},
			{Op: OpCallFunction, Sym: "abs", Arity: 1, Fun: func(args []float64) float64 {
				return math.Abs(args[0])
			}},
		}, 0)
		require.NoError(t, err)
		ret, err := p.Run([]float64{})
		require.NoError(t, err)
		require.EqualValues(t, 3, ret)
	})
	t.Run("wrong number of args", func(t *testing.T) {
		p, err := Build([]Instruction{
			{Op: OpPushArg, Arg: 0},
		}, 1)
		require.NoError(t, err)

		_, err = p.Run(nil)
		require.ErrorIs(t, err, ErrNumArgsMismatch)
		_, err = p.Run([]float64{1, 2})
		require.ErrorIs(t, err, ErrNumArgsMismatch)

		// the program remains usable after a mismatch
		ret, err := p.Run([]float64{7})
		require.NoError(t, err)
		require.EqualValues(t, 7, ret)
	})
}

func TestInstructionString(t *testing.T) {
	require.EqualValues(t, "pushLiteral(2.5)", Instruction{Op: OpPushLiteral, Value: 2.5}.String())
	require.EqualValues(t, "pushArg($1)", Instruction{Op: OpPushArg, Arg: 1}.String())
	require.EqualValues(t, "callOperator('+'/2)", Instruction{Op: OpCallOperator, Sym: "+", Arity: 2}.String())
	require.EqualValues(t, "callFunction('max'/2)", Instruction{Op: OpCallFunction, Sym: "max", Arity: 2}.String())
	require.EqualValues(t, "(wrong opcode)", OpCode(99).String())
}
