package easycalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibrary(t *testing.T) {
	t.Run("functions", func(t *testing.T) {
		for _, it := range []struct {
			sym       string
			numParams int
		}{
			{"abs", 1}, {"log", 1}, {"sqrt", 1}, {"max", 2}, {"min", 2}, {"pow", 2},
		} {
			fd, ok := functionBySym(it.sym)
			require.True(t, ok, "function '%s'", it.sym)
			require.EqualValues(t, it.numParams, fd.numParams)
			require.NotNil(t, fd.evalFunc)
		}
		_, ok := functionBySym("sin")
		require.False(t, ok)
	})
	t.Run("operators", func(t *testing.T) {
		for _, it := range []struct {
			sym        string
			precedence int
		}{
			{"+", 2}, {"-", 2}, {"*", 3}, {"/", 3},
		} {
			od, ok := operatorBySym(it.sym)
			require.True(t, ok, "operator '%s'", it.sym)
			require.EqualValues(t, it.precedence, od.precedence)
		}
		_, ok := operatorBySym("^")
		require.False(t, ok)
	})
	t.Run("constants", func(t *testing.T) {
		v, ok := constantBySym("e")
		require.True(t, ok)
		require.EqualValues(t, math.E, v)

		v, ok = constantBySym("pi")
		require.True(t, ok)
		require.EqualValues(t, math.Pi, v)

		_, ok = constantBySym("tau")
		require.False(t, ok)
	})
	t.Run("native operations", func(t *testing.T) {
		fd, _ := functionBySym("pow")
		require.EqualValues(t, 8, fd.evalFunc([]float64{2, 3}))
		fd, _ = functionBySym("abs")
		require.EqualValues(t, 3, fd.evalFunc([]float64{-3}))
		od, _ := operatorBySym("-")
		require.EqualValues(t, 5, od.evalFunc([]float64{8, 3}))
		od, _ = operatorBySym("/")
		require.EqualValues(t, 2.5, od.evalFunc([]float64{5, 2}))
	})
}
