package easycalc

import (
	"fmt"
	"math"
)

// The library of embedded symbols. It is built once in init() and read-only
// afterwards: there is no registration API and no write path, so lookups
// from concurrent compile calls need no synchronization.

var embeddedFunctions = []*funDef{
	{sym: "abs", numParams: 1, evalFunc: func(args []float64) float64 {
		return math.Abs(args[0])
	}},
	{sym: "log", numParams: 1, evalFunc: func(args []float64) float64 {
		return math.Log(args[0])
	}},
	{sym: "sqrt", numParams: 1, evalFunc: func(args []float64) float64 {
		return math.Sqrt(args[0])
	}},
	{sym: "max", numParams: 2, evalFunc: func(args []float64) float64 {
		return math.Max(args[0], args[1])
	}},
	{sym: "min", numParams: 2, evalFunc: func(args []float64) float64 {
		return math.Min(args[0], args[1])
	}},
	{sym: "pow", numParams: 2, evalFunc: func(args []float64) float64 {
		return math.Pow(args[0], args[1])
	}},
}

var embeddedOperators = []*operatorDef{
	{sym: "+", precedence: 2, evalFunc: func(args []float64) float64 {
		return args[0] + args[1]
	}},
	{sym: "-", precedence: 2, evalFunc: func(args []float64) float64 {
		return args[0] - args[1]
	}},
	{sym: "*", precedence: 3, evalFunc: func(args []float64) float64 {
		return args[0] * args[1]
	}},
	{sym: "/", precedence: 3, evalFunc: func(args []float64) float64 {
		return args[0] / args[1]
	}},
}

var embeddedConstants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

var (
	functionsBySym map[string]*funDef
	operatorsBySym map[string]*operatorDef
)

func init() {
	functionsBySym = make(map[string]*funDef)
	for _, fd := range embeddedFunctions {
		if _, already := functionsBySym[fd.sym]; already {
			panic(fmt.Errorf("repeating symbol '%s'", fd.sym))
		}
		functionsBySym[fd.sym] = fd
	}
	operatorsBySym = make(map[string]*operatorDef)
	for _, od := range embeddedOperators {
		if _, already := operatorsBySym[od.sym]; already {
			panic(fmt.Errorf("repeating symbol '%s'", od.sym))
		}
		operatorsBySym[od.sym] = od
	}
	// constants shadow nothing: a name must resolve unambiguously
	for sym := range embeddedConstants {
		if _, clash := functionsBySym[sym]; clash {
			panic(fmt.Errorf("constant '%s' clashes with a function", sym))
		}
	}
}

func functionBySym(sym string) (*funDef, bool) {
	fd, ok := functionsBySym[sym]
	return fd, ok
}

func operatorBySym(sym string) (*operatorDef, bool) {
	od, ok := operatorsBySym[sym]
	return od, ok
}

func constantBySym(sym string) (float64, bool) {
	v, ok := embeddedConstants[sym]
	return v, ok
}
