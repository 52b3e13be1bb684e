// Package easycalc compiles arithmetic expressions with variables, built-in
// constants and functions into reusable evaluators.
//
// An expression is compiled once and evaluated many times:
//
//	ev, err := easycalc.Compile("x + pow(y, 3) * x")
//	...
//	ret, err := ev.Eval(5, 2) // 45
//
// Arguments are bound positionally in the order distinct variable names first
// occur in the source, queryable with Variables(). A compiled Evaluator is
// immutable and safe for concurrent use.
package easycalc

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lunfardo314/easycalc/engine"
)

// Evaluator is the compiled artifact: the instruction code wrapped into a
// Runner, plus the argument contract
type Evaluator struct {
	runner   Runner
	numArgs  int
	varNames []string
}

// Compile translates the expression source into an Evaluator run by the
// default stack machine backend
func Compile(source string) (*Evaluator, error) {
	return compile(source, engineBackend{}, nil)
}

// CompileTraced is Compile with the token stream and every emitted
// instruction logged at debug level
func CompileTraced(source string, log *zap.SugaredLogger) (*Evaluator, error) {
	return compile(source, engineBackend{}, log)
}

// CompileWithBackend is Compile with a caller-supplied backend
func CompileWithBackend(source string, bk Backend) (*Evaluator, error) {
	return compile(source, bk, nil)
}

func compile(source string, bk Backend, log *zap.SugaredLogger) (*Evaluator, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	code, varNames, err := compileTokens(tokens, log)
	if err != nil {
		return nil, err
	}
	runner, err := bk.Build(code, len(varNames))
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		runner:   runner,
		numArgs:  len(varNames),
		varNames: varNames,
	}, nil
}

// Eval runs the compiled code against the arguments, one per variable in
// first-occurrence order. The count is checked on every call and a mismatch
// fails with ErrNumArgsMismatch, leaving the Evaluator usable. The result
// follows IEEE-754, domain issues yield NaN or Inf, never an error.
func (ev *Evaluator) Eval(args ...float64) (float64, error) {
	var ret float64
	err := CatchPanicOrError(func() error {
		var err error
		ret, err = ev.runner.Run(args)
		return err
	})
	return ret, err
}

// MustEval is Eval which panics on error
func (ev *Evaluator) MustEval(args ...float64) float64 {
	ret, err := ev.Eval(args...)
	if err != nil {
		panic(err)
	}
	return ret
}

// NumArgs returns the number of arguments Eval requires
func (ev *Evaluator) NumArgs() int {
	return ev.numArgs
}

// Variables returns the variable names in argument index order
func (ev *Evaluator) Variables() []string {
	ret := make([]string, len(ev.varNames))
	copy(ret, ev.varNames)
	return ret
}

// EvalFromSource compiles the source and evaluates it once
func EvalFromSource(source string, args ...float64) (float64, error) {
	ev, err := Compile(source)
	if err != nil {
		return 0, err
	}
	return ev.Eval(args...)
}

// EvalBatch evaluates one shared Evaluator over many argument rows with up
// to jobs goroutines (GOMAXPROCS if jobs <= 0). Results keep row order.
// On the first error the remaining rows are abandoned and nil is returned.
func EvalBatch(ctx context.Context, ev *Evaluator, rows [][]float64, jobs int) ([]float64, error) {
	if len(rows) == 0 {
		return []float64{}, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(rows) {
		jobs = len(rows)
	}
	results := make([]float64, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			ret, err := ev.Eval(row...)
			if err != nil {
				return err
			}
			results[i] = ret
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// engineBackend is the default Backend
type engineBackend struct{}

func (engineBackend) Build(code []engine.Instruction, numArgs int) (Runner, error) {
	p, err := engine.Build(code, numArgs)
	if err != nil {
		return nil, err
	}
	return p, nil
}
