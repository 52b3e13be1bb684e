package easycalc

import (
	"fmt"

	"github.com/lunfardo314/easycalc/engine"
)

type tokenKind byte

const (
	tokenNumber = tokenKind(iota)
	tokenIdent
	tokenOperator
	tokenOpen
	tokenClose
)

// token is produced by the lexer. pos is the byte offset in the source,
// kept for error messages only.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// funDef describes one built-in function of the library
type funDef struct {
	sym       string
	numParams int
	evalFunc  func(args []float64) float64
}

// operatorDef describes one binary infix operator. All operators are
// left-associative, ties resolve left to right
type operatorDef struct {
	sym        string
	precedence int
	evalFunc   func(args []float64) float64
}

// Runner executes a compiled instruction sequence. The default Runner is
// *engine.Program
type Runner interface {
	Run(args []float64) (float64, error)
}

// Backend turns the emitted instruction sequence into a Runner. It is the
// replaceable back half of the pipeline: an alternative implementation may
// interpret, pre-optimize or generate code, as long as the numeric behavior
// is the same.
type Backend interface {
	Build(code []engine.Instruction, numArgs int) (Runner, error)
}

func (k tokenKind) String() string {
	switch k {
	case tokenNumber:
		return "number"
	case tokenIdent:
		return "ident"
	case tokenOperator:
		return "operator"
	case tokenOpen:
		return "open"
	case tokenClose:
		return "close"
	}
	return "(wrong token kind)"
}

func (t token) String() string {
	return fmt.Sprintf("%s:'%s'@%d", t.kind, t.text, t.pos)
}
