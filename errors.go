package easycalc

import (
	"errors"

	"github.com/lunfardo314/easycalc/engine"
)

var (
	// ErrInvalidCharacter is returned by Compile when the source contains a
	// character which cannot start or continue any token
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMalformedNumber is returned by Compile when a number literal does
	// not parse as a float64, e.g. '1.2.3'
	ErrMalformedNumber = errors.New("malformed number literal")
	// ErrUnbalancedParentheses is returned by Compile when a ')' has no
	// matching '(' or a '(' is never closed
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	// ErrUnknownSymbol is returned by Compile when an operator or function
	// symbol reaching emission is not in the library. With the fixed lexer
	// and library it cannot occur, the check is defensive
	ErrUnknownSymbol = errors.New("unknown operator or function")
	// ErrNotSingleValue is returned by Compile when the expression does not
	// reduce the operand stack to exactly one value, e.g. an empty source,
	// '1 2', a dangling operator, or a parenthesized group glued to an
	// identifier which is not a function, like 'foo(1)'
	ErrNotSingleValue = errors.New("expression does not reduce to a single value")

	// ErrNumArgsMismatch is returned by Eval when the argument count differs
	// from the number of variables in the compiled expression
	ErrNumArgsMismatch = engine.ErrNumArgsMismatch
)
