package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExpression is returned for an expression without tokens.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrStackUnderflow is returned when an operator needs more operands than the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrUnknownOperator is returned for a token that is neither a number nor an operator.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrLeftover is returned when an expression leaves more than one value.
	ErrLeftover = errors.New("leftover values on stack")
	// ErrArgumentTooLarge is returned when an index or exponent exceeds Machine.MaxArgument.
	ErrArgumentTooLarge = errors.New("argument too large")
)

// Error locates a failure inside an expression.
type Error struct {
	Pos   int    // 1-based token position, 0 for whole-expression errors
	Token string // offending token
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos == 0 {
		return fmt.Sprintf("calc: %v", e.Err)
	}
	return fmt.Sprintf("calc: token %d %q: %v", e.Pos, e.Token, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
