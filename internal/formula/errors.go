package formula

import (
	"errors"
	"fmt"
)

// Shape failures, in the order ValidateShape checks them.
var (
	ErrLength       = errors.New("formula must be exactly 7 characters")
	ErrCharacter    = errors.New("formula may only contain 1-9 and + - * /")
	ErrOperandCount = errors.New("formula must contain exactly 4 digits")
	ErrShape        = errors.New("formula is not a valid postfix arrangement")
)

// Evaluation failures.
var (
	ErrUnderflow = errors.New("operator needs two operands")
	ErrLeftover  = errors.New("expression does not reduce to a single value")
	ErrOperand   = errors.New("invalid operand")
	ErrOperator  = errors.New("invalid operator")
)

// Infix parse failures.
var (
	ErrToken  = errors.New("invalid token")
	ErrParens = errors.New("unbalanced parentheses")
)

// ShapeError reports why a postfix submission was rejected.
type ShapeError struct {
	Formula string
	Err     error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid formula %q: %v", e.Formula, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// EvalError reports a malformed token stream met during evaluation.
// Pos is the index of the offending token, or len(tokens) for end-of-input.
type EvalError struct {
	Pos int
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate at token %d: %v", e.Pos, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// ParseError reports an infix expression the converter could not handle.
// Pos is a byte offset into the whitespace-stripped input.
type ParseError struct {
	Pos  int
	Char string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Char != "" {
		return fmt.Sprintf("parse at %d (%q): %v", e.Pos, e.Char, e.Err)
	}
	return fmt.Sprintf("parse at %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
