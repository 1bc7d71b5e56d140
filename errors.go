package bigcalc

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrDivisionByZero indicates a divisor equal to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnsupportedOperator indicates an operator other than + - * / at a
	// reduction step.
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrMismatchedParenthesis indicates a close parenthesis with no open
	// parenthesis, or an open parenthesis that is never closed.
	ErrMismatchedParenthesis = errors.New("mismatched parenthesis")
	// ErrMalformedExpression indicates an operator without enough operands or
	// an expression that does not reduce to exactly one value.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrInvalidCharacter indicates input outside the token alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
)

// LexError indicates an invalid token. It implements InputError and matches
// ErrInvalidCharacter.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is "number" if the lexer was scanning a number, otherwise empty.
	Kind string
	// Col is the position of the rune that made the token invalid.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid character at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// OperatorError is an error indicating an operator token that the evaluator
// cannot apply. It implements InputError and matches ErrUnsupportedOperator.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrUnsupportedOperator
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError and matches ErrMismatchedParenthesis.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if it is the unmatched one.
	Left string
	// Right is the closing parenthesis, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis "+err.Right+" with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis "+err.Left+" with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrMismatchedParenthesis
}

// ExpressionError is an error indicating an expression that cannot be reduced
// to a single value. It implements InputError and matches
// ErrMalformedExpression.
type ExpressionError struct {
	// Col is the position of the operator missing an operand, or of the end of
	// the input.
	Col int
	// Op is the operator that was missing an operand. It is empty if the
	// operators were all applied but the number of values left was not one.
	Op string
	// Values is the number of values left at the end of evaluation.
	Values int
}

func (err *ExpressionError) Error() string {
	switch {
	case err.Op != "":
		return errpos(err.Col, "missing operand for "+strconv.Quote(err.Op))
	case err.Values == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, strconv.Itoa(err.Values)+" values with no operator between them")
	}
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

func (err *ExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// DivisionError is an error indicating a division by zero. It implements
// InputError and matches ErrDivisionByZero.
type DivisionError struct {
	// Col is the position of the division operator. It is zero when the
	// division did not come from an expression.
	Col int
	// Dividend is the value that was divided.
	Dividend string
}

func (err *DivisionError) Error() string {
	msg := "division of " + err.Dividend + " by zero"
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// NumberError is an error indicating an operand that is not a decimal digit
// string. It matches ErrInvalidCharacter.
type NumberError struct {
	// Num is the rejected operand.
	Num string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Num)
}

func (err *NumberError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// evaluating an expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*DivisionError)(nil)
)
