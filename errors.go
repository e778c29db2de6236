package calc

import (
	"errors"
	"strconv"
)

// Kind classifies an evaluation failure.
type Kind int

const (
	// KindNone is the classification of a nil error or an error that did
	// not originate in this package.
	KindNone Kind = iota
	// KindDivideByZero indicates a zero divisor in Div or Modulo.
	KindDivideByZero
	// KindInvalidArgument indicates a domain violation: a negative or
	// non-integer factorial input, a negative or non-integer exponent, a
	// non-positive or non-integer root degree, an even root of a negative
	// radicand, or non-integer operands to Modulo.
	KindInvalidArgument
	// KindOverflow indicates that a factorial left the finite double range
	// during accumulation.
	KindOverflow
	// KindParse indicates a malformed token during tokenization.
	KindParse
)

// KindOf classifies err. The result is KindNone for a nil error or for an
// error that did not come from this package.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindNone
}

// DivideByZeroError is an error indicating a zero divisor.
type DivideByZeroError struct {
	// Op is the operation that received the zero divisor, "div" or "mod".
	Op string
}

func (err *DivideByZeroError) Error() string {
	return err.Op + ": division by zero"
}

func (err *DivideByZeroError) Kind() Kind {
	return KindDivideByZero
}

// InvalidArgumentError is an error indicating an argument outside an
// operation's domain.
type InvalidArgumentError struct {
	// Func is the name of the operation that rejected the argument.
	Func string
	// X is the rejected argument.
	X float64
	// Reason describes the violated constraint.
	Reason string
}

func (err *InvalidArgumentError) Error() string {
	return err.Func + ": " + strconv.FormatFloat(err.X, 'g', -1, 64) + " " + err.Reason
}

func (err *InvalidArgumentError) Kind() Kind {
	return KindInvalidArgument
}

// OverflowError is an error indicating a result too large for a float64.
type OverflowError struct {
	// Func is the name of the operation that overflowed.
	Func string
	// X is the argument whose result overflowed.
	X float64
}

func (err *OverflowError) Error() string {
	return err.Func + ": result for " + strconv.FormatFloat(err.X, 'g', -1, 64) + " exceeds the finite range"
}

func (err *OverflowError) Kind() Kind {
	return KindOverflow
}

// ParseError is an error indicating a malformed token in an expression.
type ParseError struct {
	// Col is the 1-based position of the token.
	Col int
	// Text is the offending token. It is empty when the whole expression
	// was empty.
	Text string
}

func (err *ParseError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Text == "" {
		return "no expression at " + pos
	}
	return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *ParseError) Kind() Kind {
	return KindParse
}

// Pos returns the position of the error as the number of bytes up to and
// including the start of the token that caused it.
func (err *ParseError) Pos() int {
	return err.Col
}

var (
	_ interface{ Kind() Kind } = (*DivideByZeroError)(nil)
	_ interface{ Kind() Kind } = (*InvalidArgumentError)(nil)
	_ interface{ Kind() Kind } = (*OverflowError)(nil)
	_ interface{ Kind() Kind } = (*ParseError)(nil)
)
