package calc

import (
	"math"
	"strconv"
	"strings"
)

// Session is the state of one interactive input sequence: a running
// accumulator, at most one pending binary operator, the operand being
// typed, and the accumulated expression text. Callers own their sessions;
// nothing here is shared, so separate sessions can run on separate
// goroutines.
type Session struct {
	stored  float64
	pending byte
	input   string
	expr    string
	done    bool
}

// NewSession returns a session displaying 0 with nothing pending.
func NewSession() *Session {
	return &Session{}
}

// Press feeds one key to the session. Digits, ".", "pi" and "e" extend the
// operand being typed; "+", "-", "*" and "/" commit the pending operation
// through the primitives and become the new pending operator; "=" performs
// one evaluation step against the stored accumulator; "C" resets the
// session and "CE" clears only the current entry. A primitive failure is
// returned to the caller and leaves the session usable.
func (s *Session) Press(key string) error {
	switch key {
	case "C":
		*s = Session{}
		return nil
	case "CE":
		s.expr = strings.TrimSuffix(s.expr, s.input)
		s.input = ""
		return nil
	case "+", "-", "*", "/":
		return s.operator(key[0])
	case "=":
		return s.evaluate()
	default:
		if !validEntry(key) {
			return &ParseError{Col: len(s.expr) + 1, Text: key}
		}
		if s.done {
			*s = Session{}
		}
		s.input += key
		s.expr += key
		return nil
	}
}

// operator commits the operand being typed and latches op as pending. A
// minus with no operand in progress starts a negative number instead.
func (s *Session) operator(op byte) error {
	if op == '-' && s.input == "" && (s.expr == "" || s.pending != 0) {
		s.input = "-"
		s.expr += "-"
		s.done = false
		return nil
	}
	if s.input != "" && s.input != "-" {
		v, err := parseOperand(s.input, 0)
		if err != nil {
			return err
		}
		if s.pending == 0 {
			s.stored = v
		} else {
			r, err := apply(s.pending, s.stored, v)
			if err != nil {
				return err
			}
			s.stored = r
		}
		s.input = ""
	} else if s.pending != 0 {
		// Repeated operator presses keep the first operator.
		return nil
	}
	s.pending = op
	s.expr += string(op)
	s.done = false
	return nil
}

// evaluate performs one step: accumulator, pending operator, typed
// operand. With nothing pending or nothing typed it does nothing.
func (s *Session) evaluate() error {
	if s.pending == 0 || s.input == "" || s.input == "-" {
		return nil
	}
	v, err := parseOperand(s.input, 0)
	if err != nil {
		return err
	}
	r, err := apply(s.pending, s.stored, v)
	if err != nil {
		return err
	}
	// Collapse signed zero and sub-epsilon dust so the display reads 0.
	if math.Abs(r) < 1e-8 {
		r = 0
	}
	s.stored = r
	s.pending = 0
	s.input = ""
	s.expr = formatValue(r)
	s.done = true
	return nil
}

// Display returns the value a front end should show: the operand being
// typed if there is one, otherwise the accumulator.
func (s *Session) Display() string {
	if s.input != "" && s.input != "-" {
		if v, err := parseOperand(s.input, 0); err == nil {
			return formatValue(v)
		}
		return s.input
	}
	if s.input == "-" {
		return s.input
	}
	return formatValue(s.stored)
}

// Expression returns the accumulated expression text.
func (s *Session) Expression() string {
	return s.expr
}

// Value returns the accumulator.
func (s *Session) Value() float64 {
	return s.stored
}

// validEntry reports whether key may extend the operand being typed: a
// single digit, a decimal point, or a constant name.
func validEntry(key string) bool {
	switch key {
	case ".", "pi", "e":
		return true
	}
	return len(key) == 1 && '0' <= key[0] && key[0] <= '9'
}

// formatValue renders a value without trailing zeros, the way a calculator
// display shows it.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
