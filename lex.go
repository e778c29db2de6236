package calc

import (
	"strconv"
	"strings"
)

// Operators contains the characters that delimit operands in an
// expression.
const Operators = "+-*/%^r!"

// tokenize splits a flat expression into its parallel operand and operator
// sequences. A '-' with no operand accumulated and no immediately
// preceding '!' folds into the forthcoming number as its sign. A '!'
// appends the accumulated operand and its own tag without claiming a right
// operand, so the operator following it may legally arrive with the
// operand buffer empty.
func tokenize(expr string) ([]float64, []byte, error) {
	var (
		operands []float64
		ops      []byte
		buf      string
		start    int
	)
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if strings.IndexByte(Operators, c) < 0 {
			if buf == "" {
				start = i
			}
			buf += string(c)
			continue
		}
		if c == '-' && buf == "" && (len(ops) == 0 || ops[len(ops)-1] != '!') {
			start = i
			buf = "-"
			continue
		}
		if buf != "" {
			v, err := parseOperand(buf, start)
			if err != nil {
				return nil, nil, err
			}
			operands = append(operands, v)
			buf = ""
		} else if len(ops) == 0 || ops[len(ops)-1] != '!' {
			return nil, nil, &ParseError{Col: i + 1, Text: string(c)}
		}
		ops = append(ops, c)
	}
	switch {
	case buf != "":
		v, err := parseOperand(buf, start)
		if err != nil {
			return nil, nil, err
		}
		operands = append(operands, v)
	case len(ops) == 0:
		return nil, nil, &ParseError{Col: len(expr) + 1}
	case ops[len(ops)-1] != '!':
		// Trailing binary operator with nothing on its right.
		return nil, nil, &ParseError{Col: len(expr), Text: string(ops[len(ops)-1])}
	}
	return operands, ops, nil
}

// parseOperand converts one operand token to its value. Tokens containing
// "pi" or "e" become the named constants, keeping a leading minus sign;
// the check is a plain substring search, so a token like "1e5" is read as
// the constant e rather than scientific notation.
func parseOperand(text string, pos int) (float64, error) {
	s := strings.TrimSpace(text)
	neg := strings.HasPrefix(s, "-")
	switch {
	case strings.Contains(s, "pi"):
		if neg {
			return -Pi, nil
		}
		return Pi, nil
	case strings.Contains(s, "e"):
		if neg {
			return -E, nil
		}
		return E, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Col: pos + 1, Text: text}
	}
	return v, nil
}
