package calc

import "bytes"

// priority is the fixed resolution order, highest first. Within one class
// the rightmost remaining occurrence resolves first.
var priority = []byte{'!', 'r', '^', '%', '/', '*', '-', '+'}

// Evaluate tokenizes expr and reduces it to a single value. Primitive
// failures propagate unchanged; malformed tokens surface as *ParseError.
func Evaluate(expr string) (float64, error) {
	operands, ops, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	for _, class := range priority {
		for {
			j := bytes.LastIndexByte(ops, class)
			if j < 0 {
				break
			}
			// Factorials own no operand slot, so the operand belonging to
			// the operator at j sits that many positions earlier.
			k := j - bytes.Count(ops[:j], []byte{'!'})
			if class == '!' {
				v, err := Fact(operands[k])
				if err != nil {
					return 0, err
				}
				operands[k] = v
				ops = append(ops[:j], ops[j+1:]...)
				continue
			}
			v, err := apply(class, operands[k], operands[k+1])
			if err != nil {
				return 0, err
			}
			operands[k] = v
			operands = append(operands[:k+1], operands[k+2:]...)
			ops = append(ops[:j], ops[j+1:]...)
		}
	}
	return operands[0], nil
}

// apply dispatches one binary operator tag to its primitive.
func apply(op byte, left, right float64) (float64, error) {
	switch op {
	case '+':
		return Add(left, right), nil
	case '-':
		return Sub(left, right), nil
	case '*':
		return Mul(left, right), nil
	case '/':
		return Div(left, right)
	case '%':
		return Modulo(left, right)
	case '^':
		return Power(left, right)
	case 'r':
		return Root(left, right)
	default:
		panic("calc: unknown operator " + string(op))
	}
}
