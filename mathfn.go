package calc

import "math"

// Pi and E are the values substituted for the named constants during
// tokenization.
const (
	Pi = 3.1415926536
	E  = 2.7182818285
)

// intEps is the tolerance within which a value counts as an integer.
const intEps = 1e-12

// rootEps and rootMaxIter bound the Newton-Raphson refinement in Root.
const (
	rootEps     = 1e-10
	rootMaxIter = 1000
)

// Add returns a+b.
func Add(a, b float64) float64 {
	return a + b
}

// Sub returns a-b.
func Sub(a, b float64) float64 {
	return a - b
}

// Mul returns a*b.
func Mul(a, b float64) float64 {
	return a * b
}

// Div returns a/b. It fails with *DivideByZeroError when b is zero.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivideByZeroError{Op: "div"}
	}
	return a / b, nil
}

// IsInteger reports whether a lies within 1e-12 of an integer. It is the
// tolerance gate shared by Fact, Power, Root and Modulo so that values
// carrying floating-point noise from earlier divisions still qualify.
func IsInteger(a float64) bool {
	return math.Abs(a-math.Round(a)) <= intEps
}

// Fact returns a! as a float64. a must be a non-negative effectively
// integer value. The product is checked after every multiplication, so the
// overflow point follows from float64 range rather than a fixed input
// bound.
func Fact(a float64) (float64, error) {
	if a < 0 {
		return 0, &InvalidArgumentError{Func: "fact", X: a, Reason: "is negative"}
	}
	if !IsInteger(a) {
		return 0, &InvalidArgumentError{Func: "fact", X: a, Reason: "is not an integer"}
	}
	n := math.Round(a)
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
		if math.IsInf(r, 0) {
			return 0, &OverflowError{Func: "fact", X: a}
		}
	}
	return r, nil
}

// Power returns a raised to the exponent b by repeated multiplication.
// b must be a non-negative effectively integer value; Power(a, 0) is 1 for
// every a, including 0^0. Negative and fractional exponents are rejected.
func Power(a, b float64) (float64, error) {
	if !IsInteger(b) {
		return 0, &InvalidArgumentError{Func: "power", X: b, Reason: "is not an integer exponent"}
	}
	if b < 0 {
		return 0, &InvalidArgumentError{Func: "power", X: b, Reason: "is a negative exponent"}
	}
	return ipow(a, int(math.Round(b))), nil
}

// ipow raises a to a non-negative integer power by repeated
// multiplication. Power and Root share it.
func ipow(a float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= a
	}
	return r
}

// Root returns the real b-th root of a by Newton-Raphson refinement:
//
//	x <- ((b-1)*x + a/x^(b-1)) / b
//
// starting from x0 = a/2, for at most 1000 iterations or until successive
// iterates differ by less than 1e-10. b must be a positive effectively
// integer value, and an even b requires a >= 0.
func Root(a, b float64) (float64, error) {
	if !IsInteger(b) || b < 1-intEps {
		return 0, &InvalidArgumentError{Func: "root", X: b, Reason: "is not a positive integer degree"}
	}
	n := int(math.Round(b))
	if n%2 == 0 && a < 0 {
		return 0, &InvalidArgumentError{Func: "root", X: a, Reason: "is negative with an even degree"}
	}
	if a == 0 {
		// The update rule divides by x^(n-1), which is zero at the start
		// point a/2.
		return 0, nil
	}
	x := a / 2
	d := float64(n)
	for i := 0; i < rootMaxIter; i++ {
		next := ((d-1)*x + a/ipow(x, n-1)) / d
		if math.Abs(next-x) < rootEps {
			return next, nil
		}
		x = next
	}
	return x, nil
}

// Modulo returns a mod b normalized into [0, |b|): when the truncated
// remainder is negative, |b| is added once. Both operands must be
// effectively integer values and b must be nonzero.
func Modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivideByZeroError{Op: "mod"}
	}
	if !IsInteger(a) {
		return 0, &InvalidArgumentError{Func: "mod", X: a, Reason: "is not an integer"}
	}
	if !IsInteger(b) {
		return 0, &InvalidArgumentError{Func: "mod", X: b, Reason: "is not an integer"}
	}
	bi := math.Round(b)
	r := math.Mod(math.Round(a), bi)
	if r < 0 {
		r += math.Abs(bi)
	}
	return r, nil
}
