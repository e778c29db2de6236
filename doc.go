// Package calc implements the numeric core of a small interactive
// calculator: eight arithmetic primitives and a flat expression evaluator
// over the operators + - * / % ^ r ! and the constants pi and e.
//
// The evaluator has no bracket grammar. Operators resolve in the fixed
// class order ! r ^ % / * - +, and within one class the rightmost
// occurrence resolves first, so "2^3^2" is 2^(3^2) and "10-3-2" is
// 10-(3-2). Constants are recognized by substring search: any token
// containing "pi" is read as pi, and any other token containing the letter
// e is read as the constant e, so scientific notation is not supported.
//
// Every function is pure and holds no global state; all of them are safe
// to call from concurrent goroutines.
package calc
