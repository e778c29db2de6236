package calc_test

import (
	"testing"

	"github.com/opencalc/calc"
)

// FuzzEvaluate checks that arbitrary input never panics and that every
// failure carries one of the four kinds.
func FuzzEvaluate(f *testing.F) {
	f.Add("3+5*2")
	f.Add("2^3^2")
	f.Add("5!")
	f.Add("-pi*2")
	f.Add("8r3")
	f.Add("10%3")
	f.Add("3*-2!")
	f.Add("5**2")
	f.Add("")
	f.Fuzz(func(t *testing.T, src string) {
		_, err := calc.Evaluate(src)
		if err != nil && calc.KindOf(err) == calc.KindNone {
			t.Errorf("%q gave unclassified error %#v", src, err)
		}
	})
}
