package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// randomInt returns a signed value of up to maxWords words.
func randomInt(r *rand.Rand, maxWords int) Int {
	n := r.IntN(maxWords + 1)
	mag := make(nat, n)
	for i := range mag {
		mag[i] = word(r.UintN(wordBase))
	}
	return makeInt(r.IntN(2) == 0, mag)
}

func newTestRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

// assertBig fails the test when got differs from the math/big reference.
func assertBig(t *testing.T, label string, got Int, want *big.Int) {
	t.Helper()
	if got.Big().Cmp(want) != 0 {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
	assertCanonical(t, label, got)
}

// assertCanonical checks the representation invariants of an Int.
func assertCanonical(t *testing.T, label string, x Int) {
	t.Helper()
	if len(x.mag) > 0 && x.mag[len(x.mag)-1] == 0 {
		t.Errorf("%s: magnitude has a most-significant zero word: %v", label, x.mag)
	}
	if (x.sign == 0) != (len(x.mag) == 0) {
		t.Errorf("%s: sign %d inconsistent with magnitude %v", label, x.sign, x.mag)
	}
}

// genInt generates signed values of up to maxWords words for gopter.
func genInt(maxWords int) gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.SliceOfN(maxWords, gen.UInt16()),
		gen.IntRange(0, maxWords),
	).Map(func(vals []interface{}) Int {
		words := vals[1].([]uint16)
		n := vals[2].(int)
		if n > len(words) {
			n = len(words)
		}
		mag := make(nat, n)
		copy(mag, words[:n])
		return makeInt(vals[0].(bool), mag)
	})
}

// genNonZeroInt is genInt restricted to non-zero values.
func genNonZeroInt(maxWords int) gopter.Gen {
	return genInt(maxWords).SuchThat(func(x Int) bool { return !x.IsZero() })
}

// genPositiveInt is genInt restricted to strictly positive values.
func genPositiveInt(maxWords int) gopter.Gen {
	return genInt(maxWords).Map(func(x Int) Int { return x.Abs() }).
		SuchThat(func(x Int) bool { return x.Sign() > 0 })
}
