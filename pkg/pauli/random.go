package pauli

import (
	"fmt"
	"math/rand/v2"
)

// RNG hands out single random bits from a math/rand/v2 Source.
// It buffers 64 bits per draw from the source. Not safe for concurrent use.
type RNG struct {
	src  rand.Source
	buf  uint64
	left int
}

// NewRNG wraps src.
func NewRNG(src rand.Source) *RNG {
	return &RNG{src: src}
}

// Bool returns one unbiased bit.
func (r *RNG) Bool() bool {
	if r.left == 0 {
		r.buf = r.src.Uint64()
		r.left = 64
	}
	b := r.buf&1 == 1
	r.buf >>= 1
	r.left--
	return b
}

// RandomOperator returns n independent random units with an independent
// uniform sign bit. The result may be the identity.
func RandomOperator(r *RNG, n int) Operator {
	ops := make([]Pauli, n)
	for i := range ops {
		ops[i] = RandomPauli(r)
	}
	return Operator{Ops: ops, Sign: r.Bool()}
}

// AnticommutingPair samples (a, b) with a non-identity and a, b anticommuting.
// a is redrawn until it is not the identity; if the pair commutes both are
// discarded and the search restarts. The second result counts discarded draws.
func AnticommutingPair(r *RNG, n int) (Operator, Operator, int) {
	if n < 1 {
		panic(fmt.Sprintf("pauli: anticommuting pair needs at least one qubit, got %d", n))
	}
	rejected := 0
	for {
		a := RandomOperator(r, n)
		for a.IsIdentity() {
			rejected++
			a = RandomOperator(r, n)
		}
		b := RandomOperator(r, n)
		if !a.Commutes(b) {
			return a, b, rejected
		}
		rejected++
	}
}
