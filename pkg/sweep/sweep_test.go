package sweep

import (
	"math/rand/v2"
	"testing"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_PaperExample(t *testing.T) {
	a := pauli.MustParse("+XYYX")
	b := pauli.MustParse("+YYYX")

	c := Sweep(&a, &b)

	assert.Equal(t, "XIII", a.Pattern())
	assert.Equal(t, "ZIII", b.Pattern())
	assert.NotZero(t, c.Len())
}

func TestSweep_ReplayMatches(t *testing.T) {
	a0 := pauli.MustParse("+XYYX")
	b0 := pauli.MustParse("+YYYX")
	a, b := a0.Clone(), b0.Clone()

	c := Sweep(&a, &b)
	c.ApplyTo(&a0, &b0)

	assert.True(t, a.Equal(a0), "replaying the circuit reproduces a (sign included)")
	assert.True(t, b.Equal(b0), "replaying the circuit reproduces b (sign included)")
}

func TestSweep_AlreadyCanonical(t *testing.T) {
	a := pauli.MustParse("-XII")
	b := pauli.MustParse("+ZII")

	c := Sweep(&a, &b)
	assert.Zero(t, c.Len())
	assert.Equal(t, "-XII", a.String())
}

// Three X bits exercise the odd-remainder path of the folding stage.
func TestSweep_OddWeightFold(t *testing.T) {
	a := pauli.MustParse("+XXX")
	b := pauli.MustParse("+ZII")

	c := Sweep(&a, &b)

	assert.Equal(t, []circuit.Gate{circuit.CX(0, 1), circuit.CX(0, 2)}, c.Gates)
	assert.True(t, IsCanonical(a, b))
}

func TestSweep_OddWeightLeftoverNotAtFront(t *testing.T) {
	a := pauli.MustParse("+IXXXXX")
	b := pauli.MustParse("+IZIIII")

	c := Sweep(&a, &b)

	assert.True(t, IsCanonical(a, b), "a=%s b=%s", a, b)
	assert.Contains(t, c.Gates, circuit.SWAP(0, 1))
}

func TestSweep_SecondStage(t *testing.T) {
	a := pauli.MustParse("+X")
	b := pauli.MustParse("+Y")

	c := Sweep(&a, &b)

	assert.Equal(t, []circuit.Gate{circuit.H(0), circuit.S(0), circuit.H(0)}, c.Gates)
	assert.Equal(t, "+X", a.String())
	assert.Equal(t, "+Z", b.String())
}

func TestSweep_ExhaustiveSmall(t *testing.T) {
	for n := 1; n <= 3; n++ {
		all := enumerate(n)
		for _, a0 := range all {
			if a0.IsIdentity() {
				continue
			}
			for _, b0 := range all {
				if a0.Commutes(b0) {
					continue
				}
				a, b := a0.Clone(), b0.Clone()
				c := Sweep(&a, &b)
				require.True(t, IsCanonical(a, b), "%s, %s -> %s, %s", a0, b0, a, b)
				require.LessOrEqual(t, c.Len(), 8*n+4)
			}
		}
	}
}

func TestSweep_RandomPairs(t *testing.T) {
	r := pauli.NewRNG(rand.NewPCG(99, 1))
	for n := 1; n <= 12; n++ {
		for range 50 {
			a, b, _ := pauli.AnticommutingPair(r, n)
			a0, b0 := a.Clone(), b.Clone()

			c := Sweep(&a, &b)
			require.True(t, IsCanonical(a, b), "%s, %s -> %s, %s", a0, b0, a, b)
			require.False(t, a.Commutes(b), "conjugation preserves anticommutation")

			c.ApplyTo(&a0, &b0)
			require.True(t, a.Equal(a0))
			require.True(t, b.Equal(b0))
		}
	}
}

func TestSweep_Preconditions(t *testing.T) {
	a := pauli.MustParse("+XZ")
	b := pauli.MustParse("+ZX")
	short := pauli.MustParse("+Z")
	empty := pauli.Identity(0)
	empty2 := pauli.Identity(0)

	assert.Panics(t, func() { Sweep(&a, &a) }, "aliasing")
	assert.Panics(t, func() { Sweep(&b, &short) }, "length mismatch")
	assert.Panics(t, func() { Sweep(&empty, &empty2) }, "no qubits")
}

func TestSweep_CommutingPairPanics(t *testing.T) {
	a := pauli.MustParse("+XI")
	b := pauli.MustParse("+IZ")
	assert.Panics(t, func() { Sweep(&a, &b) })
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical(pauli.MustParse("-XI"), pauli.MustParse("-ZI")))
	assert.False(t, IsCanonical(pauli.MustParse("+XI"), pauli.MustParse("+ZZ")))
	assert.False(t, IsCanonical(pauli.MustParse("+ZI"), pauli.MustParse("+XI")))
}

func enumerate(n int) []pauli.Operator {
	units := []pauli.Pauli{pauli.I, pauli.X, pauli.Y, pauli.Z}
	out := []pauli.Operator{pauli.Identity(0)}
	for range n {
		next := make([]pauli.Operator, 0, len(out)*4)
		for _, op := range out {
			for _, u := range units {
				ext := op.Clone()
				ext.Ops = append(ext.Ops, u)
				next = append(next, ext)
			}
		}
		out = next
	}
	return out
}
