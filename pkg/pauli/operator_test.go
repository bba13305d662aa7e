package pauli

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperator_PhaseSignLaw(t *testing.T) {
	op := MustParse("+X")

	op.ApplyPhase(0)
	op.ApplyPhase(0)
	assert.Equal(t, "-X", op.String(), "S² X S†² = -X")

	op.ApplyPhase(0)
	op.ApplyPhase(0)
	assert.Equal(t, "+X", op.String(), "S⁴ is the identity")
}

func TestOperator_HadamardTwiceIsIdentity(t *testing.T) {
	for _, p := range allUnits {
		for _, sign := range []bool{false, true} {
			op := Operator{Ops: []Pauli{p}, Sign: sign}
			want := op.Clone()
			op.ApplyHadamard(0)
			op.ApplyHadamard(0)
			assert.True(t, want.Equal(op), "H² on %s", want)
		}
	}
}

func TestOperator_HadamardFlipsY(t *testing.T) {
	op := MustParse("+Y")
	op.ApplyHadamard(0)
	assert.Equal(t, "-Y", op.String())

	op = MustParse("+X")
	op.ApplyHadamard(0)
	assert.Equal(t, "+Z", op.String())
}

func TestOperator_CNotSign(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"+XI", "+XX"},
		{"+IZ", "+ZZ"},
		{"+XZ", "-YY"},
		{"+YY", "-XZ"},
		{"+ZX", "+ZX"},
		{"-YI", "-YX"},
	}
	for _, tt := range tests {
		op := MustParse(tt.in)
		op.ApplyCNot(0, 1)
		assert.Equal(t, tt.want, op.String(), "CX(0,1) on %s", tt.in)
	}
}

func TestOperator_CNotTwiceIsIdentity(t *testing.T) {
	for _, a := range allUnits {
		for _, b := range allUnits {
			for _, sign := range []bool{false, true} {
				op := Operator{Ops: []Pauli{a, b}, Sign: sign}
				want := op.Clone()
				op.ApplyCNot(0, 1)
				op.ApplyCNot(0, 1)
				assert.True(t, want.Equal(op), "CX² on %s", want)
			}
		}
	}
}

func TestOperator_Commutes(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"+X", "+X", true},
		{"+X", "+Z", false},
		{"+X", "+I", true},
		{"+XX", "+ZZ", true},
		{"+XYYX", "+YYYX", false},
		{"+IZI", "+YYI", false},
		{"+XZ", "-ZX", true},
	}
	for _, tt := range tests {
		got := MustParse(tt.a).Commutes(MustParse(tt.b))
		assert.Equal(t, tt.want, got, "%s vs %s", tt.a, tt.b)
	}
}

func TestOperator_CommutesSymmetric(t *testing.T) {
	r := NewRNG(rand.NewPCG(7, 11))
	for n := 1; n <= 6; n++ {
		for range 100 {
			a := RandomOperator(r, n)
			b := RandomOperator(r, n)
			require.Equal(t, a.Commutes(b), b.Commutes(a), "%s vs %s", a, b)
		}
	}
}

func TestOperator_CommutesLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("+XX").Commutes(MustParse("+X"))
	})
}

func TestOperator_OutOfRangePanics(t *testing.T) {
	op := MustParse("+XY")
	assert.Panics(t, func() { op.ApplyHadamard(2) })
	assert.Panics(t, func() { op.ApplyPhase(-1) })
	assert.Panics(t, func() { op.ApplyCNot(0, 0) })
}

func TestOperator_PadLeft(t *testing.T) {
	op := MustParse("-XZ")
	op.PadLeft(5)

	require.Equal(t, 5, op.Len())
	for i := range 3 {
		assert.Equal(t, I, op.At(i), "padded unit %d", i)
	}
	assert.Equal(t, "-IIIXZ", op.String())

	op.PadLeft(2)
	assert.Equal(t, 5, op.Len(), "shorter target leaves operator untouched")
}

func TestOperator_CloneIsIndependent(t *testing.T) {
	op := MustParse("+XY")
	c := op.Clone()
	c.ApplyHadamard(0)
	assert.Equal(t, "+XY", op.String())
	assert.Equal(t, "+ZY", c.String())
}

func TestOperator_IdentityAndWeight(t *testing.T) {
	assert.True(t, Identity(3).IsIdentity())
	assert.True(t, MustParse("-III").IsIdentity())
	assert.False(t, MustParse("+IXI").IsIdentity())
	assert.Equal(t, 2, MustParse("+XIZ").Weight())
}
