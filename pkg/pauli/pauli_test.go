package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allUnits = []Pauli{I, X, Y, Z}

func TestPauli_Bits(t *testing.T) {
	tests := []struct {
		p    Pauli
		x, z bool
		want string
	}{
		{I, false, false, "I"},
		{Z, false, true, "Z"},
		{X, true, false, "X"},
		{Y, true, true, "Y"},
	}
	for _, tt := range tests {
		x, z := tt.p.Bits()
		assert.Equal(t, tt.x, x, tt.want)
		assert.Equal(t, tt.z, z, tt.want)
		assert.Equal(t, tt.want, tt.p.String())
		assert.Equal(t, tt.p, NewPauli(tt.x, tt.z))
	}
}

func TestPauli_Involutions(t *testing.T) {
	for _, p := range allUnits {
		assert.Equal(t, p, p.Hadamard().Hadamard(), "H∘H on %s", p)
		assert.Equal(t, p, p.Phase().Phase(), "S∘S on %s", p)
	}
	for _, c := range allUnits {
		for _, tg := range allUnits {
			c1, t1 := CNot(c, tg)
			c2, t2 := CNot(c1, t1)
			assert.Equal(t, c, c2, "CX∘CX control %s%s", c, tg)
			assert.Equal(t, tg, t2, "CX∘CX target %s%s", c, tg)
		}
	}
}

func TestPauli_Images(t *testing.T) {
	assert.Equal(t, Z, X.Hadamard())
	assert.Equal(t, X, Z.Hadamard())
	assert.Equal(t, Y, Y.Hadamard())

	assert.Equal(t, Y, X.Phase())
	assert.Equal(t, X, Y.Phase())
	assert.Equal(t, Z, Z.Phase())

	// X⊗I -> X⊗X, I⊗Z -> Z⊗Z
	c, tg := CNot(X, I)
	assert.Equal(t, []Pauli{X, X}, []Pauli{c, tg})
	c, tg = CNot(I, Z)
	assert.Equal(t, []Pauli{Z, Z}, []Pauli{c, tg})
}

func TestParsePauli(t *testing.T) {
	for _, p := range allUnits {
		got, err := ParsePauli(rune(p.String()[0]))
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePauli('Q')
	assert.ErrorIs(t, err, ErrInvalidPauli)
}
