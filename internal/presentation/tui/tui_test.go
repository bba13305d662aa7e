package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyler_Disabled(t *testing.T) {
	s := NewStyler(false)
	assert.Equal(t, "-XIZY", s.Operator(pauli.MustParse("-XIZY")))
	assert.Equal(t, "CNot(0, 1)", s.Gate(circuit.CX(0, 1)))
}

func TestStyler_EnabledKeepsText(t *testing.T) {
	s := NewStyler(true)
	out := s.Operator(pauli.MustParse("+XZ"))
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "Z")

	assert.Contains(t, s.Gate(circuit.SWAP(2, 3)), "(2, 3)")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	require.NoError(t, err)
	out, err := render("# Title\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
