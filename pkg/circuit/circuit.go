// Package circuit holds the Clifford gate set and the append-only gate log
// produced by the sweep, together with its text and OpenQASM renderings.
package circuit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/clifford/pkg/pauli"
)

// ErrInvalidGate is returned when a gate line cannot be parsed.
var ErrInvalidGate = errors.New("invalid gate")

// Circuit is an ordered replay log of gates.
type Circuit struct {
	Gates []Gate `json:"gates"`
}

// Append adds gates to the end of the circuit.
func (c *Circuit) Append(gates ...Gate) {
	c.Gates = append(c.Gates, gates...)
}

// Concat appends every gate of other.
func (c *Circuit) Concat(other Circuit) {
	c.Gates = append(c.Gates, other.Gates...)
}

// Len returns the number of gates.
func (c Circuit) Len() int { return len(c.Gates) }

// Shift returns a copy with every qubit index moved up by k.
func (c Circuit) Shift(k int) Circuit {
	out := Circuit{Gates: make([]Gate, len(c.Gates))}
	for i, g := range c.Gates {
		out.Gates[i] = g.Shift(k)
	}
	return out
}

// Slice returns the gates in [start, end) as a new circuit.
func (c Circuit) Slice(start, end int) Circuit {
	return Circuit{Gates: slices.Clone(c.Gates[start:end])}
}

// Counts tallies gates per kind.
func (c Circuit) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, g := range c.Gates {
		counts[g.Kind]++
	}
	return counts
}

// Width returns one more than the highest qubit index used, or 0 when empty.
func (c Circuit) Width() int {
	w := 0
	for _, g := range c.Gates {
		for _, q := range g.Qubits() {
			w = max(w, q+1)
		}
	}
	return w
}

// ApplyTo replays every gate, in order, on each operator.
func (c Circuit) ApplyTo(ops ...*pauli.Operator) {
	for _, g := range c.Gates {
		for _, op := range ops {
			Apply(op, g)
		}
	}
}

// Apply conjugates op by a single gate.
// Swap is realized as CX(a,b) CX(b,a) CX(a,b); the per-CNOT phase rule
// already makes the net sign exact.
func Apply(op *pauli.Operator, g Gate) {
	switch g.Kind {
	case KindHadamard:
		op.ApplyHadamard(g.A)
	case KindPhase:
		op.ApplyPhase(g.A)
	case KindCNot:
		op.ApplyCNot(g.A, g.B)
	case KindSwap:
		op.ApplyCNot(g.A, g.B)
		op.ApplyCNot(g.B, g.A)
		op.ApplyCNot(g.A, g.B)
	default:
		panic(fmt.Sprintf("circuit: unknown gate kind %d", g.Kind))
	}
}
