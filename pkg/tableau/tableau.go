// Package tableau drives the sweep over a shrinking list of operator pairs to
// produce a full random Clifford circuit.
//
// Rows come in pairs. Pair k has n-k qubits and acts on the last n-k qubits
// of the register, so every round peels one qubit off the front.
package tableau

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/aretw0/clifford/pkg/sweep"
)

var (
	// ErrShape is returned when rows do not form pairs of lengths n, n-1, ….
	ErrShape = errors.New("invalid tableau shape")

	// ErrCommutingPair is returned when a row pair commutes.
	ErrCommutingPair = errors.New("row pair does not anticommute")

	// ErrQubits is returned for a qubit count below one.
	ErrQubits = errors.New("qubit count must be at least 1")
)

// Round records which slice of the accumulated circuit one pair produced.
type Round struct {
	Qubit      int `json:"qubit"`
	Start      int `json:"start"`
	End        int `json:"end"`
	Rejections int `json:"rejections,omitempty"`
}

// Hook is called after every completed round.
type Hook func(ctx context.Context, r Round, gates circuit.Circuit)

// Tableau holds the row pairs and the circuit accumulated while reducing them.
type Tableau struct {
	rows       []pauli.Operator
	rejections []int
	circuit    circuit.Circuit
	rounds     []Round
	reduced    bool
}

// New validates rows and wraps copies of them.
func New(rows []pauli.Operator) (*Tableau, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	if len(rows)%2 != 0 {
		return nil, fmt.Errorf("%w: %d rows cannot be paired", ErrShape, len(rows))
	}

	n := rows[0].Len()
	if len(rows)/2 > n {
		return nil, fmt.Errorf("%w: %d pairs for %d qubits", ErrShape, len(rows)/2, n)
	}

	t := &Tableau{
		rows:       make([]pauli.Operator, len(rows)),
		rejections: make([]int, len(rows)/2),
	}
	for k := 0; k < len(rows)/2; k++ {
		a, b := rows[2*k], rows[2*k+1]
		want := n - k
		if a.Len() != want || b.Len() != want {
			return nil, fmt.Errorf("%w: pair %d has lengths %d and %d, want %d", ErrShape, k, a.Len(), b.Len(), want)
		}
		if a.Commutes(b) {
			return nil, fmt.Errorf("%w: pair %d (%s, %s)", ErrCommutingPair, k, a, b)
		}
		t.rows[2*k] = a.Clone()
		t.rows[2*k+1] = b.Clone()
	}
	return t, nil
}

// Sample draws n anticommuting pairs of lengths n, n-1, …, 1.
func Sample(r *pauli.RNG, n int) (*Tableau, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrQubits, n)
	}
	t := &Tableau{
		rows:       make([]pauli.Operator, 0, 2*n),
		rejections: make([]int, 0, n),
	}
	for m := n; m >= 1; m-- {
		a, b, rejected := pauli.AnticommutingPair(r, m)
		t.rows = append(t.rows, a, b)
		t.rejections = append(t.rejections, rejected)
	}
	return t, nil
}

// Qubits returns the register width.
func (t *Tableau) Qubits() int { return t.rows[0].Len() }

// Pairs returns the number of row pairs.
func (t *Tableau) Pairs() int { return len(t.rows) / 2 }

// Rows returns copies of the rows as given or sampled.
func (t *Tableau) Rows() []pauli.Operator {
	out := make([]pauli.Operator, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// Rounds returns the boundaries recorded by Reduce.
func (t *Tableau) Rounds() []Round {
	return append([]Round(nil), t.rounds...)
}

// Circuit returns the accumulated circuit.
func (t *Tableau) Circuit() circuit.Circuit {
	return circuit.Circuit{Gates: append([]circuit.Gate(nil), t.circuit.Gates...)}
}

// Reduce sweeps every pair in order. Round k canonicalizes pair k to +X, +Z
// on qubit k, shifting its gates past the k qubits already consumed.
// The context is checked between rounds; hooks run after each round.
// Calling Reduce again returns the circuit from the first successful call.
// A cancelled call leaves no partial rounds behind.
func (t *Tableau) Reduce(ctx context.Context, hooks ...Hook) (circuit.Circuit, error) {
	if t.reduced {
		return t.Circuit(), nil
	}

	var (
		acc    circuit.Circuit
		rounds = make([]Round, 0, t.Pairs())
	)
	for k := 0; k < t.Pairs(); k++ {
		if err := ctx.Err(); err != nil {
			return circuit.Circuit{}, err
		}

		a, b := t.rows[2*k].Clone(), t.rows[2*k+1].Clone()
		local := sweep.Sweep(&a, &b)
		local.Concat(fixSigns(&a, &b))

		round := Round{
			Qubit:      k,
			Start:      acc.Len(),
			Rejections: t.rejections[k],
		}
		shifted := local.Shift(k)
		acc.Concat(shifted)
		round.End = acc.Len()
		rounds = append(rounds, round)

		for _, h := range hooks {
			h(ctx, round, shifted)
		}
	}

	t.circuit = acc
	t.rounds = rounds
	t.reduced = true
	return t.Circuit(), nil
}

// fixSigns clears the sign bits of a canonical pair (X, Z) on qubit 0.
// Phase·Phase is Z, which flips X and fixes Z. H·Phase·Phase·H is X, which
// flips Z and fixes X.
func fixSigns(a, b *pauli.Operator) circuit.Circuit {
	var c circuit.Circuit
	if a.Sign {
		c.Append(circuit.S(0), circuit.S(0))
	}
	if b.Sign {
		c.Append(circuit.H(0), circuit.S(0), circuit.S(0), circuit.H(0))
	}
	c.ApplyTo(a, b)
	return c
}
