package pauli

import (
	"fmt"
	"slices"
)

// Operator is a signed n-qubit Pauli string.
// Sign false means '+', true means '-'.
type Operator struct {
	Ops  []Pauli
	Sign bool
}

// NewOperator builds a positive operator from the given units.
func NewOperator(ops ...Pauli) Operator {
	return Operator{Ops: slices.Clone(ops)}
}

// Identity returns the n-qubit identity with sign '+'.
func Identity(n int) Operator {
	return Operator{Ops: make([]Pauli, n)}
}

// Len returns the qubit count.
func (o Operator) Len() int { return len(o.Ops) }

// At returns the unit on qubit i.
func (o Operator) At(i int) Pauli { return o.Ops[i] }

// Clone returns a deep copy.
func (o Operator) Clone() Operator {
	return Operator{Ops: slices.Clone(o.Ops), Sign: o.Sign}
}

// Equal reports whether both operators have the same sign and units.
func (o Operator) Equal(other Operator) bool {
	return o.Sign == other.Sign && slices.Equal(o.Ops, other.Ops)
}

// SamePattern compares units only, ignoring the sign.
func (o Operator) SamePattern(other Operator) bool {
	return slices.Equal(o.Ops, other.Ops)
}

// IsIdentity reports whether every unit is I (the sign is ignored).
func (o Operator) IsIdentity() bool {
	for _, p := range o.Ops {
		if !p.IsIdentity() {
			return false
		}
	}
	return true
}

// Weight returns the number of non-identity units.
func (o Operator) Weight() int {
	w := 0
	for _, p := range o.Ops {
		if !p.IsIdentity() {
			w++
		}
	}
	return w
}

// ApplyHadamard conjugates qubit i by H.
func (o *Operator) ApplyHadamard(i int) {
	o.check(i)
	o.Sign = o.Sign != (o.Ops[i] == Y)
	o.Ops[i] = o.Ops[i].Hadamard()
}

// ApplyPhase conjugates qubit i by S.
// The sign flips exactly when the unit was Y before the gate.
func (o *Operator) ApplyPhase(i int) {
	o.check(i)
	o.Sign = o.Sign != (o.Ops[i] == Y)
	o.Ops[i] = o.Ops[i].Phase()
}

// ApplyCNot conjugates the pair (a, b) by CX with control a and target b.
func (o *Operator) ApplyCNot(a, b int) {
	o.check(a)
	o.check(b)
	if a == b {
		panic(fmt.Sprintf("pauli: cnot control and target are both qubit %d", a))
	}
	pa, pb := o.Ops[a], o.Ops[b]
	o.Sign = o.Sign != (pa.x && pb.z && pb.x == pa.z)
	o.Ops[a], o.Ops[b] = CNot(pa, pb)
}

// Commutes reports whether o and other commute (true) or anticommute (false).
// Two units anticommute iff they differ and neither is I; the operators
// anticommute iff an odd number of positions do.
func (o Operator) Commutes(other Operator) bool {
	if len(o.Ops) != len(other.Ops) {
		panic(fmt.Sprintf("pauli: commutes on operators of length %d and %d", len(o.Ops), len(other.Ops)))
	}
	total := 0
	for i, p := range o.Ops {
		q := other.Ops[i]
		if p != q && !p.IsIdentity() && !q.IsIdentity() {
			total++
		}
	}
	return total%2 == 0
}

// PadLeft inserts identity units at the front until the operator has n qubits.
// Operators already at least n long are left untouched.
func (o *Operator) PadLeft(n int) {
	if missing := n - len(o.Ops); missing > 0 {
		o.Ops = slices.Insert(o.Ops, 0, make([]Pauli, missing)...)
	}
}

func (o *Operator) check(i int) {
	if i < 0 || i >= len(o.Ops) {
		panic(fmt.Sprintf("pauli: qubit %d out of range [0, %d)", i, len(o.Ops)))
	}
}
