/*
Package sweep implements the tableau sweep of van den Berg's random Clifford
sampler: given an anticommuting pair (a, b) it records the Clifford gates that
take a to X⊗I…I and b to Z⊗I…I.

Every gate is applied to both operators as it is emitted, so the pair keeps
its commutation relation at every step. Signs are tracked exactly but not
forced to '+'; that is left to the caller (see tableau.Reduce).

The sweep runs in four stages:

 1. clear the Z bits of a (Phase on Y, Hadamard on Z)
 2. fold the X bits of a onto one qubit with CNOT rounds
 3. swap that qubit to position 0
 4. if b is not already Z on qubit 0: Hadamard(0), repeat stages 1 and 2
    driven by b, Hadamard(0)
*/
package sweep

import (
	"fmt"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/pauli"
)

// Sweep canonicalizes the anticommuting pair (a, b) in place and returns the
// gates it applied. a and b must be distinct operators of equal, non-zero
// length; anticommutation is assumed, not checked.
func Sweep(a, b *pauli.Operator) circuit.Circuit {
	if a == b {
		panic("sweep: a and b alias the same operator")
	}
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("sweep: operator lengths differ (%d and %d)", a.Len(), b.Len()))
	}
	if a.Len() == 0 {
		panic("sweep: operators have no qubits")
	}

	s := &sweeper{a: a, b: b}

	s.clearZ(a)
	if first := s.foldX(a); first != 0 {
		s.apply(circuit.SWAP(0, first))
	}

	if isBasis(*b, pauli.Z) {
		return s.c
	}

	s.apply(circuit.H(0))
	s.clearZ(b)
	if last := s.foldX(b); last != 0 {
		panic(fmt.Sprintf("sweep: X bit of b settled on qubit %d; pair does not anticommute", last))
	}
	s.apply(circuit.H(0))

	return s.c
}

// IsCanonical reports whether a is X on qubit 0 and b is Z on qubit 0, with
// identity elsewhere. Signs are ignored.
func IsCanonical(a, b pauli.Operator) bool {
	return isBasis(a, pauli.X) && isBasis(b, pauli.Z)
}

type sweeper struct {
	a, b *pauli.Operator
	c    circuit.Circuit
}

func (s *sweeper) apply(g circuit.Gate) {
	s.c.Append(g)
	circuit.Apply(s.a, g)
	circuit.Apply(s.b, g)
}

// clearZ removes every Z bit of op: Y -> X by Phase, Z -> X by Hadamard.
func (s *sweeper) clearZ(op *pauli.Operator) {
	for i := 0; i < op.Len(); i++ {
		p := op.At(i)
		if !p.Z() {
			continue
		}
		if p.X() {
			s.apply(circuit.S(i))
		} else {
			s.apply(circuit.H(i))
		}
	}
}

// foldX pairs up the qubits carrying an X bit and clears each target with a
// CNOT until a single qubit remains, which it returns. An odd leftover is
// carried into the next round. op must have no Z bits on entry.
func (s *sweeper) foldX(op *pauli.Operator) int {
	for {
		idx := xPositions(*op)
		switch len(idx) {
		case 0:
			panic("sweep: operator has no X bits left to fold")
		case 1:
			return idx[0]
		}
		for i := 0; i+1 < len(idx); i += 2 {
			s.apply(circuit.CX(idx[i], idx[i+1]))
		}
	}
}

func xPositions(op pauli.Operator) []int {
	var idx []int
	for i := 0; i < op.Len(); i++ {
		if op.At(i).X() {
			idx = append(idx, i)
		}
	}
	return idx
}

func isBasis(op pauli.Operator, head pauli.Pauli) bool {
	if op.Len() == 0 || op.At(0) != head {
		return false
	}
	for i := 1; i < op.Len(); i++ {
		if !op.At(i).IsIdentity() {
			return false
		}
	}
	return true
}
