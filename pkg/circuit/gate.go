package circuit

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind enumerates the closed gate set.
type Kind uint8

const (
	KindHadamard Kind = iota
	KindPhase
	KindCNot
	KindSwap
)

// Kinds lists every gate kind in display order.
var Kinds = []Kind{KindHadamard, KindPhase, KindCNot, KindSwap}

func (k Kind) String() string {
	switch k {
	case KindHadamard:
		return "Hadamard"
	case KindPhase:
		return "Phase"
	case KindCNot:
		return "CNot"
	case KindSwap:
		return "Swap"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of qubits the gate acts on.
func (k Kind) Arity() int {
	if k == KindCNot || k == KindSwap {
		return 2
	}
	return 1
}

// Gate is one Clifford instruction.
// A is the qubit (or control for CNot); B is the second qubit of two-qubit gates.
type Gate struct {
	Kind Kind
	A    int
	B    int
}

// H returns Hadamard(q).
func H(q int) Gate { return Gate{Kind: KindHadamard, A: q} }

// S returns Phase(q).
func S(q int) Gate { return Gate{Kind: KindPhase, A: q} }

// CX returns CNot(control, target).
func CX(control, target int) Gate { return Gate{Kind: KindCNot, A: control, B: target} }

// SWAP returns Swap(a, b).
func SWAP(a, b int) Gate { return Gate{Kind: KindSwap, A: a, B: b} }

// Qubits returns the qubits the gate touches.
func (g Gate) Qubits() []int {
	if g.Kind.Arity() == 2 {
		return []int{g.A, g.B}
	}
	return []int{g.A}
}

// Shift returns g with every qubit index moved up by k.
func (g Gate) Shift(k int) Gate {
	g.A += k
	if g.Kind.Arity() == 2 {
		g.B += k
	}
	return g
}

// String renders the gate as Name(args), e.g. CNot(0, 1).
func (g Gate) String() string {
	if g.Kind.Arity() == 2 {
		return fmt.Sprintf("%s(%d, %d)", g.Kind, g.A, g.B)
	}
	return fmt.Sprintf("%s(%d)", g.Kind, g.A)
}

// MarshalText implements encoding.TextMarshaler.
func (g Gate) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gate) UnmarshalText(text []byte) error {
	parsed, err := ParseGate(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

var gateRegex = regexp.MustCompile(`^\s*(\w+)\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\)\s*$`)

// ParseGate reads the Name(args) form produced by Gate.String.
func ParseGate(s string) (Gate, error) {
	m := gateRegex.FindStringSubmatch(s)
	if m == nil {
		return Gate{}, fmt.Errorf("%w: %q", ErrInvalidGate, s)
	}

	var kind Kind
	switch m[1] {
	case "Hadamard":
		kind = KindHadamard
	case "Phase":
		kind = KindPhase
	case "CNot":
		kind = KindCNot
	case "Swap":
		kind = KindSwap
	default:
		return Gate{}, fmt.Errorf("%w: unknown gate %q", ErrInvalidGate, m[1])
	}

	a, err := strconv.Atoi(m[2])
	if err != nil {
		return Gate{}, fmt.Errorf("%w: %v", ErrInvalidGate, err)
	}
	g := Gate{Kind: kind, A: a}

	switch {
	case kind.Arity() == 2 && m[3] == "":
		return Gate{}, fmt.Errorf("%w: %s needs two qubits", ErrInvalidGate, kind)
	case kind.Arity() == 1 && m[3] != "":
		return Gate{}, fmt.Errorf("%w: %s takes one qubit", ErrInvalidGate, kind)
	case kind.Arity() == 2:
		if g.B, err = strconv.Atoi(m[3]); err != nil {
			return Gate{}, fmt.Errorf("%w: %v", ErrInvalidGate, err)
		}
		if g.A == g.B {
			return Gate{}, fmt.Errorf("%w: %s on repeated qubit %d", ErrInvalidGate, kind, g.A)
		}
	}
	return g, nil
}
