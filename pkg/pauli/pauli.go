package pauli

import "fmt"

// Single-qubit Pauli constants.
var (
	I = Pauli{x: false, z: false}
	Z = Pauli{x: false, z: true}
	X = Pauli{x: true, z: false}
	Y = Pauli{x: true, z: true}
)

// Pauli is a single-qubit Pauli in symplectic form.
// The zero value is the identity.
type Pauli struct {
	x bool
	z bool
}

// NewPauli builds a unit from its X and Z bits.
func NewPauli(x, z bool) Pauli {
	return Pauli{x: x, z: z}
}

// X reports whether the X bit is set.
func (p Pauli) X() bool { return p.x }

// Z reports whether the Z bit is set.
func (p Pauli) Z() bool { return p.z }

// Bits returns the (x, z) pair.
func (p Pauli) Bits() (bool, bool) { return p.x, p.z }

// IsIdentity reports whether p is I.
func (p Pauli) IsIdentity() bool { return !p.x && !p.z }

// Hadamard returns H(p): the X and Z bits swapped.
func (p Pauli) Hadamard() Pauli {
	return Pauli{x: p.z, z: p.x}
}

// Phase returns S(p) = (x, x⊕z).
func (p Pauli) Phase() Pauli {
	return Pauli{x: p.x, z: p.x != p.z}
}

// CNot returns the images of a control/target pair under CX(control, target).
// The sign contribution is handled by Operator.ApplyCNot.
func CNot(control, target Pauli) (Pauli, Pauli) {
	return Pauli{x: control.x, z: control.z != target.z},
		Pauli{x: control.x != target.x, z: target.z}
}

// String returns the Pauli letter.
func (p Pauli) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "I"
	}
}

// ParsePauli converts a letter from IXYZ into a unit.
func ParsePauli(r rune) (Pauli, error) {
	switch r {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	}
	return I, fmt.Errorf("%w: %q", ErrInvalidPauli, r)
}

// RandomPauli draws x and z as two independent fair coins.
func RandomPauli(r *RNG) Pauli {
	return Pauli{x: r.Bool(), z: r.Bool()}
}
