/*
Package pauli implements the symplectic (GF(2)) representation of Pauli operators.

A single-qubit Pauli is a pair of bits (x, z):

	(0,0) = I   (0,1) = Z   (1,0) = X   (1,1) = Y

An Operator is an ordered sequence of such units plus one sign bit, and
represents the n-qubit Pauli string sign · P₀ ⊗ P₁ ⊗ … ⊗ Pₙ₋₁.

# Conjugation

The Clifford generators act on operators by conjugation. The bit-level
transforms (Pauli.Hadamard, Pauli.Phase, CNot) are linear over GF(2); the
Operator methods additionally keep the sign bit exact:

  - H: X ↔ Z, Y → −Y
  - S: X → Y, Y → −X, Z → Z
  - CX: the Aaronson–Gottesman phase rule xa·zb·(xb ⊕ za ⊕ 1)

Mismatched lengths, out-of-range indices and similar precondition violations
panic. Malformed text handed to Parse returns an error.

# Randomness

There is no package-level generator. Sampling functions take an *RNG, which
wraps any math/rand/v2 Source so tests can pin a seed.
*/
package pauli
