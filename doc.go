/*
Package clifford samples uniformly random Clifford circuits and canonicalizes
anticommuting Pauli operator pairs.

It follows van den Berg, "A simple method for sampling random Clifford
operators" (2021): draw n anticommuting Pauli pairs of shrinking length, then
sweep each pair onto X and Z of one qubit. The gates emitted by the sweeps,
concatenated, form the sampled circuit.

# Concept

Pauli operators live in the symplectic representation (pkg/pauli): every
qubit is an (x, z) bit pair, with a separate sign bit. Gates (pkg/circuit)
update those bits by conjugation. pkg/sweep reduces one pair and pkg/tableau
drives the sweep over all pairs.

The Sampler in this package ties those together with a random source,
lifecycle hooks and an optional run store.

# Usage

	s := clifford.New(clifford.WithSeed(7))

	run, err := s.Sample(ctx, 3)
	if err != nil {
		log.Fatal(err)
	}
	for _, g := range run.Circuit.Gates {
		fmt.Println(g)
	}

Canonicalize takes explicit rows instead of random ones, and Figure5 runs the
worked example from the paper.
*/
package clifford
