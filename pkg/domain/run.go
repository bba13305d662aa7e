package domain

import (
	"time"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/tableau"
)

// RunKind names what produced a run.
type RunKind string

const (
	KindSample       RunKind = "sample"       // Random tableau of n qubits
	KindCanonicalize RunKind = "canonicalize" // Caller-supplied rows
	KindFigure5      RunKind = "figure5"      // Built-in worked example
	KindSweep        RunKind = "sweep"        // A single pair, no sign fix
)

// Run is the persisted outcome of one reduction.
type Run struct {
	// ID identifies the run in stores and URLs.
	ID string `json:"id"`

	Kind RunKind `json:"kind"`

	// Qubits is the register width.
	Qubits int `json:"qubits"`

	// Seed describes the random source, empty for deterministic inputs.
	Seed string `json:"seed,omitempty"`

	// Rows are the input operators in textual form, before any gate.
	Rows []string `json:"rows"`

	// Final holds the rows after the circuit, for single sweeps only.
	Final []string `json:"final,omitempty"`

	Circuit circuit.Circuit `json:"circuit"`

	Rounds []tableau.Round `json:"rounds,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy so stores never share slices with callers.
func (r *Run) Clone() *Run {
	out := *r
	out.Rows = append([]string(nil), r.Rows...)
	out.Final = append([]string(nil), r.Final...)
	out.Circuit = circuit.Circuit{Gates: append([]circuit.Gate(nil), r.Circuit.Gates...)}
	out.Rounds = append([]tableau.Round(nil), r.Rounds...)
	return &out
}
