// Package report formats runs for people: markdown for the terminal and
// plain text for pipes.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/clifford/internal/presentation/graph"
	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
)

// Markdown renders a run as a markdown document: summary, input rows,
// per-round gate counts, the circuit and a Mermaid diagram.
func Markdown(run *domain.Run) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Clifford run `%s`\n\n", run.ID)

	sb.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Kind | %s |\n", run.Kind)
	fmt.Fprintf(&sb, "| Qubits | %d |\n", run.Qubits)
	fmt.Fprintf(&sb, "| Gates | %d |\n", run.Circuit.Len())
	if run.Seed != "" {
		fmt.Fprintf(&sb, "| Seed | `%s` |\n", run.Seed)
	}
	if !run.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, "| Created | %s |\n", run.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	}

	sb.WriteString("\n## Rows\n\n")
	for i, r := range run.Rows {
		fmt.Fprintf(&sb, "%d. `%s`", i, r)
		if len(run.Final) == len(run.Rows) {
			fmt.Fprintf(&sb, " → `%s`", run.Final[i])
		}
		sb.WriteString("\n")
	}

	if len(run.Rounds) > 0 {
		sb.WriteString("\n## Rounds\n\n")
		sb.WriteString("| Qubit | Gates | Hadamard | Phase | CNot | Swap | Redraws |\n")
		sb.WriteString("|---|---|---|---|---|---|---|\n")
		for _, r := range run.Rounds {
			gates := run.Circuit.Slice(r.Start, r.End)
			counts := gates.Counts()
			fmt.Fprintf(&sb, "| %d | %d | %d | %d | %d | %d | %d |\n",
				r.Qubit, gates.Len(),
				counts[circuit.KindHadamard], counts[circuit.KindPhase],
				counts[circuit.KindCNot], counts[circuit.KindSwap],
				r.Rejections)
		}
	}

	sb.WriteString("\n## Circuit\n\n```\n")
	sb.WriteString(run.Circuit.String())
	sb.WriteString("```\n")

	sb.WriteString("\n## Diagram\n\n```mermaid\n")
	sb.WriteString(graph.GenerateMermaid(run, nil))
	sb.WriteString("```\n")

	return sb.String()
}

// Styler colors gates for terminal output.
type Styler interface {
	Gate(g circuit.Gate) string
}

// WriteGates writes one gate per line, styled by s.
func WriteGates(w io.Writer, run *domain.Run, s Styler) error {
	for _, g := range run.Circuit.Gates {
		if _, err := fmt.Fprintln(w, s.Gate(g)); err != nil {
			return err
		}
	}
	return nil
}
