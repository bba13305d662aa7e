package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
)

// Overlay marks rounds to emphasize on the diagram.
type Overlay struct {
	// Highlight lists qubit indices whose rounds are drawn with the
	// highlight class.
	Highlight []int
}

// GenerateMermaid produces a Mermaid flowchart for a run: one node per
// round, labeled with the row pair it reduced, and one edge per round
// labeled with the gates it emitted.
//
// Shapes:
// - Input / output: ((Circle))
// - Round: [Rectangle]
// - Round that redrew commuting pairs: [[Subroutine]]
func GenerateMermaid(run *domain.Run, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString("    input((\"input\"))\n")

	prev := "input"
	for _, r := range run.Rounds {
		id := fmt.Sprintf("q%d", r.Qubit)

		opener, closer := "[", "]"
		if r.Rejections > 0 {
			opener, closer = "[[", "]]"
		}

		label := fmt.Sprintf("qubit %d", r.Qubit)
		if pair := rowPair(run, r.Qubit); pair != "" {
			label += " <br/> " + pair
		}
		if r.Rejections > 0 {
			label += fmt.Sprintf(" <br/> %d redraws", r.Rejections)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

		gates := run.Circuit.Slice(r.Start, r.End)
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", prev, edgeLabel(gates), id))
		prev = id
	}

	sb.WriteString("    output((\"output\"))\n")
	sb.WriteString(fmt.Sprintf("    %s --> output\n", prev))

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text stays readable on light fills in both themes.
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		seen := make(map[int]bool)
		for _, q := range overlay.Highlight {
			if seen[q] || q < 0 || q >= len(run.Rounds) {
				continue
			}
			seen[q] = true
			sb.WriteString(fmt.Sprintf("    class q%d highlight;\n", q))
		}
	}

	return sb.String()
}

func rowPair(run *domain.Run, k int) string {
	if run.Kind == domain.KindSweep {
		if len(run.Rows) == 2 {
			return run.Rows[0] + ", " + run.Rows[1]
		}
		return ""
	}
	if 2*k+1 >= len(run.Rows) {
		return ""
	}
	return run.Rows[2*k] + ", " + run.Rows[2*k+1]
}

func edgeLabel(c circuit.Circuit) string {
	if c.Len() == 0 {
		return "no gates"
	}
	counts := c.Counts()
	parts := make([]string, 0, len(circuit.Kinds))
	for _, k := range circuit.Kinds {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s×%d", k, n))
		}
	}
	return strings.Join(parts, " ")
}
