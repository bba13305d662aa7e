package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/clifford/internal/presentation/graph"
	"github.com/aretw0/clifford/internal/presentation/report"
	"github.com/aretw0/clifford/internal/presentation/tui"
	"github.com/aretw0/clifford/pkg/domain"
)

// Formats lists the values accepted by --format.
var Formats = []string{"text", "json", "qasm", "markdown", "mermaid"}

// writeRun prints run in the requested format. color enables ANSI styling
// for the text format; markdown is rendered through glamour only when color
// is on and printed raw otherwise.
func writeRun(w io.Writer, run *domain.Run, format string, color bool) error {
	switch format {
	case "", "text":
		return report.WriteGates(w, run, tui.NewStyler(color))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	case "qasm":
		_, err := io.WriteString(w, run.Circuit.QASM(run.Qubits))
		return err
	case "markdown":
		md := report.Markdown(run)
		if color {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			if md, err = render(md); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, md)
		return err
	case "mermaid":
		_, err := io.WriteString(w, graph.GenerateMermaid(run, nil))
		return err
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
}
