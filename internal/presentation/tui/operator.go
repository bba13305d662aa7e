package tui

import (
	"os"
	"strings"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/pauli"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Styler colors operators and gates. The zero value, or one built with
// color disabled, returns plain text.
type Styler struct {
	profile termenv.Profile
	enabled bool
}

// NewStyler returns a Styler that colors only when enabled is true.
func NewStyler(enabled bool) Styler {
	if !enabled {
		return Styler{profile: termenv.Ascii}
	}
	return Styler{profile: termenv.ColorProfile(), enabled: true}
}

var unitColors = map[pauli.Pauli]string{
	pauli.X: "#f87171",
	pauli.Y: "#c084fc",
	pauli.Z: "#60a5fa",
}

// Operator renders op with one color per unit letter and a dimmed identity.
func (s Styler) Operator(op pauli.Operator) string {
	if !s.enabled {
		return op.String()
	}

	var sb strings.Builder
	sign := termenv.String(string(op.SignChar())).Bold()
	if op.Sign {
		sign = sign.Foreground(s.profile.Color("#fbbf24"))
	}
	sb.WriteString(sign.String())

	for _, p := range op.Ops {
		letter := termenv.String(p.String())
		if c, ok := unitColors[p]; ok {
			letter = letter.Foreground(s.profile.Color(c))
		} else {
			letter = letter.Faint()
		}
		sb.WriteString(letter.String())
	}
	return sb.String()
}

var gateColors = map[circuit.Kind]string{
	circuit.KindHadamard: "#34d399",
	circuit.KindPhase:    "#fbbf24",
	circuit.KindCNot:     "#60a5fa",
	circuit.KindSwap:     "#f472b6",
}

// Gate renders g with its name colored by kind.
func (s Styler) Gate(g circuit.Gate) string {
	text := g.String()
	if !s.enabled {
		return text
	}
	name, args, _ := strings.Cut(text, "(")
	return termenv.String(name).Foreground(s.profile.Color(gateColors[g.Kind])).String() + "(" + args
}
