package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the clifford banner with the version underneath.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"       _ _  __  __               _ ", "#818cf8"},
		{"   ___| (_)/ _|/ _| ___  _ __ __| |", "#a78bfa"},
		{"  / __| | | |_| |_ / _ \\| '__/ _` |", "#c084fc"},
		{" | (__| | |  _|  _| (_) | | | (_| |", "#e879f9"},
		{"  \\___|_|_|_| |_|  \\___/|_|  \\__,_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
