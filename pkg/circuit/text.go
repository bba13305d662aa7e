package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteText writes one gate per line in Name(args) form.
func (c Circuit) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, g := range c.Gates {
		if _, err := fmt.Fprintln(bw, g.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns the same text WriteText produces.
func (c Circuit) String() string {
	var sb strings.Builder
	_ = c.WriteText(&sb)
	return sb.String()
}

// ReadText parses the output of WriteText. Blank lines and lines starting
// with '#' are skipped.
func ReadText(r io.Reader) (Circuit, error) {
	var c Circuit
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := ParseGate(text)
		if err != nil {
			return Circuit{}, fmt.Errorf("line %d: %w", line, err)
		}
		c.Append(g)
	}
	if err := sc.Err(); err != nil {
		return Circuit{}, fmt.Errorf("failed to read circuit: %w", err)
	}
	return c, nil
}
