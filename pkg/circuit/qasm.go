package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as an OpenQASM 2.0 program over n qubits.
// When n is smaller than the circuit width the width is used instead.
func (c Circuit) QASM(n int) string {
	n = max(n, c.Width())

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("qreg q[%d];\n", n))
	sb.WriteString("\n")

	for _, g := range c.Gates {
		switch g.Kind {
		case KindHadamard:
			sb.WriteString(fmt.Sprintf("h q[%d];\n", g.A))
		case KindPhase:
			sb.WriteString(fmt.Sprintf("s q[%d];\n", g.A))
		case KindCNot:
			sb.WriteString(fmt.Sprintf("cx q[%d],q[%d];\n", g.A, g.B))
		case KindSwap:
			sb.WriteString(fmt.Sprintf("swap q[%d],q[%d];\n", g.A, g.B))
		}
	}
	return sb.String()
}
