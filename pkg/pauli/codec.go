package pauli

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse decodes the textual form [+-][IXYZ]+.
func Parse(s string) (Operator, error) {
	if s == "" {
		return Operator{}, ErrEmpty
	}

	var op Operator
	sign, size := utf8.DecodeRuneInString(s)
	switch sign {
	case '+':
	case '-':
		op.Sign = true
	default:
		return Operator{}, fmt.Errorf("%w: %q", ErrInvalidSign, sign)
	}

	body := s[size:]
	if body == "" {
		return Operator{}, fmt.Errorf("%w: no qubits after sign", ErrEmpty)
	}

	op.Ops = make([]Pauli, 0, len(body))
	pos := 1
	for _, r := range body {
		p, err := ParsePauli(r)
		if err != nil {
			return Operator{}, fmt.Errorf("position %d: %w", pos, err)
		}
		op.Ops = append(op.Ops, p)
		pos++
	}
	return op, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Operator {
	op, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return op
}

// ParseAll decodes every string, stopping at the first failure.
func ParseAll(ss []string) ([]Operator, error) {
	ops := make([]Operator, 0, len(ss))
	for i, s := range ss {
		op, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("operator %d (%q): %w", i, s, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// SignChar returns '+' or '-'.
func (o Operator) SignChar() byte {
	if o.Sign {
		return '-'
	}
	return '+'
}

// Pattern returns the unit letters without the sign.
func (o Operator) Pattern() string {
	var sb strings.Builder
	sb.Grow(len(o.Ops))
	for _, p := range o.Ops {
		sb.WriteString(p.String())
	}
	return sb.String()
}

// String returns the textual form accepted by Parse.
func (o Operator) String() string {
	return string(o.SignChar()) + o.Pattern()
}

// Debug returns String followed by the X-bit and Z-bit rows, e.g.
//
//	+XYZ - X X _ | _ Z Z
func (o Operator) Debug() string {
	var sb strings.Builder
	sb.WriteString(o.String())
	sb.WriteString(" - ")
	for _, p := range o.Ops {
		if p.x {
			sb.WriteString("X ")
		} else {
			sb.WriteString("_ ")
		}
	}
	sb.WriteString("| ")
	for _, p := range o.Ops {
		if p.z {
			sb.WriteString("Z ")
		} else {
			sb.WriteString("_ ")
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
