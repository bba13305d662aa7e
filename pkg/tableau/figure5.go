package tableau

import "github.com/aretw0/clifford/pkg/pauli"

// Figure5Rows is the worked example from figure 5 of van den Berg,
// "A simple method for sampling random Clifford operators" (2021).
var Figure5Rows = []string{
	"+XYYX", "+YYYX",
	"+IZI", "+YYI",
	"+IX", "+IZ",
	"+Z", "+X",
}

// Figure5 returns a tableau over Figure5Rows.
func Figure5() *Tableau {
	ops, err := pauli.ParseAll(Figure5Rows)
	if err != nil {
		panic(err)
	}
	t, err := New(ops)
	if err != nil {
		panic(err)
	}
	return t
}
