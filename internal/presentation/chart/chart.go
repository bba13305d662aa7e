// Package chart renders gate statistics of sampled runs as an HTML page.
package chart

import (
	"fmt"
	"io"
	"slices"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Summary aggregates gate statistics over a set of runs.
type Summary struct {
	Runs       int
	Qubits     int
	ByKind     map[circuit.Kind]int
	Lengths    []int // circuit length of each run
	Rejections []int // redraws of each round, over all runs
}

// Summarize collects statistics from runs. Qubits is the widest register seen.
func Summarize(runs []*domain.Run) Summary {
	s := Summary{ByKind: make(map[circuit.Kind]int)}
	for _, run := range runs {
		s.Runs++
		s.Qubits = max(s.Qubits, run.Qubits)
		for k, n := range run.Circuit.Counts() {
			s.ByKind[k] += n
		}
		s.Lengths = append(s.Lengths, run.Circuit.Len())
		for _, r := range run.Rounds {
			s.Rejections = append(s.Rejections, r.Rejections)
		}
	}
	return s
}

// MeanLength returns the average circuit length, or 0 without runs.
func (s Summary) MeanLength() float64 {
	if len(s.Lengths) == 0 {
		return 0
	}
	total := 0
	for _, l := range s.Lengths {
		total += l
	}
	return float64(total) / float64(len(s.Lengths))
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

// histogram counts values per distinct value, returning sorted labels.
func histogram(values []int) ([]string, []int) {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	labels := make([]string, len(keys))
	out := make([]int, len(keys))
	for i, k := range keys {
		labels[i] = fmt.Sprintf("%d", k)
		out[i] = counts[k]
	}
	return labels, out
}

func newBar(title, subtitle string, labels []string, series string, values []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries(series, toBarItems(values)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// Render writes an HTML page with gate-kind totals, the circuit length
// histogram and the redraw histogram.
func Render(w io.Writer, s Summary) error {
	subtitle := fmt.Sprintf("runs=%d, qubits=%d, mean gates=%.1f", s.Runs, s.Qubits, s.MeanLength())

	kinds := make([]string, len(circuit.Kinds))
	totals := make([]int, len(circuit.Kinds))
	for i, k := range circuit.Kinds {
		kinds[i] = k.String()
		totals[i] = s.ByKind[k]
	}

	page := components.NewPage()
	page.AddCharts(newBar("Gates by kind", subtitle, kinds, "gates", totals))

	labels, counts := histogram(s.Lengths)
	page.AddCharts(newBar("Circuit length", subtitle, labels, "runs", counts))

	labels, counts = histogram(s.Rejections)
	page.AddCharts(newBar("Commuting pairs redrawn per round", subtitle, labels, "rounds", counts))

	return page.Render(w)
}
