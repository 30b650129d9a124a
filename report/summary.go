// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/simgraph/components"
)

// FewGroupedPercent is the grouped share below which a summary is flagged.
const FewGroupedPercent = 5.0

// Summary holds the aggregate figures of one grouping run.
type Summary struct {
	Total         int     // vertices
	Edges         int     // similar pairs
	Components    int     // all components, singletons included
	Groups        int     // components with two or more members
	Isolated      int     // vertices in singleton components
	Grouped       int     // vertices in non-trivial components
	IsolatedPct   float64 // Isolated / Total · 100
	GroupedPct    float64 // 100 − IsolatedPct
	MeanGroupSize float64 // over non-trivial components; 0 when none
	MaxGroupSize  int
}

// Summarize computes a Summary for p and its edge count.
func Summarize(p *components.Partition, edges int) Summary {
	s := Summary{
		Total:      p.Vertices(),
		Edges:      edges,
		Components: p.Len(),
		Isolated:   len(p.Isolated()),
		Grouped:    p.Grouped(),
	}
	if s.Total > 0 {
		s.IsolatedPct = float64(s.Isolated) * 100 / float64(s.Total)
		s.GroupedPct = 100 - s.IsolatedPct
	}

	groups := p.NonTrivial()
	s.Groups = len(groups)
	if s.Groups > 0 {
		sizes := make([]float64, s.Groups)
		for k, g := range groups {
			sizes[k] = float64(len(g))
		}
		s.MeanGroupSize = stat.Mean(sizes, nil)
		s.MaxGroupSize = int(floats.Max(sizes))
	}

	return s
}

// FewGrouped reports whether fewer than FewGroupedPercent of the vertices were grouped.
func (s Summary) FewGrouped() bool { return s.GroupedPct < FewGroupedPercent }

// WriteSummary prints s in the console report layout.
func WriteSummary(w io.Writer, s Summary) error {
	ew := &errWriter{w: w}
	ew.printf("Total number of vertices = %d\n", s.Total)
	ew.printf("Number of isolated vertices = %d\n", s.Isolated)
	ew.printf("Number of connections (edges) = %d\n", s.Edges)
	ew.printf("Number of connected components (groups) = %d\n", s.Components)
	ew.printf("The percentage of isolated vertices = %.2f%%\n", s.IsolatedPct)
	ew.printf("The percentage of grouped vertices = %.2f%%\n", s.GroupedPct)
	if s.Groups > 0 {
		ew.printf("Mean group size = %.2f, largest group = %d\n", s.MeanGroupSize, s.MaxGroupSize)
	}
	if s.FewGrouped() {
		ew.printf("Very few grouped vertices\n")
	}

	return ew.err
}

// WriteComponents lists every component with two or more members, keeping
// the component's index in p, and its share of all vertices.
func WriteComponents(w io.Writer, p *components.Partition) error {
	ew := &errWriter{w: w}
	ew.printf("Connected components with more than one vertex:\n")
	total := float64(p.Vertices())
	for k, comp := range p.Components() {
		if len(comp) < 2 {
			continue
		}
		ew.printf("- component #%d (%.2f%%): %v\n", k, float64(len(comp))*100/total, comp)
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
