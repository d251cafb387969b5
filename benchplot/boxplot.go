// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders box-and-whisker figures of benchmark
// measurements grouped by test script.
package benchplot

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ttomasicc/analysis-fp-oop/benchcsv"
)

// Options selects and decorates one figure.
type Options struct {
	// Attr is the measurement attribute to plot, one of the
	// benchcsv attribute names.
	Attr string

	Title  string
	YLabel string

	// Excluded lists script identifiers to omit from the figure.
	Excluded []string
}

// Figure dimensions, matching the measurement campaign's 8x6 inch
// figures.
const (
	figWidth  = 8 * vg.Inch
	figHeight = 6 * vg.Inch

	boxWidth = 20 // box width in points

	xAxisLabel = "Naziv skripte"
)

// suffixLen is the length of the extension-like suffix stripped from
// script identifiers for axis labels (e.g. ".js"). Identifiers with a
// suffix of a different length get mislabeled; every current script
// identifier carries a 3-character suffix.
const suffixLen = 3

func axisLabel(name string) string {
	if len(name) <= suffixLen {
		return name
	}
	return name[:len(name)-suffixLen]
}

// GroupValues groups the attribute column of t by script identifier
// in lexicographic order, omitting excluded identifiers. The relative
// order of the remaining groups is preserved.
func GroupValues(t *benchcsv.Table, attr string, excluded []string) (names []string, groups [][]float64, err error) {
	if _, ok := (benchcsv.Row{}).Value(attr); !ok {
		return nil, nil, fmt.Errorf("unknown attribute %q", attr)
	}

	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}

	byScript := make(map[string][]float64)
	for _, row := range t.Rows {
		if skip[row.Script] {
			continue
		}
		v, _ := row.Value(attr)
		byScript[row.Script] = append(byScript[row.Script], v)
	}

	names = make([]string, 0, len(byScript))
	for name := range byScript {
		names = append(names, name)
	}
	sort.Strings(names)
	groups = make([][]float64, len(names))
	for i, name := range names {
		groups[i] = byScript[name]
	}
	return names, groups, nil
}

// New builds a box-plot figure of t according to opts, one box per
// remaining script group.
func New(t *benchcsv.Table, opts Options) (*plot.Plot, error) {
	names, groups, err := GroupValues(t, opts.Attr, opts.Excluded)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no script groups to plot for %q", opts.Attr)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for i, vals := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(boxWidth), float64(i), plotter.Values(vals))
		if err != nil {
			return nil, fmt.Errorf("box plot for %s: %w", names[i], err)
		}
		p.Add(b)
	}

	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = axisLabel(name)
	}
	p.NominalX(labels...)
	return p, nil
}

// Save renders the figure described by opts to an image file at path.
// The image format follows the path's extension.
func Save(t *benchcsv.Table, opts Options, path string) error {
	p, err := New(t, opts)
	if err != nil {
		return err
	}
	return p.Save(figWidth, figHeight, path)
}
