// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries partitions benchmark measurements into named
// numeric series, one per test script.
package benchseries

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/ttomasicc/analysis-fp-oop/benchcsv"
)

// A Series is an ordered sequence of measurements of one script. The
// order of Values follows the trial order of the input table.
type Series struct {
	Label  string
	Values []float64
}

// Sample returns the measurements of s as a statistical sample. The
// sample shares the series' backing array; callers that reorder it
// (e.g. via Sort) must copy first, since trial order is significant.
func (s *Series) Sample() stats.Sample {
	return stats.Sample{Xs: s.Values}
}

// A Summary holds descriptive statistics of one series.
type Summary struct {
	N              int
	Mean, Median   float64
	StdDev         float64
	Min, Max       float64
}

// Summary computes descriptive statistics of s.
func (s *Series) Summary() Summary {
	// Sort operates in place; keep the trial order of s intact.
	samp := stats.Sample{Xs: append([]float64(nil), s.Values...)}
	samp.Sort()
	min, max := samp.Bounds()
	return Summary{
		N:      len(s.Values),
		Mean:   samp.Mean(),
		Median: samp.Quantile(0.5),
		StdDev: samp.StdDev(),
		Min:    min,
		Max:    max,
	}
}

// A Collection is an insertion-ordered mapping from script label to
// measurement series.
//
// The zero value of Collection is a usable empty collection.
type Collection struct {
	pos    map[string]int
	series []*Series
}

// Add appends values to the series labeled label, creating the series
// if this is the first time label has been stored. It returns the
// series.
func (c *Collection) Add(label string, values ...float64) *Series {
	i, ok := c.pos[label]
	if !ok {
		if c.pos == nil {
			c.pos = make(map[string]int)
		}
		i = len(c.series)
		c.pos[label] = i
		c.series = append(c.series, &Series{Label: label})
	}
	s := c.series[i]
	s.Values = append(s.Values, values...)
	return s
}

// Get returns the series labeled label, or nil if label is not in the
// collection.
func (c *Collection) Get(label string) *Series {
	i, ok := c.pos[label]
	if !ok {
		return nil
	}
	return c.series[i]
}

// Len returns the number of series in the collection.
func (c *Collection) Len() int {
	return len(c.series)
}

// Labels returns the series labels in insertion order.
func (c *Collection) Labels() []string {
	labels := make([]string, len(c.series))
	for i, s := range c.series {
		labels[i] = s.Label
	}
	return labels
}

// All returns the series in insertion order. The caller must not
// reorder the returned slice.
func (c *Collection) All() []*Series {
	return c.series
}

// EqualLen reports whether every series in the collection has the
// same number of measurements. Aligned series are a precondition of
// the repeated-measures comparison tests.
func (c *Collection) EqualLen() bool {
	if len(c.series) == 0 {
		return true
	}
	for _, s := range c.series[1:] {
		if len(s.Values) != len(c.series[0].Values) {
			return false
		}
	}
	return true
}

// A GroupDef names one extracted series: rows whose script identifier
// equals Script contribute their measurements to the series labeled
// Label.
type GroupDef struct {
	Label  string
	Script string
}

// Extract partitions the attribute column of t into named series
// according to defs, preserving definition order. Rows whose script
// identifier matches no definition are excluded. A definition that
// matches no rows yields an empty series.
func Extract(t *benchcsv.Table, attr string, defs []GroupDef) (*Collection, error) {
	if _, ok := (benchcsv.Row{}).Value(attr); !ok {
		return nil, fmt.Errorf("unknown attribute %q", attr)
	}

	byScript := make(map[string]string, len(defs))
	c := new(Collection)
	for _, def := range defs {
		byScript[def.Script] = def.Label
		c.Add(def.Label)
	}
	for _, row := range t.Rows {
		label, ok := byScript[row.Script]
		if !ok {
			continue
		}
		v, _ := row.Value(attr)
		c.Add(label, v)
	}
	return c, nil
}
