// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"

	"github.com/ttomasicc/analysis-fp-oop/benchseries"
)

// Report labels. The reports are localized the way the measurement
// campaign documented them.
const (
	labelYes = "Da"
	labelNo  = "Ne"
)

func normalityLabel(p float64) string {
	if IsNormal(p) {
		return labelYes
	}
	return labelNo
}

func significanceLabel(p float64) string {
	if IsSignificant(p) {
		return labelYes
	}
	return labelNo
}

// WriteShapiroTable computes the Shapiro-Wilk test for every series of
// c and writes a fixed-width table with one row per series, in
// collection order. A series that defeats the test (too small or
// constant) fails the whole report.
func WriteShapiroTable(w io.Writer, c *benchseries.Collection) error {
	fmt.Fprintf(w, "%-10s %-30s %-10s\n", "Skripta", "Shapiro-Wilk p vrijednost", "Normalna distribucija")
	fmt.Fprintf(w, "%-10s %-30s %-10s\n", "-------", "-------------------------", "---------------------")
	for _, s := range c.All() {
		_, p, err := ShapiroWilk(s.Values)
		if err != nil {
			return fmt.Errorf("shapiro-wilk for %s: %w", s.Label, err)
		}
		fmt.Fprintf(w, "%-10s %-30v %-10s\n", s.Label, p, normalityLabel(p))
	}
	return nil
}

// WriteFriedmanTable writes the fixed-width significance table for a
// Friedman test result.
func WriteFriedmanTable(w io.Writer, res FriedmanResult) {
	fmt.Fprintf(w, "%-30s %-10s\n", "Friedman p vrijednost", "Postoji razlika u barem jednoj grupi")
	fmt.Fprintf(w, "%-30s %-10s\n", "---------------------", "------------------------------------")
	fmt.Fprintf(w, "%-30v %-10s\n", res.P, significanceLabel(res.P))
}

// WritePostHoc writes the post-hoc pairwise p-value matrix preceded
// by a legend mapping matrix indices to series labels.
func WritePostHoc(w io.Writer, m *PostHocMatrix) {
	fmt.Fprintln(w, "Friedman post hoc")
	for i, label := range m.Labels {
		fmt.Fprintf(w, "%d - %s; ", i, label)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-4s", "")
	for j := range m.Labels {
		fmt.Fprintf(w, "%-10d", j)
	}
	fmt.Fprintln(w)
	for i, row := range m.P {
		fmt.Fprintf(w, "%-4d", i)
		for _, p := range row {
			fmt.Fprintf(w, "%-10.6f", p)
		}
		fmt.Fprintln(w)
	}
}

// WriteComparison runs the Friedman test over c followed by the
// Nemenyi post-hoc test and writes both reports.
func WriteComparison(w io.Writer, c *benchseries.Collection) error {
	res, err := Friedman(c)
	if err != nil {
		return fmt.Errorf("friedman test: %w", err)
	}
	WriteFriedmanTable(w, res)
	fmt.Fprintln(w)

	m, err := Nemenyi(c)
	if err != nil {
		return fmt.Errorf("nemenyi post-hoc test: %w", err)
	}
	WritePostHoc(w, m)
	return nil
}

// WriteSummaryTable writes descriptive statistics for every series of
// c, in collection order.
func WriteSummaryTable(w io.Writer, c *benchseries.Collection) {
	fmt.Fprintf(w, "%-14s %-6s %-14s %-14s %-14s %-14s %-14s\n",
		"Skripta", "N", "Prosjek", "Medijan", "St. dev.", "Min", "Maks")
	for _, s := range c.All() {
		sum := s.Summary()
		fmt.Fprintf(w, "%-14s %-6d %-14.4f %-14.4f %-14.4f %-14.4f %-14.4f\n",
			s.Label, sum.N, sum.Mean, sum.Median, sum.StdDev, sum.Min, sum.Max)
	}
}
