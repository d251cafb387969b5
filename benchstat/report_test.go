// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassificationBoundaries(t *testing.T) {
	// The threshold itself is classified conservatively on both
	// sides of the pipeline.
	require.False(t, IsNormal(0.05))
	require.True(t, IsNormal(0.0501))
	require.False(t, IsNormal(0.0499))

	require.False(t, IsSignificant(0.05))
	require.True(t, IsSignificant(0.0499))
	require.False(t, IsSignificant(0.0501))
}

func TestWriteShapiroTableOneRowPerSeries(t *testing.T) {
	c := collect(map[string][]float64{
		"FP_JS":  {12.1, 13.4, 11.9, 12.8, 13.0},
		"OOP_JS": {14.2, 15.1, 13.9, 14.6, 14.8},
	}, []string{"FP_JS", "OOP_JS"})

	var buf bytes.Buffer
	require.NoError(t, WriteShapiroTable(&buf, c))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, one row per series
	require.True(t, strings.HasPrefix(lines[0], "Skripta"))
	require.True(t, strings.HasPrefix(lines[2], "FP_JS "))
	require.True(t, strings.HasPrefix(lines[3], "OOP_JS "))
	for _, line := range lines[2:] {
		require.True(t,
			strings.HasSuffix(strings.TrimRight(line, " "), "Da") ||
				strings.HasSuffix(strings.TrimRight(line, " "), "Ne"))
	}
}

func TestWriteShapiroTableDegenerateSeries(t *testing.T) {
	c := collect(map[string][]float64{"FP_JS": {1, 1, 1}}, []string{"FP_JS"})
	var buf bytes.Buffer
	err := WriteShapiroTable(&buf, c)
	require.Error(t, err)
	require.Contains(t, err.Error(), "FP_JS")
}

func TestWriteFriedmanTableNoDifference(t *testing.T) {
	var buf bytes.Buffer
	WriteFriedmanTable(&buf, FriedmanResult{Statistic: 0, P: 1, Groups: 2, Trials: 3})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Friedman p vrijednost"))
	require.True(t, strings.HasPrefix(lines[2], "1 "))
	require.Contains(t, lines[2], "Ne")
}

func TestWritePostHocLegend(t *testing.T) {
	m := &PostHocMatrix{
		Labels: []string{"FP_JS", "OOP_JS"},
		P:      [][]float64{{1, 0.25}, {0.25, 1}},
	}
	var buf bytes.Buffer
	WritePostHoc(&buf, m)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Friedman post hoc\n"))
	require.Contains(t, out, "0 - FP_JS; 1 - OOP_JS; \n")
	require.Contains(t, out, "0.250000")
}

func TestWriteComparisonPropagatesErrors(t *testing.T) {
	c := collect(map[string][]float64{
		"A": {1, 2, 3},
		"B": {1, 2},
	}, []string{"A", "B"})
	var buf bytes.Buffer
	require.Error(t, WriteComparison(&buf, c))
}

func TestReportDeterminism(t *testing.T) {
	c := collect(map[string][]float64{
		"A": {1.2, 2.7, 3.1, 4.9, 5.5},
		"B": {2.3, 3.8, 4.2, 5.9, 6.6},
		"C": {3.1, 4.4, 5.0, 6.8, 7.2},
	}, []string{"A", "B", "C"})

	render := func() string {
		var buf bytes.Buffer
		require.NoError(t, WriteShapiroTable(&buf, c))
		require.NoError(t, WriteComparison(&buf, c))
		return buf.String()
	}
	require.Equal(t, render(), render())
}

func TestWriteSummaryTable(t *testing.T) {
	c := collect(map[string][]float64{"A": {1, 2, 3}}, []string{"A"})
	var buf bytes.Buffer
	WriteSummaryTable(&buf, c)

	out := buf.String()
	require.Contains(t, out, "Prosjek")
	require.Contains(t, out, "2.0000")
	require.Contains(t, out, "1.0000")
	require.Contains(t, out, "3.0000")
}
