// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"

	"github.com/ttomasicc/analysis-fp-oop/benchseries"
)

// A PostHocMatrix holds the pairwise p-values of a post-hoc
// comparison. P is square and symmetric with 1 on the diagonal;
// row and column order follows Labels.
type PostHocMatrix struct {
	Labels []string
	P      [][]float64
}

// Nemenyi runs the Nemenyi post-hoc test over the series of c,
// producing the pairwise p-value matrix that attributes a significant
// Friedman result to specific group pairs. It shares the Friedman
// test's preconditions: at least 2 series of equal length, with at
// least 2 trials.
//
// For each pair, the absolute mean-rank difference is standardized by
// sqrt(k*(k+1)/(6*n)) and referred, scaled by sqrt(2), to the
// studentized range distribution with infinite degrees of freedom.
func Nemenyi(c *benchseries.Collection) (*PostHocMatrix, error) {
	blocks, k, n, err := aligned(c)
	if err != nil {
		return nil, err
	}

	rankSums, _ := blockRankSums(blocks, k)
	meanRanks := make([]float64, k)
	for j, r := range rankSums {
		meanRanks[j] = r / float64(n)
	}

	se := math.Sqrt(float64(k*(k+1)) / (6 * float64(n)))
	m := &PostHocMatrix{
		Labels: c.Labels(),
		P:      make([][]float64, k),
	}
	for i := range m.P {
		m.P[i] = make([]float64, k)
		m.P[i][i] = 1
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			q := math.Abs(meanRanks[i]-meanRanks[j]) / se * math.Sqrt2
			p := 1 - studentizedRangeCDF(q, k)
			p = math.Min(math.Max(p, 0), 1)
			m.P[i][j] = p
			m.P[j][i] = p
		}
	}
	return m, nil
}
