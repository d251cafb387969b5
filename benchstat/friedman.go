// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ttomasicc/analysis-fp-oop/benchseries"
)

// FriedmanResult is the outcome of a Friedman repeated-measures test.
type FriedmanResult struct {
	// Statistic is the tie-corrected Friedman chi-square statistic
	// with Groups-1 degrees of freedom.
	Statistic float64

	// P is the probability of a statistic at least this large
	// under the hypothesis that no group differs.
	P float64

	Groups int // number of compared series
	Trials int // number of paired measurements per series
}

var errFewGroups = errors.New("comparison requires at least 2 groups")

// Friedman runs the Friedman test across the series of c. The series
// are treated as repeated measures: measurement i of every series
// belongs to the same trial, so all series must have equal length of
// at least 2.
//
// When every trial is fully tied the statistic carries no
// information; the test reports a statistic of 0 and a p-value of
// exactly 1.
func Friedman(c *benchseries.Collection) (FriedmanResult, error) {
	blocks, k, n, err := aligned(c)
	if err != nil {
		return FriedmanResult{}, err
	}

	rankSums, tieSum := blockRankSums(blocks, k)

	// Tie correction factor; 0 iff every block is fully tied.
	cf := 1 - tieSum/float64(n*k*(k*k-1))
	if cf == 0 {
		return FriedmanResult{Statistic: 0, P: 1, Groups: k, Trials: n}, nil
	}

	ssbn := 0.0
	for _, r := range rankSums {
		ssbn += r * r
	}
	stat := (12/float64(k*n*(k+1))*ssbn - 3*float64(n*(k+1))) / cf

	chi2 := distuv.ChiSquared{K: float64(k - 1)}
	return FriedmanResult{
		Statistic: stat,
		P:         chi2.Survival(stat),
		Groups:    k,
		Trials:    n,
	}, nil
}

// aligned validates c for a repeated-measures comparison and
// transposes it into per-trial blocks: blocks[i][j] is trial i of
// series j.
func aligned(c *benchseries.Collection) (blocks [][]float64, k, n int, err error) {
	series := c.All()
	k = len(series)
	if k < 2 {
		return nil, 0, 0, errFewGroups
	}
	n = len(series[0].Values)
	for _, s := range series {
		if len(s.Values) != n {
			return nil, 0, 0, fmt.Errorf("series %q has %d measurements, want %d", s.Label, len(s.Values), n)
		}
	}
	if n < 2 {
		return nil, 0, 0, fmt.Errorf("comparison requires at least 2 trials per series, got %d", n)
	}

	blocks = make([][]float64, n)
	for i := range blocks {
		row := make([]float64, k)
		for j, s := range series {
			row[j] = s.Values[i]
		}
		blocks[i] = row
	}
	return blocks, k, n, nil
}

// blockRankSums ranks every block and accumulates per-series rank
// sums along with the tie correction term sum(t^3-t) over all tie
// runs of all blocks.
func blockRankSums(blocks [][]float64, k int) (rankSums []float64, tieSum float64) {
	rankSums = make([]float64, k)
	for _, block := range blocks {
		ranks, tie := blockRanks(block)
		tieSum += tie
		for j, r := range ranks {
			rankSums[j] += r
		}
	}
	return rankSums, tieSum
}

// blockRanks ranks one trial's measurements across series, assigning
// average ranks to ties. Ranks are 1-based.
func blockRanks(vals []float64) (ranks []float64, tie float64) {
	k := len(vals)
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	ranks = make([]float64, k)
	for i := 0; i < k; {
		j := i + 1
		for j < k && vals[order[j]] == vals[order[i]] {
			j++
		}
		// Positions i..j-1 share the average of ranks i+1..j.
		avg := float64(i+j+1) / 2
		for _, idx := range order[i:j] {
			ranks[idx] = avg
		}
		t := float64(j - i)
		tie += t*t*t - t
		i = j
	}
	return ranks, tie
}
