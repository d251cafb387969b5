// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat implements the statistical comparison of
// test-script benchmark measurements: a Shapiro-Wilk normality test
// per series, the Friedman repeated-measures test across series, and
// the Nemenyi post-hoc pairwise comparison, together with the
// formatted console reports built on them.
package benchstat

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Significance threshold shared by every test in the pipeline.
const Alpha = 0.05

// IsNormal reports whether a Shapiro-Wilk p-value supports the
// normality hypothesis. The threshold itself counts as not normal.
func IsNormal(p float64) bool {
	return p > Alpha
}

// IsSignificant reports whether a comparison p-value indicates a
// significant difference. The threshold itself counts as not
// significant.
func IsSignificant(p float64) bool {
	return p < Alpha
}

var (
	errSampleTooSmall = errors.New("sample must contain at least 3 values")
	errSampleConstant = errors.New("all sample values are identical")
)

// Polynomial coefficients from Royston's AS R94 (Applied Statistics
// 44, 1995), constant term first.
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -0.0006714}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
)

// ShapiroWilk computes the Shapiro-Wilk W statistic for xs and the
// p-value of the hypothesis that xs was drawn from a normal
// distribution, using Royston's AS R94 approximation. The
// approximation is calibrated for sample sizes between 3 and 5000.
//
// It fails for samples of fewer than 3 values and for constant
// samples, where the statistic is undefined.
func ShapiroWilk(xs []float64) (w, p float64, err error) {
	n := len(xs)
	if n < 3 {
		return 0, 0, errSampleTooSmall
	}

	x := append([]float64(nil), xs...)
	sort.Float64s(x)
	if x[n-1] == x[0] {
		return 0, 0, errSampleConstant
	}

	// Expected normal order statistics (Blom scores) and their
	// squared norm.
	norm := distuv.UnitNormal
	m := make([]float64, n)
	ssm := 0.0
	for i := range m {
		m[i] = norm.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssm += m[i] * m[i]
	}

	a := swWeights(m, ssm, n)

	var mean, num, den float64
	for _, xi := range x {
		mean += xi
	}
	mean /= float64(n)
	for i, xi := range x {
		num += a[i] * xi
		den += (xi - mean) * (xi - mean)
	}
	w = num * num / den
	if w > 1 {
		w = 1
	}

	if n == 3 {
		// Exact small-sample distribution of W.
		const (
			pi6  = 1.90985931710274 // 6/pi
			stqr = 1.04719755119660 // asin(sqrt(3/4))
		)
		p = pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		p = math.Min(math.Max(p, 0), 1)
		return w, p, nil
	}

	// Normalizing transformation of 1-W, then an upper normal
	// tail.
	y := math.Log(1 - w)
	var mu, sigma float64
	if n <= 11 {
		fn := float64(n)
		gamma := -2.273 + 0.459*fn
		if y >= gamma {
			return w, 0, nil
		}
		y = -math.Log(gamma - y)
		mu = polyval(swC3, fn)
		sigma = math.Exp(polyval(swC4, fn))
	} else {
		ln := math.Log(float64(n))
		mu = polyval(swC5, ln)
		sigma = math.Exp(polyval(swC6, ln))
	}
	p = norm.Survival((y - mu) / sigma)
	return w, p, nil
}

// swWeights computes the Shapiro-Wilk weight vector from the expected
// order statistics m with squared norm ssm. The weights are
// antisymmetric around the sample median.
func swWeights(m []float64, ssm float64, n int) []float64 {
	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
		return a
	}

	rsn := math.Sqrt(ssm)
	u := 1 / math.Sqrt(float64(n))
	an := m[n-1]/rsn + polyval(swC1, u)
	a[n-1] = an
	a[0] = -an

	var phi float64
	if n > 5 {
		an1 := m[n-2]/rsn + polyval(swC2, u)
		a[n-2] = an1
		a[1] = -an1
		phi = (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	} else {
		phi = (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	}
	return a
}

// polyval evaluates a polynomial with coefficients c (constant term
// first) at x.
func polyval(c []float64, x float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}
