// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// Integration domain and node count for the studentized range CDF.
// The standard normal density is numerically zero beyond |z| = 8, and
// the integrand is smooth, so a fixed Gauss-Legendre rule converges
// well past float64 precision at this size.
const (
	sturngBound = 8.0
	sturngNodes = 200
)

// studentizedRangeCDF returns P(Q <= q) for the studentized range
// distribution of k groups with infinite degrees of freedom:
//
//	F(q; k) = k * integral phi(z) * (Phi(z) - Phi(z-q))^(k-1) dz
//
// This is the reference distribution of the Nemenyi post-hoc test
// following a Friedman test, where the rank variance is known rather
// than estimated.
func studentizedRangeCDF(q float64, k int) float64 {
	if q <= 0 {
		return 0
	}
	norm := distuv.UnitNormal
	f := func(z float64) float64 {
		return norm.Prob(z) * math.Pow(norm.CDF(z)-norm.CDF(z-q), float64(k-1))
	}
	v := float64(k) * quad.Fixed(f, -sturngBound, sturngBound, sturngNodes, quad.Legendre{}, 0)
	return math.Min(math.Max(v, 0), 1)
}
