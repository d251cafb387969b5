// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts benchmark measurement units.
//
// The harness records memory usage in bytes, while the reports and
// figures present it in binary megabytes.
package benchunit

// BytesPerMegabyte is the size of one binary megabyte.
const BytesPerMegabyte = 1 << 20

// BytesToMegabytes converts a byte count to binary megabytes.
func BytesToMegabytes(b float64) float64 {
	return b / BytesPerMegabyte
}

// ToMegabytes returns a copy of xs with every byte count converted to
// binary megabytes.
func ToMegabytes(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = BytesToMegabytes(x)
	}
	return out
}
