// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestStudentizedRangeCDFTwoGroups(t *testing.T) {
	// For two groups the studentized range reduces to the absolute
	// difference of two standard normals: F(q; 2) = 2*Phi(q/sqrt2)-1.
	for _, q := range []float64{0.5, 1, 2, 2.7718, 4} {
		got := studentizedRangeCDF(q, 2)
		want := 2*distuv.UnitNormal.CDF(q/math.Sqrt2) - 1
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("F(%v; 2) = %v, want %v", q, got, want)
		}
	}
}

func TestStudentizedRangeCDFCriticalValues(t *testing.T) {
	// Upper 5% points of the studentized range with infinite
	// degrees of freedom, from Tukey's tables.
	tests := []struct {
		k int
		q float64
	}{
		{2, 2.7718},
		{3, 3.3145},
		{4, 3.6332},
		{5, 3.8577},
	}
	for _, test := range tests {
		got := studentizedRangeCDF(test.q, test.k)
		if math.Abs(got-0.95) > 2e-3 {
			t.Errorf("F(%v; %d) = %v, want ~0.95", test.q, test.k, got)
		}
	}
}

func TestStudentizedRangeCDFBounds(t *testing.T) {
	if got := studentizedRangeCDF(0, 3); got != 0 {
		t.Errorf("F(0; 3) = %v, want 0", got)
	}
	if got := studentizedRangeCDF(-1, 3); got != 0 {
		t.Errorf("F(-1; 3) = %v, want 0", got)
	}
	if got := studentizedRangeCDF(50, 3); math.Abs(got-1) > 1e-9 {
		t.Errorf("F(50; 3) = %v, want ~1", got)
	}
	// Monotone in q.
	prev := 0.0
	for q := 0.5; q < 8; q += 0.5 {
		cur := studentizedRangeCDF(q, 4)
		if cur < prev {
			t.Fatalf("F not monotone at q=%v: %v < %v", q, cur, prev)
		}
		prev = cur
	}
}

func TestNemenyiIdenticalGroups(t *testing.T) {
	c := collect(map[string][]float64{
		"A": {1, 2, 3},
		"B": {1, 2, 3},
		"C": {1, 2, 3},
	}, []string{"A", "B", "C"})
	m, err := Nemenyi(c)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range m.P {
		for j, p := range row {
			if p != 1 {
				t.Errorf("p[%d][%d] = %v, want 1", i, j, p)
			}
		}
	}
}

func TestNemenyiPerfectOrdering(t *testing.T) {
	c := collect(map[string][]float64{
		"A": {1, 2, 3, 4, 5},
		"B": {2, 3, 4, 5, 6},
		"C": {3, 4, 5, 6, 7},
	}, []string{"A", "B", "C"})
	m, err := Nemenyi(c)
	if err != nil {
		t.Fatal(err)
	}

	if got := m.Labels; len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Fatalf("labels = %v, want [A B C]", got)
	}
	for i := range m.P {
		if m.P[i][i] != 1 {
			t.Errorf("diagonal p[%d][%d] = %v, want 1", i, i, m.P[i][i])
		}
		for j := range m.P {
			if m.P[i][j] != m.P[j][i] {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
			if m.P[i][j] < 0 || m.P[i][j] > 1 {
				t.Errorf("p[%d][%d] = %v out of [0, 1]", i, j, m.P[i][j])
			}
		}
	}

	// The extreme pair differs by two full mean ranks; the
	// adjacent pairs by one. The post-hoc must separate the
	// extreme pair at the 5% level and order the p-values
	// accordingly.
	if !IsSignificant(m.P[0][2]) {
		t.Errorf("p[0][2] = %v, want significant", m.P[0][2])
	}
	if m.P[0][1] <= m.P[0][2] {
		t.Errorf("adjacent pair p %v not larger than extreme pair p %v", m.P[0][1], m.P[0][2])
	}
}

func TestNemenyiSharesFriedmanPreconditions(t *testing.T) {
	c := collect(map[string][]float64{"A": {1, 2, 3}}, []string{"A"})
	if _, err := Nemenyi(c); err == nil {
		t.Error("expected error for a single group")
	}
	c = collect(map[string][]float64{
		"A": {1, 2, 3},
		"B": {1, 2},
	}, []string{"A", "B"})
	if _, err := Nemenyi(c); err == nil {
		t.Error("expected error for mismatched series lengths")
	}
}
