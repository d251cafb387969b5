// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the CSV measurement format produced by the
// test-script benchmark harness.
//
// Each record carries the identifier of the script that was measured,
// the wall-clock time the run took and the memory it occupied. The
// reader is structured as a streaming operation modeled on
// bufio.Scanner, with a ReadTable convenience for loading a whole file
// into memory at once.
package benchcsv

import "sort"

// Column names required in the input header. Additional columns are
// ignored.
const (
	AttrTimeTaken   = "time_taken"
	AttrMemoryUsage = "memory_usage"

	scriptColumn = "script"
)

// A Row is a single benchmark measurement of one script run.
type Row struct {
	// Script is the identifier of the measured script, including
	// its extension-like suffix (e.g. "FP_JS.js").
	Script string

	// TimeTaken is the execution time of the run, in milliseconds.
	TimeTaken float64

	// MemoryUsage is the memory occupied by the run, in bytes.
	MemoryUsage float64
}

// Value returns the measurement of r selected by the attribute name,
// which must be one of AttrTimeTaken or AttrMemoryUsage. It reports
// false for any other attribute.
func (r Row) Value(attr string) (float64, bool) {
	switch attr {
	case AttrTimeTaken:
		return r.TimeTaken, true
	case AttrMemoryUsage:
		return r.MemoryUsage, true
	}
	return 0, false
}

// A Table is a fully loaded measurement file.
type Table struct {
	Rows []Row
}

// Scripts returns the distinct script identifiers present in t, in
// lexicographic order.
func (t *Table) Scripts() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.Rows {
		if !seen[r.Script] {
			seen[r.Script] = true
			names = append(names, r.Script)
		}
	}
	sort.Strings(names)
	return names
}
