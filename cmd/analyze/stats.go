// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttomasicc/analysis-fp-oop/benchcsv"
	"github.com/ttomasicc/analysis-fp-oop/benchseries"
	"github.com/ttomasicc/analysis-fp-oop/benchstat"
)

// Script sets under comparison. Labels are the identifiers with the
// extension suffix dropped.
var (
	initialScripts = []benchseries.GroupDef{
		{Label: "FP_JS", Script: "FP_JS.js"},
		{Label: "FP_TS", Script: "FP_TS.js"},
		{Label: "OOP_JS", Script: "OOP_JS.js"},
		{Label: "OOP_TS", Script: "OOP_TS.js"},
	}
	optimizedScripts = []benchseries.GroupDef{
		{Label: "FP_JS", Script: "FP_JS.js"},
		{Label: "OOP_JS", Script: "OOP_JS.js"},
		{Label: "OOP_STRING_JS", Script: "OOP_STRING_JS.js"},
	}
)

var withSummary bool

var statsCmd = &cobra.Command{
	Use:   "stats <csv-file>",
	Short: "Shapiro-Wilk, Friedman and Nemenyi analysis of the measurements",
	Args:  csvFileArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := benchcsv.ReadFile(args[0])
		if err != nil {
			return err
		}
		return writeStats(os.Stdout, table)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&withSummary, "summary", false, "include descriptive statistics per script")
	rootCmd.AddCommand(statsCmd)
}

// writeStats writes the full statistical report: the initial script
// set followed by the optimized one, each analyzed for time and
// memory.
func writeStats(w io.Writer, table *benchcsv.Table) error {
	fmt.Fprintln(w, "-- INICIJALNO --")
	fmt.Fprintln(w)
	if err := writeScriptSet(w, table, initialScripts); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- OPTIMIZIRANO --")
	fmt.Fprintln(w)
	return writeScriptSet(w, table, optimizedScripts)
}

// writeScriptSet analyzes one script set: time complexity first,
// memory second, separated the way the measurement campaign formatted
// its reports.
func writeScriptSet(w io.Writer, table *benchcsv.Table, defs []benchseries.GroupDef) error {
	times, err := benchseries.Extract(table, benchcsv.AttrTimeTaken, defs)
	if err != nil {
		return err
	}
	memory, err := benchseries.Extract(table, benchcsv.AttrMemoryUsage, defs)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Vremenska slozenost")
	fmt.Fprintln(w, "---")
	if err := writeTests(w, times); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- --- --- --- --- --- ---")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Prostorna slozenost")
	fmt.Fprintln(w, "---")
	return writeTests(w, memory)
}

// writeTests writes the two-stage test report for one collection:
// per-series normality, then the cross-series comparison with its
// post-hoc matrix.
func writeTests(w io.Writer, c *benchseries.Collection) error {
	if withSummary {
		benchstat.WriteSummaryTable(w, c)
		fmt.Fprintln(w)
	}
	if err := benchstat.WriteShapiroTable(w, c); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return benchstat.WriteComparison(w, c)
}
