// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ttomasicc/analysis-fp-oop/benchcsv"
	"github.com/ttomasicc/analysis-fp-oop/benchplot"
	"github.com/ttomasicc/analysis-fp-oop/benchunit"
)

type figure struct {
	file string
	opts benchplot.Options
}

// The four figures of the measurement campaign. The initial figures
// keep only the script pair the campaign compared directly; the
// optimized ones keep the three JavaScript variants.
var figures = []figure{
	{"initial_time.png", benchplot.Options{
		Attr:     benchcsv.AttrTimeTaken,
		Title:    "Vremena izvođenja testnih skripta",
		YLabel:   "Vrijeme izvođenja (ms)",
		Excluded: []string{"OOP_STRING_JS.js", "FP_TS.js", "FP_JS.js"},
	}},
	{"initial_memory.png", benchplot.Options{
		Attr:     benchcsv.AttrMemoryUsage,
		Title:    "Zauzeća radne memorije testnih skripta",
		YLabel:   "Zauzeće radne memorije (MB)",
		Excluded: []string{"OOP_STRING_JS.js", "FP_TS.js", "FP_JS.js"},
	}},
	{"optimized_time.png", benchplot.Options{
		Attr:     benchcsv.AttrTimeTaken,
		Title:    "Vremena izvođenja FP, OOP i OOP (bez Date) JS testnih skripta",
		YLabel:   "Vrijeme izvođenja (ms)",
		Excluded: []string{"FP_TS.js", "OOP_TS.js"},
	}},
	{"optimized_memory.png", benchplot.Options{
		Attr:     benchcsv.AttrMemoryUsage,
		Title:    "Zauzeća radne memorije FP, OOP i OOP (bez Date) JS testnih skripta",
		YLabel:   "Zauzeće radne memorije (MB)",
		Excluded: []string{"FP_TS.js", "OOP_TS.js"},
	}},
}

var plotOut string

var plotCmd = &cobra.Command{
	Use:   "plot <csv-file>",
	Short: "Render box-plot figures of the measurements",
	Args:  csvFileArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := benchcsv.ReadFile(args[0])
		if err != nil {
			return err
		}
		// The harness records memory in bytes; the figures
		// present megabytes.
		for i := range table.Rows {
			table.Rows[i].MemoryUsage = benchunit.BytesToMegabytes(table.Rows[i].MemoryUsage)
		}

		if err := os.MkdirAll(plotOut, 0o777); err != nil {
			return err
		}
		for _, fig := range figures {
			path := filepath.Join(plotOut, fig.file)
			if err := benchplot.Save(table, fig.opts, path); err != nil {
				return fmt.Errorf("rendering %s: %w", fig.file, err)
			}
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", ".", "directory for rendered figures")
	rootCmd.AddCommand(plotCmd)
}
