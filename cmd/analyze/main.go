// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command analyze compares execution time and memory usage
// measurements collected from several variants of test scripts.
//
// The stats subcommand runs a Shapiro-Wilk normality test per script
// followed by a Friedman test with Nemenyi post-hoc analysis, over
// the initial and the optimized script sets. The plot subcommand
// renders box-plot figures of the same measurements.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Statistical analysis of test-script benchmark measurements",
	Long: `analyze compares execution time and memory usage measurements
collected from several variants of test scripts.

The stats subcommand runs a Shapiro-Wilk normality test per script
followed by a Friedman test with Nemenyi post-hoc analysis. The plot
subcommand renders box-plot figures of the same measurements.`,
	// Usage is suppressed for runtime errors (a malformed CSV is
	// not a usage mistake) and printed explicitly by csvFileArg
	// when the argument itself is wrong.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// csvFileArg validates the single csv-file argument, printing the
// command's usage when it is missing or extra arguments are given.
func csvFileArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return err
	}
	return nil
}

func main() {
	log.SetPrefix("")
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
