// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command for the htmidx debug/test console harness.
var RootCmd = &cobra.Command{
	Use:   "htmidx",
	Short: "index a WKT region into HTM trixel ranges",
	Long: `htmidx is the debug/test console harness for the HTM spatial indexer:
it parses a WKT region, runs the adaptive refinement pipeline (or just the
seed cover, with --seed-only), and writes tab-separated lo/hi/full rows to
standard output.`,
}

// Execute runs the root command, exiting with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
