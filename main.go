// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pfem solves the steady diffusion (Poisson) equation on rectangles with the finite element method
package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// global flags
	verbose bool   // show solver messages and debug logs
	dirout  string // overrides data.dirout

	// logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pfem",
	Short: "pfem - steady diffusion (Poisson) solver using the finite element method",
	Long: `pfem solves  -div(k grad u) = f  on rectangles meshed with tri3 or qua4 cells.

Essential conditions are imposed with Lagrange multipliers. Results are written in
VTK (.pvd/.vtu) format and optionally as a CSV table of nodal values.

Without a .sim file the built-in problem is solved:
  k=1, f=-10 on [0,1]x[0,0.5]; u=0.2 @ x=0 and u=1 @ x=1; zero flux elsewhere.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show solver messages and debug logs")
	rootCmd.PersistentFlags().StringVarP(&dirout, "dirout", "d", "", "directory for output files (default: data.dirout)")
	rootCmd.AddCommand(runCmd, compareCmd, defaultsCmd)
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(2)
		}
	}()

	// run command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
