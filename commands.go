// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/roj-anbar/PINNs-examples/ana"
	"github.com/roj-anbar/PINNs-examples/fem"
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/out"

	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// run and compare flags
	table    bool    // write <key>.csv
	summary  bool    // write <key>-summary.yaml
	analytic bool    // compare with the one-dimensional analytical solution
	tol      float64 // maximum absolute error accepted by compare; 0 => no check
)

// runCmd solves one problem
var runCmd = &cobra.Command{
	Use:   "run [file.sim]",
	Short: "Solve the problem in file.sim or the built-in problem",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sim, err := loadSim(args)
		if err != nil {
			return
		}
		analysis, err := solve(sim)
		if err != nil {
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v", analysis.Summary)
		return
	},
}

// compareCmd solves one problem and compares the nodal field with reference values
var compareCmd = &cobra.Command{
	Use:   "compare [REF.csv] [file.sim]",
	Short: "Solve then compare u with reference values (REF.csv) or with the analytical solution",
	Long: `Solve then compare u with reference values.

REF.csv holds one point per row with columns x, y and u (header optional; lines
starting with # are ignored); e.g. the predictions of a neural network. The FE
solution is interpolated at each point. With --analytic, REF.csv is not given and
u is compared at vertices with the one-dimensional solution

  u = ua + (ub-ua) s/L + f s (L-s) / (2k)

which requires constant k and f, constant u at the left and right sides, and
zero flux on all natural boundaries. Other problems are rejected.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if analytic {
			return cobra.MaximumNArgs(1)(cmd, args)
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		// solve
		simargs := args
		if !analytic {
			simargs = args[1:]
		}
		sim, err := loadSim(simargs)
		if err != nil {
			return
		}
		analysis, err := solve(sim)
		if err != nil {
			return
		}
		u := analysis.Domain.NodalValues("u")

		// compare
		var errs *out.Errors
		if analytic {
			var sol *ana.Poisson1d
			sol, err = analyticFromSim(sim)
			if err != nil {
				return
			}
			logger.Debug("analytical solution", zap.String("formula", sol.String()))
			errs, err = out.CompareFunc(sim.Msh, u, func(x []float64) float64 { return sol.Calc(x[0]) })
		} else {
			var refs []*out.RefPoint
			refs, err = out.ReadRefs(args[0])
			if err != nil {
				return
			}
			errs, err = out.Compare(sim.Msh, u, refs)
		}
		if err != nil {
			return
		}

		// report
		logger.Info("comparison",
			zap.Int("npoints", errs.N),
			zap.Float64("max_abs", errs.MaxAbs),
			zap.Float64s("x_max", errs.Xmax),
			zap.Float64("rms", errs.Rms),
			zap.Float64("rel_l2", errs.RelL2),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", errs)
		if tol > 0 && errs.MaxAbs > tol {
			return chk.Err("max|e| = %g is greater than tolerance %g", errs.MaxAbs, tol)
		}
		return
	},
}

// defaultsCmd prints the built-in problem
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in problem as a .sim file (YAML)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		b, err := inp.Default().Encode()
		if err != nil {
			return
		}
		_, err = cmd.OutOrStdout().Write(b)
		return
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().BoolVar(&table, "table", false, "write <key>.csv with x, y and u @ nodes")
		c.Flags().BoolVar(&summary, "summary", false, "write <key>-summary.yaml")
	}
	compareCmd.Flags().BoolVar(&analytic, "analytic", false, "compare with the one-dimensional analytical solution")
	compareCmd.Flags().Float64Var(&tol, "tol", 0, "fail if max|e| is greater than tol; 0 => no check")
}

// loadSim reads the .sim file in args or returns the built-in problem; then applies flags
func loadSim(args []string) (sim *inp.Simulation, err error) {
	if len(args) > 0 {
		sim, err = inp.ReadSim(args[0])
		if err != nil {
			return
		}
	} else {
		sim = inp.Default()
	}
	if dirout != "" {
		sim.Data.DirOut = dirout
	}
	if table {
		sim.Output.Table = true
	}
	if summary {
		sim.Output.Summary = true
	}
	return
}

// solve runs one simulation tagged with a new run id
func solve(sim *inp.Simulation) (analysis *fem.Main, err error) {
	id := uuid.New().String()
	log := logger.With(zap.String("run_id", id), zap.String("key", sim.Data.Key))
	log.Info("starting simulation",
		zap.String("desc", sim.Data.Desc),
		zap.String("solver", sim.Solver.Type),
		zap.String("cell", sim.Mesh.Type),
		zap.Int("nx", sim.Mesh.Nx),
		zap.Int("ny", sim.Mesh.Ny),
	)
	t0 := time.Now()
	analysis, err = fem.NewMain(sim, verbose)
	if err != nil {
		log.Error("cannot allocate simulation", zap.Error(err))
		return nil, err
	}
	err = analysis.Run()
	if err != nil {
		log.Error("simulation failed", zap.Error(err), zap.Duration("elapsed", time.Since(t0)))
		return nil, err
	}
	log.Info("simulation completed",
		zap.Duration("elapsed", time.Since(t0)),
		zap.Int("ny", analysis.Summary.Ny),
		zap.Int("nlam", analysis.Summary.Nlam),
		zap.Int("niter", analysis.Summary.Niter),
		zap.Float64("umin", analysis.Summary.Umin),
		zap.Float64("umax", analysis.Summary.Umax),
		zap.Strings("files", analysis.Summary.Files),
	)
	return
}

// analyticFromSim returns the one-dimensional solution corresponding to an initialised simulation
func analyticFromSim(sim *inp.Simulation) (sol *ana.Poisson1d, err error) {

	// conductivity
	mat := sim.Materials.Get(sim.Elem.Mat)
	K := mat.Dif.Ktensor()
	for _, u := range []float64{-1, 0, 1} {
		if mat.Dif.DkDu(u) != 0 {
			return nil, chk.Err("analytical solution requires constant conductivity")
		}
	}
	k := mat.Dif.Kval(0) * K[0][0]

	// source: constant over the domain
	msh := sim.Msh
	corners := [][]float64{
		{msh.Xmin, msh.Ymin}, {msh.Xmax, msh.Ymin}, {msh.Xmax, msh.Ymax}, {msh.Xmin, msh.Ymax},
	}
	fcorner := make([]float64, len(corners))
	for _, ec := range sim.EleConds {
		for i, key := range ec.Keys {
			if key != "s" {
				continue
			}
			fcn, err := sim.Functions.Get(ec.Funcs[i])
			if err != nil {
				return nil, err
			}
			for j, x := range corners {
				fcorner[j] += fcn.F(0, x)
			}
		}
	}
	f := fcorner[0]
	for j, fc := range fcorner {
		if fc != f {
			return nil, chk.Err("analytical solution requires a constant source. f%v = %g != f%v = %g", corners[0], f, corners[j], fc)
		}
	}

	// natural boundary conditions: zero flux only
	for _, c := range msh.Cells {
		for _, fbc := range c.FaceBcs {
			for _, vid := range msh.EdgeVerts(c, fbc.FaceId) {
				x := msh.Verts[vid].C
				if val := fbc.Func.F(0, x); val != 0 {
					return nil, chk.Err("analytical solution requires zero flux on natural boundaries. %s%v = %g", fbc.Key, x, val)
				}
			}
		}
	}

	// boundary values
	var ua, ub float64
	var hasa, hasb bool
	for _, bc := range sim.EssenBcs {
		left := bc.Tag == inp.TagLeft || (bc.Tag == 0 && bc.Where == "left")
		right := bc.Tag == inp.TagRight || (bc.Tag == 0 && bc.Where == "right")
		if !left && !right {
			return nil, chk.Err("analytical solution requires essential conditions on the left and right sides only")
		}
		for i, key := range bc.Keys {
			if key != "u" {
				continue
			}
			fcn, err := sim.Functions.Get(bc.Funcs[i])
			if err != nil {
				return nil, err
			}
			if left {
				ua, hasa = fcn.F(0, []float64{msh.Xmin, msh.Ymin}), true
			} else {
				ub, hasb = fcn.F(0, []float64{msh.Xmax, msh.Ymin}), true
			}
		}
	}
	if !hasa || !hasb {
		return nil, chk.Err("analytical solution requires u prescribed on the left and right sides")
	}

	// solution
	sol = new(ana.Poisson1d)
	err = sol.Init(k, f, msh.Xmin, msh.Xmax, ua, ub)
	return
}
