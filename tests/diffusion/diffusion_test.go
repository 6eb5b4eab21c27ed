// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/roj-anbar/PINNs-examples/ana"
	"github.com/roj-anbar/PINNs-examples/fem"
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/out"
	"github.com/roj-anbar/PINNs-examples/tests"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_diffu01(tst *testing.T) {

	/* Poisson equation on 2 x 1 mesh
	 *
	 *        Nodes                Equations
	 *
	 *     3-----4-----5         3-----2-----5
	 *     |   / |   / |         |   / |   / |
	 *     |  /  |  /  |         |  /  |  /  |
	 *     | /   | /   |         | /   | /   |
	 *     0-----1-----2         0-----1-----4
	 */

	//tests.Verbose()
	chk.PrintTitle("diffu01. Poisson equation 01. Check DOFs and compare with reference")

	// input data
	sim := inp.Default()
	sim.Data.DirOut = "/tmp/pfem/tests"
	sim.Output.Pvd = false
	sim.Mesh.Nx, sim.Mesh.Ny = 2, 1

	// start simulation
	main, err := fem.NewMain(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}

	// set stage
	err = main.SetStage()
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}

	// initialise solution vectors
	err = main.ZeroStage()
	if err != nil {
		tst.Errorf("ZeroStage failed:\n%v", err)
		return
	}

	// check equations
	dom := main.Domain
	nids, eqs := tests.GetNidsEqs(dom)
	chk.Ints(tst, "nids", nids, []int{0, 1, 4, 3, 2, 5})
	chk.Ints(tst, "eqs", eqs, []int{0, 1, 2, 3, 4, 5})

	// check solution arrays
	ny := 6
	nλ := 4
	nyb := ny + nλ
	chk.IntAssert(len(dom.Sol.Y), ny)
	chk.IntAssert(len(dom.Sol.ΔY), ny)
	chk.IntAssert(len(dom.Sol.L), nλ)
	chk.IntAssert(len(dom.Fb), nyb)
	chk.IntAssert(len(dom.Wb), nyb)

	// check constraints
	chk.IntAssert(len(dom.EssenBcs.Bcs), nλ)
	m, n := dom.EssenBcs.A.Size()
	chk.IntAssert(m, nλ)
	chk.IntAssert(n, ny)
	chk.IntAssert(dom.EssenBcs.Am.NNZ(), nλ)

	// run and compare with reference
	sim = inp.Default()
	sim.Data.DirOut = "/tmp/pfem/tests"
	sim.Output.Pvd = false
	sim.Mesh.Nx, sim.Mesh.Ny = 2, 1
	tests.CompareResults(tst, sim, "data/poisson2x1.cmp", 1e-14, 1e-13, chk.Verbose)
}

func Test_diffu02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("diffu02. Example file: analytical solution, probes and table")

	// run
	sim, err := inp.ReadSim("../../examples/poisson/poisson.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	sim.Data.DirOut = "/tmp/pfem/tests"
	main, err := fem.NewMain(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// analytical solution
	var sol ana.Poisson1d
	sol.Init(1, -10, 0, 1, 0.2, 1)
	tests.CheckNodal(tst, main.Domain, "u", 1e-9, chk.Verbose, func(x []float64) float64 {
		return sol.Calc(x[0])
	})

	// probe @ vertices
	u := main.Domain.NodalValues("u")
	for _, x := range [][]float64{{0.5, 0.25}, {0.25, 0.125}, {0, 0}, {1, 0.5}} {
		val, err := out.Probe(sim.Msh, u, x)
		if err != nil {
			tst.Errorf("Probe failed:\n%v", err)
			return
		}
		chk.AnaNum(tst, io.Sf("u(%g,%g)", x[0], x[1]), 1e-9, val, sol.Calc(x[0]), chk.Verbose)
	}

	// table written by the simulation compared with analytical solution
	refs, err := out.ReadRefs(sim.Fnpath(".csv"))
	if err != nil {
		tst.Errorf("ReadRefs failed:\n%v", err)
		return
	}
	chk.IntAssert(len(refs), 1089)
	for _, ref := range refs {
		ref.U = sol.Calc(ref.X[0])
	}
	errs, err := out.Compare(sim.Msh, u, refs)
	if err != nil {
		tst.Errorf("Compare failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", errs)
	if errs.MaxAbs > 1e-9 {
		tst.Errorf("max error is too large: %g", errs.MaxAbs)
	}
}

func Test_diffu03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("diffu03. Nonlinear conductivity. Check Kb with finite differences")

	// input data: k = 1 + u/2 + u²/10
	sim := inp.Default()
	sim.Data.DirOut = "/tmp/pfem/tests"
	sim.Output.Pvd = false
	sim.Mesh.Nx, sim.Mesh.Ny = 6, 3
	sim.Mesh.Type = "qua4"
	sim.Materials[0].Prms = map[string]float64{"a1": 0.5, "a2": 0.1, "kx": 1, "ky": 2}
	sim.Solver.Type = "imp"
	sim.Solver.ShowR = chk.Verbose

	// allocate
	main, err := fem.NewMain(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}

	// debug Kb of an interior element
	dbg := &tests.Kb{
		Tst:   tst,
		Eid:   7,
		Tol:   1e-7,
		Step:  1e-6,
		Verb:  chk.Verbose,
		ItMin: 1,
		ItMax: -1,
	}
	tests.Diffusion(main, dbg)

	// run
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if dbg.Ncalls < 1 {
		tst.Errorf("Kb should have been checked at least once")
	}
	io.Pforan("niter = %d\n", main.Summary.Niter)

	// fluxes @ integration points
	ipvals, err := main.Domain.IpValues()
	if err != nil {
		tst.Errorf("IpValues failed:\n%v", err)
		return
	}
	for _, w := range ipvals["wx"] {
		if math.IsNaN(w) {
			tst.Errorf("flux must not be NaN")
			return
		}
	}
	chk.Float64(tst, "u(0)", 1e-12, main.Domain.NodalValues("u")[0], 0.2)
}

func Test_diffu04(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("diffu04. Exponential conductivity. Kirchhoff transformation")

	// input data: k = exp(β u) and no source
	β := 0.5
	sim := inp.Default()
	sim.Data.DirOut = "/tmp/pfem/tests"
	sim.Output.Pvd = false
	sim.Mesh.Nx, sim.Mesh.Ny = 32, 2
	sim.Materials = inp.MatDb{{Name: "expo", Model: "m2", Prms: map[string]float64{"beta": β}}}
	sim.Elem.Mat = "expo"
	sim.EleConds = nil
	sim.Solver.Type = "imp"

	// run
	main, err := fem.NewMain(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// φ = (exp(β u) - 1) / β varies linearly with x
	φ := func(u float64) float64 { return (math.Exp(β*u) - 1.0) / β }
	φa, φb := φ(0.2), φ(1.0)
	tests.CheckNodal(tst, main.Domain, "u", 1e-4, chk.Verbose, func(x []float64) float64 {
		return math.Log(1.0+β*(φa+(φb-φa)*x[0])) / β
	})
}
