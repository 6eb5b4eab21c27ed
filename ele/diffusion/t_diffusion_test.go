// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"testing"

	"github.com/roj-anbar/PINNs-examples/ele"
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/la"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// unitSquare returns an initialised simulation with one cell over [0,1] x [0,1]
func unitSquare(tst *testing.T, ctype string, modify func(sim *inp.Simulation)) *inp.Simulation {
	sim := inp.Default()
	sim.Mesh = inp.MeshData{Xmin: 0, Ymin: 0, Xmax: 1, Ymax: 1, Nx: 1, Ny: 1, Type: ctype, Diagonal: "right"}
	if modify != nil {
		modify(sim)
	}
	err := sim.Init()
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	return sim
}

// allocate allocates the element of cell 0 with trivial equation numbers
func allocate(tst *testing.T, sim *inp.Simulation, cid int) *Diffusion {
	cell := sim.Msh.Cells[cid]
	e, err := ele.New(cell, sim)
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	eqs := make([][]int, len(cell.Verts))
	for m, v := range cell.Verts {
		eqs[m] = []int{v}
	}
	err = e.SetEqs(eqs)
	if err != nil {
		tst.Fatalf("SetEqs failed:\n%v", err)
	}
	return e.(*Diffusion)
}

func Test_diffusion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diffusion01. info and stiffness of unit square")

	sim := unitSquare(tst, "qua4", nil)
	cell := sim.Msh.Cells[0]

	// check info
	infofcn := ele.GetInfoFunc("diffusion")
	info := infofcn(sim, cell, &sim.Elem)
	chk.IntAssert(len(info.Dofs), 4)
	for _, dof := range info.Dofs {
		chk.Strings(tst, "dofs", dof, []string{"u"})
	}
	chk.Int(tst, "nnzk", info.Nnzk, 16)

	// check element: counter-clockwise local vertices of cell 0 are 0, 1, 3 and 2
	e := allocate(tst, sim, 0)
	chk.Ints(tst, "verts", cell.Verts, []int{0, 1, 3, 2})
	chk.Ints(tst, "Umap", e.Umap, cell.Verts)
	chk.Int(tst, "number of natural bcs", len(e.NatBcs), 4)

	// stiffness
	sol := ele.NewSolution(4, 0)
	var Kb la.Triplet
	Kb.Init(4, 4, 16)
	err := e.AddToKb(&Kb, sol, true)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}
	K := Kb.ToDense()

	// global order: (0,0), (1,0), (0,1) and (1,1)
	Kref := [][]float64{
		{+4.0 / 6.0, -1.0 / 6.0, -1.0 / 6.0, -2.0 / 6.0},
		{-1.0 / 6.0, +4.0 / 6.0, -2.0 / 6.0, -1.0 / 6.0},
		{-1.0 / 6.0, -2.0 / 6.0, +4.0 / 6.0, -1.0 / 6.0},
		{-2.0 / 6.0, -1.0 / 6.0, -1.0 / 6.0, +4.0 / 6.0},
	}
	for i := 0; i < 4; i++ {
		chk.Array(tst, io.Sf("K[%d]", i), 1e-14, K.RawRowView(i), Kref[i])
	}

	// local order
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			chk.Float64(tst, io.Sf("e.K[%d][%d]", m, n), 1e-14, e.K[m][n], Kref[cell.Verts[m]][cell.Verts[n]])
		}
	}
}

func Test_diffusion02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diffusion02. source and fluxes")

	for _, key := range []string{"g", "qb"} {
		sim := unitSquare(tst, "qua4", func(sim *inp.Simulation) {
			sim.Functions = append(sim.Functions, &inp.FuncData{Name: "two", Type: "cte", Prms: map[string]float64{"c": 2}})
			sim.NatBcs = []*inp.BcData{{Where: "top", Keys: []string{key}, Funcs: []string{"two"}}}
		})
		e := allocate(tst, sim, 0)
		err := e.SetEleConds("s", &inp.Cte{C: -10})
		if err != nil {
			tst.Errorf("SetEleConds failed:\n%v", err)
			return
		}

		// u = 0 => fb = ∫ S s + ∫ Sf g
		sol := ele.NewSolution(4, 0)
		fb := make([]float64, 4)
		err = e.AddToRhs(fb, sol)
		if err != nil {
			tst.Errorf("AddToRhs failed:\n%v", err)
			return
		}
		io.Pforan("%s: fb = %v\n", key, fb)
		if key == "g" {
			chk.Array(tst, "fb", 1e-14, fb, []float64{-2.5, -2.5, -1.5, -1.5})
		} else {
			chk.Array(tst, "fb", 1e-14, fb, []float64{-2.5, -2.5, -3.5, -3.5})
		}
	}
}

func Test_diffusion03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diffusion03. consistent Jacobian of nonlinear model")

	for _, ctype := range []string{"tri3", "qua4"} {
		sim := unitSquare(tst, ctype, func(sim *inp.Simulation) {
			sim.Materials[0].Prms = map[string]float64{"a1": 0.5, "a2": 0.1, "kx": 1.0, "ky": 2.0}
		})
		e := allocate(tst, sim, 0)
		err := e.SetEleConds("s", &inp.Cte{C: 3})
		if err != nil {
			tst.Errorf("SetEleConds failed:\n%v", err)
			return
		}

		// state
		ny := len(sim.Msh.Verts)
		sol := ele.NewSolution(ny, 0)
		for i := 0; i < ny; i++ {
			sol.Y[i] = 0.3 + 0.2*float64(i)
		}

		// analytical Jacobian
		var Kb la.Triplet
		Kb.Init(ny, ny, 16)
		err = e.AddToKb(&Kb, sol, true)
		if err != nil {
			tst.Errorf("AddToKb failed:\n%v", err)
			return
		}
		K := Kb.ToDense()

		// numerical Jacobian: K = dR/du = -dfb/du
		h := 1e-6
		fp := make([]float64, ny)
		fm := make([]float64, ny)
		for _, n := range e.Umap {
			for i := 0; i < ny; i++ {
				fp[i], fm[i] = 0, 0
			}
			sol.Y[n] += h
			err = e.AddToRhs(fp, sol)
			if err != nil {
				tst.Errorf("AddToRhs failed:\n%v", err)
				return
			}
			sol.Y[n] -= 2 * h
			err = e.AddToRhs(fm, sol)
			if err != nil {
				tst.Errorf("AddToRhs failed:\n%v", err)
				return
			}
			sol.Y[n] += h
			for _, m := range e.Umap {
				knum := -(fp[m] - fm[m]) / (2 * h)
				chk.Float64(tst, io.Sf("%s: K[%d][%d]", ctype, m, n), 1e-7, K.At(m, n), knum)
			}
		}
	}
}

func Test_diffusion04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diffusion04. fluxes @ ips and errors")

	sim := unitSquare(tst, "qua4", nil)
	e := allocate(tst, sim, 0)

	// u = 2 x => w = {-2, 0}
	sol := ele.NewSolution(4, 0)
	for _, v := range sim.Msh.Verts {
		sol.Y[v.Id] = 2 * v.C[0]
	}
	M := make(ele.IpsMap)
	err := e.OutIpVals(M, sol)
	if err != nil {
		tst.Errorf("OutIpVals failed:\n%v", err)
		return
	}
	chk.Strings(tst, "keys", M.Keys(), []string{"wx", "wy"})
	chk.Array(tst, "wx", 1e-14, M["wx"], []float64{-2, -2, -2, -2})
	chk.Array(tst, "wy", 1e-14, M["wy"], []float64{0, 0, 0, 0})
	chk.Int(tst, "number of ip coords", len(e.OutIpCoords()), 4)

	// errors
	if e.SetEleConds("qb", &inp.Zero) == nil {
		tst.Errorf("SetEleConds with qb should have failed")
	}
	if e.SetEqs([][]int{{0}, {1}}) == nil {
		tst.Errorf("SetEqs with 2 equation sets should have failed")
	}
	sim.NatBcs[0].Keys = []string{"seepH"}
	err = sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	_, err = ele.New(sim.Msh.Cells[0], sim)
	if err == nil {
		tst.Errorf("New with seepH natural bc should have failed")
	}
	io.Pforan("err = %v\n", err)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
