// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/go-cmp/cmp"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. default simulation")

	sim := Default()
	err := sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// derived
	chk.String(tst, sim.Key, "poisson")
	chk.String(tst, sim.DirOut, ".")
	chk.String(tst, sim.Fnpath(".pvd"), "poisson.pvd")
	chk.IntAssert(sim.Ndim, 2)

	// mesh
	io.Pforan("%v\n", sim.Msh)
	chk.Int(tst, "nverts", len(sim.Msh.Verts), 33*33)
	chk.Int(tst, "ncells", len(sim.Msh.Cells), 2*32*32)
	chk.Float64(tst, "xmax", 1e-15, sim.Msh.Xmax, 1.0)
	chk.Float64(tst, "ymax", 1e-15, sim.Msh.Ymax, 0.5)

	// material
	mat := sim.Materials.Get("unit")
	if mat == nil || mat.Dif == nil {
		tst.Errorf("material 'unit' should be available")
		return
	}
	chk.Float64(tst, "k(u)", 1e-15, mat.Dif.Kval(123), 1)

	// functions
	src, err := sim.Functions.Get("source")
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "source", 1e-15, src.F(0, []float64{0.3, 0.1}), -10)

	// natural bcs: all 2*32 + 2*32 boundary edges
	nbcs := 0
	for _, c := range sim.Msh.Cells {
		nbcs += len(c.FaceBcs)
	}
	chk.Int(tst, "number of face bcs", nbcs, 128)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. read YAML")

	os.Setenv("PFEM_TEST_DIROUT", "/tmp/pfem")
	sim, err := ReadSim("data/poisson.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	err = sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// data
	chk.String(tst, sim.Key, "poisson")
	chk.String(tst, sim.DirOut, "/tmp/pfem/results")
	chk.String(tst, sim.Solver.Type, "imp")
	chk.String(tst, sim.LinSol.Name, "lu")
	if !sim.Output.Table || !sim.Output.Pvd {
		tst.Errorf("output flags are incorrect: %+v", sim.Output)
	}

	// defaults are kept for missing entries
	chk.Float64(tst, "eps", 1e-15, sim.Data.Eps, 1e-12)
	chk.Int(tst, "nmaxit", sim.Solver.NmaxIt, 20)
	chk.String(tst, sim.Elem.Mat, "unit")

	// mesh
	chk.Int(tst, "nverts", len(sim.Msh.Verts), 9*5)
	chk.Int(tst, "ncells", len(sim.Msh.Cells), 2*8*4)
	chk.Ints(tst, "cell 0", sim.Msh.Cells[0].Verts, []int{0, 1, 9})

	// essential bcs
	diff := cmp.Diff(sim.EssenBcs, []*BcData{
		{Where: "left", Keys: []string{"u"}, Funcs: []string{"uleft"}},
		{Tag: TagRight, Keys: []string{"u"}, Funcs: []string{"uright"}},
	})
	if diff != "" {
		tst.Errorf("essential bcs mismatch (-want +got):\n%s", diff)
	}

	// natural bcs: 8 bottom edges + 8 top edges
	nbcs := 0
	for _, c := range sim.Msh.Cells {
		for _, fc := range c.FaceBcs {
			nbcs++
			chk.String(tst, fc.Key, "g")
		}
	}
	chk.Int(tst, "number of face bcs", nbcs, 16)

	// linear function
	flux, _ := sim.Functions.Get("flux")
	chk.Float64(tst, "flux", 1e-15, flux.F(0, []float64{0.5, 0.5}), 1.0)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. read JSON and encode")

	sim, err := ReadSim("data/poisson.json")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	err = sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "fromjson")
	chk.String(tst, sim.LinSol.Name, "qr")
	chk.Float64(tst, "eps", 1e-17, sim.Data.Eps, 1e-10)
	chk.Int(tst, "ncells", len(sim.Msh.Cells), 8)
	chk.String(tst, sim.Msh.Cells[0].Type, "qua4")
	K := sim.Materials[0].Dif.Ktensor()
	chk.Array(tst, "K[0]", 1e-15, K[0], []float64{1, 0})
	chk.Array(tst, "K[1]", 1e-15, K[1], []float64{0, 3})

	// encode and decode again
	b, err := sim.Encode()
	if err != nil {
		tst.Errorf("Encode failed:\n%v", err)
		return
	}
	io.Pf("%s\n", b)
	fn := "/tmp/pfem/encoded.sim"
	os.MkdirAll("/tmp/pfem", 0777)
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		tst.Errorf("WriteFile failed:\n%v", err)
		return
	}
	again, err := ReadSim(fn)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	diff := cmp.Diff(sim.Mesh, again.Mesh)
	if diff != "" {
		tst.Errorf("mesh data mismatch (-want +got):\n%s", diff)
	}
	chk.String(tst, again.Data.Key, "fromjson")
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. errors")

	_, err := ReadSim("data/notfound.sim")
	if err == nil {
		tst.Errorf("reading missing file should have failed")
	}
	_, err = ReadSim("data/bad.sim")
	if err == nil {
		tst.Errorf("reading bad file should have failed")
	}

	for i, modify := range []func(o *Simulation){
		func(o *Simulation) { o.Data.Key = "" },
		func(o *Simulation) { o.Data.Eps = 0 },
		func(o *Simulation) { o.Mesh.Nx = 0 },
		func(o *Simulation) { o.Mesh.Type = "hex8" },
		func(o *Simulation) { o.Mesh.Diagonal = "crossed" },
		func(o *Simulation) { o.Mesh.Xmax = -1 },
		func(o *Simulation) { o.Elem.Mat = "steel" },
		func(o *Simulation) { o.Materials[0].Model = "m9" },
		func(o *Simulation) { o.Materials[0].Prms["k"] = -1 },
		func(o *Simulation) { o.Materials = append(o.Materials, o.Materials[0]) },
		func(o *Simulation) { o.Functions = append(o.Functions, o.Functions[0]) },
		func(o *Simulation) { o.Functions[0].Type = "sin" },
		func(o *Simulation) { o.Functions[0].Prms["a"] = 1 },
		func(o *Simulation) { o.EssenBcs[0].Funcs = []string{"unknown"} },
		func(o *Simulation) { o.EssenBcs[0].Keys = []string{"u", "u"} },
		func(o *Simulation) { o.EssenBcs[0].Where = "middle" },
		func(o *Simulation) { o.NatBcs[0].Tag = -99 },
		func(o *Simulation) { o.EleConds[0].Funcs = []string{"unknown"} },
		func(o *Simulation) { o.Solver.NmaxIt = 0 },
		func(o *Simulation) { o.Solver.Atol = 0 },
	} {
		sim := Default()
		modify(sim)
		err = sim.Init()
		if err == nil {
			tst.Errorf("case %d should have failed", i)
			continue
		}
		io.Pforan("case %d: %v\n", i, err)
	}
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
