// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test elements and FE simulations
package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/roj-anbar/PINNs-examples/ele/diffusion"
	"github.com/roj-anbar/PINNs-examples/fem"
	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Results holds numerical results
type Results struct {
	Note  string        // note about the reference solution
	Kmats [][][]float64 // [ncells][nverts][nverts] element Jacobian matrices; may be shorter than ncells
	U     []float64     // [nverts] u @ vertices
}

// CompareResults performs comparison of results (FE versus .cmp files)
func CompareResults(tst *testing.T, sim *inp.Simulation, cmpfname string, tolK, tolu float64, verbose bool) {

	// FEM structure
	main, err := fem.NewMain(sim, verbose)
	if err != nil {
		tst.Errorf("CompareResults: NewMain failed:\n%v", err)
		return
	}

	// run
	err = main.Run()
	if err != nil {
		tst.Errorf("CompareResults: Run failed:\n%v", err)
		return
	}

	// read file with comparison results
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}

	// unmarshal json
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v", err)
		return
	}
	if verbose {
		io.Pfgreen(". . . %s . . .\n", cmp.Note)
	}

	// check K matrices
	dom := main.Domain
	if verbose {
		io.Pfgreen(". . . checking K matrices . . .\n")
	}
	for eid, Kref := range cmp.Kmats {
		if e, ok := dom.Cid2elem[eid].(*diffusion.Diffusion); ok {
			dom.Kb.Start()
			err = e.AddToKb(dom.Kb, dom.Sol, true)
			if err != nil {
				chk.Panic("CompareResults: AddToKb failed\n")
			}
			chk.Deep2(tst, io.Sf("K%d", eid), tolK, e.K, Kref)
		}
	}

	// check nodal values
	if verbose {
		io.Pfgreen(". . . checking u @ nodes . . .\n")
	}
	chk.IntAssert(len(cmp.U), len(dom.Msh.Verts))
	vals := dom.NodalValues("u")
	for vid, uref := range cmp.U {
		chk.AnaNum(tst, io.Sf("u%d", vid), tolu, vals[vid], uref, verbose)
	}
}

// CheckNodal compares the values of a solution variable @ nodes with a reference function
func CheckNodal(tst *testing.T, dom *fem.Domain, ykey string, tol float64, verbose bool, ref func(x []float64) float64) {
	vals := dom.NodalValues(ykey)
	for _, v := range dom.Msh.Verts {
		chk.AnaNum(tst, io.Sf("%s%d", ykey, v.Id), tol, vals[v.Id], ref(v.C), verbose)
	}
}
