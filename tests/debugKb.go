// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/roj-anbar/PINNs-examples/ele/diffusion"
	"github.com/roj-anbar/PINNs-examples/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Kb helps on checking Kb matrices
type Kb struct {

	// input (must)
	Tst          *testing.T // testing structure
	Eid          int        // element id
	Tol          float64    // tolerance to compare K's
	Step         float64    // step for finite differences method
	Verb         bool       // verbose: show results
	ItMin, ItMax int        // limits to consider test; -1 means all iterations

	// derived
	it     int       // current iteration
	Ncalls int       // number of checked iterations
	Fbtmp  []float64 // auxiliary array
	Ybkp   []float64 // auxiliary array
}

// Diffusion defines a global function to debug Kb for diffusion elements
func Diffusion(main *fem.Main, o *Kb) {
	main.DebugKb = func(d *fem.Domain, it int) {

		elem := d.Elems[o.Eid]
		if e, ok := elem.(*diffusion.Diffusion); ok {

			// skip?
			o.it = it
			if o.skip() {
				return
			}

			// backup and restore upon exit
			o.aux_backup(d)
			defer func() { o.aux_restore(d) }()

			// check
			o.check("Kuu", d, e, e.Umap, e.K, o.Tol)
			o.Ncalls++
		} else {
			io.Pfred("warning: Eid=%d does not correspond to Diffusion element\n", o.Eid)
		}
	}
}

// skip skips test based on it
func (o *Kb) skip() bool {
	if o.ItMin >= 0 {
		if o.it < o.ItMin {
			return true // skip
		}
	}
	if o.ItMax >= 0 {
		if o.it > o.ItMax {
			return true // skip
		}
	}
	if o.Verb {
		io.PfYel("\nit=%2d\n", o.it)
	}
	return false
}

// aux_backup generates auxiliary arrays and saves current state
func (o *Kb) aux_backup(d *fem.Domain) {
	o.Fbtmp = make([]float64, d.Nyb)
	o.Ybkp = make([]float64, d.Ny)
	copy(o.Ybkp, d.Sol.Y)
}

// aux_restore restores state
func (o *Kb) aux_restore(d *fem.Domain) {
	copy(d.Sol.Y, o.Ybkp)
}

// check performs the checking of Kb using central differences
func (o *Kb) check(label string, d *fem.Domain, e *diffusion.Diffusion, Umap []int, Kana [][]float64, tol float64) {
	if o.Step < 1e-14 {
		o.Step = 1e-6
	}
	resid := func(I, J int, x float64) (res float64) {
		tmp := d.Sol.Y[J]
		d.Sol.Y[J] = x
		for k := range o.Fbtmp {
			o.Fbtmp[k] = 0
		}
		err := e.AddToRhs(o.Fbtmp, d.Sol)
		if err != nil {
			chk.Panic("testing: check: AddToRhs failed:\n%v", err)
		}
		d.Sol.Y[J] = tmp
		return -o.Fbtmp[I]
	}
	for i, I := range Umap {
		for j, J := range Umap {
			y := d.Sol.Y[J]
			dnum := (resid(I, J, y+o.Step) - resid(I, J, y-o.Step)) / (2.0 * o.Step)
			chk.AnaNum(o.Tst, io.Sf(label+"%3d%3d", i, j), tol, Kana[i][j], dnum, o.Verb)
		}
	}
}
