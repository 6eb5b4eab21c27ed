// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// LinearImplicit solves linear problems with one assembly and one linear solve
type LinearImplicit struct {
	dom *Domain  // domain
	sum *Summary // summary
}

// add solver to factory
func init() {
	allocators["lin-imp"] = func(dom *Domain, sum *Summary) Solver {
		return &LinearImplicit{dom, sum}
	}
}

// Run runs the solver
func (o *LinearImplicit) Run(verbose bool, dbgKb DebugKb_t) (err error) {

	// assemble
	d := o.dom
	err = d.assemble(true, true)
	if err != nil {
		return
	}
	if dbgKb != nil {
		dbgKb(d, 0)
	}
	largFb := largest(d.Fb)

	// solve
	err = d.solve()
	if err != nil {
		return
	}
	linres, nnz := linsysResid(d.Kb, d.Wb, d.Fb)

	// residual after update
	err = d.assemble(false, false)
	if err != nil {
		return
	}
	if verbose {
		io.Pf(">> max|fb| = %23.15e  =>  %23.15e   max|Kb・δyb - fb| = %g\n", largFb, largest(d.Fb), linres)
	}

	// summary
	if o.sum != nil {
		o.sum.Niter = 1
		o.sum.NnzKb = nnz
		o.sum.LinResid = linres
		o.sum.Resids = []float64{largFb, largest(d.Fb)}
	}
	return
}
