// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Implicit solves nonlinear problems with the Newton-Raphson method. Convergence is
// achieved when
//
//   max|δy| < atol + rtol・max|y|
//
type Implicit struct {
	dom *Domain  // domain
	sum *Summary // summary
}

// add solver to factory
func init() {
	allocators["imp"] = func(dom *Domain, sum *Summary) Solver {
		return &Implicit{dom, sum}
	}
}

// Run runs the solver
func (o *Implicit) Run(verbose bool, dbgKb DebugKb_t) (err error) {

	// control
	d := o.dom
	atol, rtol := d.Sim.Solver.Atol, d.Sim.Solver.Rtol
	if o.sum != nil {
		o.sum.Resids = nil
	}
	if verbose || d.Sim.Solver.ShowR {
		io.Pf("%13s%23s%23s\n", "it", "max|fb|", "max|δy|")
	}

	// iterations
	for it := 0; it < d.Sim.Solver.NmaxIt; it++ {

		// assemble Jacobian and right-hand side
		err = d.assemble(true, it == 0)
		if err != nil {
			return
		}
		if dbgKb != nil {
			dbgKb(d, it)
		}
		largFb := largest(d.Fb)

		// solve for δyb
		err = d.solve()
		if err != nil {
			return chk.Err("iteration %d:\n%v", it, err)
		}
		largδY := largest(d.Wb[:d.Ny])
		largY := largest(d.Sol.Y)

		// message and summary
		if verbose || d.Sim.Solver.ShowR {
			io.Pf("%13d%23.15e%23.15e\n", it, largFb, largδY)
		}
		if o.sum != nil {
			o.sum.Niter = it + 1
			o.sum.Resids = append(o.sum.Resids, largFb)
		}

		// converged?
		if largδY < atol+rtol*largY {
			if o.sum != nil {
				o.sum.LinResid, o.sum.NnzKb = linsysResid(d.Kb, d.Wb, d.Fb)
			}
			return
		}
	}
	return chk.Err("Newton-Raphson did not converge after %d iterations", d.Sim.Solver.NmaxIt)
}
