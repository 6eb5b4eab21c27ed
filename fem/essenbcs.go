// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/roj-anbar/PINNs-examples/ele"
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/la"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
)

// EssentialBc holds information about essential bounday conditions such as constrained nodes.
// Lagrange multipliers are used to implement the constraints.
//  In general, essential bcs / constraints are defined by means of:
//
//      A・y = c
//
//  The resulting Kb matrix will then have the following form:
//      _       _
//     |  K  At  | / δy \   / -R - At*λ \
//     |         | |    | = |           |
//     |_ A   0 _| \ δλ /   \  c - A*y  /
//         Kb       δyb          fb
//
type EssentialBc struct {
	Key   string    // key such as 'u'
	Eqs   []int     // equations numbers
	ValsA []float64 // values for matrix A
	Fcn   inp.Func  // function that implements the "c" vector in  A・y = c
	X     []float64 // coordinates where Fcn is evaluated
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs / constraints.
// Each constraint will have a unique Lagrange multiplier index.
type EssentialBcs struct {
	Bcs EbcArray    // active essential bcs / constraints
	A   la.Triplet  // matrix of coefficients 'A'
	Am  *sparse.CSR // compressed form of A matrix
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
	o.Am = nil
}

// Build builds the structures required for assembling A matrix
//  nλ   -- is the number of essential bcs / constraints == number of Lagrange multipliers
//  nnzA -- is the number of non-zeros in matrix 'A'
func (o *EssentialBcs) Build(ny int) (nλ, nnzA int) {

	// skip if there are no constraints
	nλ = len(o.Bcs)
	if nλ == 0 {
		return
	}

	// sort bcs to make sure Lagrange multipliers are always numbered in the same order
	sort.Sort(o.Bcs)

	// count number of non-zeros in matrix A
	for _, bc := range o.Bcs {
		nnzA += len(bc.ValsA)
	}

	// set matrix A
	o.A.Init(nλ, ny, nnzA)
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			o.A.Put(i, eq, bc.ValsA[j])
		}
	}
	o.Am = o.A.ToCSR()
	return
}

// AddToRhs adds the essential bcs / constraints terms to the augmented fb vector
func (o *EssentialBcs) AddToRhs(fb []float64, sol *ele.Solution) {

	// skip if there are no constraints
	if len(o.Bcs) == 0 {
		return
	}

	// assemble -rc = c into fb
	ny := len(sol.Y)
	for i, bc := range o.Bcs {
		fb[ny+i] = bc.Fcn.F(sol.T, bc.X)
	}

	// add -At*λ to fb and -A*y to fb[ny:]
	o.Am.DoNonZero(func(i, j int, v float64) {
		fb[j] -= v * sol.L[i]
		fb[ny+i] -= v * sol.Y[j]
	})
}

// Set sets a single-point constraint for each node, replacing existent ones
//  key -- Dof key such as "u"
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn inp.Func) (err error) {
	if len(nodes) == 0 {
		return chk.Err("cannot set essential boundary condition %q without nodes", key)
	}
	for _, nod := range nodes {
		if nod == nil {
			continue
		}
		d := nod.GetDof(key)
		if d == nil {
			return chk.Err("cannot set essential boundary condition because node %d does not have dof %q", nod.Vert.Id, key)
		}
		o.set_eqs(key, []int{d.Eq}, []float64{1}, fcn, nod.Vert.C)
	}
	return
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "x", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25s%25.13f\n", bc.Eqs[0], bc.Key, io.Sf("(%g,%g)", bc.X[0], bc.X[1]), bc.Fcn.F(t, bc.X))
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_eqs sets/replace constraint and equations
func (o *EssentialBcs) set_eqs(key string, eqs []int, valsA []float64, fcn inp.Func, x []float64) {

	// replace existent
	for _, eq := range eqs {
		for _, bc := range o.Bcs {
			for _, eqOld := range bc.Eqs {
				if eqOld == eq {
					bc.Key, bc.Eqs, bc.ValsA, bc.Fcn, bc.X = key, eqs, valsA, fcn, x
					return
				}
			}
		}
	}

	// add new
	o.Bcs = append(o.Bcs, &EssentialBc{key, eqs, valsA, fcn, x})
}

// functions to implement Sort interface
func (o EbcArray) Len() int      { return len(o) }
func (o EbcArray) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool {
	sort.Ints(o[i].Eqs)
	sort.Ints(o[j].Eqs)
	return o[i].Eqs[0] < o[j].Eqs[0]
}
