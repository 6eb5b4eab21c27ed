// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/roj-anbar/PINNs-examples/la"
)

// DebugKb_t defines a function to debug the global Jacobian matrix
type DebugKb_t func(d *Domain, it int)

// Solver implements the actual solver
type Solver interface {
	Run(verbose bool, dbgKb DebugKb_t) (err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(dom *Domain, sum *Summary) Solver)

// SolverNames returns the sorted names of all available solvers
func SolverNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// largest returns the largest absolute component of v
func largest(v []float64) (max float64) {
	for _, x := range v {
		max = math.Max(max, math.Abs(x))
	}
	return
}

// linsysResid returns max|Kb・x - b| by means of the compressed form of Kb
func linsysResid(Kb *la.Triplet, x, b []float64) (res float64, nnz int) {
	csr := Kb.ToCSR()
	r := make([]float64, len(b))
	copy(r, b)
	csr.DoNonZero(func(i, j int, v float64) {
		r[i] -= v * x[j]
	})
	return largest(r), csr.NNZ()
}
