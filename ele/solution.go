// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//        / y \
//  yb =  |   |   with   y = {u @ all nodes}
//        \ λ / (nyb x 1)
//
type Solution struct {
	T  float64   // current time (pseudo-time for steady problems)
	Y  []float64 // DOFs (solution variables); e.g. y = {u}
	ΔY []float64 // total increment (for nonlinear solver)
	L  []float64 // Lagrange multipliers
}

// NewSolution allocates a solution with ny dofs and nlag Lagrange multipliers
func NewSolution(ny, nlag int) *Solution {
	return &Solution{
		Y:  make([]float64, ny),
		ΔY: make([]float64, ny),
		L:  make([]float64, nlag),
	}
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
	for i := 0; i < len(o.L); i++ {
		o.L[i] = 0
	}
}
