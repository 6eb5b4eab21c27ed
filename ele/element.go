// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import (
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/la"
)

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                        // returns the cell Id
	SetEqs(eqs [][]int) (err error) // set equations

	// conditions (element's)
	SetEleConds(key string, f inp.Func) (err error) // set element conditions; e.g. source

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)                // adds -R to global residual vector fb
	AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb
}

// CanOutputIps defines elements that can output integration points' values
type CanOutputIps interface {
	Id() int                                       // returns the cell Id
	OutIpCoords() [][]float64                      // coordinates of integration points
	OutIpKeys() []string                           // integration points' keys; e.g. "wx", "wy"
	OutIpVals(M IpsMap, sol *Solution) (err error) // integration points' values corresponding to keys
}
