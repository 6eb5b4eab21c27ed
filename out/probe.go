// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/roj-anbar/PINNs-examples/ele"
	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/chk"
)

// Probe returns the value of a nodal field interpolated @ x
//  Input:
//   msh -- the mesh
//   u   -- [nverts] values @ vertices
//   x   -- [ndim] coordinates of point
func Probe(msh *inp.Mesh, u []float64, x []float64) (val float64, err error) {

	// check
	if len(u) != len(msh.Verts) {
		return 0, chk.Err("field must have %d values (one per vertex). %d is invalid", len(msh.Verts), len(u))
	}
	if len(x) != 2 {
		return 0, chk.Err("point must have 2 coordinates. %v is invalid", x)
	}

	// find cell
	r := make([]float64, 2)
	for _, c := range msh.Cells {
		if !inBox(msh, c, x) {
			continue
		}
		xc := ele.BuildCoordsMatrix(c, msh)
		if c.Shp.InvMap(r, x, xc) != nil {
			continue
		}
		if !c.Shp.IsInside(r, TolR) {
			continue
		}

		// interpolate
		c.Shp.Func(c.Shp.S, c.Shp.DSdR, r, false)
		for m, v := range c.Verts {
			val += c.Shp.S[m] * u[v]
		}
		return
	}
	return 0, chk.Err("point (%g,%g) is outside the mesh", x[0], x[1])
}

// inBox tells whether x is inside the bounding box of cell (with tolerance TolC)
func inBox(msh *inp.Mesh, c *inp.Cell, x []float64) bool {
	for i := 0; i < 2; i++ {
		min, max := msh.Verts[c.Verts[0]].C[i], msh.Verts[c.Verts[0]].C[i]
		for _, v := range c.Verts[1:] {
			if msh.Verts[v].C[i] < min {
				min = msh.Verts[v].C[i]
			}
			if msh.Verts[v].C[i] > max {
				max = msh.Verts[v].C[i]
			}
		}
		if x[i] < min-TolC || x[i] > max+TolC {
			return false
		}
	}
	return true
}
