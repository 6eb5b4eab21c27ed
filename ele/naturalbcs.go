// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/roj-anbar/PINNs-examples/inp"

// NaturalBc holds information on natural boundary conditions such as
// fluxes acting on edges
type NaturalBc struct {
	Key     string   // key such as g or qb
	IdxFace int      // local index of face
	Fcn     inp.Func // function callback
}

// GetNaturalBcs collects the natural boundary conditions attached to a cell
func GetNaturalBcs(cell *inp.Cell) (nbcs []*NaturalBc) {
	for _, fc := range cell.FaceBcs {
		nbcs = append(nbcs, &NaturalBc{Key: fc.Key, IdxFace: fc.FaceId, Fcn: fc.Func})
	}
	return
}
