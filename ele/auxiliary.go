// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"sort"

	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/utl"
)

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// IpsMap holds results @ integration points. key => values @ all ips
type IpsMap map[string][]float64

// Set sets item in map by key and ip-index. The slice is resized with nip in case it's empty
//  Input:
//   idx -- index of integration point
//   nip -- number of integration points (to resize if necessary)
//   val -- value of 'key' @ integration point 'idx'
func (o IpsMap) Set(key string, idx, nip int, val float64) {
	if slice, ok := o[key]; ok && len(slice) == nip {
		slice[idx] = val
		return
	}
	slice := make([]float64, nip)
	slice[idx] = val
	o[key] = slice
}

// Keys returns the sorted keys
func (o IpsMap) Keys() (keys []string) {
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// MinMax returns the range of values corresponding to key
func (o IpsMap) MinMax(key string) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range o[key] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return
}
