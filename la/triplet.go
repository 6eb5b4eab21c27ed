// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la implements the sparse triplet and linear solvers used by the FE assembly
package la

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Triplet holds (i, j, x) entries of a sparse matrix. Repeated (i, j) pairs are summed.
type Triplet struct {
	m, n int       // dimensions
	pos  int       // current position == number of entries put so far
	i    []int     // row indices
	j    []int     // column indices
	x    []float64 // values
}

// Init allocates space for max entries of an m by n matrix
func (o *Triplet) Init(m, n, max int) {
	o.m, o.n, o.pos = m, n, 0
	o.i = make([]int, max)
	o.j = make([]int, max)
	o.x = make([]float64, max)
}

// Start (re)starts the index for inserting items
func (o *Triplet) Start() {
	o.pos = 0
}

// Size returns the dimensions of the matrix
func (o *Triplet) Size() (m, n int) {
	return o.m, o.n
}

// Len returns the number of entries put so far
func (o *Triplet) Len() int {
	return o.pos
}

// Max returns the capacity
func (o *Triplet) Max() int {
	return len(o.x)
}

// Put inserts an entry. It panics when capacity is exceeded or indices are out of range
func (o *Triplet) Put(i, j int, x float64) {
	if o.pos >= len(o.x) {
		chk.Panic("cannot put item because max number of items has been exceeded (pos = %d, max = %d)", o.pos, len(o.x))
	}
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("index (%d,%d) is out of range (%d,%d)", i, j, o.m, o.n)
	}
	o.i[o.pos], o.j[o.pos], o.x[o.pos] = i, j, x
	o.pos++
}

// PutMatAndMatT puts a and its transpose into this matrix at the bottom-left and
// top-right corners, respectively:
//          _      _
//         |  .  aᵀ |
//   this =|        |
//         |_ a  . _|
//
// where a is (nλ × ny) and this is (ny+nλ) × (ny+nλ)
func (o *Triplet) PutMatAndMatT(a *Triplet) {
	ny := o.n - a.m
	if a.n != ny {
		chk.Panic("the number of columns of a (%d) must be equal to %d", a.n, ny)
	}
	for k := 0; k < a.pos; k++ {
		o.Put(ny+a.i[k], a.j[k], a.x[k]) // a
		o.Put(a.j[k], ny+a.i[k], a.x[k]) // aᵀ
	}
}

// ToDense converts this triplet to a dense matrix, summing repeated entries
func (o *Triplet) ToDense() *mat.Dense {
	d := mat.NewDense(o.m, o.n, nil)
	for k := 0; k < o.pos; k++ {
		d.Set(o.i[k], o.j[k], d.At(o.i[k], o.j[k])+o.x[k])
	}
	return d
}

// ToCSR converts this triplet to compressed sparse row format, summing repeated entries.
// Columns within each row are sorted.
func (o *Triplet) ToCSR() *sparse.CSR {

	// merge duplicates
	type key struct{ i, j int }
	sum := make(map[key]float64, o.pos)
	keys := make([]key, 0, o.pos)
	for k := 0; k < o.pos; k++ {
		kk := key{o.i[k], o.j[k]}
		if _, found := sum[kk]; !found {
			keys = append(keys, kk)
		}
		sum[kk] += o.x[k]
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].i == keys[b].i {
			return keys[a].j < keys[b].j
		}
		return keys[a].i < keys[b].i
	})

	// compressed arrays
	ia := make([]int, o.m+1)
	ja := make([]int, len(keys))
	data := make([]float64, len(keys))
	for k, kk := range keys {
		ia[kk.i+1]++
		ja[k] = kk.j
		data[k] = sum[kk]
	}
	for r := 0; r < o.m; r++ {
		ia[r+1] += ia[r]
	}
	return sparse.NewCSR(o.m, o.n, ia, ja, data)
}
