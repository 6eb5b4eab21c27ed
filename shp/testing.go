// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckShapeFace checks that face shape functions evaluate to 1.0 @ face nodes
// and that the face coordinates map onto the element vertices
func CheckShapeFace(tst *testing.T, shape *Shape, x [][]float64, tol float64, verbose bool) {

	// skip 1D shapes
	nfaces := len(shape.FaceLocalVerts)
	if nfaces == 0 {
		return
	}

	// loop over faces
	errX := 0.0
	for k := 0; k < nfaces; k++ {
		fverts := shape.FaceLocalVerts[k]
		fnat := factory[shape.FaceType].NatCoords
		for i, m := range fverts {
			y := shape.FaceIpRealCoords(x, Ipoint{fnat[0][i], 0, 0, 0}, k)
			if verbose {
				io.Pforan("face %d: vertex %d: y = %v\n", k, m, y)
			}
			for j := 0; j < len(x); j++ {
				errX += math.Abs(y[j] - x[j][m])
			}
		}
	}

	// error
	if errX > tol {
		tst.Errorf("%s: face coordinates failed with err = %g\n", shape.Type, errX)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures using central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)
	ana := make([][]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		ana[m] = append([]float64{}, shape.DSdR[m]...)
	}

	// numerical
	h := 1e-6
	rr := append([]float64{}, r...)
	fp := make([]float64, shape.Nverts)
	fm := make([]float64, shape.Nverts)
	for j := 0; j < shape.Gndim; j++ {
		rr[j] = r[j] + h
		shape.Func(fp, nil, rr, false)
		rr[j] = r[j] - h
		shape.Func(fm, nil, rr, false)
		rr[j] = r[j]
		for m := 0; m < shape.Nverts; m++ {
			num := (fp[m] - fm[m]) / (2.0 * h)
			if verbose {
				io.Pf("dS%d/dR%d: ana = %23.15e  num = %23.15e\n", m, j, ana[m][j], num)
			}
			if math.Abs(ana[m][j]-num) > tol {
				tst.Errorf("%s: dS%d/dR%d failed: %g != %g\n", shape.Type, m, j, ana[m][j], num)
			}
		}
	}
}
