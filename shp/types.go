// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// register shapes
func init() {

	// lin2
	factory["lin2"] = &Shape{
		Type:        "lin2",
		Gndim:       1,
		Nverts:      2,
		VtkCode:     VTK_LINE,
		NatCoords:   [][]float64{{-1, 1}},
		Func:        FuncLin2,
		NipDefault:  2,
		NipfDefault: 0,
	}

	// tri3
	factory["tri3"] = &Shape{
		Type:           "tri3",
		FaceType:       "lin2",
		Gndim:          2,
		Nverts:         3,
		VtkCode:        VTK_TRIANGLE,
		FaceNverts:     2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		Func:        FuncTri3,
		NipDefault:  3,
		NipfDefault: 2,
	}

	// qua4
	factory["qua4"] = &Shape{
		Type:           "qua4",
		FaceType:       "lin2",
		Gndim:          2,
		Nverts:         4,
		VtkCode:        VTK_QUAD,
		FaceNverts:     2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
		Func:        FuncQua4,
		NipDefault:  4,
		NipfDefault: 2,
	}
}

// VTK cell types
const (
	VTK_LINE     = 3
	VTK_TRIANGLE = 5
	VTK_QUAD     = 9
)

// FuncLin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements
//
//   -1     0    +1
//    0-----------1-->r
//
func FuncLin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// FuncTri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements
//
//    s
//    |
//    2, (0,1)
//    | ',
//    |   ',
//    |     ',
//    |       ',
//    |         ',
//    |           ',
//    |             ',
//    | (0,0)         ', (1,0)
//    0-----------------1 ---- r
//
func FuncTri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// FuncQua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
//
func FuncQua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = (-1.0+s)/4.0, (-1.0+r)/4.0
	dSdR[1][0], dSdR[1][1] = (+1.0-s)/4.0, (-1.0-r)/4.0
	dSdR[2][0], dSdR[2][1] = (+1.0+s)/4.0, (+1.0+r)/4.0
	dSdR[3][0], dSdR[3][1] = (-1.0-s)/4.0, (+1.0-r)/4.0
}

// integration points ///////////////////////////////////////////////////////////////////////////////

// ipsfactory holds integration points: shape type => nip => points
var ipsfactory = map[string]map[int][]Ipoint{
	"lin2": {1: ipsLin1, 2: ipsLin2, 3: ipsLin3},
	"tri3": {1: ipsTri1, 3: ipsTri3},
	"qua4": {1: ipsQua1, 4: ipsQua4, 9: ipsQua9},
}

var (
	gp2 = 1.0 / math.Sqrt(3.0)
	gp3 = math.Sqrt(3.0 / 5.0)
)

var ipsLin1 = []Ipoint{
	{0, 0, 0, 2},
}

var ipsLin2 = []Ipoint{
	{-gp2, 0, 0, 1},
	{+gp2, 0, 0, 1},
}

var ipsLin3 = []Ipoint{
	{-gp3, 0, 0, 5.0 / 9.0},
	{0, 0, 0, 8.0 / 9.0},
	{+gp3, 0, 0, 5.0 / 9.0},
}

var ipsTri1 = []Ipoint{
	{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
}

var ipsTri3 = []Ipoint{
	{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
	{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
	{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
}

var ipsQua1 = []Ipoint{
	{0, 0, 0, 4},
}

var ipsQua4 = []Ipoint{
	{-gp2, -gp2, 0, 1},
	{+gp2, -gp2, 0, 1},
	{-gp2, +gp2, 0, 1},
	{+gp2, +gp2, 0, 1},
}

var ipsQua9 = []Ipoint{
	{-gp3, -gp3, 0, 25.0 / 81.0},
	{0, -gp3, 0, 40.0 / 81.0},
	{+gp3, -gp3, 0, 25.0 / 81.0},
	{-gp3, 0, 0, 40.0 / 81.0},
	{0, 0, 0, 64.0 / 81.0},
	{+gp3, 0, 0, 40.0 / 81.0},
	{-gp3, +gp3, 0, 25.0 / 81.0},
	{0, +gp3, 0, 40.0 / 81.0},
	{+gp3, +gp3, 0, 25.0 / 81.0},
}
