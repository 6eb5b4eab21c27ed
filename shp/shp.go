// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions and integration points for lin2, tri3 and qua4 cells
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Ipoint holds the natural coordinates and weight of an integration point: {r, s, t, w}
type Ipoint []float64

// ShpFunc computes the shape functions S and (optionally) their derivatives dSdR @ r
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data and scratchpad for computing shape functions and derivatives
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3"
	FaceType       string      // geometry of face; e.g. "lin2"
	Gndim          int         // geometry of shape; e.g. "lin2" => gndim = 1
	Nverts         int         // number of vertices
	VtkCode        int         // VTK cell type code
	FaceNverts     int         // number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][FaceNverts]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]
	Func           ShpFunc     // shape/derivs function callback

	// geometry: for seams (3D-edges)
	NipDefault  int // default number of integration points
	NipfDefault int // default number of integration points on faces

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][ndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [ndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][ndim] derivatives of natural coordinates w.r.t real coordinates

	// scratchpad: face
	Sf     []float64   // [nfaceverts] shape functions values @ face
	DSfdRf [][]float64 // [nfaceverts][gndim-1] derivatives of Sf w.r.t natural coordinates
	Fnvec  []float64   // [ndim] face normal vector multiplied by Jf (outward for counter-clockwise cells)
	Jf     float64     // face Jacobian == norm of Fnvec
}

// factory holds the prototypes of all available shapes
var factory = map[string]*Shape{}

// Get returns a new Shape structure with allocated scratchpad. It returns nil if geoType is not available
func Get(geoType string) *Shape {
	proto, ok := factory[geoType]
	if !ok {
		return nil
	}
	var o Shape
	o = *proto
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	if o.FaceNverts > 0 {
		o.Sf = make([]float64, o.FaceNverts)
		o.DSfdRf = utl.Alloc(o.FaceNverts, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
	}
	return &o
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   r               -- natural coordinates (or integration point)
//   derivs          -- also compute derivatives: G and J
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, r []float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j = sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	switch o.Gndim {
	case 1:
		o.J = o.DxdR[0][0]
		if o.J <= 0 {
			return chk.Err("non-positive Jacobian: J = %g", o.J)
		}
		o.DRdx[0][0] = 1.0 / o.J
	case 2:
		o.J = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[0][1]*o.DxdR[1][0]
		if o.J <= 0 {
			return chk.Err("non-positive Jacobian: J = %g", o.J)
		}
		o.DRdx[0][0] = o.DxdR[1][1] / o.J
		o.DRdx[0][1] = -o.DxdR[0][1] / o.J
		o.DRdx[1][0] = -o.DxdR[1][0] / o.J
		o.DRdx[1][1] = o.DxdR[0][0] / o.J
	default:
		return chk.Err("CalcAtIp works with gndim = 1 or 2 only; %d is invalid", o.Gndim)
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dR_i := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtFaceIp calculates face data such as Sf and Fnvec
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   ipf             -- local/natural coordinates of face
//   idxface         -- local index of face
//  Output:
//   Sf, DSfdRf, Fnvec and Jf
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf []float64, idxface int) (err error) {

	// check
	if o.FaceNverts == 0 || o.Gndim != 2 {
		return chk.Err("CalcAtFaceIp works with 2D cells only; shape %q is invalid", o.Type)
	}
	if idxface < 0 || idxface >= len(o.FaceLocalVerts) {
		return chk.Err("face index %d is out of range for shape %q", idxface, o.Type)
	}

	// face shape functions
	fshp := factory[o.FaceType]
	fshp.Func(o.Sf, o.DSfdRf, ipf, true)

	// tangent: dxf/drf
	var dxdr, dydr float64
	for i, m := range o.FaceLocalVerts[idxface] {
		dxdr += x[0][m] * o.DSfdRf[i][0]
		dydr += x[1][m] * o.DSfdRf[i][0]
	}

	// outward normal multiplied by face Jacobian
	o.Fnvec[0] = dydr
	o.Fnvec[1] = -dxdr
	o.Jf = math.Sqrt(dxdr*dxdr + dydr*dydr)
	if o.Jf <= 0 {
		return chk.Err("face %d of shape %q has zero length", idxface, o.Type)
	}
	return
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// FaceIpRealCoords returns the real coordinates (y) of a face integration point
func (o *Shape) FaceIpRealCoords(x [][]float64, ipf Ipoint, idxface int) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	fshp := factory[o.FaceType]
	fshp.Func(o.Sf, o.DSfdRf, ipf, false)
	for i := 0; i < ndim; i++ {
		for k, m := range o.FaceLocalVerts[idxface] {
			y[i] += o.Sf[k] * x[i][m]
		}
	}
	return
}

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[ndim]          -- are the 'real' coordinates of the point
//   x[ndim][nverts]  -- coordinates matrix of solid element
//  Output:
//   r[gndim] -- natural coordinates of the point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	// check
	if o.Gndim != 2 || len(x) != 2 {
		return chk.Err("InvMap works with 2D cells only")
	}

	// initial trial: centroid of reference element
	for i := 0; i < o.Gndim; i++ {
		r[i] = 0
		for n := 0; n < o.Nverts; n++ {
			r[i] += o.NatCoords[i][n]
		}
		r[i] /= float64(o.Nverts)
	}

	// Newton iterations
	e := make([]float64, 2)
	var δr0, δr1 float64
	for it := 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		err = o.CalcAtIp(x, r, true)
		if err != nil {
			return chk.Err("InvMap failed:\n%v", err)
		}

		// residual: e = y - x * S
		for i := 0; i < 2; i++ {
			e[i] = y[i]
			for n := 0; n < o.Nverts; n++ {
				e[i] -= x[i][n] * o.S[n]
			}
		}

		// δr = dRdx * e
		δr0 = o.DRdx[0][0]*e[0] + o.DRdx[0][1]*e[1]
		δr1 = o.DRdx[1][0]*e[0] + o.DRdx[1][1]*e[1]
		r[0] += δr0
		r[1] += δr1

		// converged?
		if math.Abs(δr0)+math.Abs(δr1) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("InvMap did not converge after %d iterations", INVMAP_NIT)
}

// IsInside tells whether natural coordinates r are inside the reference element (with tolerance tol)
func (o *Shape) IsInside(r []float64, tol float64) bool {
	switch o.Type {
	case "tri3":
		return r[0] >= -tol && r[1] >= -tol && r[0]+r[1] <= 1+tol
	case "qua4":
		return math.Abs(r[0]) <= 1+tol && math.Abs(r[1]) <= 1+tol
	case "lin2":
		return math.Abs(r[0]) <= 1+tol
	}
	return false
}

// GetIps returns the integration points of this shape and its faces. Zero means default
func (o *Shape) GetIps(nip, nipf int) (ips, ipsf []Ipoint, err error) {

	// volume
	if nip == 0 {
		nip = o.NipDefault
	}
	ips, ok := ipsfactory[o.Type][nip]
	if !ok {
		return nil, nil, chk.Err("cannot find integration points for %q with nip=%d", o.Type, nip)
	}

	// face
	if o.FaceType == "" {
		return
	}
	if nipf == 0 {
		nipf = o.NipfDefault
	}
	ipsf, ok = ipsfactory[o.FaceType][nipf]
	if !ok {
		return nil, nil, chk.Err("cannot find face integration points for %q with nipf=%d", o.FaceType, nipf)
	}
	return
}

// constants
const (
	INVMAP_NIT = 25    // max number of iterations in InvMap
	INVMAP_TOL = 1e-14 // tolerance in InvMap
)
