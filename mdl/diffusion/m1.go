// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// M1 implements a model for diffusion problems with nonlinear coefficient
//
//   kten = kval(u) * kcte
//
//   kval = a0  +  a1 u  +  a2 u² +  a3 u³
//
// With the defaults a0=1 and a1=a2=a3=0, M1 reduces to the linear (Poisson) case.
type M1 struct {
	a0, a1, a2, a3 float64
	Kcte           [][]float64
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
//  prms: a0, a1, a2, a3 and either k (isotropic) or kx and ky
func (o *M1) Init(ndim int, prms map[string]float64) (err error) {

	// check
	if ndim != 2 {
		return chk.Err("M1 model works in 2D only; ndim=%d is invalid", ndim)
	}
	for key := range prms {
		switch key {
		case "a0", "a1", "a2", "a3", "k", "kx", "ky":
		default:
			return chk.Err("M1 model: parameter %q is unknown", key)
		}
	}

	// a[i] parameters
	o.a0 = 1
	if val, ok := prms["a0"]; ok {
		o.a0 = val
	}
	o.a1, o.a2, o.a3 = prms["a1"], prms["a2"], prms["a3"]

	// kcte parameters
	kx, okx := prms["kx"]
	ky, oky := prms["ky"]
	if !okx || !oky {
		if okx || oky {
			return chk.Err("M1 model: both 'kx' and 'ky' must be given")
		}
		k, ok := prms["k"]
		if !ok {
			k = 1
		}
		kx, ky = k, k
	}
	if kx <= 0 || ky <= 0 {
		return chk.Err("M1 model: conductivities must be positive. kx=%g, ky=%g", kx, ky)
	}

	// ktensor
	o.Kcte = utl.Alloc(ndim, ndim)
	o.Kcte[0][0] = kx
	o.Kcte[1][1] = ky
	return
}

// Kval computes k(u)
func (o *M1) Kval(u float64) float64 {
	return o.a0 + o.a1*u + o.a2*u*u + o.a3*u*u*u
}

// DkDu computes dk/du
func (o *M1) DkDu(u float64) float64 {
	return o.a1 + 2.0*o.a2*u + 3.0*o.a3*u*u
}

// Ktensor returns kcte
func (o *M1) Ktensor() [][]float64 {
	return o.Kcte
}

// Linear tells whether k does not depend on u
func (o *M1) Linear() bool {
	return o.a1 == 0 && o.a2 == 0 && o.a3 == 0
}
