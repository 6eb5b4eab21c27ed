// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// M2 implements a model with exponential coefficient
//
//   kten = kval(u) * kcte
//
//   kval = exp(β u)
//
// The Kirchhoff transformation  φ = (exp(β u) - 1) / β  turns the problem without source
// into a linear one.
type M2 struct {
	β    float64
	Kcte [][]float64
}

// add model to factory
func init() {
	allocators["m2"] = func() Model { return new(M2) }
}

// Init initialises this structure
//  prms: beta and either k (isotropic) or kx and ky
func (o *M2) Init(ndim int, prms map[string]float64) (err error) {

	// check
	if ndim != 2 {
		return chk.Err("M2 model works in 2D only; ndim=%d is invalid", ndim)
	}
	for key := range prms {
		switch key {
		case "beta", "k", "kx", "ky":
		default:
			return chk.Err("M2 model: parameter %q is unknown", key)
		}
	}
	o.β = prms["beta"]

	// kcte parameters
	kx, okx := prms["kx"]
	ky, oky := prms["ky"]
	if !okx || !oky {
		if okx || oky {
			return chk.Err("M2 model: both 'kx' and 'ky' must be given")
		}
		k, ok := prms["k"]
		if !ok {
			k = 1
		}
		kx, ky = k, k
	}
	if kx <= 0 || ky <= 0 {
		return chk.Err("M2 model: conductivities must be positive. kx=%g, ky=%g", kx, ky)
	}
	o.Kcte = utl.Alloc(ndim, ndim)
	o.Kcte[0][0] = kx
	o.Kcte[1][1] = ky
	return
}

// Kval computes k(u)
func (o *M2) Kval(u float64) float64 {
	return math.Exp(o.β * u)
}

// DkDu computes dk/du
func (o *M2) DkDu(u float64) float64 {
	return o.β * math.Exp(o.β*u)
}

// Ktensor returns kcte
func (o *M2) Ktensor() [][]float64 {
	return o.Kcte
}
