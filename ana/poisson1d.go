// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Poisson1d computes the solution of the one-dimensional Poisson equation with constant
// coefficients and Dirichlet conditions at both ends:
//
//       d²u
//   -k ──── = f    xa < x < xb,    u(xa) = ua,    u(xb) = ub
//       dx²
//
// Solution (s = x - xa, L = xb - xa):
//
//                    s      f
//   u = ua + (ub-ua) ─  +  ── s (L - s)
//                    L     2k
//
// It is also the solution of the 2D problem on a rectangle with Dirichlet conditions on the
// left and right sides and homogeneous Neumann conditions on the top and bottom sides.
type Poisson1d struct {
	K  float64 // conductivity
	F  float64 // source term
	Xa float64 // left end
	Xb float64 // right end
	Ua float64 // u @ xa
	Ub float64 // u @ xb
}

// Init initialises this structure
func (o *Poisson1d) Init(k, f, xa, xb, ua, ub float64) (err error) {
	if k <= 0 {
		return chk.Err("conductivity must be positive. k=%g is invalid", k)
	}
	if xb <= xa {
		return chk.Err("interval is invalid: xa=%g, xb=%g", xa, xb)
	}
	o.K, o.F, o.Xa, o.Xb, o.Ua, o.Ub = k, f, xa, xb, ua, ub
	return
}

// Calc computes u(x)
func (o *Poisson1d) Calc(x float64) (u float64) {
	s, L := x-o.Xa, o.Xb-o.Xa
	return o.Ua + (o.Ub-o.Ua)*s/L + o.F*s*(L-s)/(2.0*o.K)
}

// Grad computes du/dx
func (o *Poisson1d) Grad(x float64) (dudx float64) {
	s, L := x-o.Xa, o.Xb-o.Xa
	return (o.Ub-o.Ua)/L + o.F*(L-2.0*s)/(2.0*o.K)
}

// Flux computes w = -k du/dx
func (o *Poisson1d) Flux(x float64) (w float64) {
	return -o.K * o.Grad(x)
}

// F2d implements the function interface of the FE code; i.e. F(t, x) returns u(x[0])
func (o *Poisson1d) F2d(t float64, x []float64) float64 {
	return o.Calc(x[0])
}

// Extremum returns the location where du/dx = 0. ok is false if the extremum does not
// lie strictly inside (xa, xb)
func (o *Poisson1d) Extremum() (x float64, ok bool) {
	if o.F == 0 {
		return
	}
	L := o.Xb - o.Xa
	s := L/2.0 + o.K*(o.Ub-o.Ua)/(o.F*L)
	if s <= 0 || s >= L {
		return
	}
	return o.Xa + s, true
}

// Monotonic tells whether u is monotonic in [xa, xb]
func (o *Poisson1d) Monotonic() bool {
	_, ok := o.Extremum()
	return !ok
}

// MinMax returns the minimum and maximum values of u in [xa, xb]
func (o *Poisson1d) MinMax() (umin, umax float64) {
	umin = math.Min(o.Ua, o.Ub)
	umax = math.Max(o.Ua, o.Ub)
	if x, ok := o.Extremum(); ok {
		u := o.Calc(x)
		umin = math.Min(umin, u)
		umax = math.Max(umax, u)
	}
	return
}

// String returns the formula with the current constants
func (o *Poisson1d) String() string {
	return io.Sf("u(x) = %g + %g (x-%g)/%g + %g (x-%g) (%g-x)", o.Ua, o.Ub-o.Ua, o.Xa, o.Xb-o.Xa, o.F/(2.0*o.K), o.Xa, o.Xb)
}
