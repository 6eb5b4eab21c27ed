// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_m1(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m1")

	mdl, err := New("m1")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	prms := map[string]float64{"a0": 1.0, "a1": 2.0, "a2": 3.0, "a3": 4.0, "k": 0.1}
	err = mdl.Init(2, prms)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	m := mdl.(*M1)
	chk.Float64(tst, "a0", 1e-15, m.a0, 1.0)
	chk.Float64(tst, "a1", 1e-15, m.a1, 2.0)
	chk.Float64(tst, "a2", 1e-15, m.a2, 3.0)
	chk.Float64(tst, "a3", 1e-15, m.a3, 4.0)
	chk.Array(tst, "kcte[0]", 1e-15, m.Ktensor()[0], []float64{0.1, 0})
	chk.Array(tst, "kcte[1]", 1e-15, m.Ktensor()[1], []float64{0, 0.1})
	if m.Linear() {
		tst.Errorf("model should be nonlinear")
	}

	u := 0.5
	kval := 1.0 + 2.0*u + 3.0*u*u + 4.0*u*u*u
	chk.Float64(tst, "kval", 1e-15, m.Kval(u), kval)

	h := 1e-5
	for _, uval := range utl.LinSpace(0, 2.0, 5) {
		dnum := (m.Kval(uval+h) - m.Kval(uval-h)) / (2.0 * h)
		io.Pforan("u = %v  dana = %v  dnum = %v\n", uval, m.DkDu(uval), dnum)
		chk.Float64(tst, "DkDu", 1e-8, m.DkDu(uval), dnum)
	}
}

func Test_m1defaults(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m1defaults. linear Poisson")

	mdl, _ := New("m1")
	err := mdl.Init(2, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	m := mdl.(*M1)
	if !m.Linear() {
		tst.Errorf("default model should be linear")
	}
	chk.Float64(tst, "kval", 1e-15, m.Kval(123), 1)
	chk.Float64(tst, "dkdu", 1e-15, m.DkDu(123), 0)
	chk.Array(tst, "kcte[0]", 1e-15, m.Kcte[0], []float64{1, 0})

	// anisotropic
	err = mdl.Init(2, map[string]float64{"kx": 2, "ky": 3})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Array(tst, "kcte[0]", 1e-15, m.Kcte[0], []float64{2, 0})
	chk.Array(tst, "kcte[1]", 1e-15, m.Kcte[1], []float64{0, 3})
}

func Test_m2(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m2. exponential coefficient")

	mdl, err := New("m2")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, map[string]float64{"beta": 0.7, "kx": 2, "ky": 0.5})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Array(tst, "kcte[0]", 1e-15, mdl.Ktensor()[0], []float64{2, 0})
	chk.Array(tst, "kcte[1]", 1e-15, mdl.Ktensor()[1], []float64{0, 0.5})
	chk.Float64(tst, "kval(0)", 1e-15, mdl.Kval(0), 1)

	h := 1e-5
	for _, uval := range utl.LinSpace(-1.0, 2.0, 7) {
		dnum := (mdl.Kval(uval+h) - mdl.Kval(uval-h)) / (2.0 * h)
		io.Pforan("u = %v  dana = %v  dnum = %v\n", uval, mdl.DkDu(uval), dnum)
		chk.Float64(tst, "DkDu", 1e-8, mdl.DkDu(uval), dnum)
	}

	// errors
	for i, prms := range []map[string]float64{
		{"ky": 1},
		{"k": 0},
		{"a1": 1},
	} {
		err = mdl.Init(2, prms)
		if err == nil {
			tst.Errorf("test %d: Init should have failed with %v", i, prms)
		}
	}
	if mdl.Init(1, nil) == nil {
		tst.Errorf("ndim=1 should have failed")
	}
}

func Test_m1errors(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m1errors")

	_, err := New("m3")
	if err == nil {
		tst.Errorf("m3 should not exist")
	}
	chk.Strings(tst, "names", Names(), []string{"m1", "m2"})

	for i, prms := range []map[string]float64{
		{"kx": 1},
		{"k": -1},
		{"rho": 1},
	} {
		mdl, _ := New("m1")
		err = mdl.Init(2, prms)
		if err == nil {
			tst.Errorf("test %d: Init should have failed with %v", i, prms)
		}
	}

	mdl, _ := New("m1")
	if mdl.Init(3, nil) == nil {
		tst.Errorf("ndim=3 should have failed")
	}
}
