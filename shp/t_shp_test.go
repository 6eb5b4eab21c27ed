// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// coordinates of test cells [ndim][nverts]
var testcoords = map[string][][]float64{
	"lin2": {{0.5, 2.0}},
	"tri3": {
		{0.1, 1.1, 0.3},
		{0.2, 0.4, 1.0},
	},
	"qua4": {
		{0.0, 2.0, 2.2, -0.1},
		{0.0, 0.1, 1.5, 1.2},
	},
}

// areas of test cells (shoelace formula)
var testareas = map[string]float64{
	"tri3": 0.5 * ((1.1-0.1)*(1.0-0.2) - (0.3-0.1)*(0.4-0.2)),
	"qua4": 0.5 * ((0.0*0.1 - 2.0*0.0) + (2.0*1.5 - 2.2*0.1) + (2.2*1.2 - (-0.1)*1.5) + ((-0.1)*0.0 - 0.0*1.2)),
}

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. shape functions and derivatives")

	for _, name := range []string{"lin2", "tri3", "qua4"} {
		shape := Get(name)
		if shape == nil {
			tst.Errorf("cannot get shape %q", name)
			return
		}
		io.Pforan("%s\n", name)
		CheckShape(tst, shape, 1e-15, chk.Verbose)
		CheckDSdR(tst, shape, []float64{0.2, 0.25, 0}, 1e-9, chk.Verbose)
		if shape.Gndim == 2 {
			CheckShapeFace(tst, shape, testcoords[name], 1e-15, chk.Verbose)
		}
	}

	if Get("hex8") != nil {
		tst.Errorf("hex8 should not be available")
	}
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02. areas, partition of unity and gradients")

	for _, name := range []string{"tri3", "qua4"} {
		shape := Get(name)
		x := testcoords[name]
		for _, nip := range []int{0, 1} {
			ips, _, err := shape.GetIps(nip, 0)
			if err != nil {
				tst.Errorf("GetIps failed:\n%v", err)
				return
			}
			area := 0.0
			for _, ip := range ips {
				err = shape.CalcAtIp(x, ip, true)
				if err != nil {
					tst.Errorf("CalcAtIp failed:\n%v", err)
					return
				}
				area += shape.J * ip[3]

				// ∑S = 1 and ∑G = 0
				var sumS, sumGx, sumGy float64
				for m := 0; m < shape.Nverts; m++ {
					sumS += shape.S[m]
					sumGx += shape.G[m][0]
					sumGy += shape.G[m][1]
				}
				chk.Float64(tst, name+": ∑S", 1e-15, sumS, 1)
				chk.Float64(tst, name+": ∑Gx", 1e-14, sumGx, 0)
				chk.Float64(tst, name+": ∑Gy", 1e-14, sumGy, 0)

				// gradient of linear field u = 2x + 3y is recovered exactly
				var dudx, dudy float64
				for m := 0; m < shape.Nverts; m++ {
					u := 2.0*x[0][m] + 3.0*x[1][m]
					dudx += shape.G[m][0] * u
					dudy += shape.G[m][1] * u
				}
				chk.Float64(tst, name+": du/dx", 1e-13, dudx, 2)
				chk.Float64(tst, name+": du/dy", 1e-13, dudy, 3)
			}
			if name == "tri3" || nip == 0 {
				io.Pforan("%s nip=%d: area = %v\n", name, len(ips), area)
				chk.Float64(tst, name+": area", 1e-14, area, testareas[name])
			}
		}
	}
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03. faces: outward normals and lengths")

	// unit square
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	normals := [][]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	shape := Get("qua4")
	_, ipsf, err := shape.GetIps(0, 0)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	chk.IntAssert(len(ipsf), 2)
	for iface := 0; iface < 4; iface++ {
		length := 0.0
		for _, ipf := range ipsf {
			err = shape.CalcAtFaceIp(x, ipf, iface)
			if err != nil {
				tst.Errorf("CalcAtFaceIp failed:\n%v", err)
				return
			}
			length += shape.Jf * ipf[3]
			n := []float64{shape.Fnvec[0] / shape.Jf, shape.Fnvec[1] / shape.Jf}
			chk.Array(tst, io.Sf("normal of face %d", iface), 1e-15, n, normals[iface])
		}
		chk.Float64(tst, io.Sf("length of face %d", iface), 1e-15, length, 1)
	}

	// wrong face
	err = shape.CalcAtFaceIp(x, ipsf[0], 4)
	if err == nil {
		tst.Errorf("face 4 should have failed")
	}
}

func Test_shp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp04. inverse mapping")

	for _, name := range []string{"tri3", "qua4"} {
		shape := Get(name)
		x := testcoords[name]
		ips, _, _ := shape.GetIps(0, 0)
		r := make([]float64, 2)
		for _, ip := range ips {
			y := shape.IpRealCoords(x, ip)
			err := shape.InvMap(r, y, x)
			if err != nil {
				tst.Errorf("InvMap failed:\n%v", err)
				return
			}
			io.Pforan("%s: y = %v  r = %v\n", name, y, r)
			chk.Array(tst, name+": r", 1e-12, r, ip[:2])
			if !shape.IsInside(r, 1e-12) {
				tst.Errorf("%s: ip %v should be inside", name, ip)
			}
		}
	}

	// outside
	shape := Get("tri3")
	if shape.IsInside([]float64{0.8, 0.8}, 1e-12) {
		tst.Errorf("point should be outside")
	}
}

func Test_shp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp05. errors")

	shape := Get("tri3")
	_, _, err := shape.GetIps(7, 0)
	if err == nil {
		tst.Errorf("nip=7 should have failed")
	}
	_, _, err = shape.GetIps(0, 5)
	if err == nil {
		tst.Errorf("nipf=5 should have failed")
	}

	// clockwise triangle => negative Jacobian
	x := [][]float64{
		{0, 0, 1},
		{0, 1, 0},
	}
	err = shape.CalcAtIp(x, Ipoint{0.2, 0.2, 0, 0}, true)
	if err == nil {
		tst.Errorf("clockwise triangle should have failed")
	}
	io.Pforan("err = %v\n", err)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
