// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RefPoint holds a reference value @ a point; e.g. a prediction from another solver
type RefPoint struct {
	X []float64 // coordinates
	U float64   // reference value
}

// Errors holds error measures of a FE field with respect to reference values
type Errors struct {
	N      int       `yaml:"n"`      // number of points
	MaxAbs float64   `yaml:"maxabs"` // max |u - uref|
	Xmax   []float64 `yaml:"xmax"`   // point where max |u - uref| occurs
	Rms    float64   `yaml:"rms"`    // sqrt(∑(u - uref)² / n)
	RelL2  float64   `yaml:"rell2"`  // sqrt(∑(u - uref)² / ∑uref²)
}

// ReadRefs reads reference points from a CSV file. Lines starting with '#' are ignored.
// If the first row is a header, the columns named x, y and u are used; otherwise the
// first three columns are taken as x, y and u
func ReadRefs(fn string) (refs []*RefPoint, err error) {

	// read records
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open reference file:\n%v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, chk.Err("cannot read reference file %q:\n%v", fn, err)
	}
	if len(records) == 0 {
		return nil, chk.Err("reference file %q is empty", fn)
	}

	// columns
	ix, iy, iu := 0, 1, 2
	if _, e := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); e != nil {
		ix, iy, iu = -1, -1, -1
		for j, name := range records[0] {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "x":
				ix = j
			case "y":
				iy = j
			case "u":
				iu = j
			}
		}
		if ix < 0 || iy < 0 || iu < 0 {
			return nil, chk.Err("header of reference file %q must have columns x, y and u. %v is invalid", fn, records[0])
		}
		records = records[1:]
	}

	// values
	var vals [3]float64
	for i, rec := range records {
		for k, j := range []int{ix, iy, iu} {
			if j >= len(rec) {
				return nil, chk.Err("row %d of reference file %q has %d columns; column %d is missing", i, fn, len(rec), j)
			}
			vals[k], err = strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil {
				return nil, chk.Err("row %d of reference file %q has an invalid number:\n%v", i, fn, err)
			}
		}
		refs = append(refs, &RefPoint{X: []float64{vals[0], vals[1]}, U: vals[2]})
	}
	if len(refs) == 0 {
		return nil, chk.Err("reference file %q has no data", fn)
	}
	return
}

// Compare computes errors of a nodal field with respect to reference points.
// The field is interpolated @ each reference point
func Compare(msh *inp.Mesh, u []float64, refs []*RefPoint) (o *Errors, err error) {
	o = new(Errors)
	var sumE2, sumR2 float64
	for _, ref := range refs {
		val, err := Probe(msh, u, ref.X)
		if err != nil {
			return nil, chk.Err("cannot compare @ reference point:\n%v", err)
		}
		o.add(val, ref.U, ref.X, &sumE2, &sumR2)
	}
	o.finish(sumE2, sumR2)
	return
}

// CompareFunc computes errors of a nodal field with respect to a function evaluated @ vertices
func CompareFunc(msh *inp.Mesh, u []float64, fcn func(x []float64) float64) (o *Errors, err error) {
	if len(u) != len(msh.Verts) {
		return nil, chk.Err("field must have %d values (one per vertex). %d is invalid", len(msh.Verts), len(u))
	}
	o = new(Errors)
	var sumE2, sumR2 float64
	for _, v := range msh.Verts {
		o.add(u[v.Id], fcn(v.C), v.C, &sumE2, &sumR2)
	}
	o.finish(sumE2, sumR2)
	return
}

// String returns a one-line report
func (o *Errors) String() string {
	return io.Sf("n = %d  max|e| = %.6e @ %v  rms = %.6e  relL2 = %.6e", o.N, o.MaxAbs, o.Xmax, o.Rms, o.RelL2)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// add adds one point to error measures
func (o *Errors) add(val, ref float64, x []float64, sumE2, sumR2 *float64) {
	e := math.Abs(val - ref)
	if o.N == 0 || e > o.MaxAbs {
		o.MaxAbs = e
		o.Xmax = []float64{x[0], x[1]}
	}
	*sumE2 += e * e
	*sumR2 += ref * ref
	o.N++
}

// finish computes the norms
func (o *Errors) finish(sumE2, sumR2 float64) {
	if o.N == 0 {
		return
	}
	o.Rms = math.Sqrt(sumE2 / float64(o.N))
	switch {
	case sumR2 > 0:
		o.RelL2 = math.Sqrt(sumE2 / sumR2)
	case sumE2 > 0:
		o.RelL2 = math.Inf(1)
	}
}
