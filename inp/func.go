// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Func defines functions of time and space such as boundary values and sources
type Func interface {
	F(t float64, x []float64) float64 // y = F(t, x)
}

// Cte implements a constant function
type Cte struct {
	C float64
}

// F returns the constant value
func (o *Cte) F(t float64, x []float64) float64 { return o.C }

// Lin implements a function that is linear in space: y = c + cx x + cy y
type Lin struct {
	C, Cx, Cy float64
}

// F returns c + cx x + cy y
func (o *Lin) F(t float64, x []float64) float64 {
	if len(x) < 2 {
		return o.C
	}
	return o.C + o.Cx*x[0] + o.Cy*x[1]
}

// Zero is the zero function
var Zero Cte

// FuncData holds function definition
type FuncData struct {
	Name string             `yaml:"name"` // name of function. ex: zero, uleft, source, etc.
	Type string             `yaml:"type"` // type of function. ex: cte, lin
	Prms map[string]float64 `yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn Func, err error) {
	if name == "zero" || name == "none" {
		fcn = &Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// newFunc allocates a function by type
func newFunc(typ string, prms map[string]float64) (fcn Func, err error) {
	allowed := map[string][]string{
		"cte": {"c"},
		"lin": {"c", "cx", "cy"},
	}
	keys, ok := allowed[typ]
	if !ok {
		return nil, chk.Err("function type %q is not available. types: cte, lin", typ)
	}
	for key := range prms {
		found := false
		for _, k := range keys {
			if k == key {
				found = true
				break
			}
		}
		if !found {
			return nil, chk.Err("parameter %q is invalid for function type %q", key, typ)
		}
	}
	switch typ {
	case "cte":
		return &Cte{C: prms["c"]}, nil
	default:
		return &Lin{C: prms["c"], Cx: prms["cx"], Cy: prms["cy"]}, nil
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	keys := make([]string, 0, len(o.Prms))
	for key := range o.Prms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	l := io.Sf("{name:%q, type:%q, prms:{", o.Name, o.Type)
	for i, key := range keys {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%s:%g", key, o.Prms[key])
	}
	return l + "}}"
}
