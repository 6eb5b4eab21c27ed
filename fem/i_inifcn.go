// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/chk"

// IniSetFunc sets initial values of solution variables by means of functions of x.
// Values at nodes with essential boundary conditions are overwritten by the solver
func (o *Domain) IniSetFunc() (err error) {

	// check
	ini := &o.Sim.IniFcn
	if len(ini.Fcns) != len(ini.Dofs) {
		return chk.Err("number of functions (fcns) must be equal to number of dofs for setting initial values. %d != %d", len(ini.Fcns), len(ini.Dofs))
	}

	// loop over functions
	for i, fname := range ini.Fcns {

		// get function
		fcn, err := o.Sim.Functions.Get(fname)
		if err != nil {
			return err
		}

		// set nodes
		key := ini.Dofs[i]
		for _, nod := range o.Nodes {
			eq := nod.GetEq(key)
			if eq < 0 {
				return chk.Err("dof=%q cannot be found in node=%d for setting initial values", key, nod.Vert.Id)
			}
			o.Sol.Y[eq] = fcn.F(0, nod.Vert.C)
		}
	}
	return
}
