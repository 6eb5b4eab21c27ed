// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/roj-anbar/PINNs-examples/out"

	"github.com/cpmech/gosl/io"
)

// Fields returns the solution variables @ nodes; e.g. "u"
func (o *Main) Fields() (fields []*out.Field) {
	return []*out.Field{{Key: "u", Vals: o.Domain.NodalValues("u")}}
}

// WriteOutput writes the files selected in the output data
func (o *Main) WriteOutput() (files []string, err error) {

	// pvd and vtu
	fields := o.Fields()
	if o.Sim.Output.Pvd {
		files, err = out.WriteResults(o.Sim.DirOut, o.Sim.Key, o.Sim.Msh, fields...)
		if err != nil {
			return
		}
	}

	// table
	if o.Sim.Output.Table {
		fn := o.Sim.Fnpath(".csv")
		err = out.WriteTable(fn, o.Sim.Msh, fields...)
		if err != nil {
			return
		}
		files = append(files, fn)
	}

	// message
	if o.ShowMsg {
		for _, fn := range files {
			io.Pf("> File <%s> written\n", fn)
		}
	}
	return
}
