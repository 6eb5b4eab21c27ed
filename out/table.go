// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/io"
)

// WriteTable writes a CSV table with one row per vertex: x,y,<field keys>
func WriteTable(fn string, msh *inp.Mesh, fields ...*Field) (err error) {
	err = checkFields(msh, fields)
	if err != nil {
		return
	}
	var b bytes.Buffer
	io.Ff(&b, "x,y")
	for _, f := range fields {
		io.Ff(&b, ",%s", f.Key)
	}
	io.Ff(&b, "\n")
	for _, v := range msh.Verts {
		io.Ff(&b, Nfmt+","+Nfmt, v.C[0], v.C[1])
		for _, f := range fields {
			io.Ff(&b, ","+Nfmt, f.Vals[v.Id])
		}
		io.Ff(&b, "\n")
	}
	return save(fn, &b)
}
