// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements FE simulation output: VTK files, tables, probes and comparisons
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/chk"
)

// constants
var (
	TolC = 1e-8    // tolerance to compare x-y coordinates
	TolR = 1e-10   // tolerance to decide whether natural coordinates are inside a cell
	Nfmt = "%.15e" // format of real numbers in output files
)

// Field holds the values of a solution variable @ nodes, indexed by vertex id
type Field struct {
	Key  string    // e.g. "u"
	Vals []float64 // [nverts] values
}

// checkFields checks that all fields have one value per vertex
func checkFields(msh *inp.Mesh, fields []*Field) (err error) {
	if len(fields) == 0 {
		return chk.Err("at least one field is required")
	}
	for _, f := range fields {
		if len(f.Vals) != len(msh.Verts) {
			return chk.Err("field %q must have %d values (one per vertex). %d is invalid", f.Key, len(msh.Verts), len(f.Vals))
		}
	}
	return
}

// save writes buffer to file, creating the directory if necessary
func save(fn string, buf *bytes.Buffer) (err error) {
	err = os.MkdirAll(filepath.Dir(fn), 0777)
	if err != nil {
		return chk.Err("cannot create directory for %q:\n%v", fn, err)
	}
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return chk.Err("cannot write file %q:\n%v", fn, err)
	}
	return
}
