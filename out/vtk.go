// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"path/filepath"

	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/io"
)

// WriteResults writes <dirout>/<key>.pvd and <dirout>/<key>000000.vtu
func WriteResults(dirout, key string, msh *inp.Mesh, fields ...*Field) (files []string, err error) {
	vtu := io.Sf("%s%06d.vtu", key, 0)
	fnvtu := filepath.Join(dirout, vtu)
	err = WriteVtu(fnvtu, msh, fields...)
	if err != nil {
		return
	}
	fnpvd := filepath.Join(dirout, key+".pvd")
	err = WritePvd(fnpvd, []string{vtu}, []float64{0})
	if err != nil {
		return
	}
	return []string{fnpvd, fnvtu}, nil
}

// WriteVtu writes a VTK XML unstructured grid file (ASCII) with point data
func WriteVtu(fn string, msh *inp.Mesh, fields ...*Field) (err error) {

	// check
	err = checkFields(msh, fields)
	if err != nil {
		return
	}

	// header
	var b bytes.Buffer
	io.Ff(&b, "<?xml version=\"1.0\"?>\n")
	io.Ff(&b, "<VTKFile type=\"UnstructuredGrid\" version=\"0.1\">\n")
	io.Ff(&b, "<UnstructuredGrid>\n")
	io.Ff(&b, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(msh.Verts), len(msh.Cells))

	// point data
	io.Ff(&b, "<PointData Scalars=\"%s\">\n", fields[0].Key)
	for _, f := range fields {
		io.Ff(&b, "<DataArray type=\"Float64\" Name=\"%s\" format=\"ascii\">\n", f.Key)
		for i, v := range f.Vals {
			sep := " "
			if i == len(f.Vals)-1 {
				sep = "\n"
			}
			io.Ff(&b, Nfmt+sep, v)
		}
		io.Ff(&b, "</DataArray>\n")
	}
	io.Ff(&b, "</PointData>\n")

	// points
	io.Ff(&b, "<Points>\n")
	io.Ff(&b, "<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(&b, Nfmt+" "+Nfmt+" "+Nfmt+"\n", v.C[0], v.C[1], 0.0)
	}
	io.Ff(&b, "</DataArray>\n")
	io.Ff(&b, "</Points>\n")

	// cells
	io.Ff(&b, "<Cells>\n")
	io.Ff(&b, "<DataArray type=\"UInt32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		for i, v := range c.Verts {
			if i > 0 {
				io.Ff(&b, " ")
			}
			io.Ff(&b, "%d", v)
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "</DataArray>\n")
	io.Ff(&b, "<DataArray type=\"UInt32\" Name=\"offsets\" format=\"ascii\">\n")
	offset := 0
	for i, c := range msh.Cells {
		offset += len(c.Verts)
		if i > 0 {
			io.Ff(&b, " ")
		}
		io.Ff(&b, "%d", offset)
	}
	io.Ff(&b, "\n</DataArray>\n")
	io.Ff(&b, "<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for i, c := range msh.Cells {
		if i > 0 {
			io.Ff(&b, " ")
		}
		io.Ff(&b, "%d", c.Shp.VtkCode)
	}
	io.Ff(&b, "\n</DataArray>\n")
	io.Ff(&b, "</Cells>\n")

	// footer
	io.Ff(&b, "</Piece>\n")
	io.Ff(&b, "</UnstructuredGrid>\n")
	io.Ff(&b, "</VTKFile>\n")
	return save(fn, &b)
}

// WritePvd writes a ParaView collection file referencing vtu files (relative to the pvd file)
func WritePvd(fn string, vtus []string, times []float64) (err error) {
	var b bytes.Buffer
	io.Ff(&b, "<?xml version=\"1.0\"?>\n")
	io.Ff(&b, "<VTKFile type=\"Collection\" version=\"0.1\">\n")
	io.Ff(&b, "<Collection>\n")
	for i, vtu := range vtus {
		t := 0.0
		if i < len(times) {
			t = times[i]
		}
		io.Ff(&b, "<DataSet timestep=\"%g\" part=\"0\" file=\"%s\" />\n", t, vtu)
	}
	io.Ff(&b, "</Collection>\n")
	io.Ff(&b, "</VTKFile>\n")
	return save(fn, &b)
}
