// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/roj-anbar/PINNs-examples/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// edge (and vertex) tags of structured rectangles
const (
	TagLeft   = -10 // x == xmin
	TagRight  = -11 // x == xmax
	TagBottom = -20 // y == ymin
	TagTop    = -21 // y == ymax
	TagCells  = -1  // all cells
)

// Vertex holds vertex data
type Vertex struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {
	Id       int        // id
	Tag      int        // tag
	Type     string     // geometry type; e.g. "tri3"
	Verts    []int      // vertices
	EdgeTags []int      // edge tags (2D)
	Shp      *shp.Shape // shape structure

	// derived
	FaceBcs []*FaceBc // natural boundary conditions on edges
}

// FaceBc holds a natural boundary condition acting on one edge of a cell
type FaceBc struct {
	Key    string // key; e.g. "g"
	FaceId int    // local index of edge
	Func   Func   // function callback
}

// CellEdgeId holds a cell and the local index of one of its edges
type CellEdgeId struct {
	C   *Cell // cell
	Eid int   // edge local index
}

// MeshData holds the definition of a structured rectangular mesh
type MeshData struct {
	Xmin     float64 `yaml:"xmin"`     // left
	Ymin     float64 `yaml:"ymin"`     // bottom
	Xmax     float64 `yaml:"xmax"`     // right
	Ymax     float64 `yaml:"ymax"`     // top
	Nx       int     `yaml:"nx"`       // number of divisions along x
	Ny       int     `yaml:"ny"`       // number of divisions along y
	Type     string  `yaml:"type"`     // cell type: "tri3" or "qua4"
	Diagonal string  `yaml:"diagonal"` // tri3 only: "right" (bottom-left to top-right) or "left"
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from generator
	Verts []*Vertex // vertices
	Cells []*Cell   // cells

	// derived
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vertex    // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	EdgeTag2cells map[int][]CellEdgeId // edge tag => set of cells
	Ctype2cells   map[string][]*Cell   // cell type => set of cells
}

// GenRectangle generates a structured mesh over a rectangle
//
//   vertices are numbered row by row:  vid = j * (nx+1) + i
//
//     (nx+1)·ny ... (nx+1)·(ny+1)-1
//       ...
//       0  1  2  ...  nx
//
func GenRectangle(o *MeshData) (msh *Mesh, err error) {

	// check
	if o.Nx < 1 || o.Ny < 1 {
		return nil, chk.Err("number of divisions must be positive. nx=%d, ny=%d", o.Nx, o.Ny)
	}
	if o.Xmax <= o.Xmin || o.Ymax <= o.Ymin {
		return nil, chk.Err("rectangle is invalid: [%g,%g] x [%g,%g]", o.Xmin, o.Xmax, o.Ymin, o.Ymax)
	}
	if shp.Get(o.Type) == nil || o.Type == "lin2" {
		return nil, chk.Err("cell type %q is invalid. use tri3 or qua4", o.Type)
	}
	if o.Type == "tri3" && o.Diagonal != "right" && o.Diagonal != "left" {
		return nil, chk.Err("diagonal %q is invalid. use right or left", o.Diagonal)
	}

	// new mesh
	msh = new(Mesh)
	msh.Ndim = 2
	msh.Xmin, msh.Xmax = o.Xmin, o.Xmax
	msh.Ymin, msh.Ymax = o.Ymin, o.Ymax

	// vertices
	nvx, nvy := o.Nx+1, o.Ny+1
	msh.Verts = make([]*Vertex, nvx*nvy)
	for j := 0; j < nvy; j++ {
		for i := 0; i < nvx; i++ {
			vid := j*nvx + i
			x := o.Xmin + (o.Xmax-o.Xmin)*float64(i)/float64(o.Nx)
			y := o.Ymin + (o.Ymax-o.Ymin)*float64(j)/float64(o.Ny)
			tag := 0
			switch {
			case i == 0:
				tag = TagLeft
			case i == o.Nx:
				tag = TagRight
			case j == 0:
				tag = TagBottom
			case j == o.Ny:
				tag = TagTop
			}
			msh.Verts[vid] = &Vertex{Id: vid, Tag: tag, C: []float64{x, y}}
		}
	}

	// edge tags of cell (i,j)
	btag := func(j int) int {
		if j == 0 {
			return TagBottom
		}
		return 0
	}
	rtag := func(i int) int {
		if i == o.Nx-1 {
			return TagRight
		}
		return 0
	}
	ttag := func(j int) int {
		if j == o.Ny-1 {
			return TagTop
		}
		return 0
	}
	ltag := func(i int) int {
		if i == 0 {
			return TagLeft
		}
		return 0
	}

	// cells
	addcell := func(verts, etags []int) {
		cid := len(msh.Cells)
		msh.Cells = append(msh.Cells, &Cell{
			Id:       cid,
			Tag:      TagCells,
			Type:     o.Type,
			Verts:    verts,
			EdgeTags: etags,
			Shp:      shp.Get(o.Type),
		})
	}
	for j := 0; j < o.Ny; j++ {
		for i := 0; i < o.Nx; i++ {
			v0 := j*nvx + i // bottom-left
			v1 := v0 + 1    // bottom-right
			v2 := v1 + nvx  // top-right
			v3 := v0 + nvx  // top-left
			switch {
			case o.Type == "qua4":
				addcell([]int{v0, v1, v2, v3}, []int{btag(j), rtag(i), ttag(j), ltag(i)})
			case o.Diagonal == "right":
				addcell([]int{v0, v1, v2}, []int{btag(j), rtag(i), 0})
				addcell([]int{v0, v2, v3}, []int{0, ttag(j), ltag(i)})
			default:
				addcell([]int{v0, v1, v3}, []int{btag(j), 0, ltag(i)})
				addcell([]int{v1, v2, v3}, []int{rtag(i), ttag(j), 0})
			}
		}
	}

	// derived data
	msh.setMaps()
	return
}

// Boundary returns a predicate selecting points on a named boundary
//  name -- "left", "right", "bottom", "top" or "all"
//  eps  -- tolerance to compare coordinates
func (o *Mesh) Boundary(name string, eps float64) (pred func(x []float64) bool, err error) {
	switch name {
	case "left":
		pred = func(x []float64) bool { return x[0] < o.Xmin+eps }
	case "right":
		pred = func(x []float64) bool { return x[0] > o.Xmax-eps }
	case "bottom":
		pred = func(x []float64) bool { return x[1] < o.Ymin+eps }
	case "top":
		pred = func(x []float64) bool { return x[1] > o.Ymax-eps }
	case "all":
		pred = func(x []float64) bool {
			return x[0] < o.Xmin+eps || x[0] > o.Xmax-eps || x[1] < o.Ymin+eps || x[1] > o.Ymax-eps
		}
	default:
		err = chk.Err("boundary named %q is not available. use left, right, bottom, top or all", name)
	}
	return
}

// EdgeVerts returns the global vertex ids of a cell edge
func (o *Mesh) EdgeVerts(c *Cell, eid int) (vids []int) {
	for _, m := range c.Shp.FaceLocalVerts[eid] {
		vids = append(vids, c.Verts[m])
	}
	return
}

// EdgesWhere returns all boundary edges whose vertices satisfy pred
func (o *Mesh) EdgesWhere(pred func(x []float64) bool) (edges []CellEdgeId) {
	for _, c := range o.Cells {
		for eid := range c.Shp.FaceLocalVerts {
			if c.EdgeTags[eid] == 0 {
				continue // interior edge
			}
			ok := true
			for _, vid := range o.EdgeVerts(c, eid) {
				if !pred(o.Verts[vid].C) {
					ok = false
					break
				}
			}
			if ok {
				edges = append(edges, CellEdgeId{c, eid})
			}
		}
	}
	return
}

// VertsWhere returns all vertices satisfying pred
func (o *Mesh) VertsWhere(pred func(x []float64) bool) (verts []*Vertex) {
	for _, v := range o.Verts {
		if pred(v.C) {
			verts = append(verts, v)
		}
	}
	return
}

// String returns a summary of this mesh
func (o *Mesh) String() string {
	return io.Sf("mesh: %d vertices, %d cells, [%g,%g] x [%g,%g]", len(o.Verts), len(o.Cells), o.Xmin, o.Xmax, o.Ymin, o.Ymax)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// setMaps sets derived maps and limits
func (o *Mesh) setMaps() {
	o.VertTag2verts = make(map[int][]*Vertex)
	o.CellTag2cells = make(map[int][]*Cell)
	o.EdgeTag2cells = make(map[int][]CellEdgeId)
	o.Ctype2cells = make(map[string][]*Cell)
	o.Xmin, o.Ymin = math.Inf(1), math.Inf(1)
	o.Xmax, o.Ymax = math.Inf(-1), math.Inf(-1)
	for _, v := range o.Verts {
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
	}
	for _, c := range o.Cells {
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)
		for eid, etag := range c.EdgeTags {
			if etag < 0 {
				o.EdgeTag2cells[etag] = append(o.EdgeTag2cells[etag], CellEdgeId{c, eid})
			}
		}
	}
}
