// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) YAML or JSON file
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string  `yaml:"desc"`    // description of simulation
	Key     string  `yaml:"key"`     // key of output files; e.g. "poisson" => poisson.pvd. default: filename key
	DirOut  string  `yaml:"dirout"`  // directory for output; e.g. /tmp/pfem
	Eps     float64 `yaml:"eps"`     // tolerance of boundary predicates; e.g. x < xmin + eps
	ListBcs bool    `yaml:"listbcs"` // list boundary conditions
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `yaml:"name"`      // "lu" or "qr"
	Symmetric bool   `yaml:"symmetric"` // use symmetric solver (ignored by dense solvers)
	Verbose   bool   `yaml:"verbose"`   // verbose?
	Timing    bool   `yaml:"timing"`    // show timing statistics
}

// SolverData holds FEM solver data
type SolverData struct {
	Type   string  `yaml:"type"`   // solver type: "lin-imp" (one linear solve) or "imp" (Newton-Raphson)
	NmaxIt int     `yaml:"nmaxit"` // number of max iterations
	Atol   float64 `yaml:"atol"`   // absolute tolerance
	Rtol   float64 `yaml:"rtol"`   // relative tolerance
	ShowR  bool    `yaml:"showr"`  // show residual
}

// ElemData holds element data
type ElemData struct {
	Tag  int    `yaml:"tag"`  // tag of cells; 0 => all cells
	Mat  string `yaml:"mat"`  // material name
	Type string `yaml:"type"` // type of element. ex: diffusion
	Nip  int    `yaml:"nip"`  // number of integration points; 0 => use default
	Nipf int    `yaml:"nipf"` // number of integration points on face; 0 => use default
}

// BcData holds boundary condition data. Entities are selected by tag when Tag != 0 or by
// the named boundary predicate in Where
type BcData struct {
	Tag   int      `yaml:"tag"`   // tag of vertex (essential) or edge (natural)
	Where string   `yaml:"where"` // named boundary: left, right, bottom, top or all
	Keys  []string `yaml:"keys"`  // key indicating type of bcs. ex: u (essential), g (natural)
	Funcs []string `yaml:"funcs"` // name of function. ex: zero, uleft, etc.
}

// EleCond holds element condition
type EleCond struct {
	Tag   int      `yaml:"tag"`   // tag of cells; 0 => all cells
	Keys  []string `yaml:"keys"`  // key indicating type of condition. ex: "s" (source)
	Funcs []string `yaml:"funcs"` // name of function. ex: source, none
}

// IniFcnData holds data for setting initial values by means of functions
type IniFcnData struct {
	Dofs []string `yaml:"dofs"` // degrees of freedom; e.g. u
	Fcns []string `yaml:"fcns"` // name of functions. ex: uini
}

// OutputData holds data for output files
type OutputData struct {
	Pvd     bool `yaml:"pvd"`     // write <key>.pvd and <key>000000.vtu
	Table   bool `yaml:"table"`   // write <key>.csv with x, y and u @ nodes
	Summary bool `yaml:"summary"` // write <key>-summary.yaml
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `yaml:"data"`      // stores global simulation data
	Mesh      MeshData    `yaml:"mesh"`      // structured mesh definition
	Materials MatDb       `yaml:"materials"` // materials
	Functions FuncsData   `yaml:"functions"` // stores all boundary condition functions
	Elem      ElemData    `yaml:"elem"`      // element data
	EleConds  []*EleCond  `yaml:"eleconds"`  // element conditions. ex: source
	EssenBcs  []*BcData   `yaml:"essenbcs"`  // essential (Dirichlet) boundary conditions
	NatBcs    []*BcData   `yaml:"natbcs"`    // natural (Neumann) boundary conditions
	IniFcn    IniFcnData  `yaml:"inifcn"`    // initial values; e.g. initial guess for Newton-Raphson
	Solver    SolverData  `yaml:"solver"`    // FEM solver data
	LinSol    LinSolData  `yaml:"linsol"`    // linear solver data
	Output    OutputData  `yaml:"output"`    // output data

	// derived
	Ndim   int    `yaml:"-"` // space dimension
	Key    string `yaml:"-"` // simulation key; e.g. poisson
	DirOut string `yaml:"-"` // directory to save results
	Msh    *Mesh  `yaml:"-"` // the mesh
}

// Default returns the built-in problem:
//
//   -∇·(k∇u) = f  in  [0,1] × [0,0.5]
//
//   u = 0.2 @ x = 0,   u = 1 @ x = 1,   k ∂u/∂n = 0 elsewhere
//
//   k = 1,  f = -10,  32 × 32 divisions, tri3 cells
//
func Default() *Simulation {
	return &Simulation{
		Data: Data{
			Desc:   "2D diffusion with constant source. Dirichlet on left and right; homogeneous Neumann on top and bottom",
			Key:    "poisson",
			DirOut: ".",
			Eps:    1e-12,
		},
		Mesh: MeshData{
			Xmin: 0, Ymin: 0, Xmax: 1, Ymax: 0.5,
			Nx: 32, Ny: 32,
			Type:     "tri3",
			Diagonal: "right",
		},
		Materials: MatDb{
			{Name: "unit", Desc: "unit conductivity", Model: "m1", Prms: map[string]float64{"k": 1}},
		},
		Functions: FuncsData{
			{Name: "uleft", Type: "cte", Prms: map[string]float64{"c": 0.2}},
			{Name: "uright", Type: "cte", Prms: map[string]float64{"c": 1.0}},
			{Name: "source", Type: "cte", Prms: map[string]float64{"c": -10.0}},
			{Name: "flux", Type: "cte", Prms: map[string]float64{"c": 0.0}},
		},
		Elem: ElemData{Type: "diffusion", Mat: "unit"},
		EleConds: []*EleCond{
			{Tag: TagCells, Keys: []string{"s"}, Funcs: []string{"source"}},
		},
		EssenBcs: []*BcData{
			{Where: "left", Keys: []string{"u"}, Funcs: []string{"uleft"}},
			{Where: "right", Keys: []string{"u"}, Funcs: []string{"uright"}},
		},
		NatBcs: []*BcData{
			{Where: "all", Keys: []string{"g"}, Funcs: []string{"flux"}},
		},
		Solver: SolverData{Type: "lin-imp", NmaxIt: 20, Atol: 1e-10, Rtol: 1e-10},
		LinSol: LinSolData{Name: "lu"},
		Output: OutputData{Pvd: true},
	}
}

// ReadSim reads a simulation file (YAML or JSON) on top of the defaults.
// The resulting structure must be initialised with Init before use
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode over defaults
	o = Default()
	o.Data.Key = ""
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	if o.Data.Key == "" {
		o.Data.Key = io.FnKey(filepath.Base(simfilepath))
	}
	return
}

// Encode returns the YAML representation of the input data
func (o *Simulation) Encode() (b []byte, err error) {
	b, err = yaml.Marshal(o)
	if err != nil {
		err = chk.Err("cannot encode simulation data:\n%v", err)
	}
	return
}

// Init checks input data and derives the mesh, models and output locations
func (o *Simulation) Init() (err error) {

	// key and output directory
	o.Key = o.Data.Key
	if o.Key == "" {
		return chk.Err("data.key must not be empty")
	}
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "."
	}
	if o.Data.Eps <= 0 {
		return chk.Err("data.eps must be positive. eps=%g is invalid", o.Data.Eps)
	}

	// mesh
	o.Msh, err = GenRectangle(&o.Mesh)
	if err != nil {
		return chk.Err("cannot generate mesh:\n%v", err)
	}
	o.Ndim = o.Msh.Ndim

	// materials
	err = o.Materials.Init(o.Ndim)
	if err != nil {
		return
	}
	if o.Materials.Get(o.Elem.Mat) == nil {
		return chk.Err("cannot find material named %q", o.Elem.Mat)
	}
	if o.Elem.Type == "" {
		return chk.Err("elem.type must not be empty")
	}

	// functions
	names := make(map[string]bool)
	for _, f := range o.Functions {
		if names[f.Name] {
			return chk.Err("function named %q is repeated", f.Name)
		}
		names[f.Name] = true
		if _, err = o.Functions.Get(f.Name); err != nil {
			return
		}
	}

	// conditions
	for _, ec := range o.EleConds {
		if err = o.checkKeysFuncs("element condition", ec.Keys, ec.Funcs); err != nil {
			return
		}
	}
	for _, bcs := range [][]*BcData{o.EssenBcs, o.NatBcs} {
		for _, bc := range bcs {
			if err = o.checkKeysFuncs("boundary condition", bc.Keys, bc.Funcs); err != nil {
				return
			}
			if bc.Tag == 0 {
				if _, err = o.Msh.Boundary(bc.Where, o.Data.Eps); err != nil {
					return
				}
			}
		}
	}

	if err = o.checkKeysFuncs("initial values", o.IniFcn.Dofs, o.IniFcn.Fcns); err != nil {
		return
	}

	// natural boundary conditions
	err = o.setFaceBcs()
	if err != nil {
		return
	}

	// solver
	if o.Solver.NmaxIt < 1 {
		return chk.Err("solver.nmaxit must be at least 1. nmaxit=%d is invalid", o.Solver.NmaxIt)
	}
	if o.Solver.Atol <= 0 || o.Solver.Rtol < 0 {
		return chk.Err("solver tolerances are invalid. atol=%g, rtol=%g", o.Solver.Atol, o.Solver.Rtol)
	}
	return
}

// Fnpath returns the path of an output file with the simulation key; e.g. /tmp/pfem/poisson.pvd
func (o *Simulation) Fnpath(suffix string) string {
	return filepath.Join(o.DirOut, o.Key+suffix)
}

// NatBcEdges returns the cell edges selected by a boundary condition
func (o *Simulation) NatBcEdges(bc *BcData) (edges []CellEdgeId, err error) {
	if bc.Tag != 0 {
		edges = o.Msh.EdgeTag2cells[bc.Tag]
		if len(edges) == 0 {
			err = chk.Err("cannot find edges with tag = %d", bc.Tag)
		}
		return
	}
	pred, err := o.Msh.Boundary(bc.Where, o.Data.Eps)
	if err != nil {
		return
	}
	edges = o.Msh.EdgesWhere(pred)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// checkKeysFuncs checks that keys and functions match
func (o *Simulation) checkKeysFuncs(what string, keys, funcs []string) (err error) {
	if len(keys) != len(funcs) {
		return chk.Err("%s: number of keys (%d) must be equal to number of functions (%d)", what, len(keys), len(funcs))
	}
	for _, name := range funcs {
		if _, err = o.Functions.Get(name); err != nil {
			return chk.Err("%s:\n%v", what, err)
		}
	}
	return
}

// setFaceBcs attaches natural boundary conditions to cells
func (o *Simulation) setFaceBcs() (err error) {
	for _, c := range o.Msh.Cells {
		c.FaceBcs = nil
	}
	for _, bc := range o.NatBcs {
		edges, err := o.NatBcEdges(bc)
		if err != nil {
			return chk.Err("natural boundary condition:\n%v", err)
		}
		for i, key := range bc.Keys {
			fcn, err := o.Functions.Get(bc.Funcs[i])
			if err != nil {
				return err
			}
			for _, e := range edges {
				e.C.FaceBcs = append(e.C.FaceBcs, &FaceBc{Key: key, FaceId: e.Eid, Func: fcn})
			}
		}
	}
	return
}
