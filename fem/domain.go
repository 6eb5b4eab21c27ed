// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/roj-anbar/PINNs-examples/ele"
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/la"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain holds all Nodes and Elements in addition to the Solution at nodes
type Domain struct {

	// init: auxiliary variables
	ShowMsg bool            // show messages
	Sim     *inp.Simulation // [from FEM] input data
	Msh     *inp.Mesh       // mesh data
	LinSol  la.LinSol       // linear solver

	// stage: nodes and elements
	Nodes []*Node       // all nodes. Note: indices in Nodes do NOT correpond to Ids => use Vid2node to access Nodes using Ids.
	Elems []ele.Element // all elements

	// stage: auxiliary maps for dofs and equation types
	F2Y   map[string]string // converts f-keys to y-keys; e.g.: "q" => "u"
	YandC map[string]bool   // y and constraints keys; e.g. "u"

	// stage: auxiliary maps for nodes and elements
	Vid2node []*Node       // [nverts] VertexId => index in Nodes
	Cid2elem []ele.Element // [ncells] CellId => index in Elems

	// stage: subsets of elements
	ElemOutIps []ele.CanOutputIps // elements that can output values @ integration points

	// stage: constraints
	EssenBcs EssentialBcs // constraints (Lagrange multipliers)

	// stage: dimensions
	NnzKb int // number of nonzeros in Kb matrix
	Ny    int // total number of dofs, except λ
	Nlam  int // total number of Lagrange multipliers
	NnzA  int // number of nonzeros in A (constraints) matrix
	Nyb   int // total number of equations: ny + nλ

	// stage: solution and linear solver
	Sol      *ele.Solution // solution state
	Kb       *la.Triplet   // Jacobian == dRdy
	Fb       []float64     // residual == -fb
	Wb       []float64     // workspace
	InitLSol bool          // flag telling that linear solver needs to be initialised prior to any further call
}

// NewDomain returns a new domain
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {
	if sim.Msh == nil {
		return nil, chk.Err("simulation must be initialised before allocating domain")
	}
	o = new(Domain)
	o.ShowMsg = verbose
	o.Sim = sim
	o.Msh = sim.Msh
	o.LinSol, err = la.GetSolver(sim.LinSol.Name)
	if err != nil {
		return nil, err
	}
	return
}

// Free frees memory
func (o *Domain) Free() {
	o.LinSol.Free()
	o.InitLSol = true // tell solver that linear solver has to be initialised before use
}

// SetStage set nodes, equation numbers and auxiliary data
func (o *Domain) SetStage() (err error) {

	// nodes and elements
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]ele.Element, 0)

	// auxiliary maps for dofs and equation types
	o.F2Y = make(map[string]string)
	o.YandC = make(map[string]bool)

	// auxiliary maps for nodes and elements
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]ele.Element, len(o.Msh.Cells))

	// subsets of elements
	o.ElemOutIps = make([]ele.CanOutputIps, 0)

	// allocate nodes and cells ---------------------------------------------------------------------

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	o.NnzKb = 0
	for _, cell := range o.Msh.Cells {

		// get element info
		info, err := ele.GetInfo(cell, o.Sim)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}
		chk.IntAssert(len(info.Dofs), len(cell.Verts))

		// store y and f information
		for ykey, fkey := range info.Y2F {
			o.F2Y[fkey] = ykey
			o.YandC[ykey] = true
		}

		// loop over nodes of this element
		for j, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs and equation numbers
			for _, ukey := range info.Dofs[j] {
				eq = nod.AddDofAndEq(ukey, eq)
			}
		}

		// number of non-zeros
		o.NnzKb += info.Nnzk

		// new element
		e, err := ele.New(cell, o.Sim)
		if err != nil {
			return chk.Err("new element failed:\n%v", err)
		}
		o.Cid2elem[cell.Id] = e
		o.Elems = append(o.Elems, e)

		// give equation numbers to new element
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			for _, dof := range o.Vid2node[v].Dofs {
				eqs[j] = append(eqs[j], dof.Eq)
			}
		}
		err = e.SetEqs(eqs)
		if err != nil {
			return chk.Err("cannot set element equations:\n%v", err)
		}

		// subsets of elements
		if eout, ok := e.(ele.CanOutputIps); ok {
			o.ElemOutIps = append(o.ElemOutIps, eout)
		}
	}

	// element conditions and essential boundary conditions -----------------------------------------

	// (re)set constraints
	o.EssenBcs.Init()

	// element conditions
	for _, ec := range o.Sim.EleConds {
		cells := o.Msh.Cells
		if ec.Tag != 0 {
			var ok bool
			cells, ok = o.Msh.CellTag2cells[ec.Tag]
			if !ok {
				return chk.Err("cannot find cells with tag = %d to assign conditions", ec.Tag)
			}
		}
		for _, cell := range cells {
			e := o.Cid2elem[cell.Id]
			if e == nil {
				continue // cell without element
			}
			for j, key := range ec.Keys {
				fcn, err := o.Sim.Functions.Get(ec.Funcs[j])
				if err != nil {
					return err
				}
				err = e.SetEleConds(key, fcn)
				if err != nil {
					return chk.Err("cannot set element condition:\n%v", err)
				}
			}
		}
	}

	// essential boundary conditions
	for _, bc := range o.Sim.EssenBcs {
		verts, err := o.EssenBcVerts(bc)
		if err != nil {
			return err
		}
		nodes := make([]*Node, len(verts))
		for i, v := range verts {
			nodes[i] = o.Vid2node[v.Id]
		}
		for j, key := range bc.Keys {
			if !o.YandC[key] {
				return chk.Err("essential boundary condition %q is not a solution variable", key)
			}
			fcn, err := o.Sim.Functions.Get(bc.Funcs[j])
			if err != nil {
				return err
			}
			err = o.EssenBcs.Set(key, nodes, fcn)
			if err != nil {
				return chk.Err("setting of essential boundary conditions failed:\n%v", err)
			}
		}
	}

	// resize slices --------------------------------------------------------------------------------

	// size of arrays
	o.Ny = eq
	o.Nlam, o.NnzA = o.EssenBcs.Build(o.Ny)
	o.Nyb = o.Ny + o.Nlam

	// solution structure
	o.Sol = ele.NewSolution(o.Ny, o.Nlam)

	// linear system and linear solver
	o.Kb = new(la.Triplet)
	o.Fb = make([]float64, o.Nyb)
	o.Wb = make([]float64, o.Nyb)
	o.Kb.Init(o.Nyb, o.Nyb, o.NnzKb+2*o.NnzA)
	o.InitLSol = true // tell solver that linear solver has to be initialised before use

	// message
	if o.ShowMsg {
		io.Pf(">> %v\n", o.Msh)
		io.Pf(">> Number of equations = %d\n", o.Ny)
		io.Pf(">> Number of Lagrange multipliers = %d\n", o.Nlam)
	}
	return
}

// SetIniVals sets/resets initial values
func (o *Domain) SetIniVals() (err error) {
	if o.Sol == nil {
		return chk.Err("stage must be set before setting initial values")
	}
	o.Sol.Reset()
	err = o.IniSetFunc()
	if err != nil {
		return chk.Err("cannot set initial values:\n%v", err)
	}
	if o.Sim.Data.ListBcs {
		io.Pf("%v", o.EssenBcs.List(o.Sol.T))
	}
	return
}

// EssenBcVerts returns the vertices selected by an essential boundary condition
func (o *Domain) EssenBcVerts(bc *inp.BcData) (verts []*inp.Vertex, err error) {
	if bc.Tag != 0 {
		var ok bool
		verts, ok = o.Msh.VertTag2verts[bc.Tag]
		if !ok {
			return nil, chk.Err("cannot find vertices with tag = %d to assign essential boundary conditions", bc.Tag)
		}
		return
	}
	pred, err := o.Msh.Boundary(bc.Where, o.Sim.Data.Eps)
	if err != nil {
		return
	}
	verts = o.Msh.VertsWhere(pred)
	if len(verts) == 0 {
		return nil, chk.Err("cannot find vertices on %q boundary to assign essential boundary conditions", bc.Where)
	}
	return
}

// NodalValues returns the values of a solution variable indexed by vertex id
func (o *Domain) NodalValues(ykey string) (vals []float64) {
	vals = make([]float64, len(o.Msh.Verts))
	for _, nod := range o.Nodes {
		eq := nod.GetEq(ykey)
		if eq >= 0 {
			vals[nod.Vert.Id] = o.Sol.Y[eq]
		} else {
			vals[nod.Vert.Id] = math.NaN()
		}
	}
	return
}

// IpValues collects the values @ integration points of all elements. key => values
func (o *Domain) IpValues() (vals ele.IpsMap, err error) {
	vals = make(ele.IpsMap)
	M := make(ele.IpsMap)
	for _, e := range o.ElemOutIps {
		err = e.OutIpVals(M, o.Sol)
		if err != nil {
			return nil, err
		}
		for key, v := range M {
			vals[key] = append(vals[key], v...)
		}
	}
	return
}

// assemble assembles the augmented Jacobian Kb and right-hand side fb
func (o *Domain) assemble(withKb, firstIt bool) (err error) {

	// right-hand side
	for i := 0; i < o.Nyb; i++ {
		o.Fb[i] = 0
	}
	for _, e := range o.Elems {
		err = e.AddToRhs(o.Fb, o.Sol)
		if err != nil {
			return
		}
	}
	o.EssenBcs.AddToRhs(o.Fb, o.Sol)
	if !withKb {
		return
	}

	// Jacobian
	o.Kb.Start()
	for _, e := range o.Elems {
		err = e.AddToKb(o.Kb, o.Sol, firstIt)
		if err != nil {
			return
		}
	}
	if o.Nlam > 0 {
		o.Kb.PutMatAndMatT(&o.EssenBcs.A)
	}
	return
}

// solve solves Kb・wb = fb and updates y and λ
func (o *Domain) solve() (err error) {

	// initialise linear solver
	if o.InitLSol {
		err = o.LinSol.InitR(o.Kb, o.Sim.LinSol.Symmetric, o.Sim.LinSol.Verbose, o.Sim.LinSol.Timing)
		if err != nil {
			return chk.Err("cannot initialise linear solver:\n%v", err)
		}
		o.InitLSol = false
	}

	// factorisation and solution
	err = o.LinSol.Fact()
	if err != nil {
		return chk.Err("factorisation failed:\n%v", err)
	}
	err = o.LinSol.SolveR(o.Wb, o.Fb, false)
	if err != nil {
		return chk.Err("solution of linear system failed:\n%v", err)
	}

	// update
	for i := 0; i < o.Ny; i++ {
		o.Sol.Y[i] += o.Wb[i]
		o.Sol.ΔY[i] += o.Wb[i]
	}
	for i := 0; i < o.Nlam; i++ {
		o.Sol.L[i] += o.Wb[o.Ny+i]
	}
	return
}
