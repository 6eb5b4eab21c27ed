// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements elements for diffusion problems
package diffusion

import (
	"github.com/roj-anbar/PINNs-examples/ele"
	"github.com/roj-anbar/PINNs-examples/inp"
	"github.com/roj-anbar/PINNs-examples/la"
	"github.com/roj-anbar/PINNs-examples/mdl/diffusion"
	"github.com/roj-anbar/PINNs-examples/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Diffusion implements an element for solving the steady diffusion equation expressed as
//
//                                      du
//   div w = s      with      w = -k(u) ──
//                                      dx
//
// Natural boundary conditions:
//
//   g:  k(u) du/dn = g   (enters the right-hand side as +∫ g v ds)
//   qb: w·n = qb         (outward flux; qb = -g)
//
type Diffusion struct {

	// basic data
	Cell *inp.Cell       // the cell structure
	X    [][]float64     // matrix of nodal coordinates [ndim][nnode]
	Ndim int             // space dimension
	Umap []int           // assembly map (location array/element equations)
	Mdl  diffusion.Model // model
	Sfun inp.Func        // s(x) function

	// integration points
	IpsElem []shp.Ipoint // integration points of element
	IpsFace []shp.Ipoint // integration points corresponding to faces

	// natural boundary conditions
	NatBcs []*ele.NaturalBc // natural boundary conditions

	// scratchpad
	Xip   []float64   // real coordinates of ip
	Uval  float64     // u(x) scalar field @ ip
	Gradu []float64   // [ndim] ∇u(x): gradient of u @ ip
	Wvec  []float64   // [ndim] w(x) vector @ ip
	Tmp   []float64   // auxiliary vector
	K     [][]float64 // Jacobian matrix
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("diffusion", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info
		nverts := cell.Shp.Nverts

		// solution variables
		ykeys := []string{"u"}
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}

		// Y2F map and number of non-zeros
		info.Y2F = map[string]string{"u": "q"}
		info.Nnzk = nverts * nverts
		return &info
	})

	// element allocator
	ele.SetAllocator("diffusion", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (ele.Element, error) {

		// basic data
		var o Diffusion
		o.Cell = cell
		o.X = x
		o.Ndim = sim.Ndim

		// integration points
		var err error
		o.IpsElem, o.IpsFace, err = o.Cell.Shp.GetIps(edat.Nip, edat.Nipf)
		if err != nil {
			return nil, chk.Err("cannot allocate integration points of diffusion element with nip=%d and nipf=%d:\n%v", edat.Nip, edat.Nipf, err)
		}

		// model
		mat := sim.Materials.Get(edat.Mat)
		if mat == nil || mat.Dif == nil {
			return nil, chk.Err("cannot get model for diffusion element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		o.Mdl = mat.Dif

		// set natural boundary conditions
		o.NatBcs = ele.GetNaturalBcs(cell)
		for _, nbc := range o.NatBcs {
			if nbc.Key != "g" && nbc.Key != "qb" {
				return nil, chk.Err("natural boundary condition %q is not available in diffusion element. use g or qb", nbc.Key)
			}
		}

		// scratchpad
		nverts := cell.Shp.Nverts
		o.Xip = make([]float64, o.Ndim)
		o.Gradu = make([]float64, o.Ndim)
		o.Wvec = make([]float64, o.Ndim)
		o.Tmp = make([]float64, o.Ndim)
		o.K = utl.Alloc(nverts, nverts)
		return &o, nil
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Diffusion) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Diffusion) SetEqs(eqs [][]int) (err error) {
	nverts := o.Cell.Shp.Nverts
	if len(eqs) != nverts {
		return chk.Err("diffusion element %d needs %d equation sets; %d is invalid", o.Id(), nverts, len(eqs))
	}
	o.Umap = make([]int, nverts)
	for m := 0; m < nverts; m++ {
		o.Umap[m] = eqs[m][0]
	}
	return
}

// SetEleConds sets element conditions
func (o *Diffusion) SetEleConds(key string, f inp.Func) (err error) {
	if key != "s" {
		return chk.Err("element condition %q is not available in diffusion element. use s", key)
	}
	o.Sfun = f
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Diffusion) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// for each integration point
	nverts := o.Cell.Shp.Nverts
	Kcte := o.Mdl.Ktensor()
	var coef, kval, sval float64
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and variables @ ip
		err = o.ipvars(idx, sol)
		if err != nil {
			return
		}
		coef = o.Cell.Shp.J * ip[3]
		S := o.Cell.Shp.S
		G := o.Cell.Shp.G
		kval = o.Mdl.Kval(o.Uval)
		sval = 0
		if o.Sfun != nil {
			sval = o.Sfun.F(sol.T, o.Xip)
		}

		// compute Wvec
		for i := 0; i < o.Ndim; i++ {
			o.Wvec[i] = 0
			for j := 0; j < o.Ndim; j++ {
				o.Wvec[i] -= kval * Kcte[i][j] * o.Gradu[j]
			}
		}

		// add negative of residual term to fb
		for m := 0; m < nverts; m++ {
			r := o.Umap[m]
			fb[r] += coef * S[m] * sval // + fext
			for i := 0; i < o.Ndim; i++ {
				fb[r] += coef * G[m][i] * o.Wvec[i] // - fint
			}
		}
	}

	// contribution from natural boundary conditions
	if len(o.NatBcs) > 0 {
		return o.add_natbcs_to_rhs(fb, sol)
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Diffusion) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {

	// clear matrices
	for i := 0; i < len(o.K); i++ {
		for j := 0; j < len(o.K[i]); j++ {
			o.K[i][j] = 0
		}
	}

	// for each integration point
	nverts := o.Cell.Shp.Nverts
	Kcte := o.Mdl.Ktensor()
	var coef, kval, dkdu float64
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and variables @ ip
		err = o.ipvars(idx, sol)
		if err != nil {
			return
		}
		coef = o.Cell.Shp.J * ip[3]
		S := o.Cell.Shp.S
		G := o.Cell.Shp.G
		kval = o.Mdl.Kval(o.Uval)
		dkdu = o.Mdl.DkDu(o.Uval)

		// K := dR/du
		for n := 0; n < nverts; n++ {
			for j := 0; j < o.Ndim; j++ {
				o.Tmp[j] = S[n]*dkdu*o.Gradu[j] + kval*G[n][j]
			}
			for m := 0; m < nverts; m++ {
				for i := 0; i < o.Ndim; i++ {
					for j := 0; j < o.Ndim; j++ {
						o.K[m][n] += coef * G[m][i] * Kcte[i][j] * o.Tmp[j]
					}
				}
			}
		}
	}

	// add to sparse matrix Kb
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// output ///////////////////////////////////////////////////////////////////////////////////////////

// OutIpCoords returns the coordinates of integration points
func (o *Diffusion) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.Cell.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Diffusion) OutIpKeys() []string {
	return []string{"wx", "wy"}
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Diffusion) OutIpVals(M ele.IpsMap, sol *ele.Solution) (err error) {
	nip := len(o.IpsElem)
	Kcte := o.Mdl.Ktensor()
	for idx := range o.IpsElem {
		err = o.ipvars(idx, sol)
		if err != nil {
			return
		}
		kval := o.Mdl.Kval(o.Uval)
		for i, key := range o.OutIpKeys() {
			w := 0.0
			for j := 0; j < o.Ndim; j++ {
				w -= kval * Kcte[i][j] * o.Gradu[j]
			}
			M.Set(key, idx, nip, w)
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipvars computes current values @ integration points. idx == index of integration point
func (o *Diffusion) ipvars(idx int, sol *ele.Solution) (err error) {

	// interpolation functions and gradients
	err = o.Cell.Shp.CalcAtIp(o.X, o.IpsElem[idx], true)
	if err != nil {
		return chk.Err("diffusion element %d:\n%v", o.Id(), err)
	}

	// clear Uval and its gradient @ ip
	o.Uval = 0
	for i := 0; i < o.Ndim; i++ {
		o.Gradu[i] = 0
		o.Xip[i] = 0
	}

	// compute u and its gradient @ ip by means of interpolating from nodes
	for m := 0; m < o.Cell.Shp.Nverts; m++ {
		r := o.Umap[m]
		o.Uval += o.Cell.Shp.S[m] * sol.Y[r]
		for i := 0; i < o.Ndim; i++ {
			o.Gradu[i] += o.Cell.Shp.G[m][i] * sol.Y[r]
			o.Xip[i] += o.Cell.Shp.S[m] * o.X[i][m]
		}
	}
	return
}

// add_natbcs_to_rhs adds natural boundary conditions to rhs
func (o *Diffusion) add_natbcs_to_rhs(fb []float64, sol *ele.Solution) (err error) {

	// compute surface integral
	var qb float64
	for _, nbc := range o.NatBcs {

		// loop over ips of face
		iface := nbc.IdxFace
		for _, ipf := range o.IpsFace {

			// specified flux @ face ip
			xf := o.Cell.Shp.FaceIpRealCoords(o.X, ipf, iface)
			qb = nbc.Fcn.F(sol.T, xf)

			// interpolation functions and gradients @ face
			err = o.Cell.Shp.CalcAtFaceIp(o.X, ipf, iface)
			if err != nil {
				return chk.Err("diffusion element %d:\n%v", o.Id(), err)
			}
			Sf := o.Cell.Shp.Sf
			coef := ipf[3] * o.Cell.Shp.Jf

			// select natural boundary condition type
			switch nbc.Key {

			// k du/dn prescribed
			case "g":
				for i, m := range o.Cell.Shp.FaceLocalVerts[iface] {
					fb[o.Umap[m]] += coef * qb * Sf[i]
				}

			// outward flux prescribed
			case "qb":
				for i, m := range o.Cell.Shp.FaceLocalVerts[iface] {
					fb[o.Umap[m]] -= coef * qb * Sf[i]
				}
			}
		}
	}
	return
}
