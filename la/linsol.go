// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"sort"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// LinSol defines the interface of linear solvers for systems given as triplets
type LinSol interface {
	InitR(tR *Triplet, symmetric, verbose, timing bool) (err error) // initialises solver with real matrix
	Fact() (err error)                                               // performs factorisation
	SolveR(xR, bR []float64, dummy bool) (err error)                 // solves the real system
	Free()                                                           // frees memory
}

// GetSolver returns a new linear solver by name; e.g. "lu" or "qr"
func GetSolver(name string) (sol LinSol, err error) {
	allocator, ok := lsAllocators[name]
	if !ok {
		return nil, chk.Err("cannot find linear solver named %q. available: %v", name, SolverNames())
	}
	return allocator(), nil
}

// SolverNames returns the sorted names of available linear solvers
func SolverNames() (names []string) {
	for name := range lsAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// CONDMAX is the largest condition number accepted by the dense solvers
const CONDMAX = 1e12

// lsAllocators holds all available linear solvers
var lsAllocators = map[string]func() LinSol{
	"lu": func() LinSol { return new(DenseLU) },
	"qr": func() LinSol { return new(DenseQR) },
}

// DenseLU solves linear systems with the LU factorisation (partial pivoting) of the dense form
type DenseLU struct {
	tR      *Triplet
	verbose bool
	timing  bool
	lu      mat.LU
	factord bool
}

// InitR initialises the solver
func (o *DenseLU) InitR(tR *Triplet, symmetric, verbose, timing bool) (err error) {
	if tR == nil {
		return chk.Err("DenseLU: triplet must not be nil")
	}
	m, n := tR.Size()
	if m != n || m == 0 {
		return chk.Err("DenseLU: matrix must be square and non-empty. (%d x %d) is invalid", m, n)
	}
	o.tR, o.verbose, o.timing = tR, verbose, timing
	o.factord = false
	return
}

// Fact performs the factorisation
func (o *DenseLU) Fact() (err error) {
	if o.tR == nil {
		return chk.Err("DenseLU: solver must be initialised before calling Fact")
	}
	t0 := time.Now()
	o.lu.Factorize(o.tR.ToDense())
	if o.timing {
		io.Pfcyan("DenseLU: time spent in factorisation = %v\n", time.Now().Sub(t0))
	}
	cond := o.lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) {
		return chk.Err("DenseLU: matrix is singular")
	}
	if cond > CONDMAX {
		return chk.Err("DenseLU: matrix is ill-conditioned. cond = %g > %g", cond, CONDMAX)
	}
	if o.verbose {
		io.Pf("DenseLU: condition number = %g\n", cond)
	}
	o.factord = true
	return
}

// SolveR solves the linear system with the factorised matrix
func (o *DenseLU) SolveR(xR, bR []float64, dummy bool) (err error) {
	if !o.factord {
		return chk.Err("DenseLU: Fact must be called before SolveR")
	}
	x, b, err := vectors(o.tR, xR, bR)
	if err != nil {
		return
	}
	err = o.lu.SolveVecTo(x, false, b)
	if err != nil {
		return chk.Err("DenseLU: solve failed:\n%v", err)
	}
	return
}

// Free clears the factorisation
func (o *DenseLU) Free() {
	o.lu = mat.LU{}
	o.factord = false
}

// DenseQR solves linear systems with the QR factorisation of the dense form
type DenseQR struct {
	tR      *Triplet
	timing  bool
	qr      mat.QR
	factord bool
}

// InitR initialises the solver
func (o *DenseQR) InitR(tR *Triplet, symmetric, verbose, timing bool) (err error) {
	if tR == nil {
		return chk.Err("DenseQR: triplet must not be nil")
	}
	m, n := tR.Size()
	if m != n || m == 0 {
		return chk.Err("DenseQR: matrix must be square and non-empty. (%d x %d) is invalid", m, n)
	}
	o.tR, o.timing = tR, timing
	o.factord = false
	return
}

// Fact performs the factorisation
func (o *DenseQR) Fact() (err error) {
	if o.tR == nil {
		return chk.Err("DenseQR: solver must be initialised before calling Fact")
	}
	t0 := time.Now()
	o.qr.Factorize(o.tR.ToDense())
	if o.timing {
		io.Pfcyan("DenseQR: time spent in factorisation = %v\n", time.Now().Sub(t0))
	}
	cond := o.qr.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > CONDMAX {
		return chk.Err("DenseQR: matrix is singular or ill-conditioned. cond = %g", cond)
	}
	o.factord = true
	return
}

// SolveR solves the linear system with the factorised matrix
func (o *DenseQR) SolveR(xR, bR []float64, dummy bool) (err error) {
	if !o.factord {
		return chk.Err("DenseQR: Fact must be called before SolveR")
	}
	x, b, err := vectors(o.tR, xR, bR)
	if err != nil {
		return
	}
	err = o.qr.SolveVecTo(x, false, b)
	if err != nil {
		return chk.Err("DenseQR: solve failed:\n%v", err)
	}
	return
}

// Free clears the factorisation
func (o *DenseQR) Free() {
	o.qr = mat.QR{}
	o.factord = false
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// vectors wraps x and b; x shares memory with xR
func vectors(tR *Triplet, xR, bR []float64) (x, b *mat.VecDense, err error) {
	m, _ := tR.Size()
	if len(xR) != m || len(bR) != m {
		err = chk.Err("vectors must have length %d. len(x)=%d, len(b)=%d", m, len(xR), len(bR))
		return
	}
	x = mat.NewVecDense(m, xR)
	b = mat.NewVecDense(m, bR)
	return
}
