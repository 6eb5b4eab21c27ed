// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the FEM solver
package fem

import (
	"time"

	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	// elements
	_ "github.com/roj-anbar/PINNs-examples/ele/diffusion"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Domain  *Domain         // the domain
	Solver  Solver          // finite element method solver; e.g. linear or Newton-Raphson
	DebugKb DebugKb_t       // debug Kb callback function
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   sim     -- simulation data; e.g. from inp.ReadSim or inp.Default. Init is called here
//   verbose -- show messages
func NewMain(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose

	// initialise input data
	err = o.Sim.Init()
	if err != nil {
		return nil, chk.Err("cannot initialise simulation input data:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}

	// allocate domain
	o.Domain, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}

	// allocate solver
	o.Summary = new(Summary)
	if alloc, ok := allocators[o.Sim.Solver.Type]; ok {
		o.Solver = alloc(o.Domain, o.Summary)
	} else {
		return nil, chk.Err("cannot find solver type named %q. available: %v", o.Sim.Solver.Type, SolverNames())
	}
	return
}

// Run runs FE simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// set stage
	err = o.SetStage()
	if err != nil {
		return
	}

	// initialise solution vectors
	err = o.ZeroStage()
	if err != nil {
		return
	}

	// run
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}
	err = o.Solver.Run(o.ShowMsg, o.DebugKb)
	if err != nil {
		return
	}

	// summary and output
	err = o.Summary.Collect(o.Domain, time.Now().Sub(cputime))
	if err != nil {
		return
	}
	o.Summary.Files, err = o.WriteOutput()
	return
}

// SetStage sets nodes, elements and boundary conditions
func (o *Main) SetStage() (err error) {
	if o.ShowMsg {
		io.Pf("> Setting stage\n")
	}
	return o.Domain.SetStage()
}

// ZeroStage zeroes solution varaibles
func (o *Main) ZeroStage() (err error) {
	if o.ShowMsg {
		io.Pf("> Zeroing stage\n")
	}
	return o.Domain.SetIniVals()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit clean domain, prints final message with cpu time and save summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// clean resources
	o.Domain.Free()

	// show final message
	o.Summary.Success = prevErr == nil
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Sim.Output.Summary {
		var fn string
		fn, err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key)
		if err != nil {
			if prevErr != nil {
				return prevErr
			}
			return
		}
		if o.ShowMsg {
			io.Pf("> Summary saved in %s\n", fn)
		}
	}

	// return previous error
	if prevErr != nil {
		err = prevErr
	}
	return
}
