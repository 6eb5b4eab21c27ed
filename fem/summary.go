// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Summary records summary of outputs
type Summary struct {
	Key      string    `yaml:"key"`      // simulation key
	Solver   string    `yaml:"solver"`   // solver type
	LinSol   string    `yaml:"linsol"`   // linear solver name
	Nverts   int       `yaml:"nverts"`   // number of vertices
	Ncells   int       `yaml:"ncells"`   // number of cells
	Ny       int       `yaml:"ny"`       // number of equations
	Nlam     int       `yaml:"nlam"`     // number of Lagrange multipliers
	NnzKb    int       `yaml:"nnzkb"`    // number of non-zeros in compressed Kb
	Niter    int       `yaml:"niter"`    // number of iterations
	Resids   []float64 `yaml:"resids"`   // max|fb| @ each iteration
	LinResid float64   `yaml:"linresid"` // max|Kb・δyb - fb| of last linear solve
	Umin     float64   `yaml:"umin"`     // min u @ nodes
	Umax     float64   `yaml:"umax"`     // max u @ nodes
	WxMin    float64   `yaml:"wxmin"`    // min x-flux @ integration points
	WxMax    float64   `yaml:"wxmax"`    // max x-flux @ integration points
	CpuTime  string    `yaml:"cputime"`  // elapsed time
	Success  bool      `yaml:"success"`  // solution was obtained
	Files    []string  `yaml:"files"`    // output files
}

// Collect collects results from domain
func (o *Summary) Collect(d *Domain, cputime time.Duration) (err error) {
	o.Key = d.Sim.Key
	o.Solver = d.Sim.Solver.Type
	o.LinSol = d.Sim.LinSol.Name
	o.Nverts = len(d.Msh.Verts)
	o.Ncells = len(d.Msh.Cells)
	o.Ny = d.Ny
	o.Nlam = d.Nlam
	o.CpuTime = cputime.String()
	if len(d.Sol.Y) > 0 {
		o.Umin, o.Umax = d.Sol.Y[0], d.Sol.Y[0]
		for _, u := range d.Sol.Y {
			if u < o.Umin {
				o.Umin = u
			}
			if u > o.Umax {
				o.Umax = u
			}
		}
	}
	ipvals, err := d.IpValues()
	if err != nil {
		return
	}
	if len(ipvals["wx"]) > 0 {
		o.WxMin, o.WxMax = ipvals.MinMax("wx")
	}
	return
}

// Save saves summary to <dirout>/<key>-summary.yaml
func (o *Summary) Save(dirout, key string) (fn string, err error) {
	b, err := yaml.Marshal(o)
	if err != nil {
		return "", chk.Err("cannot encode summary:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory:\n%v", err)
	}
	fn = filepath.Join(dirout, key+"-summary.yaml")
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return "", chk.Err("cannot save summary:\n%v", err)
	}
	return
}

// Read reads summary from <dirout>/<key>-summary.yaml
func (o *Summary) Read(dirout, key string) (err error) {
	b, err := os.ReadFile(filepath.Join(dirout, key+"-summary.yaml"))
	if err != nil {
		return chk.Err("cannot read summary:\n%v", err)
	}
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// String returns the summary in YAML format
func (o *Summary) String() string {
	b, err := yaml.Marshal(o)
	if err != nil {
		return io.Sf("summary cannot be encoded: %v", err)
	}
	return string(b)
}
