// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/roj-anbar/PINNs-examples/mdl/diffusion"

	"github.com/cpmech/gosl/chk"
)

// Material holds material data
type Material struct {
	Name  string             `yaml:"name"`  // name of material
	Desc  string             `yaml:"desc"`  // description of material
	Model string             `yaml:"model"` // name of model; e.g. "m1"
	Prms  map[string]float64 `yaml:"prms"`  // prms holds all model parameters for this material

	// derived
	Dif diffusion.Model `yaml:"-"` // model for diffusion problems
}

// MatDb implements a database of materials
type MatDb []*Material

// Get returns a material. It returns nil if material is not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Init allocates and initialises all models
func (o MatDb) Init(ndim int) (err error) {
	names := make(map[string]bool)
	for _, mat := range o {
		if names[mat.Name] {
			return chk.Err("material named %q is repeated", mat.Name)
		}
		names[mat.Name] = true
		mat.Dif, err = diffusion.New(mat.Model)
		if err != nil {
			return chk.Err("cannot allocate model for material %q:\n%v", mat.Name, err)
		}
		err = mat.Dif.Init(ndim, mat.Prms)
		if err != nil {
			return chk.Err("cannot initialise model for material %q:\n%v", mat.Name, err)
		}
	}
	return
}
