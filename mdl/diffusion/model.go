// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements models to solve diffusion(-like) problems
package diffusion

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Model defines diffusion models
type Model interface {
	Init(ndim int, prms map[string]float64) error // Init initialises this structure
	Kval(u float64) float64                       // Kval computes the scalar multiplier k(u)
	DkDu(u float64) float64                       // DkDu computes dk/du
	Ktensor() [][]float64                         // Ktensor returns the constant conductivity tensor
}

// New diffusion model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'diffusion' database", name)
	}
	return allocator(), nil
}

// Names returns the sorted names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
