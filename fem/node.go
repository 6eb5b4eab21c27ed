// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/roj-anbar/PINNs-examples/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "u"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof      // degrees-of-freedom == solution variables
	Vert *inp.Vertex // pointer to Vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vertex) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof to node if it does not exist yet.
// It returns the next available equation number
func (o *Node) AddDofAndEq(ukey string, eqnum int) (nexteq int) {
	if o.GetDof(ukey) != nil {
		return eqnum
	}
	o.Dofs = append(o.Dofs, &Dof{Key: ukey, Eq: eqnum})
	return eqnum + 1
}

// GetDof returns the Dof structure for given Dof name (ukey).
// It returns nil if the key is not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == ukey {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (ukey).
// It returns -1 if the key is not found
func (o *Node) GetEq(ukey string) (eq int) {
	if d := o.GetDof(ukey); d != nil {
		return d.Eq
	}
	return -1
}

// String returns a representation of this node
func (o *Node) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"dofs\":[", o.Vert.Id, o.Vert.Tag)
	for i, d := range o.Dofs {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("[%q,%d]", d.Key, d.Eq)
	}
	return l + "]}"
}
