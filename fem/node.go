// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/RaghuSivapuram/FinEALE/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about one degree-of-freedom == one unknown variable
type Dof struct {

	// essential
	Key string // primary variable key; e.g. "ux"
	Eq  int    // equation number: >= 0 for free DOFs; -slot-1 for fixed DOFs

	// fixed DOF data
	Fixed bool    // essential boundary condition is applied
	Pval  float64 // current prescribed value (updated by EssentialBcs.Apply)
	Pvel  float64 // current prescribed velocity
}

// String returns the string representation of this Dof
func (o *Dof) String() string {
	return io.Sf("{%q eq=%d fixed=%v}", o.Key, o.Eq, o.Fixed)
}

// Node holds the DOFs of one vertex
type Node struct {
	Dofs []*Dof    // degrees-of-freedom, in key-registration order
	Vert *inp.Vert // pointer to mesh vertex
}

// NewNode allocates a new node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDof adds a new DOF to the node; it does nothing if the key exists
// already. Equation numbers are assigned later by Domain.AssignEqs
func (o *Node) AddDof(key string) {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return
		}
	}
	o.Dofs = append(o.Dofs, &Dof{Key: key, Eq: -1})
}

// GetDof returns the DOF with given key; nil if not found
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of the DOF with given key; ok is false
// if the key is not present in this node
func (o *Node) GetEq(key string) (eq int, ok bool) {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof.Eq, true
		}
	}
	return
}
