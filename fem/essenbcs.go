// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// EssBc holds one essential boundary condition binding: a DOF and the
// function prescribing its value over time
type EssBc struct {
	Key string   // primary variable key; e.g. "ux"
	Dof *Dof     // bound DOF
	Fcn fun.Func // value callback
}

// EssentialBcs holds the essential (prescribed-value) boundary conditions.
// Bindings are kept in application order; when the same DOF is bound twice,
// the later binding wins because Apply runs in order
type EssentialBcs struct {
	Bcs []*EssBc // active bindings
}

// Reset clears all bindings
func (o *EssentialBcs) Reset() {
	o.Bcs = nil
}

// Set fixes (or, with free=true, releases) the DOF with given key at the
// given nodes. Nodes missing the key cause an error. Releasing also discards
// earlier bindings on the released DOFs
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn fun.Func, free bool) (err error) {
	for _, nod := range nodes {
		dof := nod.GetDof(key)
		if dof == nil {
			return chk.Err("cannot apply essential boundary condition: node %d does not have DOF %q", nod.Vert.Id, key)
		}
		if free {
			dof.Fixed = false
			o.discard(dof)
			continue
		}
		dof.Fixed = true
		o.Bcs = append(o.Bcs, &EssBc{Key: key, Dof: dof, Fcn: fcn})
	}
	return
}

// discard removes all bindings on dof
func (o *EssentialBcs) discard(dof *Dof) {
	k := 0
	for _, bc := range o.Bcs {
		if bc.Dof != dof {
			o.Bcs[k] = bc
			k++
		}
	}
	o.Bcs = o.Bcs[:k]
}

// HasTimeDep tells whether any prescribed value varies with time
func (o *EssentialBcs) HasTimeDep() bool {
	for _, bc := range o.Bcs {
		if _, cte := bc.Fcn.(*fun.Cte); !cte {
			return true
		}
	}
	return false
}

// Apply sets the prescribed values and velocities of all fixed DOFs at time t.
// Bindings are visited in application order, so the last one to touch a DOF
// determines its value
func (o *EssentialBcs) Apply(t float64) {
	for _, bc := range o.Bcs {
		bc.Dof.Pval = bc.Fcn.F(t, nil)
		bc.Dof.Pvel = bc.Fcn.G(t, nil)
	}
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	for _, bc := range o.Bcs {
		l += io.Sf("  eq=%d key=%q value=%g\n", bc.Dof.Eq, bc.Key, bc.Fcn.F(t, nil))
	}
	return
}
