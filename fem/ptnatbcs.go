// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PtNaturalBc holds one point load: a concentrated force applied directly to
// the equation of one DOF
type PtNaturalBc struct {
	Key string   // primary variable key; e.g. "fx" loads "ux"
	Dof *Dof     // loaded DOF
	Fcn fun.Func // load callback
}

// PtNaturalBcs holds point loads
type PtNaturalBcs struct {
	Bcs []*PtNaturalBc // all point loads
}

// Reset clears all point loads
func (o *PtNaturalBcs) Reset() {
	o.Bcs = nil
}

// Set adds point loads with given key at the given nodes. Load keys map to
// DOF keys by replacing the leading 'f' with 'u'; e.g. "fx" => "ux". The bare
// key "f" loads the scalar DOF "u"
func (o *PtNaturalBcs) Set(key string, nodes []*Node, fcn fun.Func) (err error) {
	if len(key) < 1 || key[0] != 'f' {
		return chk.Err("point load key %q is invalid; it must start with 'f'", key)
	}
	ukey := "u" + key[1:]
	for _, nod := range nodes {
		dof := nod.GetDof(ukey)
		if dof == nil {
			return chk.Err("cannot apply point load: node %d does not have DOF %q", nod.Vert.Id, ukey)
		}
		o.Bcs = append(o.Bcs, &PtNaturalBc{Key: key, Dof: dof, Fcn: fcn})
	}
	return
}

// HasTimeDep tells whether any point load varies with time
func (o *PtNaturalBcs) HasTimeDep() bool {
	for _, bc := range o.Bcs {
		if _, cte := bc.Fcn.(*fun.Cte); !cte {
			return true
		}
	}
	return false
}

// AddToRhs adds the point loads at time t to the global vector fb. Loads on
// fixed DOFs are dropped, consistently with the elimination of fixed rows
func (o *PtNaturalBcs) AddToRhs(fb []float64, t float64) {
	for _, bc := range o.Bcs {
		if bc.Dof.Eq >= 0 {
			fb[bc.Dof.Eq] += bc.Fcn.F(t, nil)
		}
	}
}
