// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements constitutive models for diffusion problems
package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// M1 implements an isotropic linear diffusion model with constant
// conductivity and volumetric capacity
type M1 struct {
	Kcte float64 // isotropic conductivity
	Rho  float64 // capacity; e.g. ρ·cp in heat conduction
}

// Init initialises the model from a parameters set
func (o *M1) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "k":
			o.Kcte = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("diffusion.M1: parameter named %q is invalid", p.N)
		}
	}
	if o.Kcte < 0 {
		return chk.Err("diffusion.M1: conductivity must be non-negative. k=%g is invalid", o.Kcte)
	}
	if o.Rho < 0 {
		return chk.Err("diffusion.M1: capacity must be non-negative. rho=%g is invalid", o.Rho)
	}
	return
}
