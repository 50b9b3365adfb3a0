// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/RaghuSivapuram/FinEALE/inp"
)

// DynCoefs holds the coefficients for dynamic simulations: the Rayleigh
// damping pair defining C = RayK*K + RayM*M and the reduction factor applied
// to the critical time step of the centred-difference scheme
type DynCoefs struct {
	RayK    float64 // Rayleigh damping coefficient multiplying K
	RayM    float64 // Rayleigh damping coefficient multiplying M
	StepRed float64 // step reduction factor; leaves a stability margin below 2/ω
}

// Init initialises the coefficients from the solver configuration
func (o *DynCoefs) Init(dat *inp.SolverData) {
	o.RayK = dat.RayK
	o.RayM = dat.RayM
	o.StepRed = dat.StepRed
}

// HasDamping tells whether the damping matrix is nonzero
func (o *DynCoefs) HasDamping() bool {
	return o.RayK != 0 || o.RayM != 0
}
