// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the dynamic state: displacement, velocity and acceleration
// of all free DOFs, ordered by equation number, plus the current time and the
// number of committed steps. The time integrator is the single writer;
// observers receive it read-only once per committed step
type Solution struct {

	// current state
	T     float64   // current time
	Steps int       // number of committed steps
	U     []float64 // primary variables; e.g. displacements
	V     []float64 // dU/dt
	A     []float64 // d²U/dt²

	// constants
	DynCfs *DynCoefs // coefficients for dynamic simulations
}

// Reset zeroes the state
func (o *Solution) Reset() {
	o.T = 0
	o.Steps = 0
	for i := 0; i < len(o.U); i++ {
		o.U[i] = 0
		o.V[i] = 0
		o.A[i] = 0
	}
}
