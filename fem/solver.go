// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/RaghuSivapuram/FinEALE/ele"

	"github.com/cpmech/gosl/chk"
)

// Observer is called once per committed time step with the current solution
// state. The state must be treated as read-only
type Observer func(sol *ele.Solution)

// Solver implements the time loop
type Solver interface {
	Run(tf float64, obs Observer) error
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(dom *Domain) Solver)

// NewSolver returns a solver from the factory
func NewSolver(stype string, dom *Domain) (Solver, error) {
	alloc, ok := solverallocators[stype]
	if !ok {
		return nil, chk.Err("cannot find solver %q", stype)
	}
	return alloc(dom), nil
}
