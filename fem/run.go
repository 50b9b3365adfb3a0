// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element core: DOF bookkeeping, boundary
// condition processing, global assembly and time integration
package fem

import (
	"github.com/RaghuSivapuram/FinEALE/inp"

	"github.com/sirupsen/logrus"
)

// Run runs all stages of a simulation, calling obs (if non-nil) once per
// committed time step
func Run(sim *inp.Simulation, obs Observer) (err error) {
	dom := NewDomain(sim)
	for i, stg := range sim.Stages {
		if stg.Skip {
			logrus.Infof("skipping stage %d (%s)", i, stg.Name)
			continue
		}
		if err = dom.SetStage(i); err != nil {
			return
		}
		if err = dom.AssembleKM(); err != nil {
			return
		}
		logrus.Infof("stage %d (%s): ny=%d nfix=%d tf=%g", i, stg.Name, dom.Ny, dom.Nfix, stg.Tf)
		solver, serr := NewSolver(sim.Solver.Type, dom)
		if serr != nil {
			return serr
		}
		if err = solver.Run(stg.Tf, obs); err != nil {
			return
		}
	}
	return
}
