// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"strings"
	"testing"

	"github.com/RaghuSivapuram/FinEALE/ana"
	"github.com/RaghuSivapuram/FinEALE/ele"
	"github.com/RaghuSivapuram/FinEALE/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// runStage initialises the simulation, sets the stage and runs the solver
func runStage(tst *testing.T, sim *inp.Simulation, obs Observer) (*Domain, error) {
	dom := mustSetStage(tst, sim)
	if err := dom.AssembleKM(); err != nil {
		tst.Errorf("AssembleKM failed: %v\n", err)
		tst.FailNow()
	}
	solver, err := NewSolver(sim.Solver.Type, dom)
	if err != nil {
		tst.Errorf("NewSolver failed: %v\n", err)
		tst.FailNow()
	}
	return dom, solver.Run(sim.Stages[0].Tf, obs)
}

func Test_exp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp01. single free mass under constant load")

	// one lin2 element with zero stiffness: node 0 fixed, node 1 is a free
	// unit mass loaded by a constant unit force; U(t) = t²/2
	sim := newBarSim(2, 0, 2)
	sim.Solver.Dt = 0.1
	sim.Solver.Tend = 1
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	sim.Stages[0].Ploads = []*inp.PloadData{{Key: "fx", Vtags: []int{-200}, Value: 1}}

	// constant acceleration is integrated exactly, so every committed step
	// must match the closed form, not just the final state
	ref := ana.ConstForceMass{M: 1, F: 1}
	dom, err := runStage(tst, sim, func(sol *ele.Solution) {
		if math.Abs(sol.U[0]-ref.Disp(sol.T)) > 1e-13 || math.Abs(sol.V[0]-ref.Vel(sol.T)) > 1e-13 {
			tst.Errorf("trajectory deviates from the closed form. t=%g U=%g V=%g\n", sol.T, sol.U[0], sol.V[0])
			tst.FailNow()
		}
	})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.IntAssert(dom.Sol.Steps, 10)
	chk.Scalar(tst, "t(end)", 1e-17, dom.Sol.T, 1.0)
	chk.Scalar(tst, "U(1)", 1e-13, dom.Sol.U[0], ref.Disp(1))
	chk.Scalar(tst, "V(1)", 1e-13, dom.Sol.V[0], ref.Vel(1))
}

func Test_exp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp02. last step lands exactly on the end time")

	sim := newBarSim(2, 0, 2)
	sim.Solver.Dt = 0.37
	sim.Solver.Tend = 1
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}

	var times []float64
	dom, err := runStage(tst, sim, func(sol *ele.Solution) {
		times = append(times, sol.T)
	})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.IntAssert(len(times), 3)
	chk.Scalar(tst, "Δt1", 1e-15, times[0], 0.37)
	chk.Scalar(tst, "Δt2", 1e-15, times[1]-times[0], 0.37)
	chk.Scalar(tst, "Δt3", 1e-12, times[2]-times[1], 0.26)
	if dom.Sol.T != 1.0 {
		tst.Errorf("end time must be reached exactly. t=%v\n", dom.Sol.T)
	}
}

func Test_exp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp03. fixed-fixed bar stays at rest")

	// both ends fixed, no load: the middle node must not move at all
	sim := newBarSim(3, 100, 2)
	sim.Solver.Dt = 0.01
	sim.Solver.Tend = 1
	sim.Stages[0].Ebcs = []*inp.EbcData{
		{Key: "ux", Vtags: []int{-100}},
		{Key: "ux", Vtags: []int{-200}},
	}
	dom, err := runStage(tst, sim, func(sol *ele.Solution) {
		for i := 0; i < len(sol.U); i++ {
			if sol.U[i] != 0 || sol.V[i] != 0 || sol.A[i] != 0 {
				tst.Errorf("state must be identically zero. t=%g U=%v V=%v A=%v\n", sol.T, sol.U, sol.V, sol.A)
				tst.FailNow()
			}
		}
	})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.IntAssert(dom.Ny, 1)
	chk.Scalar(tst, "U(end)", 1e-17, dom.Sol.U[0], 0.0)
}

func Test_exp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp04. energy boundedness at a stable time step")

	// undamped unit oscillator (k=1, m=1) released from U0=0.3 with
	// dt at half the critical value
	sim := newBarSim(2, 1, 2)
	sim.Solver.Dt = 1.0
	sim.Solver.Tend = 100
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	sim.Stages[0].Ini = []*inp.IniData{{Key: "ux", Value: 0.3}}

	E0 := 0.5 * 0.3 * 0.3
	_, err := runStage(tst, sim, func(sol *ele.Solution) {
		E := 0.5*sol.V[0]*sol.V[0] + 0.5*sol.U[0]*sol.U[0]
		if E < 0.5*E0 || E > 2.0*E0 {
			tst.Errorf("energy must stay bounded. t=%g E=%g E0=%g\n", sol.T, E, E0)
			tst.FailNow()
		}
	})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
	}
}

func Test_exp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp05. divergence beyond the critical time step")

	// dt above 2/ω makes the centred-difference scheme unstable; the growth
	// eventually overflows and the non-finite check aborts the run
	sim := newBarSim(2, 1, 2)
	sim.Solver.Dt = 2.2
	sim.Solver.Tend = 4000
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	sim.Stages[0].Ini = []*inp.IniData{{Key: "ux", Value: 0.1}}

	_, err := runStage(tst, sim, nil)
	if err == nil {
		tst.Errorf("unstable run must fail\n")
		return
	}
	if !strings.Contains(err.Error(), "non-finite") {
		tst.Errorf("error must report the non-finite state. err=%v\n", err)
	}
}

func Test_exp06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp06. stable time step from the spectral estimate")

	// unit oscillator: ω=1, so the automatic step is StepRed·2 == 1.98,
	// larger than the stage interval; a single truncated step reaches tf
	sim := newBarSim(2, 1, 2)
	sim.Solver.Tend = 1
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	sim.Stages[0].Ini = []*inp.IniData{{Key: "ux", Value: 0.1}}

	dom, err := runStage(tst, sim, nil)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.IntAssert(dom.Sol.Steps, 1)
	chk.Scalar(tst, "t(end)", 1e-15, dom.Sol.T, 1.0)
}

func Test_exp07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp07. fixed point agrees with the implicit solve")

	damped := func(implicit bool, acctol float64, nmax int) *inp.Simulation {
		sim := newBarSim(3, 100, 2)
		sim.Solver.Tend = 1
		sim.Solver.RayK = 0.0005
		sim.Solver.RayM = 0.05
		sim.Solver.Implicit = implicit
		sim.Solver.AccTol = acctol
		sim.Solver.NmaxFixIt = nmax
		sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
		sim.Stages[0].Ini = []*inp.IniData{{Key: "ux", Value: 0.01}}
		return sim
	}

	domA, err := runStage(tst, damped(false, 1e-3, 3), nil)
	if err != nil {
		tst.Errorf("fixed-point run failed: %v\n", err)
		return
	}
	domB, err := runStage(tst, damped(true, 1e-3, 3), nil)
	if err != nil {
		tst.Errorf("implicit run failed: %v\n", err)
		return
	}
	chk.IntAssert(domA.Sol.Steps, domB.Sol.Steps)
	chk.Vector(tst, "U fixed-point vs implicit", 1e-4, domA.Sol.U, domB.Sol.U)
	chk.Vector(tst, "V fixed-point vs implicit", 1e-3, domA.Sol.V, domB.Sol.V)
}

func Test_exp08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp08. forced fallback equals the implicit solve")

	damped := func(implicit bool, acctol float64) *inp.Simulation {
		sim := newBarSim(3, 100, 2)
		sim.Solver.Tend = 0.5
		sim.Solver.RayK = 0.001
		sim.Solver.RayM = 0.02
		sim.Solver.Implicit = implicit
		sim.Solver.AccTol = acctol
		sim.Solver.NmaxFixIt = 2
		sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
		sim.Stages[0].Ini = []*inp.IniData{{Key: "ux", Value: 0.01}}
		return sim
	}

	// an unreachable tolerance defeats the fixed point every step; the
	// fallback must reproduce the forced-implicit trajectory exactly
	domA, err := runStage(tst, damped(false, 1e-300), nil)
	if err != nil {
		tst.Errorf("fallback run failed: %v\n", err)
		return
	}
	domB, err := runStage(tst, damped(true, 1e-300), nil)
	if err != nil {
		tst.Errorf("implicit run failed: %v\n", err)
		return
	}
	chk.Vector(tst, "U fallback vs implicit", 1e-14, domA.Sol.U, domB.Sol.U)
	chk.Vector(tst, "V fallback vs implicit", 1e-14, domA.Sol.V, domB.Sol.V)
	chk.Vector(tst, "A fallback vs implicit", 1e-14, domA.Sol.A, domB.Sol.A)
}

func Test_exp09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp09. setup failures are caught before stepping")

	// zero density gives a zero lumped mass
	sim := newBarSim(2, 1, 0)
	sim.Solver.Dt = 0.1
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	_, err := runStage(tst, sim, nil)
	if err == nil || !strings.Contains(err.Error(), "singular mass") {
		tst.Errorf("zero mass must fail with a singular mass error. err=%v\n", err)
		return
	}

	// zero stiffness with no explicit dt leaves the spectral estimate with ω=0
	sim = newBarSim(2, 0, 2)
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	_, err = runStage(tst, sim, nil)
	if err == nil || !strings.Contains(err.Error(), "eigenvalue estimation") {
		tst.Errorf("zero stiffness without dt must fail the spectral estimate. err=%v\n", err)
	}
}

func Test_exp10(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp10. moving support via time-dependent essential bc")

	// the bar is dragged by its left support with U(t) = m·t; with the right
	// end loaded by nothing, the equivalent load -Kfc·uf drives the free DOFs
	sim := newBarSim(3, 100, 2)
	sim.Solver.Dt = 0.001
	sim.Solver.Tend = 0.05
	sim.Functions = inp.FuncsData{
		&inp.FuncData{Name: "drag", Type: "lin", Prms: fun.Prms{
			&fun.Prm{N: "m", V: 0.2},
		}},
	}
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}, Func: "drag"}}

	dom, err := runStage(tst, sim, nil)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// the free nodes must have started following the support
	if dom.Sol.U[0] <= 0 {
		tst.Errorf("middle node must be dragged along. U=%v\n", dom.Sol.U)
	}
}

func Test_exp11(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exp11. damped oscillator against the closed form")

	// k=1, m=1 and mass-proportional damping c = RayM·m = 0.1
	sim := newBarSim(2, 1, 2)
	sim.Solver.Dt = 0.02
	sim.Solver.Tend = 5
	sim.Solver.RayM = 0.1
	sim.Stages[0].Ebcs = []*inp.EbcData{{Key: "ux", Vtags: []int{-100}}}
	sim.Stages[0].Ini = []*inp.IniData{{Key: "ux", Value: 0.3}}

	osc := ana.SdofOscillator{M: 1, K: 1, C: 0.1, U0: 0.3}
	if err := osc.Init(); err != nil {
		tst.Errorf("oscillator Init failed: %v\n", err)
		return
	}
	maxdiff := 0.0
	_, err := runStage(tst, sim, func(sol *ele.Solution) {
		diff := math.Abs(sol.U[0] - osc.Disp(sol.T))
		if diff > maxdiff {
			maxdiff = diff
		}
	})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if maxdiff > 2e-3 {
		tst.Errorf("trajectory deviates from the closed form. maxdiff=%g\n", maxdiff)
	}
}
