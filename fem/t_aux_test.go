// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/RaghuSivapuram/FinEALE/inp"

	// register element families
	_ "github.com/RaghuSivapuram/FinEALE/ele/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func verbose() {
	chk.Verbose = true
}

// newBarSim returns a 1D elastic bar simulation: nv equally spaced vertices
// on [0,1], lin2 cells with tag -1, the first vertex tagged -100 and the
// last -200, and one empty stage. Tests customise the stage and the solver
// configuration before calling Init
func newBarSim(nv int, E, rho float64) *inp.Simulation {
	msh := &inp.Mesh{Ndim: 1}
	for i := 0; i < nv; i++ {
		tag := 0
		if i == 0 {
			tag = -100
		}
		if i == nv-1 {
			tag = -200
		}
		msh.Verts = append(msh.Verts, &inp.Vert{Id: i, Tag: tag, C: []float64{float64(i) / float64(nv-1)}})
	}
	for i := 0; i < nv-1; i++ {
		msh.Cells = append(msh.Cells, &inp.Cell{Id: i, Tag: -1, Type: "lin2", Verts: []int{i, i + 1}})
	}
	return &inp.Simulation{
		Data:   inp.Data{Key: "bar", Ndim: 1},
		Solver: inp.SolverData{Tend: 1},
		Mats: inp.MatsData{
			&inp.MatData{Name: "mat1", Model: "linelast", Prms: fun.Prms{
				&fun.Prm{N: "E", V: E},
				&fun.Prm{N: "rho", V: rho},
				&fun.Prm{N: "A", V: 1},
			}},
		},
		ElemDats: []*inp.ElemData{{Tag: -1, Mat: "mat1", Type: "solid"}},
		Msh:      msh,
		Stages:   []*inp.Stage{{Name: "stage1"}},
	}
}

// newSquareSim returns a 2D simulation with one qua4 unit square, tag -1,
// faces tagged: left=-13, right=-11, bottom=-10, top=-12
func newSquareSim(E, nu, rho float64) *inp.Simulation {
	msh := &inp.Mesh{
		Ndim: 2,
		Verts: []*inp.Vert{
			{Id: 0, Tag: -1, C: []float64{0, 0}},
			{Id: 1, Tag: -2, C: []float64{1, 0}},
			{Id: 2, Tag: -3, C: []float64{1, 1}},
			{Id: 3, Tag: -4, C: []float64{0, 1}},
		},
		Cells: []*inp.Cell{
			{Id: 0, Tag: -1, Type: "qua4", Verts: []int{0, 1, 2, 3}, FTags: []int{-10, -11, -12, -13}},
		},
	}
	return &inp.Simulation{
		Data:   inp.Data{Key: "square", Ndim: 2},
		Solver: inp.SolverData{Tend: 1},
		Mats: inp.MatsData{
			&inp.MatData{Name: "mat1", Model: "linelast", Prms: fun.Prms{
				&fun.Prm{N: "E", V: E},
				&fun.Prm{N: "nu", V: nu},
				&fun.Prm{N: "rho", V: rho},
			}},
		},
		ElemDats: []*inp.ElemData{{Tag: -1, Mat: "mat1", Type: "solid"}},
		Msh:      msh,
		Stages:   []*inp.Stage{{Name: "stage1"}},
	}
}

// mustSetStage initialises the simulation and sets the first stage
func mustSetStage(tst *testing.T, sim *inp.Simulation) *Domain {
	if err := sim.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		tst.FailNow()
	}
	dom := NewDomain(sim)
	if err := dom.SetStage(0); err != nil {
		tst.Errorf("SetStage failed: %v\n", err)
		tst.FailNow()
	}
	return dom
}
