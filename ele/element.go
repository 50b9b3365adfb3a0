// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the element capability interface consumed by the
// global assembler, plus the structures shared by all element families
package ele

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Element defines what all elements must implement.
//
// Equation numbers handed to SetEqs encode the free/fixed classification of
// the DOF field: eq >= 0 is the global equation of a free DOF; eq < 0 encodes
// the slot -eq-1 of a fixed DOF. Elements scatter-add stiffness entries on
// free rows into Kb, entries coupling free rows to fixed columns into Kfc,
// and drop fixed rows entirely.
type Element interface {

	// information and initialisation
	Id() int                      // returns the cell Id
	SetEqs(eqs [][]int) error     // sets equation numbers (one slice per node)

	// element conditions; e.g. gravity, heat sources
	SetEleConds(key string, f fun.Func) error

	// assembly
	AddToK(Kb, Kfc *la.Triplet) error          // adds the local stiffness to the global matrices
	AddToM(mb []float64) error                 // adds the local lumped mass to the global diagonal
	AddToLoad(fb []float64, t float64) error   // adds tractions and body loads at time t

	// load classification
	HasTimeDepLoad() bool // at least one traction/body load depends on time
}
