// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds the information required to number the DOFs of one element type
type Info struct {
	Dofs [][]string // DOF keys PER NODE; e.g. for 2 nodes: [["ux", "uy"], ["ux", "uy"]]
}
