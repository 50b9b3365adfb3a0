// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/fun"

// NaturalBc holds information on natural boundary conditions such as
// distributed loads or fluxes acting on faces
type NaturalBc struct {
	Key     string   // key such as "qn", "qx", "qb"
	IdxFace int      // local index of face
	Fcn     fun.Func // function callback
}
