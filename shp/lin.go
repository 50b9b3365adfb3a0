// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Lin2Fcn computes the shape functions and derivatives of a 2-node line
//
//   -1     0    +1
//    0-----------1-->r
//
func Lin2Fcn(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

func init() {
	register(&Shape{
		Type:   "lin2",
		Func:   Lin2Fcn,
		Gndim:  1,
		Nverts: 2,
		NatCoords: [][]float64{
			{-1, 1},
		},
	})
}
