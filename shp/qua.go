// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Qua4Fcn computes the shape functions and derivatives of a 4-node quadrilateral
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
//
func Qua4Fcn(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 0.25 * (1.0 - r[0]) * (1.0 - r[1])
	S[1] = 0.25 * (1.0 + r[0]) * (1.0 - r[1])
	S[2] = 0.25 * (1.0 + r[0]) * (1.0 + r[1])
	S[3] = 0.25 * (1.0 - r[0]) * (1.0 + r[1])
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -0.25*(1.0-r[1]), -0.25*(1.0-r[0])
	dSdR[1][0], dSdR[1][1] = 0.25*(1.0-r[1]), -0.25*(1.0+r[0])
	dSdR[2][0], dSdR[2][1] = 0.25*(1.0+r[1]), 0.25*(1.0+r[0])
	dSdR[3][0], dSdR[3][1] = -0.25*(1.0+r[1]), 0.25*(1.0-r[0])
}

func init() {
	register(&Shape{
		Type:       "qua4",
		Func:       Qua4Fcn,
		FaceFunc:   Lin2Fcn,
		FaceType:   "lin2",
		Gndim:      2,
		Nverts:     4,
		FaceNverts: 2,
		FaceLocalVerts: [][]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
	})
}
