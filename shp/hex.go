// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Hex8Fcn computes the shape functions and derivatives of an 8-node hexahedron
//
//      7-----------6
//     /|          /|
//    / |    t s  / |
//   4-----------5  |
//   |  |    |/  |  |
//   |  |    +--r|  |
//   |  3--------|--2
//   | /         | /
//   |/          |/
//   0-----------1
//
func Hex8Fcn(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	rr, ss, tt := r[0], r[1], r[2]
	for m := 0; m < 8; m++ {
		rm := hex8NatCoords[0][m]
		sm := hex8NatCoords[1][m]
		tm := hex8NatCoords[2][m]
		S[m] = 0.125 * (1.0 + rr*rm) * (1.0 + ss*sm) * (1.0 + tt*tm)
		if derivs {
			dSdR[m][0] = 0.125 * rm * (1.0 + ss*sm) * (1.0 + tt*tm)
			dSdR[m][1] = 0.125 * sm * (1.0 + rr*rm) * (1.0 + tt*tm)
			dSdR[m][2] = 0.125 * tm * (1.0 + rr*rm) * (1.0 + ss*sm)
		}
	}
}

var hex8NatCoords = [][]float64{
	{-1, 1, 1, -1, -1, 1, 1, -1},
	{-1, -1, 1, 1, -1, -1, 1, 1},
	{-1, -1, -1, -1, 1, 1, 1, 1},
}

func init() {
	register(&Shape{
		Type:       "hex8",
		Func:       Hex8Fcn,
		FaceFunc:   Qua4Fcn,
		FaceType:   "qua4",
		Gndim:      3,
		Nverts:     8,
		FaceNverts: 4,
		FaceLocalVerts: [][]int{
			{0, 4, 7, 3}, {1, 2, 6, 5},
			{0, 1, 5, 4}, {2, 3, 7, 6},
			{0, 3, 2, 1}, {4, 5, 6, 7},
		},
		NatCoords: hex8NatCoords,
	})
}
