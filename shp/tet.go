// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Tet4Fcn computes the shape functions and derivatives of a 4-node tetrahedron
func Tet4Fcn(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 1.0 - r[0] - r[1] - r[2]
	S[1] = r[0]
	S[2] = r[1]
	S[3] = r[2]
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
}

func init() {
	register(&Shape{
		Type:       "tet4",
		Func:       Tet4Fcn,
		FaceFunc:   Tri3Fcn,
		FaceType:   "tri3",
		Gndim:      3,
		Nverts:     4,
		FaceNverts: 3,
		FaceLocalVerts: [][]int{
			{0, 3, 2}, {0, 1, 3}, {0, 2, 1}, {1, 2, 3},
		},
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	})
}
