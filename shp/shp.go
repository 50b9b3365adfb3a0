// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions, their derivatives and quadrature rules
// for the element geometries used by the assembler
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MINDET is the minimum determinant allowed for the dxdR Jacobian
const MINDET = 1.0e-14

// Ipoint holds the natural coordinates and weight of an integration point: {r, s, t, w}
type Ipoint []float64

// ShpFunc is the callback that evaluates shape functions S and, if derivs is true,
// their parametric derivatives dSdR at natural coordinates r. For face evaluations,
// idxface selects the local face; volume evaluations pass idxface == -1
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int)

// Shape holds the capability set of one element geometry: shape function and
// derivative evaluation, isoparametric mapping and boundary-face extraction
type Shape struct {

	// geometry
	Type           string      // name; e.g. "qua4"
	Func           ShpFunc     // shape/derivs callback
	FaceFunc       ShpFunc     // face shape/derivs callback
	FaceType       string      // geometry of face; e.g. "qua4" => "lin2"
	Gndim          int         // geometry dimension; e.g. "lin2" => 1 (even in higher-dimensional meshes)
	Nverts         int         // number of vertices
	FaceNverts     int         // number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][faceNverts]
	NatCoords      [][]float64 // natural coordinates of vertices [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] inverse(dxdR)

	// scratchpad: line
	Jvec3d []float64 // Jacobian vector: dxdR for line elements (size==3)
	Gvec   []float64 // [nverts] G == dSdx for line elements

	// scratchpad: face
	Sf     []float64   // [faceNverts] face shape function values
	Fnvec  []float64   // [gndim] face normal vector scaled by the face Jacobian
	DSfdRf [][]float64 // [faceNverts][gndim-1] derivatives of Sf w.r.t face natural coordinates
	DxfdRf [][]float64 // [gndim][gndim-1] derivatives of real coordinates w.r.t face natural coordinates
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure; returns nil if geoType is unknown
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// register adds a new Shape to the factory and initialises its scratchpad
func register(s *Shape) {
	if _, ok := factory[s.Type]; ok {
		chk.Panic("cannot register shape %q twice", s.Type)
	}
	s.initScratchpad()
	factory[s.Type] = s
}

// IpRealCoords returns the real coordinates of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false, -1)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// FaceIpRealCoords returns the real coordinates of an integration point on a face
func (o *Shape) FaceIpRealCoords(x [][]float64, ipf Ipoint, idxface int) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, false, idxface)
	for i := 0; i < ndim; i++ {
		for k, n := range o.FaceLocalVerts[idxface] {
			y[i] += o.Sf[k] * x[i][n]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at the natural coordinates of ip
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ip              -- integration point (or any natural coordinates)
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs, -1)
	if !derivs {
		return
	}

	// line elements: Jacobian is the norm of the tangent vector
	if o.Gndim == 1 {
		for i := 0; i < len(x); i++ {
			o.Jvec3d[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec3d[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}
		o.J = la.VecNorm(o.Jvec3d[:len(x)])
		if o.J < MINDET {
			return chk.Err("shape %q: line Jacobian is too small = %g", o.Type, o.J)
		}
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// dxdR := sum_n x * dSdR  =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = la.MatInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// CalcAtFaceIp calculates face data such as Sf and Fnvec
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ipf             -- integration point on face (natural coordinates of face)
//   idxface         -- local index of face
//  Output:
//   Sf and Fnvec
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {

	// skip line elements
	if o.Gndim == 1 {
		return
	}

	// Sf and dSfdR
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true, idxface)

	// dxfdRf := sum_n x * dSfdRf
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim-1; j++ {
			o.DxfdRf[i][j] = 0.0
			for k, n := range o.FaceLocalVerts[idxface] {
				o.DxfdRf[i][j] += x[i][n] * o.DSfdRf[k][j]
			}
		}
	}

	// face normal vector, scaled by the face Jacobian
	if o.Gndim == 2 {
		o.Fnvec[0] = o.DxfdRf[1][0]
		o.Fnvec[1] = -o.DxfdRf[0][0]
		return
	}
	o.Fnvec[0] = o.DxfdRf[1][0]*o.DxfdRf[2][1] - o.DxfdRf[2][0]*o.DxfdRf[1][1]
	o.Fnvec[1] = o.DxfdRf[2][0]*o.DxfdRf[0][1] - o.DxfdRf[0][0]*o.DxfdRf[2][1]
	o.Fnvec[2] = o.DxfdRf[0][0]*o.DxfdRf[1][1] - o.DxfdRf[1][0]*o.DxfdRf[0][1]
	return
}

// initScratchpad initialises volume, face and line scratchpads
func (o *Shape) initScratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = la.MatAlloc(o.Nverts, o.Gndim)
	o.DxdR = la.MatAlloc(o.Gndim, o.Gndim)
	o.DRdx = la.MatAlloc(o.Gndim, o.Gndim)
	o.G = la.MatAlloc(o.Nverts, o.Gndim)

	// face data
	if o.Gndim > 1 {
		o.Sf = make([]float64, o.FaceNverts)
		o.DSfdRf = la.MatAlloc(o.FaceNverts, o.Gndim-1)
		o.DxfdRf = la.MatAlloc(o.Gndim, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
	}

	// line data
	if o.Gndim == 1 {
		o.Jvec3d = make([]float64, 3)
		o.Gvec = make([]float64, o.Nverts)
	}
}
