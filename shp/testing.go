// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 at their own vertex
// and to 0.0 at all other vertices
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false, -1)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
	}
}

// CheckDSdR checks the parametric derivatives of the shape functions against
// centred finite differences at natural coordinates r
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical derivatives
	shape.Func(shape.S, shape.DSdR, r, true, -1)
	dSdR := make([][]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		dSdR[m] = make([]float64, shape.Gndim)
		copy(dSdR[m], shape.DSdR[m])
	}

	// numerical derivatives
	h := 1e-6
	Sp := make([]float64, shape.Nverts)
	Sm := make([]float64, shape.Nverts)
	rr := make([]float64, 3)
	copy(rr, r)
	errD := 0.0
	for j := 0; j < shape.Gndim; j++ {
		rr[j] = r[j] + h
		shape.Func(Sp, shape.DSdR, rr, false, -1)
		rr[j] = r[j] - h
		shape.Func(Sm, shape.DSdR, rr, false, -1)
		rr[j] = r[j]
		for m := 0; m < shape.Nverts; m++ {
			dnum := (Sp[m] - Sm[m]) / (2.0 * h)
			errD += math.Abs(dSdR[m][j] - dnum)
		}
	}

	if verbose {
		io.Pf("dSdR = %v\n", dSdR)
	}
	if errD > tol {
		tst.Errorf("%s dSdR failed with err = %g\n", shape.Type, errD)
	}
}

// CheckPartitionOfUnity checks that the shape functions sum to 1.0 at r
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, r []float64, tol float64) {
	shape.Func(shape.S, shape.DSdR, r, false, -1)
	sum := 0.0
	for m := 0; m < shape.Nverts; m++ {
		sum += shape.S[m]
	}
	if math.Abs(sum-1.0) > tol {
		tst.Errorf("%s partition of unity failed: sum = %g\n", shape.Type, sum)
	}
}
