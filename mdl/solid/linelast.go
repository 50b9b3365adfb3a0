// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for solid elements
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// LinElast implements the small-strain linear elastic model. In 2D the model
// corresponds to plane-strain; in 1D it reduces to an axial bar with
// cross-sectional area A
type LinElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density
	A   float64 // cross-sectional area (1D only)

	// derived
	Ndim int // space dimension
}

// Init initialises the model from a parameters set
func (o *LinElast) Init(ndim int, prms fun.Prms) (err error) {
	o.Ndim = ndim
	o.A = 1
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		case "A":
			o.A = p.V
		default:
			return chk.Err("linelast: parameter named %q is invalid", p.N)
		}
	}
	if o.E < 0 {
		return chk.Err("linelast: Young's modulus must be non-negative. E=%g is invalid", o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("linelast: Poisson's coefficient must be in [0, 0.5). nu=%g is invalid", o.Nu)
	}
	if o.Rho < 0 {
		return chk.Err("linelast: density must be non-negative. rho=%g is invalid", o.Rho)
	}
	if ndim == 1 && o.A <= 0 {
		return chk.Err("linelast: cross-sectional area must be positive. A=%g is invalid", o.A)
	}
	return
}

// Nsig returns the number of stress components
func (o *LinElast) Nsig() int {
	if o.Ndim == 3 {
		return 6
	}
	if o.Ndim == 2 {
		return 4
	}
	return 1
}

// CalcD computes the elastic modulus matrix. D must be pre-allocated with
// Nsig() rows and columns. Stress components follow the engineering-shear
// ordering: {sx, sy, sz, sxy} in 2D and {sx, sy, sz, sxy, syz, szx} in 3D
func (o *LinElast) CalcD(D [][]float64) {
	switch o.Ndim {
	case 1:
		D[0][0] = o.E * o.A
	case 2:
		c := o.E / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
		g := o.E / (2.0 * (1.0 + o.Nu))
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				D[i][j] = 0
			}
		}
		D[0][0] = c * (1.0 - o.Nu)
		D[1][1] = c * (1.0 - o.Nu)
		D[2][2] = c * (1.0 - o.Nu)
		D[0][1] = c * o.Nu
		D[1][0] = c * o.Nu
		D[0][2] = c * o.Nu
		D[2][0] = c * o.Nu
		D[1][2] = c * o.Nu
		D[2][1] = c * o.Nu
		D[3][3] = g
	case 3:
		c := o.E / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
		g := o.E / (2.0 * (1.0 + o.Nu))
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				D[i][j] = 0
			}
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if i == j {
					D[i][j] = c * (1.0 - o.Nu)
				} else {
					D[i][j] = c * o.Nu
				}
			}
		}
		D[3][3] = g
		D[4][4] = g
		D[5][5] = g
	}
}
