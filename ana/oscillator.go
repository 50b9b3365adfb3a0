// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the
// time integrator
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SdofOscillator computes the response of a single degree-of-freedom
// oscillator m·ü + c·u̇ + k·u = 0 released from (U0, V0). Only the
// underdamped regime is handled
type SdofOscillator struct {

	// input
	M  float64 // mass
	K  float64 // stiffness
	C  float64 // viscous damping
	U0 float64 // initial displacement
	V0 float64 // initial velocity

	// derived
	ωn float64 // natural frequency
	ζ  float64 // damping ratio
	ωd float64 // damped frequency
}

// Init computes the derived constants
func (o *SdofOscillator) Init() (err error) {
	if o.M <= 0 || o.K <= 0 {
		return chk.Err("oscillator: mass and stiffness must be positive. m=%g k=%g", o.M, o.K)
	}
	o.ωn = math.Sqrt(o.K / o.M)
	o.ζ = o.C / (2.0 * o.M * o.ωn)
	if o.ζ >= 1 {
		return chk.Err("oscillator: damping ratio must be smaller than one. ζ=%g", o.ζ)
	}
	o.ωd = o.ωn * math.Sqrt(1.0-o.ζ*o.ζ)
	return
}

// Disp returns the displacement at time t
func (o *SdofOscillator) Disp(t float64) float64 {
	e := math.Exp(-o.ζ * o.ωn * t)
	a := o.U0
	b := (o.V0 + o.ζ*o.ωn*o.U0) / o.ωd
	return e * (a*math.Cos(o.ωd*t) + b*math.Sin(o.ωd*t))
}

// Vel returns the velocity at time t
func (o *SdofOscillator) Vel(t float64) float64 {
	e := math.Exp(-o.ζ * o.ωn * t)
	a := o.U0
	b := (o.V0 + o.ζ*o.ωn*o.U0) / o.ωd
	cos, sin := math.Cos(o.ωd*t), math.Sin(o.ωd*t)
	return e*(-a*o.ωd*sin+b*o.ωd*cos) - o.ζ*o.ωn*e*(a*cos+b*sin)
}

// ConstForceMass computes the trajectory of a free mass under a constant
// force: u(t) = U0 + V0·t + F·t²/(2m)
type ConstForceMass struct {
	M  float64 // mass
	F  float64 // constant force
	U0 float64 // initial displacement
	V0 float64 // initial velocity
}

// Disp returns the displacement at time t
func (o ConstForceMass) Disp(t float64) float64 {
	return o.U0 + o.V0*t + 0.5*o.F*t*t/o.M
}

// Vel returns the velocity at time t
func (o ConstForceMass) Vel(t float64) float64 {
	return o.V0 + o.F*t/o.M
}
