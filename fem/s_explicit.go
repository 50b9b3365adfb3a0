// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/RaghuSivapuram/FinEALE/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// SolverExplicit implements the explicit centred-difference scheme
// (Newmark with β=0, γ=1/2) for M·A + C·V + K·U = F(t). The acceleration
// update with Rayleigh damping uses a diagonally-preconditioned fixed point
// with an exact implicit fallback; the damping matrix is never formed
type SolverExplicit struct {

	// input
	dom *Domain         // domain
	dat *inp.SolverData // solver configuration

	// scratch vectors. allocated by Run
	fb    []float64 // load vector at t+dt
	rhs   []float64 // right-hand side of the acceleration solve
	u1    []float64 // displacement predictor
	vstar []float64 // velocity predictor V0 + Δt/2·A0
	anew  []float64 // acceleration iterate
	aold  []float64 // previous acceleration iterate
	tmp   []float64 // work vector of the fixed point
	cd    []float64 // diagonal of the damping matrix

	// dense stiffness. computed lazily for the eigensolve and the fallback
	kdense [][]float64
}

// register solver
func init() {
	solverallocators["exp"] = func(dom *Domain) Solver {
		return &SolverExplicit{dom: dom, dat: &dom.Sim.Solver}
	}
}

// Run runs the time loop from the current solution time up to tf, calling
// obs (if non-nil) once per committed step
func (o *SolverExplicit) Run(tf float64, obs Observer) (err error) {
	d := o.dom
	sol := d.Sol
	n := d.Ny

	// assemble matrices
	if d.Km == nil {
		if err = d.AssembleKM(); err != nil {
			return
		}
	}

	// the scheme divides by the lumped mass; zero or negative entries are fatal
	for i := 0; i < n; i++ {
		if d.Mb[i] <= 0 {
			return chk.Err("singular mass matrix: lumped mass of equation %d is %g; entries must be strictly positive", i, d.Mb[i])
		}
	}

	// time step
	dt := o.dat.Dt
	if dt <= 0 {
		dt, err = o.stableDt()
		if err != nil {
			return
		}
		logrus.Debugf("explicit solver: stable time step dt=%g", dt)
	}

	// scratch
	o.fb = make([]float64, n)
	o.rhs = make([]float64, n)
	o.u1 = make([]float64, n)
	o.vstar = make([]float64, n)
	o.anew = make([]float64, n)
	o.aold = make([]float64, n)
	o.tmp = make([]float64, n)
	o.cd = make([]float64, n)
	damped := sol.DynCfs.HasDamping()
	if damped {
		d.CdiagVec(o.cd)
	}

	// initial acceleration from the equation of motion at the initial state;
	// reduces to A0 = M⁻¹·F0 for zero initial conditions
	if err = d.AssembleLoad(o.fb, sol.T); err != nil {
		return
	}
	copy(o.rhs, o.fb)
	la.SpMatVecMulAdd(o.rhs, -1, d.Km, sol.U)
	if damped {
		d.AddCvec(o.rhs, -1, sol.V)
	}
	for i := 0; i < n; i++ {
		sol.A[i] = o.rhs[i] / d.Mb[i]
	}

	// time loop
	for sol.T < tf {

		// last step lands exactly on tf; the tolerance absorbs accumulated
		// floating point drift of the time variable
		Δt := dt
		t1 := sol.T + Δt
		if t1 >= tf-1e-10*Δt {
			Δt = tf - sol.T
			t1 = tf
		}

		// predictor
		for i := 0; i < n; i++ {
			o.u1[i] = sol.U[i] + Δt*sol.V[i] + 0.5*Δt*Δt*sol.A[i]
		}

		// rhs = F(t1) − K·U1 − C·(V0 + Δt/2·A0)
		if err = d.AssembleLoad(o.fb, t1); err != nil {
			return
		}
		copy(o.rhs, o.fb)
		la.SpMatVecMulAdd(o.rhs, -1, d.Km, o.u1)
		if damped {
			for i := 0; i < n; i++ {
				o.vstar[i] = sol.V[i] + 0.5*Δt*sol.A[i]
			}
			d.AddCvec(o.rhs, -1, o.vstar)
		}

		// acceleration solve
		if err = o.solveAccel(Δt, damped); err != nil {
			return
		}

		// corrector and commit
		for i := 0; i < n; i++ {
			sol.V[i] += 0.5 * Δt * (sol.A[i] + o.anew[i])
			sol.U[i] = o.u1[i]
			sol.A[i] = o.anew[i]
		}
		sol.T = t1
		sol.Steps++

		// non-finite entries abort the run
		if err = o.checkFinite(); err != nil {
			return
		}
		if obs != nil {
			obs(sol)
		}
	}
	return
}

// solveAccel solves (M + Δt/2·C)·A1 = rhs for the new acceleration o.anew.
// Without damping the system is diagonal. With damping a fixed point
// preconditioned by M + Δt/2·Cdiag runs for at most NmaxFixIt iterations;
// if it does not reach AccTol, one exact solve via dense Cholesky is taken.
// The configuration flag Implicit forces the exact solve from the start
func (o *SolverExplicit) solveAccel(Δt float64, damped bool) (err error) {
	d := o.dom
	n := d.Ny
	if !damped {
		for i := 0; i < n; i++ {
			o.anew[i] = o.rhs[i] / d.Mb[i]
		}
		return
	}
	if !o.dat.Implicit && o.dat.NmaxFixIt > 0 {
		if o.fixedPoint(Δt) {
			return
		}
		logrus.Warnf("explicit solver: fixed-point acceleration solve did not converge within %d iterations at t=%g (step %d); taking the exact implicit solve", o.dat.NmaxFixIt, d.Sol.T, d.Sol.Steps)
	}
	return o.implicitAccel(Δt)
}

// fixedPoint iterates A ← (M + Δt/2·Cdiag)⁻¹·(rhs − Δt/2·Crest·A) starting
// from the previous acceleration. Returns true on convergence: the change
// between iterates, relative to the norm of the first iterate, is below AccTol
func (o *SolverExplicit) fixedPoint(Δt float64) bool {
	d := o.dom
	n := d.Ny
	copy(o.aold, d.Sol.A)
	ref := 0.0
	for it := 0; it < o.dat.NmaxFixIt; it++ {
		copy(o.tmp, o.rhs)
		d.AddCrestVec(o.tmp, -0.5*Δt, o.aold)
		for i := 0; i < n; i++ {
			o.anew[i] = o.tmp[i] / (d.Mb[i] + 0.5*Δt*o.cd[i])
		}
		if it == 0 {
			ref = la.VecNorm(o.anew)
			if ref < 1e-15 {
				ref = 1
			}
		}
		δ := 0.0
		for i := 0; i < n; i++ {
			δ += (o.anew[i] - o.aold[i]) * (o.anew[i] - o.aold[i])
		}
		if math.Sqrt(δ) <= o.dat.AccTol*ref {
			return true
		}
		copy(o.aold, o.anew)
	}
	return false
}

// implicitAccel performs the exact solve of (M + Δt/2·C)·A1 = rhs using a
// dense Cholesky factorization
func (o *SolverExplicit) implicitAccel(Δt float64) (err error) {
	d := o.dom
	n := d.Ny
	if o.kdense == nil {
		o.kdense = d.Km.ToDense()
	}
	dc := d.Sol.DynCfs
	H := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := 0.5 * Δt * dc.RayK * o.kdense[i][j]
			if i == j {
				v += d.Mb[i] * (1.0 + 0.5*Δt*dc.RayM)
			}
			H.SetSym(i, j, v)
		}
	}
	var ch mat.Cholesky
	if ok := ch.Factorize(H); !ok {
		return chk.Err("implicit acceleration solve failed: matrix M + dt/2·C is not positive definite at t=%g (step %d)", d.Sol.T, d.Sol.Steps)
	}
	var x mat.VecDense
	if err = ch.SolveVecTo(&x, mat.NewVecDense(n, o.rhs)); err != nil {
		return chk.Err("implicit acceleration solve failed at t=%g (step %d): %v", d.Sol.T, d.Sol.Steps, err)
	}
	for i := 0; i < n; i++ {
		o.anew[i] = x.AtVec(i)
	}
	return
}

// stableDt estimates the critical time step of the centred-difference scheme
// from the largest natural frequency: dt = StepRed·2/ω with ω² the largest
// eigenvalue of M⁻¹K, computed from the symmetrically scaled dense matrix
// D^(−1/2)·K·D^(−1/2)
func (o *SolverExplicit) stableDt() (dt float64, err error) {
	d := o.dom
	n := d.Ny
	if o.kdense == nil {
		o.kdense = d.Km.ToDense()
	}
	B := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			B.SetSym(i, j, o.kdense[i][j]/math.Sqrt(d.Mb[i]*d.Mb[j]))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(B, false); !ok {
		return 0, chk.Err("eigenvalue estimation failure: cannot factorize the scaled stiffness matrix for the stable time step")
	}
	λmax := 0.0
	for _, λ := range es.Values(nil) {
		if λ > λmax {
			λmax = λ
		}
	}
	ω := math.Sqrt(λmax)
	if ω < 1e-12 {
		return 0, chk.Err("eigenvalue estimation failure: largest natural frequency is zero; set dt explicitly in the solver configuration")
	}
	return o.dat.StepRed * 2.0 / ω, nil
}

// checkFinite scans the committed state for NaN or Inf entries
func (o *SolverExplicit) checkFinite() (err error) {
	sol := o.dom.Sol
	for i := 0; i < o.dom.Ny; i++ {
		if !isFinite(sol.U[i]) || !isFinite(sol.V[i]) || !isFinite(sol.A[i]) {
			return chk.Err("non-finite state detected at t=%g, step %d, equation %d: U=%g V=%g A=%g", sol.T, sol.Steps, i, sol.U[i], sol.V[i], sol.A[i])
		}
	}
	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
