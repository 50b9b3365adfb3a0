// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// AssembleKM assembles the global stiffness matrix (free rows and columns),
// the coupling block (free rows, fixed columns) and the lumped mass diagonal.
// The element traversal order is fixed, so the assembly is deterministic
func (o *Domain) AssembleKM() (err error) {

	// upper bound on the number of nonzeros
	nnz := 0
	for _, c := range o.Msh.Cells {
		nu := len(c.Verts) * o.Msh.Ndim
		nnz += nu * nu
	}

	// triplets
	if o.Kb == nil {
		o.Kb = new(la.Triplet)
		o.Kfcb = new(la.Triplet)
	}
	o.Kb.Init(o.Ny, o.Ny, nnz)
	o.Kfcb.Init(o.Ny, o.Nfix, nnz)

	// element contributions
	o.Mb = make([]float64, o.Ny)
	for _, e := range o.Elems {
		if err = e.AddToK(o.Kb, o.Kfcb); err != nil {
			return
		}
		if err = e.AddToM(o.Mb); err != nil {
			return
		}
	}

	// compressed matrices and stiffness diagonal
	o.Km = o.Kb.ToMatrix(nil)
	o.Kfcm = o.Kfcb.ToMatrix(nil)
	Kd := o.Km.ToDense()
	o.Kdiag = make([]float64, o.Ny)
	for i := 0; i < o.Ny; i++ {
		o.Kdiag[i] = Kd[i][i]
	}

	// classify loads; caches are stale after re-assembly
	o.fcst = nil
	o.timeDepLoad = o.PtNatBcs.HasTimeDep() || o.EssenBcs.HasTimeDep()
	for _, e := range o.Elems {
		if e.HasTimeDepLoad() {
			o.timeDepLoad = true
		}
	}
	return
}

// AssembleLoad assembles the global load vector at time t: element tractions
// and body loads, point loads and the equivalent loads from non-zero
// essential conditions. When nothing depends on time the vector is computed
// once and served from a cache
func (o *Domain) AssembleLoad(fb []float64, t float64) (err error) {
	if !o.timeDepLoad && o.fcst != nil {
		copy(fb, o.fcst)
		return
	}
	la.VecFill(fb, 0)
	for _, e := range o.Elems {
		if err = e.AddToLoad(fb, t); err != nil {
			return
		}
	}
	o.PtNatBcs.AddToRhs(fb, t)

	// equivalent loads from prescribed non-zero essential conditions
	o.EssenBcs.Apply(t)
	o.AddNonzeroFixedLoad(fb)

	if !o.timeDepLoad {
		o.fcst = make([]float64, len(fb))
		copy(o.fcst, fb)
	}
	return
}

// AddNonzeroFixedLoad adds fb += -Kfc·uf where uf holds the current
// prescribed values of the fixed DOFs. The vector uf is assembled fresh on
// each call; the DOF field itself is never mutated and restored
func (o *Domain) AddNonzeroFixedLoad(fb []float64) {
	if o.Nfix == 0 {
		return
	}
	uf := make([]float64, o.Nfix)
	nonzero := false
	for i, dof := range o.FixedDofs {
		uf[i] = dof.Pval
		if dof.Pval != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		return
	}
	la.SpMatVecMulAdd(fb, -1, o.Kfcm, uf) // fb += -1 * Kfc * uf
}

// CdiagVec computes the diagonal part of the Rayleigh damping matrix:
// cd = RayK·diag(K) + RayM·M
func (o *Domain) CdiagVec(cd []float64) {
	dc := o.Sol.DynCfs
	for i := 0; i < o.Ny; i++ {
		cd[i] = dc.RayK*o.Kdiag[i] + dc.RayM*o.Mb[i]
	}
}

// AddCvec adds the action of the full damping matrix: out += coef·C·v with
// C = RayK·K + RayM·M, via sparse mat-vec; C is never formed
func (o *Domain) AddCvec(out []float64, coef float64, v []float64) {
	dc := o.Sol.DynCfs
	if dc.RayK != 0 {
		la.SpMatVecMulAdd(out, coef*dc.RayK, o.Km, v)
	}
	if dc.RayM != 0 {
		for i := 0; i < o.Ny; i++ {
			out[i] += coef * dc.RayM * o.Mb[i] * v[i]
		}
	}
}

// AddCrestVec adds the action of the off-diagonal part of the damping
// matrix: out += coef·(C − Cdiag)·v == coef·RayK·(K·v − diag(K)∘v)
func (o *Domain) AddCrestVec(out []float64, coef float64, v []float64) {
	dc := o.Sol.DynCfs
	if dc.RayK == 0 {
		return
	}
	la.SpMatVecMulAdd(out, coef*dc.RayK, o.Km, v)
	for i := 0; i < o.Ny; i++ {
		out[i] -= coef * dc.RayK * o.Kdiag[i] * v[i]
	}
}
