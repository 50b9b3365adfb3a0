// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements elements for transient diffusion problems
// such as heat conduction
package diffusion

import (
	"github.com/RaghuSivapuram/FinEALE/ele"
	"github.com/RaghuSivapuram/FinEALE/inp"
	mdiffusion "github.com/RaghuSivapuram/FinEALE/mdl/diffusion"
	"github.com/RaghuSivapuram/FinEALE/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Diffusion implements an element for transient diffusion of a scalar field u
type Diffusion struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Ndim int         // space dimension

	// integration points
	IpsElem []shp.Ipoint // [nip] integration points of element
	IpsFace []shp.Ipoint // [nipf] integration points corresponding to faces

	// material model
	Mdl *mdiffusion.M1 // model

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// natural boundary conditions
	NatBcs []*ele.NaturalBc // natural boundary conditions

	// source term
	Sfcn fun.Func // source function; nil means no source

	// scratchpads. computed @ each ip
	K [][]float64 // element conductivity matrix
	M []float64   // element lumped capacity vector
	F []float64   // element load vector
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("diffusion", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {
		var info ele.Info
		nverts := cell.Shp.Nverts
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = []string{"u"}
		}
		return &info
	})

	// element allocator
	ele.SetAllocator("diffusion", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) ele.Element {

		// basic data
		var o Diffusion
		o.Cell = cell
		o.X = x
		o.Ndim = sim.Msh.Ndim
		nverts := cell.Shp.Nverts

		// integration points
		var err error
		o.IpsElem, o.IpsFace, err = o.Cell.Shp.GetIps(edat.Nip, edat.Nipf)
		if err != nil {
			chk.Panic("cannot allocate integration points of diffusion element with nip=%d and nipf=%d:\n%v", edat.Nip, edat.Nipf, err)
		}

		// material model
		matdata := sim.Mats.Get(edat.Mat)
		if matdata == nil {
			chk.Panic("cannot get material %q for diffusion element {tag=%d, id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		o.Mdl = new(mdiffusion.M1)
		err = o.Mdl.Init(matdata.Prms)
		if err != nil {
			chk.Panic("cannot initialise model %q: %v", matdata.Name, err)
		}

		// natural boundary conditions
		for _, fc := range cell.FaceBcs {
			o.NatBcs = append(o.NatBcs, &ele.NaturalBc{Key: fc.Cond, IdxFace: fc.FaceId, Fcn: fc.Fcn})
		}

		// scratchpads
		o.K = la.MatAlloc(nverts, nverts)
		o.M = make([]float64, nverts)
		o.F = make([]float64, nverts)
		return &o
	})
}

// Id returns the cell Id
func (o *Diffusion) Id() int { return o.Cell.Id }

// SetEqs sets equation numbers
func (o *Diffusion) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Cell.Shp.Nverts)
	for m := 0; m < o.Cell.Shp.Nverts; m++ {
		o.Umap[m] = eqs[m][0]
	}
	return
}

// SetEleConds sets element conditions
func (o *Diffusion) SetEleConds(key string, f fun.Func) (err error) {
	if key == "s" {
		o.Sfcn = f
		return
	}
	return chk.Err("diffusion element cannot handle condition %q", key)
}

// AddToK adds the element conductivity matrix to the global triplets
func (o *Diffusion) AddToK(Kb, Kfc *la.Triplet) (err error) {
	la.MatFill(o.K, 0)
	nverts := o.Cell.Shp.Nverts
	for _, ip := range o.IpsElem {
		err = o.Cell.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Mdl.Kcte * o.Cell.Shp.J * ip[3]
		if o.Ndim == 1 {
			Gv := o.Cell.Shp.Gvec
			for m := 0; m < nverts; m++ {
				for n := 0; n < nverts; n++ {
					o.K[m][n] += coef * Gv[m] * Gv[n]
				}
			}
		} else {
			G := o.Cell.Shp.G
			for m := 0; m < nverts; m++ {
				for n := 0; n < nverts; n++ {
					for i := 0; i < o.Ndim; i++ {
						o.K[m][n] += coef * G[m][i] * G[n][i]
					}
				}
			}
		}
	}
	ele.ScatterK(Kb, Kfc, o.K, o.Umap)
	return
}

// AddToM adds the element lumped capacity to the global diagonal
func (o *Diffusion) AddToM(mb []float64) (err error) {
	la.VecFill(o.M, 0)
	for _, ip := range o.IpsElem {
		err = o.Cell.Shp.CalcAtIp(o.X, ip, false)
		if err != nil {
			return
		}
		coef := o.Mdl.Rho * o.Cell.Shp.J * ip[3]
		for m := 0; m < o.Cell.Shp.Nverts; m++ {
			o.M[m] += coef * o.Cell.Shp.S[m]
		}
	}
	ele.ScatterM(mb, o.M, o.Umap)
	return
}

// AddToLoad adds boundary fluxes and sources at time t to the global vector fb
func (o *Diffusion) AddToLoad(fb []float64, t float64) (err error) {
	la.VecFill(o.F, 0)

	// source term
	if o.Sfcn != nil {
		sval := o.Sfcn.F(t, nil)
		for _, ip := range o.IpsElem {
			err = o.Cell.Shp.CalcAtIp(o.X, ip, false)
			if err != nil {
				return
			}
			coef := o.Cell.Shp.J * ip[3]
			for m := 0; m < o.Cell.Shp.Nverts; m++ {
				o.F[m] += coef * o.Cell.Shp.S[m] * sval
			}
		}
	}

	// boundary fluxes
	for _, nbc := range o.NatBcs {
		if nbc.Key != "qb" {
			return chk.Err("diffusion element cannot handle boundary condition %q", nbc.Key)
		}
		qval := nbc.Fcn.F(t, nil)
		lverts := o.Cell.Shp.FaceLocalVerts[nbc.IdxFace]
		for _, ipf := range o.IpsFace {
			err = o.Cell.Shp.CalcAtFaceIp(o.X, ipf, nbc.IdxFace)
			if err != nil {
				return
			}
			Jf := la.VecNorm(o.Cell.Shp.Fnvec)
			for j, m := range lverts {
				o.F[m] += ipf[3] * qval * o.Cell.Shp.Sf[j] * Jf
			}
		}
	}
	for i, I := range o.Umap {
		if I >= 0 {
			fb[I] += o.F[i]
		}
	}
	return
}

// HasTimeDepLoad tells whether any flux or source function varies with time
func (o *Diffusion) HasTimeDepLoad() bool {
	for _, nbc := range o.NatBcs {
		if _, cte := nbc.Fcn.(*fun.Cte); !cte {
			return true
		}
	}
	if o.Sfcn != nil {
		if _, cte := o.Sfcn.(*fun.Cte); !cte {
			return true
		}
	}
	return false
}
