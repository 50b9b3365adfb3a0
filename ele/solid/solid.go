// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elements for the mechanics of elastic solids
package solid

import (
	"github.com/RaghuSivapuram/FinEALE/ele"
	"github.com/RaghuSivapuram/FinEALE/inp"
	msolid "github.com/RaghuSivapuram/FinEALE/mdl/solid"
	"github.com/RaghuSivapuram/FinEALE/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Solid implements a linear elastic solid element under small-strain dynamics
type Solid struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Ndim int         // space dimension
	Nu   int         // total number of unknowns == ndim * nverts

	// integration points
	IpsElem []shp.Ipoint // [nip] integration points of element
	IpsFace []shp.Ipoint // [nipf] integration points corresponding to faces

	// material model
	Mdl *msolid.LinElast // model

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// natural boundary conditions
	NatBcs []*ele.NaturalBc // natural boundary conditions

	// gravity
	Gfcn fun.Func // gravity function; nil means no gravity

	// scratchpads. computed @ each ip
	B [][]float64 // strain-displacement matrix
	D [][]float64 // constitutive modulus matrix
	K [][]float64 // element stiffness matrix
	M []float64   // element lumped mass vector
	F []float64   // element load vector
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("solid", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {
		ykeys := []string{"ux"}
		if sim.Msh.Ndim > 1 {
			ykeys = append(ykeys, "uy")
		}
		if sim.Msh.Ndim > 2 {
			ykeys = append(ykeys, "uz")
		}
		var info ele.Info
		nverts := cell.Shp.Nverts
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}
		return &info
	})

	// element allocator
	ele.SetAllocator("solid", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) ele.Element {

		// basic data
		var o Solid
		o.Cell = cell
		o.X = x
		o.Ndim = sim.Msh.Ndim
		nverts := cell.Shp.Nverts
		o.Nu = o.Ndim * nverts

		// integration points
		var err error
		o.IpsElem, o.IpsFace, err = o.Cell.Shp.GetIps(edat.Nip, edat.Nipf)
		if err != nil {
			chk.Panic("cannot allocate integration points of solid element with nip=%d and nipf=%d:\n%v", edat.Nip, edat.Nipf, err)
		}

		// material model
		matdata := sim.Mats.Get(edat.Mat)
		if matdata == nil {
			chk.Panic("cannot get material %q for solid element {tag=%d, id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		o.Mdl = new(msolid.LinElast)
		err = o.Mdl.Init(o.Ndim, matdata.Prms)
		if err != nil {
			chk.Panic("cannot initialise model %q: %v", matdata.Name, err)
		}

		// natural boundary conditions
		for _, fc := range cell.FaceBcs {
			o.NatBcs = append(o.NatBcs, &ele.NaturalBc{Key: fc.Cond, IdxFace: fc.FaceId, Fcn: fc.Fcn})
		}

		// scratchpads
		nsig := o.Mdl.Nsig()
		o.B = la.MatAlloc(nsig, o.Nu)
		o.D = la.MatAlloc(nsig, nsig)
		o.K = la.MatAlloc(o.Nu, o.Nu)
		o.M = make([]float64, o.Nu)
		o.F = make([]float64, o.Nu)
		o.Mdl.CalcD(o.D)
		return &o
	})
}

// Id returns the cell Id
func (o *Solid) Id() int { return o.Cell.Id }

// SetEqs sets equation numbers
func (o *Solid) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Cell.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			o.Umap[i+m*o.Ndim] = eqs[m][i]
		}
	}
	return
}

// SetEleConds sets element conditions
func (o *Solid) SetEleConds(key string, f fun.Func) (err error) {
	if key == "g" {
		o.Gfcn = f
		return
	}
	return chk.Err("solid element cannot handle condition %q", key)
}

// AddToK adds the element stiffness to the global triplets
func (o *Solid) AddToK(Kb, Kfc *la.Triplet) (err error) {
	la.MatFill(o.K, 0)
	for _, ip := range o.IpsElem {
		err = o.Cell.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		o.calcB()
		coef := o.Cell.Shp.J * ip[3]
		la.MatTrMulAdd3(o.K, coef, o.B, o.D, o.B) // K += coef * tr(B) * D * B
	}
	ele.ScatterK(Kb, Kfc, o.K, o.Umap)
	return
}

// AddToM adds the element lumped mass to the global diagonal
func (o *Solid) AddToM(mb []float64) (err error) {
	la.VecFill(o.M, 0)
	for _, ip := range o.IpsElem {
		err = o.Cell.Shp.CalcAtIp(o.X, ip, false)
		if err != nil {
			return
		}
		// row-sum lumping; rows of the consistent mass reduce to ρ∫Sm dΩ
		// because the shape functions sum to one
		coef := o.rho() * o.Cell.Shp.J * ip[3]
		for m := 0; m < o.Cell.Shp.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				o.M[i+m*o.Ndim] += coef * o.Cell.Shp.S[m]
			}
		}
	}
	ele.ScatterM(mb, o.M, o.Umap)
	return
}

// AddToLoad adds the element load vector (tractions and gravity) at time t
// to the global vector fb
func (o *Solid) AddToLoad(fb []float64, t float64) (err error) {
	la.VecFill(o.F, 0)

	// gravity pulls along the last dimension
	if o.Gfcn != nil {
		gval := o.Gfcn.F(t, nil)
		for _, ip := range o.IpsElem {
			err = o.Cell.Shp.CalcAtIp(o.X, ip, false)
			if err != nil {
				return
			}
			coef := o.rho() * o.Cell.Shp.J * ip[3]
			for m := 0; m < o.Cell.Shp.Nverts; m++ {
				o.F[o.Ndim-1+m*o.Ndim] -= coef * o.Cell.Shp.S[m] * gval
			}
		}
	}

	// distributed tractions
	err = o.addSurfLoads(t)
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		if I >= 0 {
			fb[I] += o.F[i]
		}
	}
	return
}

// addSurfLoads adds surface loads to o.F at time t
func (o *Solid) addSurfLoads(t float64) (err error) {
	for _, nbc := range o.NatBcs {
		qval := nbc.Fcn.F(t, nil)
		lverts := o.Cell.Shp.FaceLocalVerts[nbc.IdxFace]
		for _, ipf := range o.IpsFace {
			err = o.Cell.Shp.CalcAtFaceIp(o.X, ipf, nbc.IdxFace)
			if err != nil {
				return
			}
			Sf := o.Cell.Shp.Sf
			Fn := o.Cell.Shp.Fnvec
			switch nbc.Key {

			// qn: traction along the outward normal; Fnvec carries the face
			// Jacobian in its magnitude
			case "qn":
				for j, m := range lverts {
					for i := 0; i < o.Ndim; i++ {
						o.F[i+m*o.Ndim] += ipf[3] * qval * Sf[j] * Fn[i]
					}
				}

			// qx, qy, qz: traction components in global directions
			case "qx", "qy", "qz":
				idx := int(nbc.Key[1] - 'x')
				if idx >= o.Ndim {
					return chk.Err("traction %q is invalid in %dD", nbc.Key, o.Ndim)
				}
				Jf := la.VecNorm(Fn)
				for j, m := range lverts {
					o.F[idx+m*o.Ndim] += ipf[3] * qval * Sf[j] * Jf
				}

			default:
				return chk.Err("solid element cannot handle boundary condition %q", nbc.Key)
			}
		}
	}
	return
}

// HasTimeDepLoad tells whether any traction or gravity function varies with time
func (o *Solid) HasTimeDepLoad() bool {
	for _, nbc := range o.NatBcs {
		if _, cte := nbc.Fcn.(*fun.Cte); !cte {
			return true
		}
	}
	if o.Gfcn != nil {
		if _, cte := o.Gfcn.(*fun.Cte); !cte {
			return true
		}
	}
	return false
}

// rho returns the mass density per unit of integration measure; in 1D the
// bar integrates over length, so the cross-sectional area scales the density
func (o *Solid) rho() float64 {
	if o.Ndim == 1 {
		return o.Mdl.Rho * o.Mdl.A
	}
	return o.Mdl.Rho
}

// calcB computes the strain-displacement matrix at the current ip.
// Stress/strain components follow the engineering-shear ordering with an
// explicit sz row in 2D (plane-strain)
func (o *Solid) calcB() {
	G := o.Cell.Shp.G
	nverts := o.Cell.Shp.Nverts
	switch o.Ndim {
	case 1:
		for m := 0; m < nverts; m++ {
			o.B[0][m] = o.Cell.Shp.Gvec[m]
		}
	case 2:
		for m := 0; m < nverts; m++ {
			o.B[0][0+m*2] = G[m][0]
			o.B[0][1+m*2] = 0
			o.B[1][0+m*2] = 0
			o.B[1][1+m*2] = G[m][1]
			o.B[2][0+m*2] = 0
			o.B[2][1+m*2] = 0
			o.B[3][0+m*2] = G[m][1]
			o.B[3][1+m*2] = G[m][0]
		}
	case 3:
		for m := 0; m < nverts; m++ {
			for i := 0; i < 6; i++ {
				for j := 0; j < 3; j++ {
					o.B[i][j+m*3] = 0
				}
			}
			o.B[0][0+m*3] = G[m][0]
			o.B[1][1+m*3] = G[m][1]
			o.B[2][2+m*3] = G[m][2]
			o.B[3][0+m*3] = G[m][1]
			o.B[3][1+m*3] = G[m][0]
			o.B[4][1+m*3] = G[m][2]
			o.B[4][2+m*3] = G[m][1]
			o.B[5][0+m*3] = G[m][2]
			o.B[5][2+m*3] = G[m][0]
		}
	}
}
