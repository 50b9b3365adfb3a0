// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/RaghuSivapuram/FinEALE/ele"
	"github.com/RaghuSivapuram/FinEALE/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Domain holds all the data for one simulation stage: nodes, elements,
// boundary conditions, the equation numbering and the assembled global
// matrices
type Domain struct {

	// input
	Sim *inp.Simulation // simulation data
	Msh *inp.Mesh       // mesh

	// nodes and elements
	Nodes    []*Node       // all nodes, in vertex order
	Vid2node []*Node       // vertex id => node
	Elems    []ele.Element // all elements, in cell order

	// boundary conditions
	EssenBcs EssentialBcs // essential (prescribed-value) boundary conditions
	PtNatBcs PtNaturalBcs // point loads

	// degrees-of-freedom
	Ny        int    // total number of free DOFs == number of equations
	Nfix      int    // total number of fixed DOFs == number of fixed slots
	FixedDofs []*Dof // fixed slot => DOF

	// solution
	Sol *ele.Solution // solution state

	// global matrices. computed by AssembleKM
	Kb    *la.Triplet  // global stiffness, free rows x free columns
	Kfcb  *la.Triplet  // coupling block, free rows x fixed columns
	Km    *la.CCMatrix // compressed form of Kb
	Kfcm  *la.CCMatrix // compressed form of Kfcb
	Kdiag []float64    // diagonal of Km
	Mb    []float64    // lumped global mass, strictly positive diagonal

	// load vector state
	fcst        []float64 // cached constant part of the load vector
	timeDepLoad bool      // at least one load or essential bc varies with time
}

// NewDomain returns a new domain
func NewDomain(sim *inp.Simulation) (o *Domain) {
	o = new(Domain)
	o.Sim = sim
	o.Msh = sim.Msh
	return
}

// SetStage assembles the domain for one stage: creates nodes and their DOFs,
// applies essential boundary conditions, numbers the equations, allocates the
// elements and sets element conditions, point loads and initial values
func (o *Domain) SetStage(idxStg int) (err error) {
	if idxStg < 0 || idxStg >= len(o.Sim.Stages) {
		return chk.Err("stage index %d is out of range (%d stages)", idxStg, len(o.Sim.Stages))
	}
	stg := o.Sim.Stages[idxStg]

	// attach face conditions to cells
	err = o.Msh.SetFaceConds(stg, o.Sim.Functions)
	if err != nil {
		return
	}

	// reset
	o.Nodes = nil
	o.Elems = nil
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.EssenBcs.Reset()
	o.PtNatBcs.Reset()

	// create nodes and DOFs from element information
	for _, c := range o.Msh.Cells {
		info, infoerr := ele.GetInfo(c, o.Sim)
		if infoerr != nil {
			return infoerr
		}
		for m, vid := range c.Verts {
			nod := o.Vid2node[vid]
			if nod == nil {
				nod = NewNode(o.Msh.Verts[vid])
				o.Vid2node[vid] = nod
				o.Nodes = append(o.Nodes, nod)
			}
			for _, key := range info.Dofs[m] {
				nod.AddDof(key)
			}
		}
	}

	// essential boundary conditions
	for _, d := range stg.Ebcs {
		nodes, nerr := o.nodesWithTagsOrIds(d.Vtags, d.Verts)
		if nerr != nil {
			return nerr
		}
		fcn, ferr := o.Sim.Functions.GetOrCte(d.Func, d.Value)
		if ferr != nil {
			return ferr
		}
		err = o.EssenBcs.Set(d.Key, nodes, fcn, d.Free)
		if err != nil {
			return
		}
	}

	// number equations
	o.AssignEqs()

	// allocate elements and set equations
	for _, c := range o.Msh.Cells {
		e, eerr := ele.New(c, o.Sim)
		if eerr != nil {
			return eerr
		}
		info, infoerr := ele.GetInfo(c, o.Sim)
		if infoerr != nil {
			return infoerr
		}
		eqs := make([][]int, len(c.Verts))
		for m, vid := range c.Verts {
			eqs[m] = make([]int, len(info.Dofs[m]))
			for i, key := range info.Dofs[m] {
				eqs[m][i] = o.Vid2node[vid].GetDof(key).Eq
			}
		}
		err = e.SetEqs(eqs)
		if err != nil {
			return
		}
		o.Elems = append(o.Elems, e)
	}

	// element conditions; e.g. gravity, heat sources
	for _, d := range stg.EleConds {
		fcn, ferr := o.Sim.Functions.GetOrCte(d.Func, d.Value)
		if ferr != nil {
			return ferr
		}
		for _, etag := range d.Etags {
			cells, ok := o.Msh.CellTag2cells[etag]
			if !ok {
				return chk.Err("cannot find cells with tag %d to apply element condition %q", etag, d.Key)
			}
			for _, c := range cells {
				err = o.Elems[c.Id].SetEleConds(d.Key, fcn)
				if err != nil {
					return
				}
			}
		}
	}

	// point loads
	for _, d := range stg.Ploads {
		nodes, nerr := o.nodesWithTagsOrIds(d.Vtags, d.Verts)
		if nerr != nil {
			return nerr
		}
		fcn, ferr := o.Sim.Functions.GetOrCte(d.Func, d.Value)
		if ferr != nil {
			return ferr
		}
		err = o.PtNatBcs.Set(d.Key, nodes, fcn)
		if err != nil {
			return
		}
	}

	// solution state
	o.Sol = new(ele.Solution)
	o.Sol.U = make([]float64, o.Ny)
	o.Sol.V = make([]float64, o.Ny)
	o.Sol.A = make([]float64, o.Ny)
	o.Sol.DynCfs = new(ele.DynCoefs)
	o.Sol.DynCfs.Init(&o.Sim.Solver)

	// initial values
	return o.SetIniVals(stg)
}

// AssignEqs numbers the DOFs: free DOFs get a dense zero-based equation
// number, node-major then component-minor; fixed DOFs get a dense fixed-slot
// number encoded as -slot-1. Idempotent for unchanged classifications
func (o *Domain) AssignEqs() {
	o.Ny = 0
	o.Nfix = 0
	o.FixedDofs = nil
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			if dof.Fixed {
				dof.Eq = -o.Nfix - 1
				o.FixedDofs = append(o.FixedDofs, dof)
				o.Nfix++
			} else {
				dof.Eq = o.Ny
				o.Ny++
			}
		}
	}
}

// Eq returns the equation number of the DOF with given key at the vertex
// with id vid. Out-of-range vertices and missing keys cause an error
func (o *Domain) Eq(vid int, key string) (eq int, err error) {
	if vid < 0 || vid >= len(o.Vid2node) || o.Vid2node[vid] == nil {
		return 0, chk.Err("invalid DOF index: vertex %d does not exist or has no DOFs", vid)
	}
	eq, ok := o.Vid2node[vid].GetEq(key)
	if !ok {
		return 0, chk.Err("invalid DOF index: vertex %d does not have DOF %q", vid, key)
	}
	return
}

// GatherLocal collects the local values of a global state vector according
// to the assembly map umap: free DOFs come from ug, fixed DOFs from their
// prescribed values
func (o *Domain) GatherLocal(umap []int, ug, ul []float64) {
	for i, I := range umap {
		if I >= 0 {
			ul[i] = ug[I]
		} else {
			ul[i] = o.FixedDofs[-I-1].Pval
		}
	}
}

// ScatterLocal adds local values into a global vector according to the
// assembly map umap, dropping fixed DOFs
func (o *Domain) ScatterLocal(umap []int, ul, ug []float64) {
	for i, I := range umap {
		if I >= 0 {
			ug[I] += ul[i]
		}
	}
}

// SetIniVals sets the initial values of the solution state. Keys name the
// DOF to initialise; a leading 'v' selects the velocity of the matching
// displacement DOF; e.g. "ux" sets U, "vx" sets V of "ux". Functions are
// evaluated at the node coordinates
func (o *Domain) SetIniVals(stg *inp.Stage) (err error) {
	o.Sol.Reset()
	for _, d := range stg.Ini {
		key := d.Key
		vel := false
		if len(key) > 0 && key[0] == 'v' {
			vel = true
			key = "u" + key[1:]
		}
		fcn, ferr := o.Sim.Functions.GetOrCte(d.Func, d.Value)
		if ferr != nil {
			return ferr
		}
		for _, nod := range o.Nodes {
			dof := nod.GetDof(key)
			if dof == nil {
				continue
			}
			if dof.Eq < 0 {
				continue
			}
			val := fcn.F(0, nod.Vert.C)
			if vel {
				o.Sol.V[dof.Eq] = val
			} else {
				o.Sol.U[dof.Eq] = val
			}
		}
	}
	return
}

// nodesWithTagsOrIds collects the nodes with the given vertex tags plus the
// ones given directly by id
func (o *Domain) nodesWithTagsOrIds(vtags, verts []int) (nodes []*Node, err error) {
	for _, vtag := range vtags {
		vs, ok := o.Msh.VertTag2verts[vtag]
		if !ok {
			return nil, chk.Err("cannot find vertices with tag %d", vtag)
		}
		for _, v := range vs {
			if o.Vid2node[v.Id] == nil {
				return nil, chk.Err("invalid DOF index: vertex %d has no DOFs", v.Id)
			}
			nodes = append(nodes, o.Vid2node[v.Id])
		}
	}
	for _, vid := range verts {
		if vid < 0 || vid >= len(o.Vid2node) || o.Vid2node[vid] == nil {
			return nil, chk.Err("invalid DOF index: vertex %d does not exist or has no DOFs", vid)
		}
		nodes = append(nodes, o.Vid2node[vid])
	}
	return
}
