// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/RaghuSivapuram/FinEALE/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `yaml:"id"`  // id
	Tag int       `yaml:"tag"` // tag
	C   []float64 `yaml:"c"`   // coordinates (size==ndim)
}

// Cell holds cell data: the element-type tag, the connectivity and face tags
type Cell struct {
	Id    int    `yaml:"id"`    // id
	Tag   int    `yaml:"tag"`   // tag
	Type  string `yaml:"type"`  // geometry type; e.g. "qua4"
	Verts []int  `yaml:"verts"` // vertices
	FTags []int  `yaml:"ftags"` // face tags (zero means no tag)

	// derived
	Shp     *shp.Shape  `yaml:"-"` // shape structure
	FaceBcs []*FaceCond `yaml:"-"` // face boundary conditions, set per stage
}

// FaceCond holds one face boundary condition attached to a cell
type FaceCond struct {
	FaceId      int      // local index of face
	GlobalVerts []int    // global vertex ids of face
	Cond        string   // condition key; e.g. "qn", "qb"
	Fcn         fun.Func // function of time (and space)
}

// CellFaceId structure holds a cell and the local index of one of its tagged faces
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face local index
}

// Mesh holds the node set and the element connectivity
type Mesh struct {
	Ndim  int     `yaml:"ndim"`  // space dimension
	Verts []*Vert `yaml:"verts"` // vertices
	Cells []*Cell `yaml:"cells"` // cells

	// derived
	VertTag2verts map[int][]*Vert      `yaml:"-"` // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      `yaml:"-"` // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId `yaml:"-"` // face tag => set of cells with tagged faces
}

// Init checks the mesh and computes the derived maps. The node set is immutable
// after this call
func (o *Mesh) Init() (err error) {

	// check dimension
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("space dimension must be 1, 2 or 3. Ndim=%d is invalid", o.Ndim)
	}

	// vertices
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertices must be numbered sequentially. vertex %d has id=%d", i, v.Id)
		}
		if len(v.C) != o.Ndim {
			return chk.Err("vertex %d has %d coordinates. ndim=%d is required", v.Id, len(v.C), o.Ndim)
		}
		if v.Tag != 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
	}

	// cells
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cells must be numbered sequentially. cell %d has id=%d", i, c.Id)
		}
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return chk.Err("cannot find shape structure for cell %d with type=%q", c.Id, c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d (%q) has %d vertices. %d are required", c.Id, c.Type, len(c.Verts), c.Shp.Nverts)
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d references inexistent vertex %d", c.Id, v)
			}
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		if len(c.FTags) > 0 {
			if len(c.FTags) != len(c.Shp.FaceLocalVerts) {
				return chk.Err("cell %d has %d face tags. %d faces exist", c.Id, len(c.FTags), len(c.Shp.FaceLocalVerts))
			}
			for fid, ftag := range c.FTags {
				if ftag != 0 {
					o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, fid})
				}
			}
		}
	}
	return
}

// SetFaceConds sets the face boundary conditions of all cells for the given stage
func (o *Mesh) SetFaceConds(stg *Stage, functions FuncsData) (err error) {

	// clear previous conditions
	for _, c := range o.Cells {
		c.FaceBcs = nil
	}

	// for each face boundary condition
	for _, fc := range stg.Fbcs {
		fcn, e := functions.GetOrCte(fc.Func, fc.Value)
		if e != nil {
			return e
		}
		for _, ftag := range fc.Ftags {
			pairs, ok := o.FaceTag2cells[ftag]
			if !ok {
				return chk.Err("cannot find faces with tag = %d to assign face boundary conditions", ftag)
			}
			for _, pair := range pairs {
				lverts := pair.C.Shp.FaceLocalVerts[pair.Fid]
				gverts := make([]int, len(lverts))
				for k, l := range lverts {
					gverts[k] = pair.C.Verts[l]
				}
				pair.C.FaceBcs = append(pair.C.FaceBcs, &FaceCond{pair.Fid, gverts, fc.Key, fcn})
			}
		}
	}
	return
}
