// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures: simulation configuration,
// mesh, named functions and material parameters
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Data holds global data
type Data struct {
	Key  string `yaml:"key"`  // simulation key; e.g. "bar-dynamics"
	Ndim int    `yaml:"ndim"` // space dimension
}

// SolverData holds the configuration of the time integrator
type SolverData struct {
	Type      string  `yaml:"type"`      // solver type; e.g. "exp"
	Tend      float64 `yaml:"tend"`      // end time [required]
	Dt        float64 `yaml:"dt"`        // explicit time step; if zero, computed from spectral estimate
	StepRed   float64 `yaml:"stepred"`   // step reduction factor applied to the critical time step
	RayK      float64 `yaml:"rayk"`      // Rayleigh damping coefficient multiplying K
	RayM      float64 `yaml:"raym"`      // Rayleigh damping coefficient multiplying M
	NmaxFixIt int     `yaml:"nmaxfixit"` // maximum number of fixed-point iterations for the acceleration solve
	AccTol    float64 `yaml:"acctol"`    // relative tolerance of the fixed-point acceleration solve
	Implicit  bool    `yaml:"implicit"`  // always use the exact implicit acceleration solve
}

// SetDefaults sets default values
func (o *SolverData) SetDefaults() {
	if o.Type == "" {
		o.Type = "exp"
	}
	if o.StepRed == 0 {
		o.StepRed = 0.99
	}
	if o.NmaxFixIt == 0 {
		o.NmaxFixIt = 3
	}
	if o.AccTol == 0 {
		o.AccTol = 1e-3
	}
}

// ElemData holds the element type/material data attached to one cell tag
type ElemData struct {
	Tag  int    `yaml:"tag"`  // cell tag
	Mat  string `yaml:"mat"`  // material name
	Type string `yaml:"type"` // element type; e.g. "solid", "diffusion"
	Nip  int    `yaml:"nip"`  // number of integration points [0 => default]
	Nipf int    `yaml:"nipf"` // number of integration points on face [0 => default]
}

// EbcData holds one essential boundary condition record
type EbcData struct {
	Key   string  `yaml:"key"`   // DOF key; e.g. "ux"
	Vtags []int   `yaml:"vtags"` // vertex tags
	Verts []int   `yaml:"verts"` // explicit vertex ids
	Value float64 `yaml:"value"` // constant prescribed value
	Func  string  `yaml:"func"`  // named time function [overrides Value]
	Free  bool    `yaml:"free"`  // release the DOF instead of fixing it
}

// FaceBcData holds one traction (natural) boundary condition record
type FaceBcData struct {
	Key   string  `yaml:"key"`   // load key; e.g. "qn" (normal traction), "qx", "qb" (flux)
	Ftags []int   `yaml:"ftags"` // face tags
	Value float64 `yaml:"value"` // constant value
	Func  string  `yaml:"func"`  // named time function [overrides Value]
}

// PloadData holds one concentrated (point) load record
type PloadData struct {
	Key   string  `yaml:"key"`   // force key; e.g. "fx"
	Vtags []int   `yaml:"vtags"` // vertex tags
	Verts []int   `yaml:"verts"` // explicit vertex ids
	Value float64 `yaml:"value"` // constant value
	Func  string  `yaml:"func"`  // named time function [overrides Value]
}

// EleCondData holds element conditions such as gravity or heat sources
type EleCondData struct {
	Key   string  `yaml:"key"`   // condition key; e.g. "g", "s"
	Etags []int   `yaml:"etags"` // cell tags
	Value float64 `yaml:"value"` // constant value
	Func  string  `yaml:"func"`  // named time function [overrides Value]
}

// IniData holds one initial condition record: a function of the node
// coordinates defining the initial value of one DOF key
type IniData struct {
	Key   string  `yaml:"key"`   // DOF key prefixed by field; e.g. "ux" (displacement), "vx" (velocity)
	Value float64 `yaml:"value"` // constant value
	Func  string  `yaml:"func"`  // named space function evaluated at t=0 and node coordinates
}

// Stage holds one simulation stage: a set of boundary conditions and the time
// interval over which they act
type Stage struct {
	Name     string         `yaml:"name"`     // stage name
	Tf       float64        `yaml:"tf"`       // final time of stage [0 => Solver.Tend]
	Skip     bool           `yaml:"skip"`     // do not run this stage
	Ebcs     []*EbcData     `yaml:"ebcs"`     // essential boundary conditions
	Fbcs     []*FaceBcData  `yaml:"fbcs"`     // traction boundary conditions
	Ploads   []*PloadData   `yaml:"ploads"`   // point loads
	EleConds []*EleCondData `yaml:"eleconds"` // element conditions
	Ini      []*IniData     `yaml:"ini"`      // initial conditions
}

// Simulation holds all simulation data
type Simulation struct {
	Data      Data        `yaml:"data"`      // global data
	Solver    SolverData  `yaml:"solver"`    // time integrator configuration
	Functions FuncsData   `yaml:"functions"` // named functions
	Mats      MatsData    `yaml:"materials"` // materials
	ElemDats  []*ElemData `yaml:"elements"`  // cell tag => element data
	Msh       *Mesh       `yaml:"mesh"`      // mesh
	Stages    []*Stage    `yaml:"stages"`    // stages
}

// ReadSim reads a simulation (.yml) file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	if o.Data.Key == "" {
		fn := filepath.Base(simfilepath)
		o.Data.Key = fn[:len(fn)-len(filepath.Ext(fn))]
	}
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init sets defaults and validates the simulation data. It must be called
// before the data is used; ReadSim calls it automatically
func (o *Simulation) Init() (err error) {

	// defaults
	o.Solver.SetDefaults()

	// check data eagerly, before any stepping starts
	if o.Solver.Tend <= 0 {
		return chk.Err("end time must be positive. tend=%g is invalid", o.Solver.Tend)
	}
	if o.Solver.StepRed <= 0 || o.Solver.StepRed >= 1 {
		return chk.Err("step reduction factor must be within (0,1). stepred=%g is invalid", o.Solver.StepRed)
	}
	if o.Msh == nil {
		return chk.Err("simulation has no mesh")
	}
	if o.Msh.Ndim == 0 {
		o.Msh.Ndim = o.Data.Ndim
	}
	if o.Data.Ndim == 0 {
		o.Data.Ndim = o.Msh.Ndim
	}
	err = o.Msh.Init()
	if err != nil {
		return
	}
	if len(o.Stages) == 0 {
		return chk.Err("simulation has no stages")
	}
	for _, stg := range o.Stages {
		if stg.Tf == 0 {
			stg.Tf = o.Solver.Tend
		}
	}

	// check that all cell tags have element data
	for _, c := range o.Msh.Cells {
		if o.Etag2data(c.Tag) == nil {
			return chk.Err("cannot find element data for cell tag %d", c.Tag)
		}
	}
	return
}

// Etag2data returns the element data attached to one cell tag
func (o *Simulation) Etag2data(tag int) *ElemData {
	for _, edat := range o.ElemDats {
		if edat.Tag == tag {
			return edat
		}
	}
	return nil
}
