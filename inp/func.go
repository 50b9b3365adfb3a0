// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// FuncData holds the definition of one named time/space function
type FuncData struct {
	Name string   `yaml:"name"` // name of function; e.g. "load-ramp"
	Type string   `yaml:"type"` // type of function; e.g. "cte", "rmp", "sin"
	Prms fun.Prms `yaml:"prms"` // parameters
}

// FuncsData holds all named functions of a simulation
type FuncsData []*FuncData

// Get returns a function by name
func (o FuncsData) Get(name string) (fcn fun.Func, err error) {
	if name == "zero" || name == "none" {
		fcn = &fun.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot allocate function named %q:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// GetOrCte returns the named function or, if name is empty, a constant
// function with the given value. This is how boundary condition records carry
// either a constant or a time-dependent prescribed value
func (o FuncsData) GetOrCte(name string, value float64) (fcn fun.Func, err error) {
	if name == "" {
		fcn = &fun.Cte{C: value}
		return
	}
	return o.Get(name)
}
