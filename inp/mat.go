// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/fun"
)

// MatData holds material parameters
type MatData struct {
	Name  string   `yaml:"name"`  // name of material
	Model string   `yaml:"model"` // model name; e.g. "linelast", "m1"
	Prms  fun.Prms `yaml:"prms"`  // parameters
}

// MatsData holds all materials
type MatsData []*MatData

// Get returns a material by name; returns nil if not found
func (o MatsData) Get(name string) *MatData {
	for _, m := range o {
		if m.Name == name {
			return m
		}
	}
	return nil
}
