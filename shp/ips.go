// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ipsfactory holds integration point rules, keyed by "geoType_nip"
var ipsfactory = make(map[string][]Ipoint)

// defaultNips holds the default number of integration points per geometry type
var defaultNips = map[string]int{
	"lin2": 2,
	"tri3": 3,
	"qua4": 4,
	"tet4": 4,
	"hex8": 8,
}

// GetIps returns the integration points of the element and of its faces.
// nip and nipf select the rules; zero values select the default rules
func (o *Shape) GetIps(nip, nipf int) (ipsElem, ipsFace []Ipoint, err error) {

	// element rule
	if nip == 0 {
		nip = defaultNips[o.Type]
	}
	ipsElem, ok := ipsfactory[io.Sf("%s_%d", o.Type, nip)]
	if !ok {
		err = chk.Err("cannot find integration rule with %d points for %q", nip, o.Type)
		return
	}

	// face rule
	if o.FaceType == "" {
		return
	}
	if nipf == 0 {
		nipf = defaultNips[o.FaceType]
	}
	ipsFace, ok = ipsfactory[io.Sf("%s_%d", o.FaceType, nipf)]
	if !ok {
		err = chk.Err("cannot find integration rule with %d points for face %q", nipf, o.FaceType)
	}
	return
}

// Gauss-Legendre coordinates for 2-point rules
const gp2 = 0.5773502691896257 // 1/sqrt(3)

func init() {

	// lin2
	ipsfactory["lin2_1"] = []Ipoint{
		{0, 0, 0, 2},
	}
	ipsfactory["lin2_2"] = []Ipoint{
		{-gp2, 0, 0, 1},
		{gp2, 0, 0, 1},
	}

	// tri3
	ipsfactory["tri3_1"] = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	}
	ipsfactory["tri3_3"] = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}

	// qua4
	ipsfactory["qua4_4"] = []Ipoint{
		{-gp2, -gp2, 0, 1},
		{gp2, -gp2, 0, 1},
		{gp2, gp2, 0, 1},
		{-gp2, gp2, 0, 1},
	}

	// tet4
	const (
		ta = 0.5854101966249685 // (5+3*sqrt(5))/20
		tb = 0.1381966011250105 // (5-sqrt(5))/20
	)
	ipsfactory["tet4_1"] = []Ipoint{
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
	}
	ipsfactory["tet4_4"] = []Ipoint{
		{tb, tb, tb, 1.0 / 24.0},
		{ta, tb, tb, 1.0 / 24.0},
		{tb, ta, tb, 1.0 / 24.0},
		{tb, tb, ta, 1.0 / 24.0},
	}

	// hex8
	hex8ips := make([]Ipoint, 0, 8)
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				r := -gp2 + float64(i)*2*gp2
				s := -gp2 + float64(j)*2*gp2
				t := -gp2 + float64(k)*2*gp2
				hex8ips = append(hex8ips, Ipoint{r, s, t, 1})
			}
		}
	}
	ipsfactory["hex8_8"] = hex8ips
}
