// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simYaml = `
data:
  key: "bar-dynamics"
  ndim: 1
solver:
  type: "exp"
  tend: 1.0
  dt: 0.1
  rayk: 0.001
  raym: 0.05
functions:
  - name: "load-ramp"
    type: "lin"
    prms:
      - n: "m"
        v: 2.0
materials:
  - name: "steel"
    model: "linelast"
    prms:
      - n: "E"
        v: 200.0
      - n: "rho"
        v: 7.8
      - n: "A"
        v: 1.0
elements:
  - tag: -1
    mat: "steel"
    type: "solid"
mesh:
  ndim: 1
  verts:
    - {id: 0, tag: -100, c: [0.0]}
    - {id: 1, tag: 0, c: [0.5]}
    - {id: 2, tag: -200, c: [1.0]}
  cells:
    - {id: 0, tag: -1, type: "lin2", verts: [0, 1]}
    - {id: 1, tag: -1, type: "lin2", verts: [1, 2]}
stages:
  - name: "pull"
    ebcs:
      - {key: "ux", vtags: [-100]}
    ploads:
      - {key: "fx", vtags: [-200], func: "load-ramp"}
`

func writeSim(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "bar-dynamics.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSim(t *testing.T) {
	sim, err := ReadSim(writeSim(t, simYaml))
	require.NoError(t, err)

	assert.Equal(t, "bar-dynamics", sim.Data.Key)
	assert.Equal(t, 1, sim.Data.Ndim)

	// solver settings and defaults
	assert.Equal(t, "exp", sim.Solver.Type)
	assert.Equal(t, 1.0, sim.Solver.Tend)
	assert.Equal(t, 0.1, sim.Solver.Dt)
	assert.Equal(t, 0.99, sim.Solver.StepRed) // default
	assert.Equal(t, 3, sim.Solver.NmaxFixIt)  // default
	assert.Equal(t, 1e-3, sim.Solver.AccTol)  // default
	assert.False(t, sim.Solver.Implicit)

	// materials and functions
	mat := sim.Mats.Get("steel")
	require.NotNil(t, mat)
	assert.Equal(t, "linelast", mat.Model)
	fcn, err := sim.Functions.Get("load-ramp")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fcn.F(0.5, nil), 1e-15)

	// mesh: shapes resolved and tag maps built
	require.Len(t, sim.Msh.Cells, 2)
	assert.Equal(t, "lin2", sim.Msh.Cells[0].Shp.Type)
	assert.Len(t, sim.Msh.VertTag2verts[-100], 1)
	assert.Len(t, sim.Msh.CellTag2cells[-1], 2)

	// stages: tf falls back to tend
	require.Len(t, sim.Stages, 1)
	assert.Equal(t, 1.0, sim.Stages[0].Tf)
	require.Len(t, sim.Stages[0].Ebcs, 1)
	assert.Equal(t, "ux", sim.Stages[0].Ebcs[0].Key)
}

func TestReadSimKeyFromFilename(t *testing.T) {
	content := simYaml
	// blank the key; it must be derived from the file name
	sim, err := ReadSim(writeSim(t, strings.Replace(content, `key: "bar-dynamics"`, `key: ""`, 1)))
	require.NoError(t, err)
	assert.Equal(t, "bar-dynamics", sim.Data.Key)
}

func TestSimValidation(t *testing.T) {
	// missing end time
	_, err := ReadSim(writeSim(t, strings.Replace(simYaml, "tend: 1.0", "tend: 0.0", 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end time")

	// unknown cell type
	_, err = ReadSim(writeSim(t, strings.Replace(simYaml, `type: "lin2"`, `type: "lin99"`, 1)))
	require.Error(t, err)

	// cell tag without element data
	_, err = ReadSim(writeSim(t, strings.Replace(simYaml, "  - tag: -1\n", "  - tag: -7\n", 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element data")
}
