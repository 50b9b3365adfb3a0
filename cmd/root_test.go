// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barYaml = `
data:
  ndim: 1
solver:
  tend: 1.0
  dt: 0.1
materials:
  - name: "mat1"
    model: "linelast"
    prms:
      - {n: "E", v: 0.0}
      - {n: "rho", v: 2.0}
      - {n: "A", v: 1.0}
elements:
  - {tag: -1, mat: "mat1", type: "solid"}
mesh:
  ndim: 1
  verts:
    - {id: 0, tag: -100, c: [0.0]}
    - {id: 1, tag: -200, c: [1.0]}
  cells:
    - {id: 0, tag: -1, type: "lin2", verts: [0, 1]}
stages:
  - name: "push"
    ebcs:
      - {key: "ux", vtags: [-100]}
    ploads:
      - {key: "fx", vtags: [-200], value: 1.0}
`

func TestRunSimulationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.yml")
	require.NoError(t, os.WriteFile(path, []byte(barYaml), 0644))

	rootCmd.SetArgs([]string{"--quiet", path})
	assert.NoError(t, rootCmd.Execute())
}

func TestMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"--quiet", filepath.Join(t.TempDir(), "nope.yml")})
	assert.Error(t, rootCmd.Execute())
}
