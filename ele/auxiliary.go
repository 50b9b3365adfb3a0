// Copyright 2017 The FinEALE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/RaghuSivapuram/FinEALE/inp"

	"github.com/cpmech/gosl/la"
)

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = la.MatAlloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// ScatterK adds the local matrix K to the global triplets using the assembly
// map umap. Entries on fixed rows (eq < 0) are dropped; entries coupling free
// rows to fixed columns go into Kfc under the fixed-slot numbering
func ScatterK(Kb, Kfc *la.Triplet, K [][]float64, umap []int) {
	for i, I := range umap {
		if I < 0 {
			continue
		}
		for j, J := range umap {
			if J >= 0 {
				Kb.Put(I, J, K[i][j])
			} else {
				Kfc.Put(I, -J-1, K[i][j])
			}
		}
	}
}

// ScatterM adds the local lumped mass vector m to the global diagonal mb,
// dropping fixed DOFs
func ScatterM(mb []float64, m []float64, umap []int) {
	for i, I := range umap {
		if I >= 0 {
			mb[I] += m[i]
		}
	}
}
