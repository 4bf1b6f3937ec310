// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"math"

	"github.com/memming/pyglm/data"
	"gonum.org/v1/gonum/mat"
)

// RaisedCosine returns a tImp x nb matrix of raised cosine bumps with
// evenly spaced centers spanning lags 0 .. tImp-1.  Adjacent bumps overlap
// by half, and each column is scaled to integrate to 1 over lag time
// (bin width dt).  Requires 1 <= nb <= tImp.
func RaisedCosine(tImp, nb int, dt float64) *mat.Dense {
	basis := mat.NewDense(tImp, nb, nil)
	spc := 1.0
	if nb > 1 {
		spc = float64(tImp-1) / float64(nb-1)
	} else if tImp > 1 {
		spc = float64(tImp - 1)
	}
	col := make([]float64, tImp)
	for j := 0; j < nb; j++ {
		ctr := float64(j) * spc
		if nb == 1 {
			ctr = 0
		}
		for l := 0; l < tImp; l++ {
			d := (float64(l) - ctr) / spc
			if math.Abs(d) >= 1 {
				col[l] = 0
				continue
			}
			col[l] = 0.5 * (1 + math.Cos(math.Pi*d))
		}
		area := data.Trapz(col, dt)
		if area <= 0 {
			area = 1
		}
		for l := 0; l < tImp; l++ {
			basis.Set(l, j, col[l]/area)
		}
	}
	return basis
}
