// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"io"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/mat"
)

// Result is a simulated trajectory
type Result struct {

	// spike counts, bins x N -- empty for a zero length window
	S *mat.Dense

	// input current including spike feedback, bins x N -- empty for a zero length window
	X *mat.Dense

	// time at the start of the first bin
	Start float64

	// bin width
	Dt float64

	// comparison of sampled to expected spike counts
	Diag Diagnostics
}

// NBins returns the number of simulated bins
func (rs *Result) NBins() int {
	if rs.S == nil || rs.S.IsEmpty() {
		return 0
	}
	r, _ := rs.S.Dims()
	return r
}

// Table returns the trajectory as a table with one row per bin: the bin
// start time, then the spike count and input current of each neuron
func (rs *Result) Table() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "Trajectory")
	dt.SetMetaData("desc", "simulated spike counts and input currents")
	n := 0
	if rs.NBins() > 0 {
		_, n = rs.S.Dims()
	}
	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
	}
	for i := 0; i < n; i++ {
		sch = append(sch, etable.Column{fmt.Sprintf("S_%d", i), etensor.FLOAT64, nil, nil})
	}
	for i := 0; i < n; i++ {
		sch = append(sch, etable.Column{fmt.Sprintf("X_%d", i), etensor.FLOAT64, nil, nil})
	}
	nT := rs.NBins()
	dt.SetFromSchema(sch, nT)
	for t := 0; t < nT; t++ {
		dt.SetCellFloat("Time", t, rs.Start+float64(t)*rs.Dt)
		for i := 0; i < n; i++ {
			dt.SetCellFloat(fmt.Sprintf("S_%d", i), t, rs.S.At(t, i))
			dt.SetCellFloat(fmt.Sprintf("X_%d", i), t, rs.X.At(t, i))
		}
	}
	return dt
}

// WriteCSV writes the trajectory table to w as comma separated values
func (rs *Result) WriteCSV(w io.Writer) error {
	return rs.Table().WriteCSV(w, etable.Comma, true)
}
