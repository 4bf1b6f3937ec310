// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"gonum.org/v1/gonum/integrate"
)

// Trapz returns the integral of y sampled at bins of width dt, using the
// trapezoidal rule.  With fewer than two samples it is the rectangle sum.
func Trapz(y []float64, dt float64) float64 {
	if len(y) < 2 {
		s := 0.0
		for _, v := range y {
			s += v * dt
		}
		return s
	}
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i) * dt
	}
	return integrate.Trapezoidal(x, y)
}
