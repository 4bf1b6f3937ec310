// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/mat"
)

// Vars are numeric values bound to the symbols of one namespace
type Vars map[string]*etensor.Float64

// Binding maps namespace names to their bound Vars
type Binding map[string]Vars

// Clone returns a deep copy of the vars
func (vs Vars) Clone() Vars {
	if vs == nil {
		return nil
	}
	cp := make(Vars, len(vs))
	for k, v := range vs {
		cp[k] = Clone(v)
	}
	return cp
}

// Equal returns true if both have the same keys with identical shapes and values
func (vs Vars) Equal(o Vars) bool {
	if len(vs) != len(o) {
		return false
	}
	for k, v := range vs {
		ov, ok := o[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}

// Zeros returns a new zero-valued tensor of given shape (scalar if no dims)
func Zeros(shape ...int) *etensor.Float64 {
	if len(shape) == 0 {
		shape = []int{1}
	}
	return etensor.NewFloat64(shape, nil, nil)
}

// Scalar returns a new scalar value
func Scalar(v float64) *etensor.Float64 {
	tsr := Zeros()
	tsr.Values[0] = v
	return tsr
}

// Vector returns a new 1D value holding a copy of vals
func Vector(vals []float64) *etensor.Float64 {
	tsr := Zeros(len(vals))
	copy(tsr.Values, vals)
	return tsr
}

// Matrix returns a new rows x cols value holding a copy of vals (row major).
// Nil vals gives all zeros.
func Matrix(rows, cols int, vals []float64) *etensor.Float64 {
	tsr := Zeros(rows, cols)
	copy(tsr.Values, vals)
	return tsr
}

// FromDense returns a new 2D value copied from m
func FromDense(m *mat.Dense) *etensor.Float64 {
	r, c := m.Dims()
	tsr := Zeros(r, c)
	for i := 0; i < r; i++ {
		copy(tsr.Values[i*c:(i+1)*c], m.RawRowView(i))
	}
	return tsr
}

// Clone returns a deep copy of v
func Clone(v *etensor.Float64) *etensor.Float64 {
	if v == nil {
		return nil
	}
	shp := make([]int, len(v.Shape.Shp))
	copy(shp, v.Shape.Shp)
	cp := Zeros(shp...)
	copy(cp.Values, v.Values)
	return cp
}

// Equal returns true if a and b have identical shapes and bit-identical values
func Equal(a, b *etensor.Float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameShape(a.Shape.Shp, b.Shape.Shp) || len(a.Values) != len(b.Values) {
		return false
	}
	for i, v := range a.Values {
		if v != b.Values[i] {
			return false
		}
	}
	return true
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Float returns the single value of a scalar (any shape with one element)
func Float(v *etensor.Float64) (float64, error) {
	if v == nil || len(v.Values) != 1 {
		return 0, fmt.Errorf("%w: want scalar, have shape %v", ErrShape, shapeOf(v))
	}
	return v.Values[0], nil
}

// Dense returns a gonum matrix view sharing the values of 2D v, which must
// have non-zero dimensions.  The view must be treated as read-only.
func Dense(v *etensor.Float64) (*mat.Dense, error) {
	if v == nil || v.NumDims() != 2 || v.Dim(0) == 0 || v.Dim(1) == 0 {
		return nil, fmt.Errorf("%w: want non-empty matrix, have shape %v", ErrShape, shapeOf(v))
	}
	return mat.NewDense(v.Dim(0), v.Dim(1), v.Values), nil
}

func shapeOf(v *etensor.Float64) []int {
	if v == nil {
		return nil
	}
	return v.Shape.Shp
}
