// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const difTol = 1.0e-9

func TestValidate(t *testing.T) {
	ds := New(mat.NewDense(100, 2, nil), 1)
	if ds.N != 2 || ds.T != 100 {
		t.Errorf("New: N: %v, T: %v", ds.N, ds.T)
	}
	if err := ds.Validate(); err != nil {
		t.Error(err)
	}

	ds.SetStim(mat.NewDense(10, 3, nil), 10)
	if err := ds.Validate(); err != nil {
		t.Error(err)
	}
	if ds.DStim() != 3 || ds.StimRow(99) != 9 || ds.StimRow(10) != 1 {
		t.Errorf("stim: DStim: %v, row(99): %v, row(10): %v", ds.DStim(), ds.StimRow(99), ds.StimRow(10))
	}

	ds.SetStim(mat.NewDense(5, 3, nil), 10)
	if err := ds.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("short stimulus: got %v, want ErrInvalid", err)
	}

	ds = New(mat.NewDense(100, 2, nil), 1)
	ds.X = mat.NewDense(99, 2, nil)
	if err := ds.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("short X: got %v, want ErrInvalid", err)
	}

	ds = New(mat.NewDense(100, 2, nil), 1)
	ds.T = 50
	if err := ds.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad T: got %v, want ErrInvalid", err)
	}

	if err := New(nil, 1).Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("no S: got %v, want ErrInvalid", err)
	}
}

func TestStimRowBoundary(t *testing.T) {
	ds := &Set{Dt: 0.3, DtStim: 0.9}
	for bin := 0; bin < 30; bin++ {
		cor := bin / 3
		if r := ds.StimRow(bin); r != cor {
			t.Errorf("StimRow err: bin: %v, time: %v, row: %v, cor: %v", bin, float64(bin)*ds.Dt, r, cor)
		}
	}
	ds = &Set{Dt: 0.1, DtStim: 0.2}
	for bin := 0; bin < 400; bin++ {
		cor := bin / 2
		if r := ds.StimRow(bin); r != cor {
			t.Errorf("StimRow err: bin: %v, row: %v, cor: %v", bin, r, cor)
		}
	}

	// 10 bins of 0.3 need exactly 4 stimulus rows of 0.9
	ds = New(mat.NewDense(10, 1, nil), 0.3)
	ds.SetStim(mat.NewDense(4, 1, nil), 0.9)
	if err := ds.Validate(); err != nil {
		t.Error(err)
	}
	ds.SetStim(mat.NewDense(3, 1, nil), 0.9)
	if err := ds.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("3 stimulus rows: got %v, want ErrInvalid", err)
	}
}

func TestTrapz(t *testing.T) {
	y := []float64{0, 1, 2, 3, 4}
	if v := Trapz(y, 0.5); math.Abs(v-4) > difTol {
		t.Errorf("linear trapz: %v, cor: 4", v)
	}
	if v := Trapz([]float64{3}, 2); v != 6 {
		t.Errorf("single sample: %v, cor: 6", v)
	}
	if v := Trapz(nil, 1); v != 0 {
		t.Errorf("empty: %v, cor: 0", v)
	}
}
