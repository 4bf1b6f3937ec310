// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlin

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-6

func TestNoisyXX1(t *testing.T) {
	xx1 := NXX1Params{}
	xx1.Defaults()

	tstx := []float32{-0.05, -0.04, -0.03, -0.02, -0.01, 0, .01, .02, .03, .04, .05, .1, .2, .3, .4, .5}
	cory := []float32{1.7735989e-14, 7.155215e-12, 2.8866178e-09, 1.1645374e-06, 0.00046864923, 0.094767615, 0.47916666, 0.65277773, 0.742268, 0.7967479, 0.8333333, 0.90909094, 0.95238096, 0.96774197, 0.9756098, 0.98039216}

	for i := range tstx {
		ny := xx1.NoisyXX1(tstx[i])
		dif := math32.Abs(ny - cory[i])
		if dif > difTol {
			t.Errorf("NoisyXX1 err: idx: %v, x: %v, y: %v, cor y: %v, dif: %v\n", i, tstx[i], ny, cory[i], dif)
		}
	}
}

func TestRate(t *testing.T) {
	np := Params{}
	np.Defaults()

	tstx := []float64{-3, -1, 0, 0.5, 2, 40}
	for _, typ := range []Types{Exp, SoftPlus} {
		np.Type = typ
		for i, x := range tstx {
			var cor float64
			if typ == Exp {
				cor = math.Exp(x)
			} else {
				cor = math.Log(1 + math.Exp(x))
			}
			r := np.Rate(x)
			dif := math.Abs(r-cor) / math.Max(1, cor)
			if dif > difTol {
				t.Errorf("%v rate err: idx: %v, x: %v, rate: %v, cor: %v, dif: %v\n", typ, i, x, r, cor, dif)
			}
		}
	}

	np.Type = NXX1
	np.MaxRate = 50
	if r := np.Rate(0.5); math.Abs(r-50*0.98039216) > 1.0e-4 {
		t.Errorf("NXX1 rate at 0.5: %v, cor: %v\n", r, 50*0.98039216)
	}
	if r := np.Rate(-1); r < 0 || r > 1.0e-10 {
		t.Errorf("NXX1 rate far below threshold should be ~0: %v\n", r)
	}
}

func TestRates(t *testing.T) {
	np := Params{}
	np.Defaults()
	x := []float64{0, 1, 2}
	rs := np.Rates(nil, x)
	for i := range x {
		if rs[i] != math.Exp(x[i]) {
			t.Errorf("Rates err: idx: %v, rate: %v, cor: %v\n", i, rs[i], math.Exp(x[i]))
		}
	}
}

func TestTypesText(t *testing.T) {
	var typ Types
	if err := typ.UnmarshalText([]byte("SoftPlus")); err != nil || typ != SoftPlus {
		t.Errorf("UnmarshalText SoftPlus: got %v, err: %v\n", typ, err)
	}
	if err := typ.UnmarshalText([]byte("Sigmoid")); err == nil {
		t.Errorf("expected error for unknown nonlinearity")
	}
}
