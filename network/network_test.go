// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"errors"
	"math"
	"testing"

	"github.com/memming/pyglm/data"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/rng"
	"gonum.org/v1/gonum/mat"
)

const difTol = 1.0e-9

func testNet(typ GraphTypes, n int) *Network {
	np := &Params{}
	np.Defaults()
	np.Graph.Type = typ
	return New(np, n)
}

func syms(nw *Network) expr.SymbolSet {
	return expr.SymbolSet{NS: nw.Symbols()}
}

func TestSymbols(t *testing.T) {
	if nms := testNet(Complete, 3).Symbols().Names(); len(nms) != 1 || nms[0] != "W" {
		t.Errorf("Complete symbols: %v", nms)
	}
	if nms := testNet(ErdosRenyi, 3).Symbols().Names(); len(nms) != 2 || nms[0] != "A" {
		t.Errorf("ErdosRenyi symbols: %v", nms)
	}
}

func TestLogP(t *testing.T) {
	nw := testNet(ErdosRenyi, 4)
	vs := nw.Sample(rng.New(1))
	for i, a := range vs["A"].Values {
		if a != 0 && a != 1 {
			t.Errorf("A not binary: idx: %v, val: %v", i, a)
		}
	}

	lpv, err := expr.Eval(nw.LogP(), syms(nw), expr.Binding{NS: vs})
	if err != nil {
		t.Fatal(err)
	}
	cor := 0.0
	for pre := 0; pre < 4; pre++ {
		for post := 0; post < 4; post++ {
			if vs["A"].Values[pre*4+post] == 1 {
				cor += math.Log(0.2)
			} else {
				cor += math.Log(0.8)
			}
			mu, sd := 0.0, 0.5
			if pre == post {
				mu, sd = -1, 0.25
			}
			z := (vs["W"].Values[pre*4+post] - mu) / sd
			cor += -0.5*z*z - math.Log(sd) - 0.5*math.Log(2*math.Pi)
		}
	}
	if dif := math.Abs(lpv.Values[0] - cor); dif > difTol {
		t.Errorf("logp: %v, cor: %v, dif: %v", lpv.Values[0], cor, dif)
	}
}

func TestState(t *testing.T) {
	for _, typ := range []GraphTypes{Complete, Empty} {
		nw := testNet(typ, 2)
		b := expr.Binding{NS: expr.Vars{"W": expr.Matrix(2, 2, []float64{1, 2, 3, 4})}}
		st, err := expr.EvalTree(nw.State(), syms(nw), b)
		if err != nil {
			t.Fatal(err)
		}
		weff := st.ValueAt("W_eff")
		for i, v := range weff.Values {
			cor := 0.0
			if typ == Complete {
				cor = float64(i + 1)
			}
			if v != cor {
				t.Errorf("%v W_eff err: idx: %v, val: %v, cor: %v", typ, i, v, cor)
			}
		}
	}
}

func TestMissingWeights(t *testing.T) {
	nw := testNet(Complete, 2)
	_, err := expr.Eval(nw.LogP(), syms(nw), expr.Binding{NS: expr.Vars{}})
	if !errors.Is(err, expr.ErrMissing) {
		t.Errorf("got %v, want ErrMissing", err)
	}
	_, err = expr.Eval(nw.LogP(), syms(nw), expr.Binding{NS: expr.Vars{"W": expr.Matrix(3, 3, nil)}})
	if !errors.Is(err, expr.ErrShape) {
		t.Errorf("got %v, want ErrShape", err)
	}
}

func TestSetData(t *testing.T) {
	nw := testNet(Complete, 2)
	if err := nw.SetData(data.New(mat.NewDense(10, 2, nil), 1)); err != nil {
		t.Error(err)
	}
	if err := nw.SetData(data.New(mat.NewDense(10, 3, nil), 1)); err == nil {
		t.Errorf("expected neuron count mismatch")
	}
}

func TestGraphTypesText(t *testing.T) {
	var gt GraphTypes
	if err := gt.UnmarshalText([]byte("ErdosRenyi")); err != nil || gt != ErdosRenyi {
		t.Errorf("parse ErdosRenyi: %v, %v", gt, err)
	}
	if err := gt.UnmarshalText([]byte("Ring")); err == nil {
		t.Errorf("expected error for unknown graph type")
	}
}
