// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"errors"
	"math"
	"testing"

	"github.com/memming/pyglm/data"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/network"
	"github.com/memming/pyglm/rng"
	"gonum.org/v1/gonum/mat"
)

const difTol = 1.0e-9

func testTemplate(t *testing.T, n, dStim int) (*network.Network, *Template) {
	np := &network.Params{}
	np.Defaults()
	net := network.New(np, n)
	gp := &Params{}
	gp.Defaults()
	gp.Bkgd.DStim = dStim
	tm, err := New(gp, n, 1, net)
	if err != nil {
		t.Fatal(err)
	}
	return net, tm
}

func testSyms(net *network.Network, tm *Template) expr.SymbolSet {
	return expr.SymbolSet{network.NS: net.Symbols(), NS: tm.Symbols()}
}

func TestRaisedCosine(t *testing.T) {
	for _, tc := range []struct {
		tImp, nb int
		dt       float64
	}{{10, 5, 1}, {20, 3, 0.5}, {7, 1, 1}, {1, 1, 2}, {4, 4, 1}} {
		basis := RaisedCosine(tc.tImp, tc.nb, tc.dt)
		r, c := basis.Dims()
		if r != tc.tImp || c != tc.nb {
			t.Errorf("basis dims: %vx%v, want %vx%v", r, c, tc.tImp, tc.nb)
			continue
		}
		for j := 0; j < c; j++ {
			col := mat.Col(nil, j, basis)
			for l, v := range col {
				if v < 0 {
					t.Errorf("negative basis: lag: %v, col: %v, val: %v", l, j, v)
				}
			}
			if area := data.Trapz(col, tc.dt); math.Abs(area-1) > difTol {
				t.Errorf("basis area err: tImp: %v, nb: %v, col: %v, area: %v", tc.tImp, tc.nb, j, area)
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	np := &network.Params{}
	np.Defaults()
	net := network.New(np, 2)
	gp := &Params{}
	gp.Defaults()
	gp.Imp.TMax = 3
	if _, err := New(gp, 2, 1, net); err == nil {
		t.Errorf("expected error for 5 basis functions over 3 lags")
	}
	gp.Defaults()
	if _, err := New(gp, 2, 0, net); err == nil {
		t.Errorf("expected error for zero bin width")
	}
}

func TestImpulse(t *testing.T) {
	net, tm := testTemplate(t, 2, 0)
	vs := tm.Sample(rng.New(2))
	vs["n"] = expr.Scalar(0)
	// one-hot basis weights pick out single basis columns
	vs["w_ir"] = expr.Matrix(2, 5, []float64{0, 0, 1, 0, 0, 1, 0, 0, 0, 0})
	b := expr.Binding{network.NS: net.Sample(rng.New(3)), NS: vs}
	imp, err := expr.Eval(tm.Imp.Impulse, testSyms(net, tm), b)
	if err != nil {
		t.Fatal(err)
	}
	for l := 0; l < tm.Imp.TImp; l++ {
		if v, cor := imp.Value([]int{0, l}), tm.Imp.Basis.At(l, 2); v != cor {
			t.Errorf("impulse err: pre: 0, lag: %v, val: %v, cor: %v", l, v, cor)
		}
		if v, cor := imp.Value([]int{1, l}), tm.Imp.Basis.At(l, 0); v != cor {
			t.Errorf("impulse err: pre: 1, lag: %v, val: %v, cor: %v", l, v, cor)
		}
	}
}

func TestINet(t *testing.T) {
	net, tm := testTemplate(t, 2, 0)
	s := mat.NewDense(20, 2, nil)
	s.Set(2, 0, 1)
	s.Set(15, 0, 2)
	if err := tm.SetData(data.New(s, 1)); err != nil {
		t.Fatal(err)
	}
	vs := tm.Sample(rng.New(4))
	vs["n"] = expr.Scalar(1)
	nv := expr.Vars{"W": expr.Matrix(2, 2, []float64{-1, 0.5, 0.3, -1})}
	b := expr.Binding{network.NS: nv, NS: vs}
	syms := testSyms(net, tm)

	in, err := expr.Eval(tm.Imp.INet, syms, b)
	if err != nil {
		t.Fatal(err)
	}
	imp, _ := expr.Eval(tm.Imp.Impulse, syms, b)
	cor := make([]float64, 20)
	for l := 0; l < tm.Imp.TImp; l++ {
		cor[3+l] += 0.5 * imp.Value([]int{0, l})
		if 16+l < 20 {
			cor[16+l] += 2 * 0.5 * imp.Value([]int{0, l})
		}
	}
	for i, v := range in.Values {
		if dif := math.Abs(v - cor[i]); dif > difTol {
			t.Errorf("I_net err: bin: %v, val: %v, cor: %v, dif: %v", i, v, cor[i], dif)
		}
	}
}

func TestLogP(t *testing.T) {
	net, tm := testTemplate(t, 2, 0)
	vs := tm.Sample(rng.New(5))
	vs["n"] = expr.Scalar(0)
	b := expr.Binding{network.NS: expr.Vars{"W": expr.Matrix(2, 2, nil)}, NS: vs}
	syms := testSyms(net, tm)

	if _, err := expr.Eval(tm.LogP(), syms, b); !errors.Is(err, ErrNoData) {
		t.Errorf("no data: got %v, want ErrNoData", err)
	}

	s := mat.NewDense(30, 2, nil)
	for i := 0; i < 30; i += 4 {
		s.Set(i, 0, 1)
	}
	if err := tm.SetData(data.New(s, 1)); err != nil {
		t.Fatal(err)
	}
	lp, err := expr.Eval(tm.LogP(), syms, b)
	if err != nil {
		t.Fatal(err)
	}
	// zero weights: rate is exp(bias) in every bin
	bias := vs["bias"].Values[0]
	lam := math.Exp(bias)
	z := (bias + 3) / 0.5
	cor := -0.5*z*z - math.Log(0.5) - 0.5*math.Log(2*math.Pi)
	// flat Dirichlet over 5 basis weights has density Gamma(5) = 24
	cor += 2 * math.Log(24)
	for i := 0; i < 30; i++ {
		k := s.At(i, 0)
		cor += k*math.Log(lam) - lam
	}
	if dif := math.Abs(lp.Values[0] - cor); dif > 1.0e-6 {
		t.Errorf("logp: %v, cor: %v, dif: %v", lp.Values[0], cor, dif)
	}

	st, err := expr.EvalTree(tm.State(), syms, b)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range st.ValueAt("lam").Values {
		if math.Abs(v-lam) > difTol {
			t.Errorf("lam err: bin: %v, val: %v, cor: %v", i, v, lam)
		}
	}
	if ks := st.Keys(); len(ks) != 4 || ks[3] != "lam" {
		t.Errorf("state keys: %v", ks)
	}

	vs["n"] = expr.Scalar(2)
	if _, err := expr.Eval(tm.LogP(), syms, b); !errors.Is(err, expr.ErrShape) {
		t.Errorf("bad index: got %v, want ErrShape", err)
	}
}

func TestStim(t *testing.T) {
	net, tm := testTemplate(t, 1, 2)
	ds := data.New(mat.NewDense(20, 1, nil), 1)
	ds.SetStim(mat.NewDense(2, 2, []float64{1, 2, -1, 0.5}), 10)
	if err := tm.SetData(ds); err != nil {
		t.Fatal(err)
	}
	vs := tm.Sample(rng.New(6))
	vs["n"] = expr.Scalar(0)
	vs["w_stim"] = expr.Vector([]float64{0.5, 1})
	b := expr.Binding{network.NS: net.Sample(rng.New(7)), NS: vs}
	is, err := expr.Eval(tm.Bkgd.IStim, testSyms(net, tm), b)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range is.Values {
		cor := 2.5
		if i >= 10 {
			cor = 0
		}
		if v != cor {
			t.Errorf("I_stim err: bin: %v, val: %v, cor: %v", i, v, cor)
		}
	}

	wrong := data.New(mat.NewDense(20, 1, nil), 1)
	if err := tm.SetData(wrong); err == nil {
		t.Errorf("expected error for data without stimulus")
	}
}
