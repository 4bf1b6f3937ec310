// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"testing"

	"github.com/emer/etable/etensor"
)

// testSyms has a scalar and a free-length vector in "glm", and a 2x2 in "net"
func testSyms() SymbolSet {
	glm := NewSymbols()
	glm.Add("bias", nil, "baseline")
	glm.Add("w", []int{-1}, "filter weights")
	net := NewSymbols()
	net.Add("W", []int{2, 2}, "weights")
	return SymbolSet{"glm": glm, "net": net}
}

func testBinding() Binding {
	return Binding{
		"glm": Vars{"bias": Scalar(-1), "w": Vector([]float64{1, 2, 3}), "n": Scalar(0)},
		"net": Vars{"W": Matrix(2, 2, []float64{1, 2, 3, 4})},
	}
}

// sumW is bias + sum(w) + W[0,1]
func sumW(sc *Scope) (*etensor.Float64, error) {
	b, err := sc.Float("glm", "bias")
	if err != nil {
		return nil, err
	}
	w, err := sc.Value("glm", "w")
	if err != nil {
		return nil, err
	}
	W, err := sc.Value("net", "W")
	if err != nil {
		return nil, err
	}
	s := b + W.Value([]int{0, 1})
	for _, v := range w.Values {
		s += v
	}
	return Scalar(s), nil
}

func TestEval(t *testing.T) {
	v, err := Eval(NewLeaf("sum", sumW), testSyms(), testBinding())
	if err != nil {
		t.Fatal(err)
	}
	f, _ := Float(v)
	if f != 7 {
		t.Errorf("sum: got %v, want 7", f)
	}
}

func TestEvalErrors(t *testing.T) {
	sum := NewLeaf("sum", sumW)

	b := testBinding()
	delete(b["glm"], "w")
	_, err := Eval(sum, testSyms(), b)
	if !errors.Is(err, ErrMissing) {
		t.Errorf("missing w: got %v, want ErrMissing", err)
	}
	var ee *EvalError
	if !errors.As(err, &ee) || ee.NS != "glm" || ee.Sym != "w" {
		t.Errorf("missing w: error context not reported: %v", err)
	}

	b = testBinding()
	b["net"]["W"] = Matrix(3, 2, nil)
	if _, err := Eval(sum, testSyms(), b); !errors.Is(err, ErrShape) {
		t.Errorf("3x2 W: got %v, want ErrShape", err)
	}

	b = testBinding()
	b["glm"]["bias"] = Vector([]float64{1, 2})
	if _, err := Eval(sum, testSyms(), b); !errors.Is(err, ErrShape) {
		t.Errorf("vector bias: got %v, want ErrShape", err)
	}

	undeclared := NewLeaf("n", func(sc *Scope) (*etensor.Float64, error) {
		return sc.Value("glm", "n")
	})
	if _, err := Eval(undeclared, testSyms(), testBinding()); !errors.Is(err, ErrUnknown) {
		t.Errorf("undeclared n: got %v, want ErrUnknown", err)
	}

	if _, err := Eval(NewGroup("g"), testSyms(), testBinding()); !errors.Is(err, ErrNotLeaf) {
		t.Errorf("group eval: got %v, want ErrNotLeaf", err)
	}
}

func testTree(calls *int) *Expr {
	root := NewGroup("")
	shared := NewLeaf("w", func(sc *Scope) (*etensor.Float64, error) {
		*calls++
		return sc.Value("glm", "w")
	})
	bias := root.AddGroup("bias")
	bias.AddLeaf("b", func(sc *Scope) (*etensor.Float64, error) {
		return sc.Value("glm", "bias")
	})
	filt := root.AddGroup("filt")
	filt.Add("w", shared)
	filt.AddLeaf("w2", func(sc *Scope) (*etensor.Float64, error) {
		w, err := sc.Eval(shared)
		if err != nil {
			return nil, err
		}
		out := Clone(w)
		for i := range out.Values {
			out.Values[i] *= 2
		}
		return out, nil
	})
	root.AddLeaf("sum", sumW)
	return root
}

func TestEvalTree(t *testing.T) {
	calls := 0
	tree := testTree(&calls)
	b := testBinding()
	st, err := EvalTree(tree, testSyms(), b)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("shared sub-expression evaluated %v times, want 1", calls)
	}
	ks := st.Keys()
	if len(ks) != 3 || ks[0] != "bias" || ks[1] != "filt" || ks[2] != "sum" {
		t.Errorf("keys out of order: %v", ks)
	}
	w2 := st.ValueAt("filt", "w2")
	cor := []float64{2, 4, 6}
	for i, v := range w2.Values {
		if v != cor[i] {
			t.Errorf("w2 err: idx: %v, val: %v, cor: %v", i, v, cor[i])
		}
	}
	if st.Item("filt", "nope") != nil {
		t.Errorf("expected nil for unknown path")
	}

	// values are copies: changing the state leaves the binding alone
	st.ValueAt("filt", "w").Values[0] = 100
	if b["glm"]["w"].Values[0] != 1 {
		t.Errorf("state aliases binding values")
	}

	st2, err := EvalTree(tree, testSyms(), b)
	if err != nil {
		t.Fatal(err)
	}
	st3, _ := EvalTree(tree, testSyms(), b)
	if !st2.Equal(st3) {
		t.Errorf("repeated evaluation not identical:\n%v\n%v", st2, st3)
	}
	if st.Equal(st2) {
		t.Errorf("modified state should differ")
	}
}

func TestEvalTreeErrorPath(t *testing.T) {
	calls := 0
	tree := testTree(&calls)
	tree.Item("filt").AddLeaf("bad", func(sc *Scope) (*etensor.Float64, error) {
		return sc.Value("net", "A")
	})
	_, err := EvalTree(tree, testSyms(), testBinding())
	var ee *EvalError
	if !errors.As(err, &ee) {
		t.Fatalf("want EvalError, got %v", err)
	}
	if ee.Path != "filt.bad" || !errors.Is(err, ErrUnknown) {
		t.Errorf("error path: %q, err: %v", ee.Path, err)
	}
}

func TestSymbolCompatible(t *testing.T) {
	sy := &Symbol{Name: "A", Shape: []int{-1, 3}}
	if !sy.Compatible(Matrix(5, 3, nil)) {
		t.Errorf("5x3 should match [-1 3]")
	}
	if sy.Compatible(Matrix(3, 5, nil)) {
		t.Errorf("3x5 should not match [-1 3]")
	}
	if sy.Compatible(Vector([]float64{1, 2, 3})) {
		t.Errorf("vector should not match [-1 3]")
	}

	ss := NewSymbols()
	ss.Add("w", []int{3}, "")
	ss.Add("b", nil, "")
	ss.Add("A", []int{2, 2}, "")
	nms := ss.Names()
	if len(nms) != 3 || nms[0] != "w" || nms[1] != "b" || nms[2] != "A" {
		t.Errorf("names out of insertion order: %v", nms)
	}
	if sy, ok := ss.Symbol("b"); !ok || sy.Name != "b" {
		t.Errorf("Symbol(b): %v, %v", sy, ok)
	}
	if _, ok := ss.Symbol("x"); ok {
		t.Errorf("Symbol(x) found an undeclared name")
	}
}
