// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/emer/etable/etensor"
	"github.com/goki/kigen/ordmap"
)

// Eval binds b to syms and evaluates Leaf expression e, returning a fresh
// copy of its value
func Eval(e *Expr, syms SymbolSet, b Binding) (*etensor.Float64, error) {
	sc, err := Bind(syms, b)
	if err != nil {
		return nil, err
	}
	v, err := sc.Eval(e)
	if err != nil {
		return nil, err
	}
	return Clone(v), nil
}

// EvalTree binds b to syms and evaluates every leaf of e, returning a State
// with the same structure as e
func EvalTree(e *Expr, syms SymbolSet, b Binding) (*State, error) {
	sc, err := Bind(syms, b)
	if err != nil {
		return nil, err
	}
	return sc.Tree(e)
}

// Tree evaluates every leaf of e in this scope, returning a State
// with the same structure as e.  Leaf values are copies.
func (sc *Scope) Tree(e *Expr) (*State, error) {
	return sc.tree(e, "")
}

func (sc *Scope) tree(e *Expr, path string) (*State, error) {
	if e.Kind == Leaf {
		if path == "" {
			path = e.Name
		}
		v, err := sc.eval(e)
		if err != nil {
			return nil, withPath(err, path)
		}
		return &State{Value: Clone(v)}, nil
	}
	st := &State{Items: ordmap.New[string, *State]()}
	for _, kv := range e.Items.Order {
		sp := kv.Key
		if path != "" {
			sp = path + "." + kv.Key
		}
		sub, err := sc.tree(kv.Val, sp)
		if err != nil {
			return nil, err
		}
		st.Items.Add(kv.Key, sub)
	}
	return st, nil
}
