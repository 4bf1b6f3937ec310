// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"sort"

	"github.com/emer/etable/etensor"
)

// Scope is a checked binding of values to a SymbolSet, against which
// expressions are evaluated.  Values of sub-expressions evaluated through
// the Scope are cached for its lifetime, so shared intermediate quantities
// are computed once.  A Scope is not safe for concurrent use.
type Scope struct {
	Syms  SymbolSet
	Vars  Binding
	cache map[*Expr]*etensor.Float64
}

// Bind returns a new Scope after checking that every symbol in syms has a
// bound value in b with a compatible shape.  Values in b without a symbol
// are ignored.
func Bind(syms SymbolSet, b Binding) (*Scope, error) {
	nss := make([]string, 0, len(syms))
	for ns := range syms {
		nss = append(nss, ns)
	}
	sort.Strings(nss)
	for _, ns := range nss {
		ss := syms[ns]
		if ss == nil {
			continue
		}
		vars := b[ns]
		for _, kv := range ss.Syms.Order {
			sy := kv.Val
			v, ok := vars[sy.Name]
			if !ok || v == nil {
				return nil, &EvalError{NS: ns, Sym: sy.Name, Err: ErrMissing}
			}
			if !sy.Compatible(v) {
				return nil, &EvalError{NS: ns, Sym: sy.Name, Err: fmt.Errorf("%w: declared %v, bound %v", ErrShape, sy.Shape, v.Shape.Shp)}
			}
		}
	}
	sc := &Scope{Syms: syms, Vars: b, cache: make(map[*Expr]*etensor.Float64)}
	return sc, nil
}

// Value returns the value bound to symbol name in namespace ns.
// The value must not be modified.
func (sc *Scope) Value(ns, name string) (*etensor.Float64, error) {
	if !sc.Has(ns, name) {
		return nil, &EvalError{NS: ns, Sym: name, Err: ErrUnknown}
	}
	return sc.Vars[ns][name], nil
}

// Float returns the scalar value bound to symbol name in namespace ns
func (sc *Scope) Float(ns, name string) (float64, error) {
	v, err := sc.Value(ns, name)
	if err != nil {
		return 0, err
	}
	f, err := Float(v)
	if err != nil {
		return 0, &EvalError{NS: ns, Sym: name, Err: err}
	}
	return f, nil
}

// Int returns the scalar value bound to symbol name in namespace ns as an int
func (sc *Scope) Int(ns, name string) (int, error) {
	f, err := sc.Float(ns, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Has returns true if the scope declares symbol name in namespace ns
func (sc *Scope) Has(ns, name string) bool {
	ss := sc.Syms[ns]
	if ss == nil {
		return false
	}
	_, ok := ss.Symbol(name)
	return ok
}

// Eval evaluates Leaf expression e, using the cached value if e was already
// evaluated in this scope.  The returned value must not be modified.
func (sc *Scope) Eval(e *Expr) (*etensor.Float64, error) {
	v, err := sc.eval(e)
	if err != nil && e != nil {
		return nil, withPath(err, e.Name)
	}
	return v, err
}

func (sc *Scope) eval(e *Expr) (*etensor.Float64, error) {
	if e == nil {
		return nil, &EvalError{Err: fmt.Errorf("%w: nil expression", ErrMissing)}
	}
	if e.Kind != Leaf {
		return nil, &EvalError{Path: e.Name, Err: ErrNotLeaf}
	}
	if v, ok := sc.cache[e]; ok {
		return v, nil
	}
	v, err := e.Fun(sc)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &EvalError{Err: fmt.Errorf("%w: evaluator returned no value", ErrShape)}
	}
	sc.cache[e] = v
	return v, nil
}
