// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package expr binds named free parameters to numeric values and evaluates
expressions over them.

A model component declares its free parameters as a Symbols namespace, and
publishes its derived quantities (log-probability, currents, kernels, rates)
as Expr values: either a Leaf holding a numeric evaluator function, or a
Group of named sub-expressions.  The same expressions serve every structurally
identical instance of a component -- only the Binding of values changes --
so a single template is evaluated N times for N neurons without rebuilding
anything per neuron.

Evaluation goes through a Scope, which is created by Bind after checking that
every declared symbol has a bound value of compatible shape.  Missing or
mis-shaped values are always reported as errors, never defaulted.
*/
package expr

import (
	"github.com/emer/etable/etensor"
	"github.com/goki/kigen/ordmap"
)

// Kinds are the variants of an Expr
type Kinds int32

const (
	// Leaf expressions compute a numeric value from a Scope
	Leaf Kinds = iota

	// Group expressions hold named sub-expressions
	Group
)

func (k Kinds) String() string {
	if k == Group {
		return "Group"
	}
	return "Leaf"
}

// Func is the numeric evaluator of a Leaf expression.  It must not modify
// any value it obtains from the Scope.
type Func func(sc *Scope) (*etensor.Float64, error)

// Expr is a tagged expression: a Leaf with a numeric evaluator, or a Group
// of named sub-expressions in the order they were added.
type Expr struct {
	Name  string
	Kind  Kinds
	Fun   Func
	Items *ordmap.Map[string, *Expr]
}

// NewLeaf returns a new Leaf expression evaluated by fun
func NewLeaf(name string, fun Func) *Expr {
	return &Expr{Name: name, Kind: Leaf, Fun: fun}
}

// NewGroup returns a new empty Group expression
func NewGroup(name string) *Expr {
	return &Expr{Name: name, Kind: Group, Items: ordmap.New[string, *Expr]()}
}

// IsLeaf returns true if this is a Leaf expression
func (ex *Expr) IsLeaf() bool {
	return ex.Kind == Leaf
}

// Add adds sub-expression under given name to this Group, and returns it.
// The same sub-expression can be added to several groups, under different
// names.  Panics if called on a Leaf.
func (ex *Expr) Add(name string, sub *Expr) *Expr {
	if ex.Kind != Group {
		panic("expr.Add: " + ex.Name + " is a Leaf, not a Group")
	}
	ex.Items.Add(name, sub)
	return sub
}

// AddLeaf adds a new Leaf evaluated by fun to this Group, and returns it
func (ex *Expr) AddLeaf(name string, fun Func) *Expr {
	return ex.Add(name, NewLeaf(name, fun))
}

// AddGroup adds a new empty Group to this Group, and returns it
func (ex *Expr) AddGroup(name string) *Expr {
	return ex.Add(name, NewGroup(name))
}

// Item returns the sub-expression of given name, nil if not a Group or not found
func (ex *Expr) Item(name string) *Expr {
	if ex.Kind != Group {
		return nil
	}
	sub, ok := ex.Items.ValByKey(name)
	if !ok {
		return nil
	}
	return sub
}

// Len returns the number of sub-expressions (0 for a Leaf)
func (ex *Expr) Len() int {
	if ex.Kind != Group {
		return 0
	}
	return ex.Items.Len()
}
