// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/emer/etable/etensor"
	"github.com/goki/kigen/ordmap"
)

// Symbol is a named free parameter with its expected shape.
// A nil Shape is a scalar; a -1 dimension matches any size.
type Symbol struct {
	Name  string
	Shape []int
	Desc  string
}

// Compatible returns true if v has a shape matching the symbol's shape
func (sy *Symbol) Compatible(v *etensor.Float64) bool {
	if v == nil {
		return false
	}
	if len(sy.Shape) == 0 {
		return len(v.Values) == 1
	}
	shp := v.Shape.Shp
	if len(shp) != len(sy.Shape) {
		return false
	}
	for i, d := range sy.Shape {
		if d >= 0 && shp[i] != d {
			return false
		}
	}
	return true
}

// Symbols is the ordered set of symbols of one namespace
type Symbols struct {
	Syms *ordmap.Map[string, *Symbol]
}

// NewSymbols returns a new, empty set of symbols
func NewSymbols() *Symbols {
	return &Symbols{Syms: ordmap.New[string, *Symbol]()}
}

// Add adds a new symbol and returns it
func (ss *Symbols) Add(name string, shape []int, desc string) *Symbol {
	sy := &Symbol{Name: name, Shape: shape, Desc: desc}
	ss.Syms.Add(name, sy)
	return sy
}

// Symbol returns the symbol of given name
func (ss *Symbols) Symbol(name string) (*Symbol, bool) {
	return ss.Syms.ValByKey(name)
}

// Names returns the symbol names in order
func (ss *Symbols) Names() []string {
	return ss.Syms.Keys()
}

// Len returns the number of symbols
func (ss *Symbols) Len() int {
	return ss.Syms.Len()
}

// SymbolSet maps namespace names to their Symbols
type SymbolSet map[string]*Symbols
