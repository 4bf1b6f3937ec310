// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"

	"github.com/emer/etable/etensor"
	"github.com/goki/kigen/ordmap"
)

// State is the numeric result of evaluating an expression tree:
// a leaf Value, or named sub-states in Items.
type State struct {
	Value *etensor.Float64
	Items *ordmap.Map[string, *State]
}

// IsLeaf returns true if this state holds a value
func (st *State) IsLeaf() bool {
	return st.Items == nil
}

// Item returns the sub-state at given path of names, nil if not found
func (st *State) Item(path ...string) *State {
	cur := st
	for _, nm := range path {
		if cur == nil || cur.Items == nil {
			return nil
		}
		sub, ok := cur.Items.ValByKey(nm)
		if !ok {
			return nil
		}
		cur = sub
	}
	return cur
}

// ValueAt returns the value at given path, nil if not found or not a leaf
func (st *State) ValueAt(path ...string) *etensor.Float64 {
	sub := st.Item(path...)
	if sub == nil {
		return nil
	}
	return sub.Value
}

// Keys returns the names of sub-states in order (nil for a leaf)
func (st *State) Keys() []string {
	if st.Items == nil {
		return nil
	}
	return st.Items.Keys()
}

// Equal returns true if both states have the same structure and
// bit-identical values
func (st *State) Equal(o *State) bool {
	if st == nil || o == nil {
		return st == o
	}
	if st.IsLeaf() != o.IsLeaf() {
		return false
	}
	if st.IsLeaf() {
		return Equal(st.Value, o.Value)
	}
	if st.Items.Len() != o.Items.Len() {
		return false
	}
	for _, kv := range st.Items.Order {
		ov, ok := o.Items.ValByKey(kv.Key)
		if !ok || !kv.Val.Equal(ov) {
			return false
		}
	}
	return true
}

// String returns an indented listing of the state's structure and shapes
func (st *State) String() string {
	var b strings.Builder
	st.write(&b, 0)
	return b.String()
}

func (st *State) write(b *strings.Builder, depth int) {
	if st.IsLeaf() {
		return
	}
	for _, kv := range st.Items.Order {
		b.WriteString(strings.Repeat("\t", depth))
		if kv.Val.IsLeaf() {
			fmt.Fprintf(b, "%s: %v\n", kv.Key, shapeOf(kv.Val.Value))
			continue
		}
		fmt.Fprintf(b, "%s:\n", kv.Key)
		kv.Val.write(b, depth+1)
	}
}
