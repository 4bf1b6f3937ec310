// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"fmt"
	"sort"

	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/glm"
	"github.com/memming/pyglm/network"
)

// Binding holds the values of all population variables: the network
// variables, and one set of GLM variables per neuron.  Every neuron's
// variables have the same names, and include the neuron index n.
type Binding struct {
	Net  expr.Vars
	GLMs []expr.Vars
}

// NewBinding returns an empty binding for n neurons
func NewBinding(n int) *Binding {
	b := &Binding{Net: make(expr.Vars), GLMs: make([]expr.Vars, n)}
	for i := range b.GLMs {
		b.GLMs[i] = make(expr.Vars)
	}
	return b
}

// Clone returns a deep copy of the binding
func (b *Binding) Clone() *Binding {
	cp := &Binding{Net: b.Net.Clone(), GLMs: make([]expr.Vars, len(b.GLMs))}
	for i, vs := range b.GLMs {
		cp.GLMs[i] = vs.Clone()
	}
	return cp
}

// Validate checks that there is one set of GLM variables per neuron, all
// with the same names
func (b *Binding) Validate(n int) error {
	if len(b.GLMs) != n {
		return fmt.Errorf("population: binding has %d neurons, population has %d", len(b.GLMs), n)
	}
	if n == 0 {
		return nil
	}
	keys := sortedKeys(b.GLMs[0])
	for i := 1; i < n; i++ {
		ki := sortedKeys(b.GLMs[i])
		if len(ki) != len(keys) {
			return fmt.Errorf("population: neuron %d has variables %v, neuron 0 has %v", i, ki, keys)
		}
		for j := range ki {
			if ki[j] != keys[j] {
				return fmt.Errorf("population: neuron %d has variables %v, neuron 0 has %v", i, ki, keys)
			}
		}
	}
	return nil
}

func sortedKeys(vs expr.Vars) []string {
	ks := make([]string, 0, len(vs))
	for k := range vs {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// ExtractVars returns the binding for evaluating neuron n: the network
// variables and the variables of neuron n, shared with b (not copied).
// Panics if n is not in [0, N).
func (pp *Population) ExtractVars(b *Binding, n int) expr.Binding {
	if n < 0 || n >= len(b.GLMs) {
		panic(fmt.Sprintf("population.ExtractVars: neuron index %d out of range [0, %d)", n, len(b.GLMs)))
	}
	return expr.Binding{network.NS: b.Net, glm.NS: b.GLMs[n]}
}
