// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package population is a population of point-process neurons coupled through a
network: one network model plus one GLM template shared by every neuron.

Variables are bound in two namespaces: "net" for the network, and "glm" for
one neuron's GLM, which is evaluated once per neuron with that neuron's
values (see ExtractVars).  Conditioned on the network variables the neurons
are independent, so the log probability of the whole population is the
network term plus a sum of per-neuron terms.

The main operations are Sample, SetData, ComputeLogP, EvalState and Simulate.
*/
package population

import (
	"log/slog"
	"sync"

	"github.com/emer/emergent/erand"
	"github.com/emer/emergent/timer"
	"github.com/goki/ki/ints"
	"github.com/memming/pyglm/data"
	"github.com/memming/pyglm/expr"
	"github.com/memming/pyglm/glm"
	"github.com/memming/pyglm/network"
	"github.com/memming/pyglm/rng"
)

// Population is a population of N coupled GLM neurons.
// It is not safe for concurrent use.
type Population struct {
	Config   Config                 `desc:"model configuration -- do not change after New"`
	N        int                    `desc:"number of neurons"`
	Net      *network.Network       `desc:"network model of connectivity"`
	GLM      *glm.Template          `desc:"GLM shared by all neurons"`
	Log      *slog.Logger           `desc:"structured log for progress and diagnostics"`
	Rand     erand.Rand             `desc:"random stream used when none is passed to Sample or Simulate"`
	FunTimes map[string]*timer.Time `view:"-" desc:"timers for each major function (step of processing)"`
	WaitGp   sync.WaitGroup         `view:"-"`

	syms    expr.SymbolSet
	netSyms expr.SymbolSet
}

// New returns a new population built from cf
func New(cf *Config) (*Population, error) {
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	pp := &Population{Config: *cf, N: cf.N, Log: slog.Default()}
	pp.Net = network.New(&pp.Config.Net, pp.N)
	tm, err := glm.New(&pp.Config.GLM, pp.N, pp.Config.Dt, pp.Net)
	if err != nil {
		return nil, err
	}
	pp.GLM = tm
	pp.Rand = rng.New(pp.Config.Seed)
	pp.FunTimes = make(map[string]*timer.Time)
	pp.netSyms = expr.SymbolSet{network.NS: pp.Net.Symbols()}
	pp.syms = expr.SymbolSet{network.NS: pp.Net.Symbols(), glm.NS: pp.GLM.Symbols()}
	return pp, nil
}

// Variables returns the symbols of both namespaces: the network symbols,
// and the symbols of one neuron's GLM
func (pp *Population) Variables() expr.SymbolSet {
	return pp.syms
}

// StateExprs returns the expressions of the population state:
// net for the network, and glm for one neuron
func (pp *Population) StateExprs() *expr.Expr {
	st := expr.NewGroup("")
	st.Add(network.NS, pp.Net.State())
	st.Add(glm.NS, pp.GLM.State())
	return st
}

// Sample draws network variables and the variables of each neuron from the
// prior.  Draws come from rnd, or the population's own stream if nil.
func (pp *Population) Sample(rnd erand.Rand) *Binding {
	if rnd == nil {
		rnd = pp.Rand
	}
	b := &Binding{Net: pp.Net.Sample(rnd), GLMs: make([]expr.Vars, pp.N)}
	for n := 0; n < pp.N; n++ {
		vs := pp.GLM.Sample(rnd)
		vs["n"] = expr.Scalar(float64(n))
		b.GLMs[n] = vs
	}
	return b
}

// SetData conditions the network and the GLMs on observations d
func (pp *Population) SetData(d *data.Set) error {
	if err := pp.Net.SetData(d); err != nil {
		return err
	}
	return pp.GLM.SetData(d)
}

// ThrNeuronFun calls fun for each neuron, spread over NThreads goroutines
// if NThreads > 1, and otherwise in order in the current goroutine.
// fun must only write state belonging to its own neuron.
func (pp *Population) ThrNeuronFun(fun func(n int), funame string) {
	pp.FunTimerStart(funame)
	nthr := ints.MinInt(pp.Config.NThreads, pp.N)
	if nthr <= 1 {
		for n := 0; n < pp.N; n++ {
			fun(n)
		}
	} else {
		for th := 0; th < nthr; th++ {
			pp.WaitGp.Add(1)
			go func(th int) {
				for n := th; n < pp.N; n += nthr {
					fun(n)
				}
				pp.WaitGp.Done()
			}(th)
		}
		pp.WaitGp.Wait()
	}
	pp.FunTimerStop(funame)
}
