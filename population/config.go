// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/memming/pyglm/glm"
	"github.com/memming/pyglm/network"
	"github.com/memming/pyglm/sim"
)

// Config is the complete description of a population model.
// It is read-only once a Population has been made from it.
type Config struct {
	Name     string         `desc:"name of the model"`
	N        int            `def:"2" min:"1" desc:"number of neurons"`
	Dt       float64        `def:"1" min:"0" desc:"bin width of the time discretization -- the impulse responses are built for this bin width"`
	NThreads int            `def:"1" min:"1" desc:"number of goroutines for per-neuron computation"`
	Seed     int64          `def:"1" desc:"seed of the population's own random stream, used when no stream is passed in"`
	GLM      glm.Params     `desc:"parameters of the GLM shared by all neurons"`
	Net      network.Params `desc:"parameters of the network model"`
	Sim      sim.Params     `desc:"parameters of the spike simulator"`
}

func (cf *Config) Defaults() {
	cf.Name = StandardGLM
	cf.N = 2
	cf.Dt = 1
	cf.NThreads = 1
	cf.Seed = 1
	cf.GLM.Defaults()
	cf.Net.Defaults()
	cf.Sim.Defaults()
}

// Update must be called after any changes to parameters
func (cf *Config) Update() {
	cf.GLM.Update()
	cf.Net.Update()
	cf.Sim.Update()
}

// Validate returns an error for parameters no model can be built from
func (cf *Config) Validate() error {
	switch {
	case cf.N < 1:
		return fmt.Errorf("population: N %d must be >= 1", cf.N)
	case cf.Dt <= 0:
		return fmt.Errorf("population: Dt %v must be > 0", cf.Dt)
	case cf.GLM.Bkgd.DStim < 0:
		return fmt.Errorf("population: DStim %d must be >= 0", cf.GLM.Bkgd.DStim)
	case cf.Net.Graph.Rho < 0 || cf.Net.Graph.Rho > 1:
		return fmt.Errorf("population: Rho %v must be in [0, 1]", cf.Net.Graph.Rho)
	}
	return nil
}

// Names of the preset configurations
const (
	// StandardGLM is a fully connected population
	StandardGLM = "standard_glm"

	// SparseGLM has Erdos-Renyi random connectivity
	SparseGLM = "sparse_glm"

	// IndependentGLM has no connections
	IndependentGLM = "independent_glm"
)

// MakeConfig returns the preset configuration of given name for n neurons
func MakeConfig(name string, n int) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	cf.Name = name
	cf.N = n
	switch name {
	case StandardGLM:
		cf.Net.Graph.Type = network.Complete
	case SparseGLM:
		cf.Net.Graph.Type = network.ErdosRenyi
	case IndependentGLM:
		cf.Net.Graph.Type = network.Empty
	default:
		return nil, fmt.Errorf("population: unknown model %q", name)
	}
	cf.Update()
	return cf, nil
}

// OpenConfig returns the defaults overridden by the TOML config file at
// path.  Keys that match no parameter are logged as warnings.
func OpenConfig(path string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	md, err := toml.DecodeFile(path, cf)
	if err != nil {
		return nil, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		slog.Warn("config keys not used", "file", path, "keys", keys)
	}
	cf.Update()
	return cf, nil
}

// Save writes the config to a TOML file at path
func (cf *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cf)
}
