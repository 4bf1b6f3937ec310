// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pyglm is the overall repository for populations of point-process
neurons coupled through generalized linear models (GLMs), implemented in Go.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* population: the population model itself, combining a network model with
one GLM shared by all neurons.  It samples variables from the prior,
computes log probabilities and model state, and simulates spike trains.

* sim: the spike simulator, which integrates each neuron's rate to
exponential thresholds and feeds spikes back through impulse responses,
resolving multiple spikes within a bin.

* glm: the shared GLM: bias, stimulus drive, impulse responses and rate
nonlinearity.

* network: the connectivity (graph) and weight models.

* expr: named free parameters, bindings of values to them, and the
expressions evaluated over them.

* nlin, rng, data: rate nonlinearities, the random stream, and observed data.

* examples: these actually compile into runnable programs.  examples/synth
samples a model, simulates it, and saves the trajectory.
*/
package pyglm
