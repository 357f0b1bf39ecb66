// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bayesdecode is the overall repository for sequential Bayesian
decoding of a binary latent class (e.g., reach direction: left vs. right)
from a vector of independent continuous observation channels, such as
per-channel neural firing rates.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* gauss: the univariate Gaussian class-conditional model -- fitting
moments from labeled samples, evaluating the density, and sampling,
including the degenerate zero-variance case.

* decode: dataset and channel-model types, per-channel Gaussian model
estimation from labeled training trials, the single-channel Bayesian
posterior update, and the sequential fusion engine that folds channels
in one at a time, each posterior becoming the next prior.

* evaluate: the decoding evaluation harness -- accuracy as a function of
the number of channels incorporated, under many random channel orderings
per trial, plus independent per-channel decoding accuracy and the
weak-channel subset comparison.

* examples: these compile into runnable programs.  examples/reachdecode
runs the full pipeline on a synthetic or tab-separated dataset and saves
the resulting accuracy tables.
*/
package bayesdecode
