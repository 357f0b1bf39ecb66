// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import "fmt"

// Fuse runs the sequential Bayesian fusion of one trial's observation
// vector over the given channel ordering: for each channel in order,
// the current belief is updated by Posterior and the result fed forward
// as the prior for the next channel.  It returns the full belief
// trajectory, one P(right) per channel consumed, so callers can inspect
// decoding accuracy as a function of how many channels have been
// incorporated.  The last element is the final decoded belief.
//
// Under exact arithmetic with independent channels the final value is
// invariant to the ordering; the intermediate values are not -- they
// depend on which channels were seen first.
//
// order may be any subset permutation of the fitted channel set; an
// out-of-range index is an InvalidChanError.  vals must hold one
// reading per fitted channel (indexed by channel, not by order).
func (md *Models) Fuse(order []int, vals []float64, prior float64) ([]float64, error) {
	if len(vals) != md.NChans() {
		return nil, fmt.Errorf("decode.Fuse: got %d values for %d fitted channels", len(vals), md.NChans())
	}
	traj := make([]float64, len(order))
	belief := prior
	for oi, chc := range order {
		if chc < 0 || chc >= md.NChans() {
			return nil, &InvalidChanError{Chan: chc}
		}
		belief = md.Posterior(chc, belief, vals[chc])
		traj[oi] = belief
	}
	return traj, nil
}
