// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import "math"

// Posterior computes the single-channel Bayesian update: given the
// current belief that the class is Right (prior) and the observed value
// on channel chc, it returns the posterior probability that the class
// is Right.
//
// The two classes are mutually exclusive and exhaustive, so the
// posterior is normalized by the identity p(right) + p(left) = 1 rather
// than by an explicit marginal density:
//
//	uR = L(val | right) * prior
//	uL = L(val | left) * (1 - prior)
//	p  = uR / (uR + uL)
//
// Defined outcomes replace the degenerate cases, so the result is
// always a valid probability, never NaN or Inf:
//
//   - A zero-variance channel observed exactly at its class mean has
//     infinite density -- a certainty signal: that class gets
//     probability 1, unless the prior already rules it out entirely.
//   - Both densities infinite (two zero-variance models, value matching
//     both means): the channel cannot discriminate, prior is returned.
//   - Both densities underflow to 0 (value far in the tails of both
//     distributions): the channel is uninformative for this value,
//     prior is returned unchanged.
func (md *Models) Posterior(chc int, prior, val float64) float64 {
	cm := &md.Chans[chc]
	lr := cm.Dist[Right].Density(val)
	ll := cm.Dist[Left].Density(val)
	infR := math.IsInf(lr, 1)
	infL := math.IsInf(ll, 1)
	switch {
	case infR && infL:
		return prior
	case infR:
		if prior == 0 {
			return 0
		}
		return 1
	case infL:
		if prior == 1 {
			return 1
		}
		return 0
	}
	ur := lr * prior
	ul := ll * (1 - prior)
	if ur+ul == 0 {
		return prior
	}
	return ur / (ur + ul)
}

// PosteriorPair returns the posterior for both classes, in Class index
// order (left, right).  The two always sum to 1.
func (md *Models) PosteriorPair(chc int, prior, val float64) (pLeft, pRight float64) {
	pRight = md.Posterior(chc, prior, val)
	return 1 - pRight, pRight
}
