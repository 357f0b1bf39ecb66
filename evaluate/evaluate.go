// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package evaluate measures how decoding accuracy evolves as observation
channels are folded into the sequential Bayesian fusion, averaged over
all trials and many random channel orderings per trial.

Each (trial, ordering) fusion run is independent, so trials are
distributed across a bounded set of workers; every run reduces to a
fixed-size correctness vector and the vectors are folded by element-wise
mean, with no shared mutable state between workers.  Orderings are drawn
from a per-trial seeded source, so results are reproducible for a given
Params.RandSeed regardless of worker count.
*/
package evaluate

import (
	"errors"
	"math/rand"

	"github.com/thartbm/bayesdecode/decode"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyTrialSet is returned for an evaluation requested over zero
// trials: an accuracy over zero trials is undefined, not zero.
var ErrEmptyTrialSet = errors.New("evaluate: empty trial set")

// ErrNoChans is returned for an evaluation over an empty channel set.
var ErrNoChans = errors.New("evaluate: no channels to decode")

// trialSeedStride decorrelates per-trial ordering streams derived from
// the single run seed
const trialSeedStride = 0x9e3779b9

// Eval evaluates a fitted model set against a trial set.
// Models and Data are read-only during evaluation and safe to share
// across workers.
type Eval struct {

	// fitted channel models, including the empirical base-rate prior
	Models *decode.Models

	// labeled trials to decode
	Data *decode.Dataset

	// evaluation parameters
	Params Params
}

// New returns an evaluator over the given models and trials,
// with default parameters.
func New(md *decode.Models, ds *decode.Dataset) *Eval {
	ev := &Eval{Models: md, Data: ds}
	ev.Params.Defaults()
	return ev
}

// AccuracyCurve returns mean decoding accuracy as a function of the
// number of channels incorporated (index k-1 = accuracy after k
// channels), over all trials and Params.NReps random orderings of the
// given channel subset per trial.  Each fusion run starts from the
// empirical class-frequency prior; a posterior of exactly 0.5 rounds
// toward the distinguished class.
func (ev *Eval) AccuracyCurve(chans []int) ([]float64, error) {
	if len(ev.Data.Trials) == 0 {
		return nil, ErrEmptyTrialSet
	}
	if len(chans) == 0 {
		return nil, ErrNoChans
	}
	for _, chc := range chans {
		if chc < 0 || chc >= ev.Models.NChans() {
			return nil, &decode.InvalidChanError{Chan: chc}
		}
	}
	ev.Params.Update()
	ntr := len(ev.Data.Trials)
	// per-trial correct counts -- each worker owns one row, merged below
	counts := make([][]int, ntr)
	grp := &errgroup.Group{}
	grp.SetLimit(ev.Params.NWorkers)
	for ti := range ev.Data.Trials {
		ti := ti
		grp.Go(func() error {
			tr := &ev.Data.Trials[ti]
			rnd := rand.New(rand.NewSource(ev.Params.RandSeed + int64(ti)*trialSeedStride))
			order := make([]int, len(chans))
			copy(order, chans)
			cnt := make([]int, len(chans))
			for rep := 0; rep < ev.Params.NReps; rep++ {
				rnd.Shuffle(len(order), func(i, j int) {
					order[i], order[j] = order[j], order[i]
				})
				traj, err := ev.Models.Fuse(order, tr.Vals, ev.Models.Prior)
				if err != nil {
					return err
				}
				for k, p := range traj {
					if Decode(p) == tr.Class {
						cnt[k]++
					}
				}
			}
			counts[ti] = cnt
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	curve := make([]float64, len(chans))
	nruns := float64(ntr * ev.Params.NReps)
	for _, cnt := range counts {
		for k, c := range cnt {
			curve[k] += float64(c)
		}
	}
	for k := range curve {
		curve[k] /= nruns
	}
	return curve, nil
}

// PerChanAccuracy returns the independent (non-fused) decoding accuracy
// of every channel: for each trial, the single-channel posterior at the
// fixed base-rate prior, rounded and compared against ground truth.
func (ev *Eval) PerChanAccuracy() ([]float64, error) {
	if len(ev.Data.Trials) == 0 {
		return nil, ErrEmptyTrialSet
	}
	acc := make([]float64, ev.Models.NChans())
	for chc := range acc {
		cor := 0
		for ti := range ev.Data.Trials {
			tr := &ev.Data.Trials[ti]
			p := ev.Models.Posterior(chc, ev.Models.Prior, tr.Vals[chc])
			if Decode(p) == tr.Class {
				cor++
			}
		}
		acc[chc] = float64(cor) / float64(len(ev.Data.Trials))
	}
	return acc, nil
}

// WeakChans returns the indexes of channels whose independent accuracy
// is below Params.WeakThr, given the PerChanAccuracy result.
func (ev *Eval) WeakChans(acc []float64) []int {
	var weak []int
	for chc, ac := range acc {
		if ac < ev.Params.WeakThr {
			weak = append(weak, chc)
		}
	}
	return weak
}

// AllChans returns the full channel index set, 0..NChans-1.
func (ev *Eval) AllChans() []int {
	chans := make([]int, ev.Models.NChans())
	for chc := range chans {
		chans[chc] = chc
	}
	return chans
}

// Decode rounds a P(right) belief to a class: the distinguished class
// wins ties at exactly 0.5 (round half up).
func Decode(p float64) decode.Class {
	if p >= 0.5 {
		return decode.Right
	}
	return decode.Left
}
