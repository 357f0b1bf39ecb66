// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"fmt"

	"github.com/thartbm/bayesdecode/gauss"
)

// ChanModel holds the two class-conditional Gaussians for one
// observation channel.
type ChanModel struct {

	// channel name
	Name string

	// class-conditional model per class, indexed by Class
	Dist [NClasses]gauss.Model
}

// Models is the full fitted model set: one ChanModel per channel, plus
// the empirical base-rate prior.  Built once by Estimate and immutable
// afterward -- safe for concurrent read-only use across evaluation
// workers without locking.
type Models struct {

	// per-channel class-conditional models, in dataset channel order
	Chans []ChanModel

	// empirical frequency of the distinguished class (Right) in the
	// training set -- the starting belief before any channel is consumed
	Prior float64 `min:"0" max:"1"`

	// name -> channel index
	idx map[string]int
}

// Estimate fits a Gaussian per (channel, class) from the labeled
// training set, and computes the empirical class-frequency prior.
// Returns an InsufficientDataError if any (channel, class) pair has no
// training trials.
func Estimate(ds *Dataset) (*Models, error) {
	if len(ds.Trials) == 0 {
		return nil, fmt.Errorf("decode.Estimate: empty training set")
	}
	md := &Models{Chans: make([]ChanModel, len(ds.Chans)), idx: make(map[string]int, len(ds.Chans))}
	for chc, nm := range ds.Chans {
		cm := &md.Chans[chc]
		cm.Name = nm
		for cl := Class(0); cl < NClasses; cl++ {
			vals := ds.ChanVals(chc, cl)
			if len(vals) == 0 {
				return nil, &InsufficientDataError{Chan: nm, Class: cl}
			}
			if err := cm.Dist[cl].Fit(vals); err != nil {
				return nil, fmt.Errorf("decode.Estimate: channel %q, class %v: %w", nm, cl, err)
			}
		}
		md.idx[nm] = chc
	}
	md.Prior = float64(ds.ClassN(Right)) / float64(len(ds.Trials))
	return md, nil
}

// NChans returns the number of fitted channels.
func (md *Models) NChans() int {
	return len(md.Chans)
}

// ChanIndex returns the index of the named channel, or an
// InvalidChanError if no such channel was fitted.
func (md *Models) ChanIndex(nm string) (int, error) {
	if md.idx != nil {
		if chc, ok := md.idx[nm]; ok {
			return chc, nil
		}
	}
	return 0, &InvalidChanError{Name: nm}
}
