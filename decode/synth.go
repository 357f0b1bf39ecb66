// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"fmt"
	"math/rand"

	"github.com/thartbm/bayesdecode/gauss"
)

// SynthDataset generates a labeled dataset with known per-channel
// separability, for benchmarking and testing: channel i is distributed
// N(0, 1) under left and N(seps[i], 1) under right, so seps[i] is the
// class separation in standard-deviation units (0 = chance channel).
// nPerClass trials are generated for each class, interleaved.
func SynthDataset(seps []float64, nPerClass int, rnd *rand.Rand) *Dataset {
	chans := make([]string, len(seps))
	left := make([]gauss.Model, len(seps))
	right := make([]gauss.Model, len(seps))
	for chc, sep := range seps {
		chans[chc] = fmt.Sprintf("S%d", chc)
		left[chc] = gauss.Model{Mean: 0, Std: 1}
		right[chc] = gauss.Model{Mean: sep, Std: 1}
	}
	ds := NewDataset(chans, 2*nPerClass)
	for i := 0; i < nPerClass; i++ {
		for cl := Class(0); cl < NClasses; cl++ {
			vals := make([]float64, len(seps))
			for chc := range seps {
				if cl == Right {
					vals[chc] = right[chc].Sample(rnd)
				} else {
					vals[chc] = left[chc].Sample(rnd)
				}
			}
			ds.Trials = append(ds.Trials, Trial{Vals: vals, Class: cl})
		}
	}
	return ds
}
