// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluate

import "runtime"

// Params are the evaluation harness parameters.
type Params struct {

	// number of independently sampled random channel orderings per
	// trial -- more repetitions stabilize the accuracy curve averages
	NReps int `def:"10" min:"1"`

	// per-channel accuracy threshold below which a channel is
	// considered weak and included in the worst-subset comparison run
	WeakThr float64 `def:"0.6" min:"0" max:"1"`

	// random seed for ordering generation -- runs with the same seed
	// produce identical results, regardless of NWorkers
	RandSeed int64 `def:"1"`

	// number of parallel trial workers -- 0 means GOMAXPROCS
	NWorkers int `def:"0" min:"0"`
}

func (pr *Params) Defaults() {
	pr.NReps = 10
	pr.WeakThr = 0.6
	pr.RandSeed = 1
	pr.NWorkers = 0
}

// Update clamps parameters into their valid ranges.
func (pr *Params) Update() {
	if pr.NReps < 1 {
		pr.NReps = 1
	}
	if pr.NWorkers <= 0 {
		pr.NWorkers = runtime.GOMAXPROCS(0)
	}
}
