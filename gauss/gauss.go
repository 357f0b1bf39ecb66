// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gauss provides the univariate Gaussian class-conditional model
used throughout the decoder: a (mean, standard deviation) pair fit from
labeled samples of one observation channel restricted to one class.

The zero-variance case (a channel that fires at a constant rate for one
class) is legal and handled explicitly: the density is a point mass,
infinite at the mean and zero everywhere else.  Downstream code treats
an infinite density as a certainty signal rather than propagating Inf
through arithmetic.
*/
package gauss

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Model is one class-conditional Gaussian for one observation channel.
type Model struct {

	// sample mean of the channel values for this class
	Mean float64

	// sample standard deviation (n-1 denominator) -- 0 is legal and
	// denotes a constant channel (point mass at Mean)
	Std float64 `min:"0"`
}

// Fit sets Mean and Std to the sample moments of vals.
// A single value yields Std = 0.  An empty slice is an error:
// no moments can be estimated from zero samples.
func (m *Model) Fit(vals []float64) error {
	if len(vals) == 0 {
		return fmt.Errorf("gauss.Fit: no samples to fit")
	}
	m.Mean = stat.Mean(vals, nil)
	if len(vals) == 1 {
		m.Std = 0
		return nil
	}
	m.Std = stat.StdDev(vals, nil)
	return nil
}

// Density returns the Gaussian probability density at x.
// For Std == 0 the distribution is a point mass: the density is
// +Inf at x == Mean and 0 elsewhere.  Never returns NaN.
func (m Model) Density(x float64) float64 {
	if m.Std == 0 {
		if x == m.Mean {
			return math.Inf(1)
		}
		return 0
	}
	return distuv.Normal{Mu: m.Mean, Sigma: m.Std}.Prob(x)
}

// Sample draws one value from the model using the given source.
// A zero-variance model always returns Mean.
func (m Model) Sample(rnd *rand.Rand) float64 {
	return m.Mean + m.Std*rnd.NormFloat64()
}

func (m Model) String() string {
	return fmt.Sprintf("N(%g, %g)", m.Mean, m.Std)
}
