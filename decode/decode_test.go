// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/thartbm/bayesdecode/gauss"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-9

// twoChanModels returns a hand-built model set with well-separated
// classes on chan 0 and weakly-separated classes on chan 1.
func twoChanModels() *Models {
	md := &Models{Chans: make([]ChanModel, 2), Prior: 0.5}
	md.Chans[0] = ChanModel{Name: "ch0"}
	md.Chans[0].Dist[Left] = gauss.Model{Mean: 0, Std: 1}
	md.Chans[0].Dist[Right] = gauss.Model{Mean: 5, Std: 1}
	md.Chans[1] = ChanModel{Name: "ch1"}
	md.Chans[1].Dist[Left] = gauss.Model{Mean: -0.5, Std: 1}
	md.Chans[1].Dist[Right] = gauss.Model{Mean: 0.5, Std: 1}
	return md
}

func TestPosteriorSeparated(t *testing.T) {
	md := twoChanModels()
	pl, pr := md.PosteriorPair(0, 0.5, 5.0)
	if pr <= 0.99 {
		t.Errorf("P(right) at right mean: %v, want > 0.99", pr)
	}
	if pl >= 0.01 {
		t.Errorf("P(left) at right mean: %v, want < 0.01", pl)
	}
	if math.Abs(pl+pr-1) > difTol {
		t.Errorf("posteriors sum to %v, want 1", pl+pr)
	}
	// symmetric case at the left mean
	pr = md.Posterior(0, 0.5, 0.0)
	if pr >= 0.01 {
		t.Errorf("P(right) at left mean: %v, want < 0.01", pr)
	}
}

func TestPosteriorZeroVariance(t *testing.T) {
	md := twoChanModels()
	md.Chans[0].Dist[Right] = gauss.Model{Mean: 5, Std: 0}
	for _, prior := range []float64{0.001, 0.25, 0.5, 0.9, 1} {
		if pr := md.Posterior(0, prior, 5.0); pr != 1 {
			t.Errorf("zero-variance exact match, prior %v: P(right) = %v, want 1", prior, pr)
		}
	}
	// a zero prior on the matching class is absolute
	if pr := md.Posterior(0, 0, 5.0); pr != 0 {
		t.Errorf("zero-variance exact match with zero prior: P(right) = %v, want 0", pr)
	}
	// off the point mass, the zero-variance class has density 0
	if pr := md.Posterior(0, 0.5, 4.0); pr != 0 {
		t.Errorf("zero-variance miss: P(right) = %v, want 0", pr)
	}
	// both classes zero-variance at the same observed value: uninformative
	md.Chans[0].Dist[Left] = gauss.Model{Mean: 5, Std: 0}
	if pr := md.Posterior(0, 0.37, 5.0); pr != 0.37 {
		t.Errorf("double zero-variance match: P(right) = %v, want prior 0.37", pr)
	}
}

func TestPosteriorUnderflow(t *testing.T) {
	md := twoChanModels()
	// far in the tails of both class distributions: both densities
	// underflow to exactly 0, and the prior must pass through unchanged
	prior := 0.62
	pr := md.Posterior(0, prior, 1e6)
	if pr != prior {
		t.Errorf("underflow: P(right) = %v, want prior %v exactly", pr, prior)
	}
}

func TestPosteriorBounds(t *testing.T) {
	md := twoChanModels()
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		prior := rnd.Float64()
		val := 20 * (rnd.Float64() - 0.5)
		chc := rnd.Intn(2)
		pr := md.Posterior(chc, prior, val)
		if math.IsNaN(pr) || pr < 0 || pr > 1 {
			t.Fatalf("posterior out of bounds: chan %d, prior %v, val %v -> %v", chc, prior, val, pr)
		}
	}
}

func TestPosteriorReinforcement(t *testing.T) {
	md := twoChanModels()
	// after chan 0 yields a belief of 0.8 for right, agreeing evidence
	// on chan 1 must raise it, disagreeing evidence must lower it
	belief := 0.8
	up := md.Posterior(1, belief, 0.7) // likelihood favors right
	if up <= belief {
		t.Errorf("agreeing evidence: belief %v -> %v, want increase", belief, up)
	}
	down := md.Posterior(1, belief, -0.7) // likelihood favors left
	if down >= belief {
		t.Errorf("disagreeing evidence: belief %v -> %v, want decrease", belief, down)
	}
}

func TestFuseTrajectory(t *testing.T) {
	md := twoChanModels()
	vals := []float64{4.5, 0.6}
	traj, err := md.Fuse([]int{0, 1}, vals, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(traj) != 2 {
		t.Fatalf("trajectory length %d, want 2", len(traj))
	}
	// step 1 must equal a direct single-channel posterior, and step 2
	// must equal the update fed with step 1 as its prior
	p1 := md.Posterior(0, 0.5, vals[0])
	if math.Abs(traj[0]-p1) > difTol {
		t.Errorf("traj[0] = %v, want %v", traj[0], p1)
	}
	p2 := md.Posterior(1, p1, vals[1])
	if math.Abs(traj[1]-p2) > difTol {
		t.Errorf("traj[1] = %v, want %v", traj[1], p2)
	}
}

func TestFuseOrderInvariance(t *testing.T) {
	// the final fused posterior over the full channel set is invariant
	// to ordering; the intermediate values are not
	rnd := rand.New(rand.NewSource(7))
	nch := 6
	md := &Models{Chans: make([]ChanModel, nch), Prior: 0.5}
	vals := make([]float64, nch)
	for chc := 0; chc < nch; chc++ {
		md.Chans[chc].Dist[Left] = gauss.Model{Mean: rnd.Float64(), Std: 0.5 + rnd.Float64()}
		md.Chans[chc].Dist[Right] = gauss.Model{Mean: 2 + rnd.Float64(), Std: 0.5 + rnd.Float64()}
		vals[chc] = 3 * rnd.Float64()
	}
	fwd := []int{0, 1, 2, 3, 4, 5}
	rev := []int{5, 4, 3, 2, 1, 0}
	prm := rnd.Perm(nch)
	tf, err := md.Fuse(fwd, vals, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := md.Fuse(rev, vals, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	tp, err := md.Fuse(prm, vals, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	last := nch - 1
	if math.Abs(tf[last]-tr[last]) > difTol {
		t.Errorf("final posterior order-dependent: fwd %v vs rev %v", tf[last], tr[last])
	}
	if math.Abs(tf[last]-tp[last]) > difTol {
		t.Errorf("final posterior order-dependent: fwd %v vs perm %v", tf[last], tp[last])
	}
	for _, p := range append(append([]float64{}, tf...), tr...) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Fatalf("trajectory value out of bounds: %v", p)
		}
	}
}

func TestFuseErrors(t *testing.T) {
	md := twoChanModels()
	if _, err := md.Fuse([]int{0, 2}, []float64{1, 2}, 0.5); err == nil {
		t.Errorf("out-of-range channel index should fail")
	} else {
		var ice *InvalidChanError
		if !errors.As(err, &ice) || ice.Chan != 2 {
			t.Errorf("want InvalidChanError for chan 2, got %v", err)
		}
	}
	if _, err := md.Fuse([]int{0}, []float64{1}, 0.5); err == nil {
		t.Errorf("short value vector should fail")
	}
}

func TestEstimate(t *testing.T) {
	ds := NewDataset([]string{"m1", "m2"}, 6)
	ds.AddTrial([]float64{1, 10}, Left)
	ds.AddTrial([]float64{3, 12}, Left)
	ds.AddTrial([]float64{5, 20}, Right)
	ds.AddTrial([]float64{7, 22}, Right)
	ds.AddTrial([]float64{6, 21}, Right)
	md, err := Estimate(ds)
	if err != nil {
		t.Fatal(err)
	}
	if md.NChans() != 2 {
		t.Fatalf("NChans = %d, want 2", md.NChans())
	}
	if math.Abs(md.Prior-0.6) > difTol {
		t.Errorf("empirical prior = %v, want 0.6", md.Prior)
	}
	m := md.Chans[0].Dist[Left]
	if math.Abs(m.Mean-2) > difTol {
		t.Errorf("m1 left mean = %v, want 2", m.Mean)
	}
	if math.Abs(m.Std-math.Sqrt2) > difTol {
		t.Errorf("m1 left std = %v, want sqrt(2)", m.Std)
	}
	m = md.Chans[1].Dist[Right]
	if math.Abs(m.Mean-21) > difTol {
		t.Errorf("m2 right mean = %v, want 21", m.Mean)
	}
	chc, err := md.ChanIndex("m2")
	if err != nil || chc != 1 {
		t.Errorf("ChanIndex(m2) = %d, %v, want 1", chc, err)
	}
	if _, err = md.ChanIndex("m9"); err == nil {
		t.Errorf("ChanIndex on unknown name should fail")
	}
}

func TestEstimateInsufficient(t *testing.T) {
	ds := NewDataset([]string{"m1"}, 2)
	ds.AddTrial([]float64{1}, Left)
	ds.AddTrial([]float64{2}, Left)
	_, err := Estimate(ds)
	if err == nil {
		t.Fatalf("estimation with a class absent should fail")
	}
	var ide *InsufficientDataError
	if !errors.As(err, &ide) {
		t.Fatalf("want InsufficientDataError, got %v", err)
	}
	if ide.Chan != "m1" || ide.Class != Right {
		t.Errorf("error names %q / %v, want m1 / right", ide.Chan, ide.Class)
	}
	if _, err := Estimate(NewDataset([]string{"m1"}, 0)); err == nil {
		t.Errorf("estimation on empty training set should fail")
	}
}
