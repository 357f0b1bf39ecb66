// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluate

import (
	"math"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// LogPrec is precision for saving float values in output tables
const LogPrec = 4

// Results holds the terminal artifacts of one evaluation run, handed to
// the reporting side: the per-channel accuracy table and the accuracy
// curves for the full channel set and for the weak-channel subset.
type Results struct {

	// independent per-channel decoding accuracy, by channel index
	ChanAcc []float64

	// mean accuracy after k channels (index k-1), full channel set
	AllCurve []float64

	// channels whose independent accuracy fell below Params.WeakThr
	WeakChans []int

	// accuracy curve over the weak subset only -- nil if no channel
	// was below threshold
	WeakCurve []float64

	// average and max of the full-set curve values
	CurveStats minmax.AvgMax32

	// channel names, for table output
	chans []string
}

// Run computes the per-channel accuracies, the full-set accuracy curve,
// and (when any channel falls below the weak threshold) the weak-subset
// curve, in one pass.
func (ev *Eval) Run() (*Results, error) {
	acc, err := ev.PerChanAccuracy()
	if err != nil {
		return nil, err
	}
	rs := &Results{ChanAcc: acc, chans: ev.Data.Chans}
	rs.AllCurve, err = ev.AccuracyCurve(ev.AllChans())
	if err != nil {
		return nil, err
	}
	rs.WeakChans = ev.WeakChans(acc)
	if len(rs.WeakChans) > 0 {
		rs.WeakCurve, err = ev.AccuracyCurve(rs.WeakChans)
		if err != nil {
			return nil, err
		}
	}
	rs.CurveStats.Init()
	for k, ac := range rs.AllCurve {
		rs.CurveStats.UpdateVal(float32(ac), int32(k))
	}
	rs.CurveStats.CalcAvg()
	return rs, nil
}

// ChanTable returns the per-channel accuracy table: one row per
// channel, with its name, independent accuracy, and weak flag.
func (rs *Results) ChanTable() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "ChanAccuracy")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{"Chan", etensor.STRING, nil, nil},
		{"Acc", etensor.FLOAT64, nil, nil},
		{"Weak", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, len(rs.ChanAcc))
	weak := make(map[int]bool, len(rs.WeakChans))
	for _, chc := range rs.WeakChans {
		weak[chc] = true
	}
	for chc, ac := range rs.ChanAcc {
		nm := strconv.Itoa(chc)
		if chc < len(rs.chans) {
			nm = rs.chans[chc]
		}
		dt.SetCellString("Chan", chc, nm)
		dt.SetCellFloat("Acc", chc, ac)
		wk := 0.0
		if weak[chc] {
			wk = 1
		}
		dt.SetCellFloat("Weak", chc, wk)
	}
	return dt
}

// CurveTable returns the accuracy-vs-channel-count table: one row per
// channel count, with the full-set accuracy and, where defined, the
// weak-subset accuracy (NaN = missing beyond the subset size).
func (rs *Results) CurveTable() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "AccuracyCurve")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{"NChans", etensor.INT64, nil, nil},
		{"AllAcc", etensor.FLOAT64, nil, nil},
		{"WeakAcc", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, len(rs.AllCurve))
	for k, ac := range rs.AllCurve {
		dt.SetCellFloat("NChans", k, float64(k+1))
		dt.SetCellFloat("AllAcc", k, ac)
		if k < len(rs.WeakCurve) {
			dt.SetCellFloat("WeakAcc", k, rs.WeakCurve[k])
		} else {
			dt.SetCellFloat("WeakAcc", k, math.NaN())
		}
	}
	return dt
}
