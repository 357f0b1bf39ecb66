// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
)

// Trial is one labeled observation: a fixed-length vector of continuous
// channel readings (e.g., per-channel firing rates) plus the ground-truth
// class.  Trials are read-only once loaded.
type Trial struct {

	// one reading per channel, indexed as in Dataset.Chans
	Vals []float64

	// ground-truth class for this trial
	Class Class
}

// Dataset is a set of labeled trials over a common list of named
// channels.  It is built once and treated as immutable afterward, so it
// can be shared read-only across parallel evaluation workers.
type Dataset struct {

	// channel names, defining the channel index order in Trial.Vals
	Chans []string

	// the labeled trials
	Trials []Trial
}

// NewDataset returns a dataset over the given channel names,
// with capacity for n trials.
func NewDataset(chans []string, n int) *Dataset {
	return &Dataset{Chans: chans, Trials: make([]Trial, 0, n)}
}

// AddTrial appends one labeled trial.  The value vector must have one
// reading per channel.
func (ds *Dataset) AddTrial(vals []float64, cl Class) error {
	if len(vals) != len(ds.Chans) {
		return fmt.Errorf("decode.AddTrial: got %d values for %d channels", len(vals), len(ds.Chans))
	}
	ds.Trials = append(ds.Trials, Trial{Vals: vals, Class: cl})
	return nil
}

// FromTable builds a dataset from an etable with one row per trial:
// labelCol holds the class name for each trial (see ClassByName) and
// each of chanCols holds one channel's scalar reading.  If chanCols is
// nil, every column other than labelCol is used as a channel.
func FromTable(dt *etable.Table, labelCol string, chanCols []string) (*Dataset, error) {
	hasCol := func(nm string) bool {
		for _, cn := range dt.ColNames {
			if cn == nm {
				return true
			}
		}
		return false
	}
	if !hasCol(labelCol) {
		return nil, fmt.Errorf("decode.FromTable: label column %q not in table", labelCol)
	}
	if chanCols == nil {
		for _, cn := range dt.ColNames {
			if cn != labelCol {
				chanCols = append(chanCols, cn)
			}
		}
	} else {
		for _, cn := range chanCols {
			if !hasCol(cn) {
				return nil, fmt.Errorf("decode.FromTable: channel column %q not in table", cn)
			}
		}
	}
	ds := NewDataset(chanCols, dt.Rows)
	for row := 0; row < dt.Rows; row++ {
		cl, err := ClassByName(dt.CellString(labelCol, row))
		if err != nil {
			return nil, fmt.Errorf("decode.FromTable: row %d: %w", row, err)
		}
		vals := make([]float64, len(chanCols))
		for ci, cn := range chanCols {
			vals[ci] = dt.CellFloat(cn, row)
		}
		ds.Trials = append(ds.Trials, Trial{Vals: vals, Class: cl})
	}
	return ds, nil
}

// Split partitions the trials into two datasets sharing the channel
// list: the first n trials and the rest.  Useful for a train / test
// split after the caller has shuffled trial order.
func (ds *Dataset) Split(n int) (*Dataset, *Dataset) {
	if n > len(ds.Trials) {
		n = len(ds.Trials)
	}
	a := &Dataset{Chans: ds.Chans, Trials: ds.Trials[:n]}
	b := &Dataset{Chans: ds.Chans, Trials: ds.Trials[n:]}
	return a, b
}

// ClassN returns the number of trials with the given class.
func (ds *Dataset) ClassN(cl Class) int {
	n := 0
	for _, tr := range ds.Trials {
		if tr.Class == cl {
			n++
		}
	}
	return n
}

// ChanVals returns the values of the given channel restricted to trials
// of the given class.
func (ds *Dataset) ChanVals(chc int, cl Class) []float64 {
	var vals []float64
	for _, tr := range ds.Trials {
		if tr.Class == cl {
			vals = append(vals, tr.Vals[chc])
		}
	}
	return vals
}

// SizeReport returns a one-line human-readable summary of the dataset
// dimensions and its approximate memory footprint.
func (ds *Dataset) SizeReport() string {
	mem := 8 * len(ds.Trials) * len(ds.Chans)
	return fmt.Sprintf("%d trials x %d chans: %v", len(ds.Trials), len(ds.Chans),
		(datasize.ByteSize)(mem).HumanReadable())
}
