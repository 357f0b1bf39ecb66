// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import "fmt"

// InsufficientDataError reports a (channel, class) pair with zero
// training trials, from which no Gaussian can be fit.  It is fatal to
// model estimation.
type InsufficientDataError struct {

	// channel name
	Chan string

	// class with no training trials
	Class Class
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("decode: insufficient data: no training trials for channel %q, class %v", e.Chan, e.Class)
}

// InvalidChanError reports a reference to a channel that is not in the
// fitted model set, by index or by name.  References fail fast rather
// than being silently skipped.
type InvalidChanError struct {

	// offending channel index, for index-based references
	Chan int

	// offending channel name, for name-based references
	Name string
}

func (e *InvalidChanError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("decode: invalid channel reference: no channel named %q", e.Name)
	}
	return fmt.Sprintf("decode: invalid channel reference: index %d out of range", e.Chan)
}
