// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import "fmt"

// Class is the binary latent class being decoded.  Right is the
// distinguished class: every scalar belief in this repository is the
// probability that the class is Right.
type Class int

const (
	Left Class = iota
	Right

	// NClasses is the total number of classes
	NClasses
)

var classNames = [NClasses]string{"left", "right"}

func (cl Class) String() string {
	if cl < 0 || cl >= NClasses {
		return fmt.Sprintf("Class(%d)", int(cl))
	}
	return classNames[cl]
}

// Other returns the opposite class.
func (cl Class) Other() Class {
	return 1 - cl
}

// ClassByName returns the class with the given (lowercase) name,
// or an error for an unrecognized name.
func ClassByName(nm string) (Class, error) {
	for cl, cn := range classNames {
		if nm == cn {
			return Class(cl), nil
		}
	}
	return 0, fmt.Errorf("decode.ClassByName: unrecognized class label: %q", nm)
}
