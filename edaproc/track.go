// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edaproc groups and summarizes the rows of a labeled
// dataset.
//
// Groups are keyed by the values of a label column and are always
// presented in order of first observation, so output is deterministic
// and follows the layout of the input data.
package edaproc

// A LabelTracker tracks a set of label values in order of first
// observation.
//
// The zero value of a LabelTracker is valid.
type LabelTracker struct {
	// Labels is the set of distinct labels observed by this
	// LabelTracker, in order of first observation.
	Labels []string

	// Order is the index of each label in Labels.
	Order map[string]int
}

// Add adds label to the set of labels in t, if it is not already
// present.
func (t *LabelTracker) Add(label string) {
	if t.Order == nil {
		t.Order = make(map[string]int)
	}
	if _, ok := t.Order[label]; ok {
		return
	}
	t.Order[label] = len(t.Labels)
	t.Labels = append(t.Labels, label)
}

// Less returns whether a was observed before b. If only one of a or b
// was observed, it considers the observed one to come first. If
// neither was observed, it falls back to string order.
func (t *LabelTracker) Less(a, b string) bool {
	i1, ok1 := t.Order[a]
	i2, ok2 := t.Order[b]
	switch {
	case ok1 && ok2:
		return i1 < i2
	case ok1 || ok2:
		// Observed labels come before unobserved labels.
		return ok1
	default:
		return a < b
	}
}
