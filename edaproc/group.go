// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edastat"
)

// A Group is the values of one numeric column for the rows that share
// one label.
type Group struct {
	Label  string
	Values []float64
}

// GroupValues partitions the numeric column valueCol of d by the
// label column groupCol. Every row of d lands in exactly one group;
// groups appear in order of first observation of their label.
//
// An empty dataset is an error; asking for a missing or mis-kinded
// column yields the corresponding edafmt error.
func GroupValues(d *edafmt.Dataset, valueCol, groupCol string) ([]Group, error) {
	if d.Len() == 0 {
		return nil, edastat.ErrEmptyInput
	}
	values, err := d.Numeric(valueCol)
	if err != nil {
		return nil, err
	}
	labels, err := d.Labels(groupCol)
	if err != nil {
		return nil, err
	}

	var tracker LabelTracker
	var groups []Group
	for i, label := range labels {
		tracker.Add(label)
		pos := tracker.Order[label]
		if pos == len(groups) {
			groups = append(groups, Group{Label: label})
		}
		groups[pos].Values = append(groups[pos].Values, values[i])
	}
	return groups, nil
}
