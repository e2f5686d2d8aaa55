// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edastat"
)

// A GroupSummary describes the distribution of one numeric column
// within one group of rows.
type GroupSummary struct {
	Label   string
	Summary *edastat.Summary

	// Normality is the Shapiro-Wilk test of the group's values.
	// If the test could not be run (for example, the group is too
	// small), NormalityErr says why and Normality is zero.
	Normality    edastat.NormalityTest
	NormalityErr error
}

// GroupedSummaries summarizes the numeric column valueCol of d per
// value of the label column groupCol. Groups appear in order of first
// observation.
//
// A normality test failure in one group does not fail the others; it
// is reported in that group's NormalityErr.
func GroupedSummaries(d *edafmt.Dataset, valueCol, groupCol string) ([]GroupSummary, error) {
	groups, err := GroupValues(d, valueCol, groupCol)
	if err != nil {
		return nil, err
	}
	return summarizeGroups(groups)
}

func summarizeGroups(groups []Group) ([]GroupSummary, error) {
	out := make([]GroupSummary, len(groups))
	for i, g := range groups {
		s, err := edastat.Describe(g.Values)
		if err != nil {
			return nil, err
		}
		out[i] = GroupSummary{Label: g.Label, Summary: s}
		out[i].Normality, out[i].NormalityErr = edastat.ShapiroWilk(g.Values)
	}
	return out, nil
}
