// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaplot

import (
	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edastat"
)

// A ScatterPoint is one point of a scatter plot, tagged with the
// label that colors it.
type ScatterPoint struct {
	X, Y  float64
	Label string
}

// Scatter returns the (x, y, label) tuples of two numeric columns of
// d, one per row in row order. If byCol is empty every point gets an
// empty label; otherwise byCol names the label column to tag points
// with.
func Scatter(d *edafmt.Dataset, xCol, yCol, byCol string) ([]ScatterPoint, error) {
	if d.Len() == 0 {
		return nil, edastat.ErrEmptyInput
	}
	xs, err := d.Numeric(xCol)
	if err != nil {
		return nil, err
	}
	ys, err := d.Numeric(yCol)
	if err != nil {
		return nil, err
	}
	var labels []string
	if byCol != "" {
		labels, err = d.Labels(byCol)
		if err != nil {
			return nil, err
		}
	}

	out := make([]ScatterPoint, d.Len())
	for i := range out {
		out[i] = ScatterPoint{X: xs[i], Y: ys[i]}
		if labels != nil {
			out[i].Label = labels[i]
		}
	}
	return out, nil
}
