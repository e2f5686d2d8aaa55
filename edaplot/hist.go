// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edaplot computes plot-shaped data: histograms, density
// curves, quantile-quantile points, and scatter tuples. It performs
// no rendering; the results are meant to be handed to a plotting
// facility.
package edaplot

import (
	"math"

	"github.com/edalab/eda/edaproc"
	"github.com/edalab/eda/edastat"
)

// A Bin is one bar of a histogram. It covers the half-open interval
// [X, X+Width); the last bin of a histogram also includes its right
// edge.
type Bin struct {
	X       float64 // left edge
	Width   float64
	Count   int
	Density float64 // Count normalized so the bins integrate to 1
}

// Histogram bins xs into equal-width bins. If bins is zero the bin
// count follows Sturges' rule. It returns edastat.ErrEmptyInput for
// an empty sample.
func Histogram(xs []float64, bins int) ([]Bin, error) {
	if len(xs) == 0 {
		return nil, edastat.ErrEmptyInput
	}
	lo, hi := bounds(xs)
	return histogram(xs, bins, lo, hi)
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return
}

// sturges is the default bin count for a sample of size n.
func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

func histogram(xs []float64, bins int, lo, hi float64) ([]Bin, error) {
	if bins <= 0 {
		bins = sturges(len(xs))
	}
	if lo == hi {
		// A zero-range sample still gets a (single-valued)
		// histogram.
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]Bin, bins)
	for i := range out {
		out[i].X = lo + float64(i)*width
		out[i].Width = width
	}
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= bins {
			// The maximum lands in the last bin.
			i = bins - 1
		}
		out[i].Count++
	}
	if norm := width * float64(len(xs)); norm > 0 {
		for i := range out {
			out[i].Density = float64(out[i].Count) / norm
		}
	}
	return out, nil
}

// GroupBins is the histogram of one group of values.
type GroupBins struct {
	Label string
	Bins  []Bin
}

// GroupedHistogram bins each group over a common set of bin edges
// spanning all groups, so the histograms can be overlaid. Groups keep
// their order.
func GroupedHistogram(groups []edaproc.Group, bins int) ([]GroupBins, error) {
	if len(groups) == 0 {
		return nil, edastat.ErrEmptyInput
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, g := range groups {
		if len(g.Values) == 0 {
			continue
		}
		glo, ghi := bounds(g.Values)
		lo, hi = math.Min(lo, glo), math.Max(hi, ghi)
		n += len(g.Values)
	}
	if n == 0 {
		return nil, edastat.ErrEmptyInput
	}
	if bins <= 0 {
		bins = sturges(n)
	}

	out := make([]GroupBins, len(groups))
	for i, g := range groups {
		h, err := histogram(g.Values, bins, lo, hi)
		if err != nil {
			return nil, err
		}
		out[i] = GroupBins{g.Label, h}
	}
	return out, nil
}
