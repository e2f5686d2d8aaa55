// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaplot

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/edalab/eda/edaproc"
	"github.com/edalab/eda/edastat"
)

// A Point is one point of a curve.
type Point struct {
	X, Y float64
}

// defaultDensityPoints is the number of evaluation points when the
// caller doesn't ask for a specific resolution.
const defaultDensityPoints = 128

// Density estimates the probability density of xs with a Gaussian
// kernel using Scott's bandwidth rule, evaluated at n evenly spaced
// points covering the sample range plus three bandwidths on each
// side. If n <= 0 it uses a default resolution.
//
// A density estimate needs spread: fewer than two values is an
// InsufficientDataError and a zero-range sample is ErrZeroRange.
func Density(xs []float64, n int) ([]Point, error) {
	switch {
	case len(xs) == 0:
		return nil, edastat.ErrEmptyInput
	case len(xs) < 2:
		return nil, &edastat.InsufficientDataError{Op: "Density", N: len(xs), Min: 2}
	}
	lo, hi := bounds(xs)
	if lo == hi {
		return nil, edastat.ErrZeroRange
	}
	if n <= 0 {
		n = defaultDensityPoints
	}

	samp := stats.Sample{Xs: xs}
	kde := stats.KDE{
		Sample:    samp,
		Kernel:    stats.GaussianKernel,
		Bandwidth: stats.BandwidthScott(samp),
	}

	lo, hi = lo-3*kde.Bandwidth, hi+3*kde.Bandwidth
	step := (hi - lo) / float64(n-1)
	out := make([]Point, n)
	for i := range out {
		x := lo + float64(i)*step
		out[i] = Point{x, kde.PDF(x)}
	}
	return out, nil
}

// GroupPoints is the density curve of one group of values.
type GroupPoints struct {
	Label  string
	Points []Point
}

// GroupedDensity estimates a density curve per group. Each group gets
// its own bandwidth and evaluation range; groups keep their order. A
// group whose density cannot be estimated fails the whole operation.
func GroupedDensity(groups []edaproc.Group, n int) ([]GroupPoints, error) {
	if len(groups) == 0 {
		return nil, edastat.ErrEmptyInput
	}
	out := make([]GroupPoints, len(groups))
	for i, g := range groups {
		pts, err := Density(g.Values, n)
		if err != nil {
			return nil, err
		}
		out[i] = GroupPoints{g.Label, pts}
	}
	return out, nil
}
