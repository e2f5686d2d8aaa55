// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edastat computes descriptive statistics and normality tests
// for numeric samples.
package edastat

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput indicates an operation was applied to an empty sample
// or dataset.
var ErrEmptyInput = errors.New("empty input")

// InsufficientDataError indicates a sample was too small for an
// operation that has a minimum sample size.
type InsufficientDataError struct {
	Op     string // the operation that failed
	N, Min int    // sample size and required minimum
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s requires at least %d values, have %d", e.Op, e.Min, e.N)
}

// A Summary describes the distribution of a numeric sample.
type Summary struct {
	N int // sample size

	Mean     float64
	StdDev   float64 // sample standard deviation (denominator n-1)
	Variance float64 // sample variance

	Min, Max       float64
	Q1, Median, Q3 float64
	IQR            float64 // Q3 - Q1
	Skewness       float64 // adjusted Fisher-Pearson; NaN if N < 3
	Kurtosis       float64 // sample excess kurtosis; NaN if N < 4
}

// Describe computes a Summary of xs. It does not modify xs.
//
// It returns ErrEmptyInput if xs is empty. With a single value, StdDev
// and Variance are NaN.
func Describe(xs []float64) (*Summary, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}

	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	samp.Sort()
	sorted := samp.Xs

	s := &Summary{
		N:        len(xs),
		Mean:     samp.Mean(),
		StdDev:   samp.StdDev(),
		Variance: samp.Variance(),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Q1:       quantile(sorted, 0.25),
		Median:   quantile(sorted, 0.5),
		Q3:       quantile(sorted, 0.75),
		Skewness: math.NaN(),
		Kurtosis: math.NaN(),
	}
	s.IQR = s.Q3 - s.Q1
	if s.N < 2 {
		// Sample variance is undefined for a single value,
		// but moremath reports it as 0.
		s.StdDev = math.NaN()
		s.Variance = math.NaN()
	}
	if s.N >= 3 {
		s.Skewness = stat.Skew(xs, nil)
	}
	if s.N >= 4 {
		s.Kurtosis = stat.ExKurtosis(xs, nil)
	}
	return s, nil
}

// Quantile returns the q'th quantile of xs, 0 <= q <= 1, using linear
// interpolation between order statistics (Hyndman & Fan type 7, the
// R and pandas default). It returns ErrEmptyInput if xs is empty.
func Quantile(xs []float64, q float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return quantile(sorted, q), nil
}

// quantile is the type 7 quantile of an already-sorted, non-empty
// sample.
func quantile(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
