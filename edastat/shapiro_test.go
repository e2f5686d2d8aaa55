// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestShapiroWilkExact(t *testing.T) {
	// For n = 3 both W and P have closed forms.
	r, err := ShapiroWilk([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(r.W, 1, 1e-12) || !aeq(r.P, 1, 1e-12) {
		t.Errorf("equally spaced triple: got W=%v P=%v, want 1, 1", r.W, r.P)
	}

	r, err = ShapiroWilk([]float64{1, 2, 10})
	if err != nil {
		t.Fatal(err)
	}
	// W = (sqrt(0.5)*(10-1))^2 / sum of squared deviations.
	if want := 364.5 / 438; !aeq(r.W, want, 1e-12) {
		t.Errorf("W: got %v, want %v", r.W, want)
	}
	if want := 0.1925; !aeq(r.P, want, 0.01) {
		t.Errorf("P: got %v, want about %v", r.P, want)
	}
	if r.N != 3 {
		t.Errorf("N: got %d, want 3", r.N)
	}
}

func TestShapiroWilkNormalScores(t *testing.T) {
	// Expected normal order statistics are as normal as a sample
	// gets; the test must not reject them.
	for _, n := range []int{5, 10, 20, 100} {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		}
		r, err := ShapiroWilk(xs)
		if err != nil {
			t.Fatal(err)
		}
		if r.W < 0.95 || r.W > 1 {
			t.Errorf("n=%d: got W=%v, want near 1", n, r.W)
		}
		if r.P < 0.5 {
			t.Errorf("n=%d: got P=%v, want > 0.5", n, r.P)
		}
	}
}

func TestShapiroWilkSkewed(t *testing.T) {
	// Strongly right-skewed data must be rejected.
	for _, n := range []int{10, 20, 50} {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = math.Pow(2, float64(i))
		}
		r, err := ShapiroWilk(xs)
		if err != nil {
			t.Fatal(err)
		}
		if r.P > 0.01 {
			t.Errorf("n=%d: got P=%v for geometric data, want < 0.01", n, r.P)
		}
	}
}

func TestShapiroWilkCalibration(t *testing.T) {
	// Under the null hypothesis P is roughly uniform, so P < 0.05
	// should occur for about 5% of normal samples. Allow a wide
	// margin; this is a smoke test of the p-value transform, not a
	// calibration study.
	rng := rand.New(rand.NewSource(1))
	const trials = 500
	reject := 0
	for trial := 0; trial < trials; trial++ {
		xs := make([]float64, 20)
		for i := range xs {
			xs[i] = rng.NormFloat64()
		}
		r, err := ShapiroWilk(xs)
		if err != nil {
			t.Fatal(err)
		}
		if r.P < 0.05 {
			reject++
		}
	}
	if reject < trials/100 || reject > trials*12/100 {
		t.Errorf("rejected %d of %d normal samples, want about 5%%", reject, trials)
	}
}

func TestShapiroWilkErrors(t *testing.T) {
	if _, err := ShapiroWilk(nil); err != ErrEmptyInput {
		t.Errorf("empty: got %v, want ErrEmptyInput", err)
	}
	for _, xs := range [][]float64{{1}, {1, 2}} {
		_, err := ShapiroWilk(xs)
		if _, ok := err.(*InsufficientDataError); !ok {
			t.Errorf("n=%d: got %v, want *InsufficientDataError", len(xs), err)
		}
	}
	if _, err := ShapiroWilk([]float64{10, 10, 10}); err != ErrZeroRange {
		t.Errorf("identical values: got %v, want ErrZeroRange", err)
	}
	if _, err := ShapiroWilk(make([]float64, maxShapiroN+1)); err != ErrSampleTooLarge {
		t.Errorf("oversized: got %v, want ErrSampleTooLarge", err)
	}

	// n = 3 with distinct values is within range.
	if _, err := ShapiroWilk([]float64{1, 5, 9}); err != nil {
		t.Errorf("n=3: got %v, want success", err)
	}
}

func TestShapiroWilkDoesNotModify(t *testing.T) {
	xs := []float64{9, 1, 5, 3, 7}
	if _, err := ShapiroWilk(xs); err != nil {
		t.Fatal(err)
	}
	want := []float64{9, 1, 5, 3, 7}
	for i := range xs {
		if xs[i] != want[i] {
			t.Fatalf("input was modified: %v", xs)
		}
	}
}
