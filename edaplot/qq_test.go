// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaplot

import (
	"math"
	"testing"

	"github.com/edalab/eda/edastat"
)

func TestQQNormal(t *testing.T) {
	pts, err := QQNormal([]float64{3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	// Samples are sorted; theoretical quantiles are symmetric
	// about zero.
	wantSamples := []float64{1, 2, 3}
	for i, p := range pts {
		if p.Sample != wantSamples[i] {
			t.Errorf("point %d: got sample %v, want %v", i, p.Sample, wantSamples[i])
		}
	}
	if pts[1].Theoretical != 0 {
		t.Errorf("middle quantile: got %v, want 0", pts[1].Theoretical)
	}
	if math.Abs(pts[0].Theoretical+pts[2].Theoretical) > 1e-9 {
		t.Errorf("quantiles not symmetric: %v, %v", pts[0].Theoretical, pts[2].Theoretical)
	}
	if pts[0].Theoretical >= 0 {
		t.Errorf("first quantile: got %v, want negative", pts[0].Theoretical)
	}

	if _, err := QQNormal(nil); err != edastat.ErrEmptyInput {
		t.Errorf("empty: got %v, want ErrEmptyInput", err)
	}
}

func TestQQNormalLinearOnNormalScores(t *testing.T) {
	// Sample values that are themselves standard normal scores
	// produce points on the identity line.
	pts, err := QQNormal([]float64{-1.5, -0.5, 0, 0.5, 1.5})
	if err != nil {
		t.Fatal(err)
	}
	// Not identical (Blom positions differ from the sample), but
	// strictly increasing in both coordinates.
	for i := 1; i < len(pts); i++ {
		if pts[i].Theoretical <= pts[i-1].Theoretical || pts[i].Sample < pts[i-1].Sample {
			t.Errorf("points not monotone at %d: %+v", i, pts)
		}
	}
}
