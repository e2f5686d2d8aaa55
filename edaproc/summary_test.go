// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"math"
	"testing"

	"github.com/edalab/eda/edastat"
)

func TestGroupedSummaries(t *testing.T) {
	d := dataset(t, `x,class
1,A
2,A
10,A
10,B
10,B
10,B
`)
	sums, err := GroupedSummaries(d, "x", "class")
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 {
		t.Fatalf("got %d groups, want 2", len(sums))
	}

	a := sums[0]
	if a.Label != "A" {
		t.Errorf("first group is %q, want A", a.Label)
	}
	if a.Summary.N != 3 || math.Abs(a.Summary.Mean-13.0/3) > 1e-9 {
		t.Errorf("group A summary: %+v", a.Summary)
	}
	if a.NormalityErr != nil {
		t.Errorf("group A normality failed: %v", a.NormalityErr)
	}
	if want := 364.5 / 438; math.Abs(a.Normality.W-want) > 1e-9 {
		t.Errorf("group A: got W=%v, want %v", a.Normality.W, want)
	}

	// Group B has no spread: its summary is fine (std 0) but the
	// normality test cannot run, and that must not fail group A.
	b := sums[1]
	if b.Label != "B" {
		t.Errorf("second group is %q, want B", b.Label)
	}
	if b.Summary.StdDev != 0 || b.Summary.IQR != 0 {
		t.Errorf("group B summary: %+v", b.Summary)
	}
	if b.NormalityErr != edastat.ErrZeroRange {
		t.Errorf("group B normality error: got %v, want ErrZeroRange", b.NormalityErr)
	}
}

func TestGroupedSummariesSmallGroup(t *testing.T) {
	d := dataset(t, `x,class
1,A
2,A
`)
	sums, err := GroupedSummaries(d, "x", "class")
	if err != nil {
		t.Fatal(err)
	}
	if sums[0].Summary.N != 2 {
		t.Fatalf("got N=%d, want 2", sums[0].Summary.N)
	}
	if _, ok := sums[0].NormalityErr.(*edastat.InsufficientDataError); !ok {
		t.Errorf("normality error: got %v, want *InsufficientDataError", sums[0].NormalityErr)
	}
}
