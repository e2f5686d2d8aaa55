// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaplot

import (
	"reflect"
	"strings"
	"testing"

	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edastat"
)

func TestScatter(t *testing.T) {
	d, err := edafmt.ReadDataset(strings.NewReader(`x,y,class
1,10,A
2,20,B
3,30,A
`), "test")
	if err != nil {
		t.Fatal(err)
	}

	pts, err := Scatter(d, "x", "y", "class")
	if err != nil {
		t.Fatal(err)
	}
	want := []ScatterPoint{
		{1, 10, "A"},
		{2, 20, "B"},
		{3, 30, "A"},
	}
	if !reflect.DeepEqual(pts, want) {
		t.Errorf("got %v, want %v", pts, want)
	}

	// Without a label column, points are unlabeled.
	pts, err = Scatter(d, "x", "y", "")
	if err != nil {
		t.Fatal(err)
	}
	if pts[0].Label != "" {
		t.Errorf("got label %q, want empty", pts[0].Label)
	}

	if _, err := Scatter(d, "x", "nope", ""); err == nil {
		t.Error("unknown y column succeeded")
	}
	if _, err := Scatter(d, "x", "class", ""); err == nil {
		t.Error("label column as y succeeded")
	}

	empty := &edafmt.Dataset{Cols: d.Cols}
	if _, err := Scatter(empty, "x", "y", ""); err != edastat.ErrEmptyInput {
		t.Errorf("empty dataset: got %v, want ErrEmptyInput", err)
	}
}
