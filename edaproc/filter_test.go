// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"testing"

	"github.com/edalab/eda/edafmt"
)

func TestFilter(t *testing.T) {
	d := dataset(t, `x,class
1,Hernia
2,Normal
3,Spondylolisthesis
2,Hernia
`)
	check := func(query string, want ...int) {
		t.Helper()
		f, err := NewFilter(query)
		if err != nil {
			t.Fatalf("%s: %s", query, err)
		}
		if err := f.Bind(d.Cols); err != nil {
			t.Fatalf("%s: %s", query, err)
		}
		var got []int
		for i := range d.Rows {
			if f.Match(&d.Rows[i]) {
				got = append(got, i)
			}
		}
		if len(got) != len(want) {
			t.Errorf("%s: matched rows %v, want %v", query, got, want)
			return
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%s: matched rows %v, want %v", query, got, want)
				return
			}
		}
	}

	check(`*`, 0, 1, 2, 3)
	check(`class:Hernia`, 0, 3)
	check(`-class:Hernia`, 1, 2)
	check(`class:(Hernia Normal)`, 0, 1, 3)
	check(`class:Hernia x:2`, 3)
	check(`x:1 OR x:3`, 0, 2)
	check(`class:Spondy.*`, 2)
	check(`-*`)
}

func TestFilterBindUnknownColumn(t *testing.T) {
	f, err := NewFilter(`nope:1`)
	if err != nil {
		t.Fatal(err)
	}
	cols := []edafmt.Column{{Name: "x", Kind: edafmt.Numeric}}
	if err := f.Bind(cols); err == nil {
		t.Error("Bind resolved an unknown column")
	} else if _, ok := err.(*edafmt.UnknownColumnError); !ok {
		t.Errorf("got %T, want *edafmt.UnknownColumnError", err)
	}
}
