// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFiles(t *testing.T) {
	f := &Files{Paths: []string{
		filepath.Join("testdata", "vertebral_a.csv"),
		filepath.Join("testdata", "vertebral_b.csv"),
	}}
	var n int
	seen := make(map[string]int)
	for f.Scan() {
		row, err := f.Row()
		if err != nil {
			t.Fatalf("row %d: %v", n, err)
		}
		if len(row.Labels) != 1 {
			t.Fatalf("row %d: got %d labels, want 1", n, len(row.Labels))
		}
		seen[f.Path()]++
		n++
	}
	if err := f.Err(); err != nil {
		t.Fatal(err)
	}
	if n != 21 {
		t.Errorf("got %d rows, want 21", n)
	}
	if seen[f.Paths[0]] != 15 || seen[f.Paths[1]] != 6 {
		t.Errorf("rows per file: got %v", seen)
	}
	cols := f.Columns()
	if len(cols) != 7 {
		t.Fatalf("got %d columns, want 7", len(cols))
	}
	if want := (Column{"class", Label}); cols[6] != want {
		t.Errorf("last column: got %v, want %v", cols[6], want)
	}
	for _, col := range cols[:6] {
		if col.Kind != Numeric {
			t.Errorf("column %s: got kind %v, want Numeric", col.Name, col.Kind)
		}
	}
}

func TestFilesSchemaMismatch(t *testing.T) {
	f := &Files{Paths: []string{
		filepath.Join("testdata", "vertebral_a.csv"),
		filepath.Join("testdata", "other_schema.csv"),
	}}
	var n int
	for f.Scan() {
		n++
	}
	if n != 15 {
		t.Errorf("got %d rows before mismatch, want 15", n)
	}
	err := f.Err()
	if err == nil {
		t.Fatal("Files accepted files with different schemas")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFilesMissing(t *testing.T) {
	f := &Files{Paths: []string{filepath.Join("testdata", "no_such_file.csv")}}
	if f.Scan() {
		t.Error("Scan returned true for a missing file")
	}
	if f.Err() == nil {
		t.Error("Err is nil for a missing file")
	}
}
