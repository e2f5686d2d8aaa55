// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// A Writer writes dataset rows as CSV.
//
// The header row is emitted before the first record. All rows written
// to a single Writer must share one column schema.
type Writer struct {
	cw     *csv.Writer
	cols   []Column
	fields []string
}

// NewWriter returns a writer that writes CSV dataset rows to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// Write writes row, described by cols, to w. On the first call it
// also writes the header row.
func (w *Writer) Write(cols []Column, row *Row) error {
	if w.cols == nil {
		w.cols = append([]Column(nil), cols...)
		w.fields = w.fields[:0]
		for _, col := range cols {
			w.fields = append(w.fields, col.Name)
		}
		if err := w.cw.Write(w.fields); err != nil {
			return err
		}
	} else if !columnsEqual(w.cols, cols) {
		return fmt.Errorf("row schema does not match previously written rows")
	}

	w.fields = w.fields[:0]
	ni, li := 0, 0
	for _, col := range w.cols {
		switch col.Kind {
		case Numeric:
			// Use the smallest representation that round-trips.
			w.fields = append(w.fields, strconv.FormatFloat(row.Nums[ni], 'g', -1, 64))
			ni++
		case Label:
			w.fields = append(w.fields, row.Labels[li])
			li++
		}
	}
	return w.cw.Write(w.fields)
}

// WriteDataset writes every row of d.
func (w *Writer) WriteDataset(d *Dataset) error {
	for i := range d.Rows {
		if err := w.Write(d.Cols, &d.Rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered rows to the underlying io.Writer and
// returns any write error that occurred.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
