// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edafmt provides a reader and writer for labeled tabular
// datasets in CSV form.
//
// The reader is structured as a streaming operation to allow
// incremental processing and avoid dictating a data model. A Dataset
// is provided as a convenience for callers that want the whole table
// in memory.
//
// A dataset has a header row naming its columns. Each column is
// either numeric (a floating-point feature) or a label (a categorical
// value drawn from a small set, such as a class column). Column kinds
// are inferred from the first data row.
package edafmt

// Kind classifies a dataset column.
type Kind int

const (
	// Numeric is a column of floating-point feature values.
	Numeric Kind = iota

	// Label is a column of categorical values.
	Label
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Label:
		return "label"
	}
	return "?"
}

// A Column describes a single dataset column.
type Column struct {
	Name string
	Kind Kind
}

// A Row is a single dataset record. Its cells are split by column
// kind: Nums holds the values of the numeric columns and Labels the
// values of the label columns, each in schema order.
//
// A Row produced by a Reader is reused on the next call to Scan; a
// caller that retains a Row must Clone it.
type Row struct {
	Nums   []float64
	Labels []string
}

// Clone makes a copy of Row that shares no state with r.
func (r *Row) Clone() *Row {
	return &Row{
		Nums:   append([]float64(nil), r.Nums...),
		Labels: append([]string(nil), r.Labels...),
	}
}

// A Dataset is an ordered table of Rows together with its column
// schema. Once loaded it is treated as immutable for the duration of
// an analysis.
type Dataset struct {
	Cols []Column
	Rows []Row

	// colPos, if non-nil, maps from Column.Name to index in Cols.
	colPos map[string]int
}

// An UnknownColumnError reports a request for a column that is not in
// a dataset's schema.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return "unknown column: " + e.Name
}

// A KindError reports a request for a column of the wrong kind, such
// as asking for the numeric values of a label column.
type KindError struct {
	Name string
	Want Kind
}

func (e *KindError) Error() string {
	return "column " + e.Name + " is not " + e.Want.String()
}

// Len returns the number of rows in d.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ColumnIndex returns the index in d.Cols of the named column.
func (d *Dataset) ColumnIndex(name string) (pos int, ok bool) {
	if d.colPos == nil {
		d.colPos = make(map[string]int)
		for i, col := range d.Cols {
			d.colPos[col.Name] = i
		}
	}
	pos, ok = d.colPos[name]
	return
}

// kindIndex returns the position of column i within the cells of its
// kind, that is, the index into Row.Nums or Row.Labels.
func (d *Dataset) kindIndex(i int) int {
	n := 0
	for _, col := range d.Cols[:i] {
		if col.Kind == d.Cols[i].Kind {
			n++
		}
	}
	return n
}

// Numeric returns the values of the named numeric column, one per
// row, in row order.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	i, ok := d.ColumnIndex(name)
	if !ok {
		return nil, &UnknownColumnError{name}
	}
	if d.Cols[i].Kind != Numeric {
		return nil, &KindError{name, Numeric}
	}
	j := d.kindIndex(i)
	out := make([]float64, len(d.Rows))
	for r := range d.Rows {
		out[r] = d.Rows[r].Nums[j]
	}
	return out, nil
}

// Labels returns the values of the named label column, one per row,
// in row order.
func (d *Dataset) Labels(name string) ([]string, error) {
	i, ok := d.ColumnIndex(name)
	if !ok {
		return nil, &UnknownColumnError{name}
	}
	if d.Cols[i].Kind != Label {
		return nil, &KindError{name, Label}
	}
	j := d.kindIndex(i)
	out := make([]string, len(d.Rows))
	for r := range d.Rows {
		out[r] = d.Rows[r].Labels[j]
	}
	return out, nil
}
