// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"fmt"

	"github.com/edalab/eda/edafmt"
)

// A Collection accumulates the values of every numeric column,
// grouped by one label column, over a stream of rows. It lets a
// caller summarize a whole dataset per group in a single pass without
// materializing a Dataset.
type Collection struct {
	groupCol string

	// cols is the column schema, fixed by the first row added.
	cols []edafmt.Column

	// groupIdx is the index of the group column within Row.Labels.
	groupIdx int

	// numNames is the numeric column names in schema order.
	numNames []string

	// labels records the observation order of group labels.
	labels LabelTracker

	// cells maps from (label, numeric column) to the values
	// accumulated for that pair.
	cells map[cellKey]*cell
}

type cellKey struct {
	label, col string
}

type cell struct {
	values []float64
}

// NewCollection returns a Collection that groups rows by the label
// column groupCol.
func NewCollection(groupCol string) *Collection {
	return &Collection{
		groupCol: groupCol,
		cells:    make(map[cellKey]*cell),
	}
}

// Add accumulates one row with the given column schema. The schema of
// the first row fixes the schema of the Collection; later rows must
// match it.
func (c *Collection) Add(cols []edafmt.Column, row *edafmt.Row) error {
	if c.cols == nil {
		if err := c.bind(cols); err != nil {
			return err
		}
	} else if !sameSchema(c.cols, cols) {
		return fmt.Errorf("row schema does not match previously added rows")
	}

	label := row.Labels[c.groupIdx]
	c.labels.Add(label)
	for i, name := range c.numNames {
		key := cellKey{label, name}
		ccell := c.cells[key]
		if ccell == nil {
			ccell = new(cell)
			c.cells[key] = ccell
		}
		ccell.values = append(ccell.values, row.Nums[i])
	}
	return nil
}

// bind fixes the Collection's schema and locates the group column.
func (c *Collection) bind(cols []edafmt.Column) error {
	labelIdx := -1
	li := 0
	var numNames []string
	for _, col := range cols {
		switch col.Kind {
		case edafmt.Numeric:
			if col.Name == c.groupCol {
				return &edafmt.KindError{Name: col.Name, Want: edafmt.Label}
			}
			numNames = append(numNames, col.Name)
		case edafmt.Label:
			if col.Name == c.groupCol {
				labelIdx = li
			}
			li++
		}
	}
	if labelIdx < 0 {
		return &edafmt.UnknownColumnError{Name: c.groupCol}
	}
	c.cols = append([]edafmt.Column(nil), cols...)
	c.groupIdx = labelIdx
	c.numNames = numNames
	return nil
}

func sameSchema(a, b []edafmt.Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Labels returns the group labels observed so far, in order of first
// observation.
func (c *Collection) Labels() []string {
	return c.labels.Labels
}

// Columns returns the names of the numeric columns, in schema order.
// It is valid after the first successful Add.
func (c *Collection) Columns() []string {
	return c.numNames
}

// Cell returns the values accumulated for one (label, numeric column)
// pair, in the order they were added. It returns nil if the pair was
// never observed.
func (c *Collection) Cell(label, col string) []float64 {
	ccell := c.cells[cellKey{label, col}]
	if ccell == nil {
		return nil
	}
	return ccell.values
}

// Summaries summarizes the named numeric column per group label, in
// label observation order.
func (c *Collection) Summaries(col string) ([]GroupSummary, error) {
	found := false
	for _, name := range c.numNames {
		if name == col {
			found = true
			break
		}
	}
	if !found {
		for _, sc := range c.cols {
			if sc.Name == col {
				return nil, &edafmt.KindError{Name: col, Want: edafmt.Numeric}
			}
		}
		return nil, &edafmt.UnknownColumnError{Name: col}
	}

	groups := make([]Group, 0, len(c.labels.Labels))
	for _, label := range c.labels.Labels {
		groups = append(groups, Group{Label: label, Values: c.Cell(label, col)})
	}
	return summarizeGroups(groups)
}
