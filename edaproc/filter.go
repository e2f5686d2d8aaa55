// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"fmt"
	"strconv"

	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edaproc/internal/query"
)

// A Filter selects dataset rows matching a boolean query over column
// values.
//
// The query syntax is described in the internal/query package. Label
// columns are matched against their values; numeric columns are
// matched against their shortest decimal representation.
type Filter struct {
	// q is the filter query.
	q query.Query

	// cols records the columns the query refers to, by name.
	cols map[string]bool

	// extractors maps from column name to a function that
	// extracts that column's value from a row. It is populated by
	// Bind.
	extractors map[string]func(*edafmt.Row) string
}

// NewFilter constructs a row filter from a boolean query. The filter
// must be bound to a column schema with Bind before matching rows.
func NewFilter(q string) (*Filter, error) {
	parsed, err := query.Parse(q)
	if err != nil {
		return nil, err
	}

	// Collect the columns the query mentions.
	f := &Filter{q: parsed, cols: make(map[string]bool)}
	var walk func(q query.Query)
	walk = func(q query.Query) {
		switch q := q.(type) {
		default:
			panic(fmt.Sprintf("unknown query node type %T", q))
		case *query.QueryOp:
			for _, sub := range q.Exprs {
				walk(sub)
			}
		case *query.QueryMatch:
			f.cols[q.Col] = true
		}
	}
	walk(parsed)
	return f, nil
}

// Bind resolves the query's column names against a column schema. A
// column the query mentions that is not in the schema is an
// *edafmt.UnknownColumnError.
func (f *Filter) Bind(cols []edafmt.Column) error {
	extractors := make(map[string]func(*edafmt.Row) string)
	ni, li := 0, 0
	for _, col := range cols {
		switch col.Kind {
		case edafmt.Numeric:
			if f.cols[col.Name] {
				i := ni
				extractors[col.Name] = func(r *edafmt.Row) string {
					return strconv.FormatFloat(r.Nums[i], 'g', -1, 64)
				}
			}
			ni++
		case edafmt.Label:
			if f.cols[col.Name] {
				i := li
				extractors[col.Name] = func(r *edafmt.Row) string {
					return r.Labels[i]
				}
			}
			li++
		}
	}
	for name := range f.cols {
		if extractors[name] == nil {
			return &edafmt.UnknownColumnError{Name: name}
		}
	}
	f.extractors = extractors
	return nil
}

// Match returns whether row matches f. The filter must have been
// bound with Bind.
func (f *Filter) Match(row *edafmt.Row) bool {
	return f.match(row, f.q)
}

func (f *Filter) match(row *edafmt.Row, node query.Query) bool {
	switch node := node.(type) {
	case *query.QueryOp:
		switch node.Op {
		case query.OpNot:
			return !f.match(row, node.Exprs[0])
		case query.OpAnd:
			for _, sub := range node.Exprs {
				if !f.match(row, sub) {
					return false
				}
			}
			return true
		case query.OpOr:
			for _, sub := range node.Exprs {
				if f.match(row, sub) {
					return true
				}
			}
			return false
		}
	case *query.QueryMatch:
		return node.Match(f.extractors[node.Col](row))
	}
	panic(fmt.Sprintf("unknown query node type %T", node))
}
