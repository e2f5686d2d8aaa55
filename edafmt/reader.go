// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads a labeled CSV dataset.
//
// Its API is modeled on bufio.Scanner. To minimize allocation, a
// Reader retains ownership of the Row it creates; a caller should
// Clone anything it needs to retain.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	cr       *csv.Reader
	fileName string
	lineNum  int   // file line the current record starts on
	err      error // current I/O error

	names []string
	cols  []Column

	row    Row
	rowErr error

	interns map[string]string
}

// SyntaxError represents a malformed cell or record on a particular
// line of a CSV input.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noRow = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse the CSV dataset from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. This
// discards the column schema inferred from the previous input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.cr = csv.NewReader(ior)
	r.cr.ReuseRecord = true
	r.cr.TrimLeadingSpace = true
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.rowErr = noRow
	r.names = r.names[:0]
	r.cols = r.cols[:0]
	if r.interns == nil {
		r.interns = make(map[string]string)
	}
}

// Scan advances the reader to the next row and returns true if a row
// was read. The caller should use the Row method to get the row. If
// an I/O error occurs, or this reaches the end of the input, it
// returns false and the caller should use the Err method to check for
// errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				// A malformed record is non-fatal; the
				// caller sees it from Row and can keep
				// scanning.
				r.rowErr = &SyntaxError{r.fileName, perr.Line, perr.Err.Error()}
				return true
			}
			r.err = fmt.Errorf("%s: %w", r.fileName, err)
			return false
		}
		// Blank lines and quoted multi-line fields mean the
		// record count is not the file line, so take the
		// position from the csv reader.
		r.lineNum, _ = r.cr.FieldPos(0)

		if len(r.names) == 0 {
			// Header row.
			for _, name := range rec {
				r.names = append(r.names, strings.TrimSpace(name))
			}
			continue
		}
		if len(r.cols) == 0 {
			// First data row fixes the column kinds.
			r.cols = inferColumns(r.names, rec)
		}
		r.rowErr = r.parseRow(rec)
		return true
	}
}

// inferColumns assigns a kind to each named column: a cell of the
// first data row that parses as a float makes its column Numeric,
// anything else makes it Label.
func inferColumns(names, first []string) []Column {
	cols := make([]Column, len(names))
	for i, name := range names {
		kind := Label
		if _, err := strconv.ParseFloat(strings.TrimSpace(first[i]), 64); err == nil {
			kind = Numeric
		}
		cols[i] = Column{Name: name, Kind: kind}
	}
	return cols
}

// parseRow parses rec into r.row according to the inferred schema.
func (r *Reader) parseRow(rec []string) error {
	r.row.Nums = r.row.Nums[:0]
	r.row.Labels = r.row.Labels[:0]
	for i, cell := range rec {
		switch r.cols[i].Kind {
		case Numeric:
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				msg := fmt.Sprintf("parsing column %q: %s", r.cols[i].Name, numErr(err))
				return &SyntaxError{r.fileName, r.lineNum, msg}
			}
			r.row.Nums = append(r.row.Nums, v)
		case Label:
			// Intern labels, since there tend to be few
			// distinct classes.
			r.row.Labels = append(r.row.Labels, r.intern(strings.TrimSpace(cell)))
		}
	}
	return nil
}

func numErr(err error) string {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) {
		return nerr.Err.Error()
	}
	return err.Error()
}

func (r *Reader) intern(x string) string {
	const maxIntern = 256
	if s, ok := r.interns[x]; ok {
		return s
	}
	if len(r.interns) >= maxIntern {
		// Evict a random item from the interns table.
		for k := range r.interns {
			delete(r.interns, k)
			break
		}
	}
	r.interns[x] = x
	return x
}

// Columns returns the column schema of the input. It is valid after
// the first call to Scan that returns true.
func (r *Reader) Columns() []Column {
	return r.cols
}

// Row returns the last row read, or an error if the row was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Row object, as it will be
// overwritten by the next call to Scan.
func (r *Reader) Row() (*Row, error) {
	if r.rowErr != nil {
		return nil, r.rowErr
	}
	return &r.row, nil
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadDataset reads an entire CSV dataset into memory. Unlike
// streaming with a Reader, it is strict: the first malformed row
// fails the load.
func ReadDataset(ior io.Reader, fileName string) (*Dataset, error) {
	r := NewReader(ior, fileName)
	d := new(Dataset)
	for r.Scan() {
		row, err := r.Row()
		if err != nil {
			return nil, err
		}
		if d.Cols == nil {
			d.Cols = append([]Column(nil), r.Columns()...)
		}
		d.Rows = append(d.Rows, *row.Clone())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
