// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"fmt"
	"os"
)

// Files reads dataset rows from a sequence of input files.
//
// All files must share the schema of the first file read; a file
// whose header or column kinds differ is an error. The Path method
// reports which file the current row came from.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// pos is the position of the next file to read from in Paths
	// when the current file is exhausted.
	pos int

	reader  Reader
	cols    []Column
	path    string
	file    *os.File
	isStdin bool
	checked bool
	err     error
}

// Scan advances the reader to the next row in the sequence of files
// and returns true if a row was read. The caller should use the Row
// method to get the row. If an I/O error occurs, or this reaches the
// end of the file sequence, it returns false and the caller should
// use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.file == nil {
			// Open the next file.
			var path string
			if f.AllowStdin && len(f.Paths) == 0 && f.pos == 0 {
				path = "-"
			} else if f.pos < len(f.Paths) {
				path = f.Paths[f.pos]
			} else {
				// We're out of files.
				return false
			}
			f.pos++
			f.path = path
			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.checked = false
			f.reader.Reset(f.file, path)
		}

		// Try to get the next row.
		if f.reader.Scan() {
			if !f.checked && len(f.reader.Columns()) > 0 {
				f.checked = true
				if f.cols == nil {
					f.cols = append([]Column(nil), f.reader.Columns()...)
				} else if !columnsEqual(f.cols, f.reader.Columns()) {
					f.err = fmt.Errorf("%s: column schema does not match %s", f.path, f.Paths[0])
					return false
				}
			}
			return true
		}
		err := f.reader.Err()
		if err != nil {
			f.err = err
			break
		}
		// Just an EOF. Close this file and open the next.
		if !f.isStdin {
			f.file.Close()
		}
		f.file = nil
	}
	// We're out of files.
	return false
}

func columnsEqual(a, b []Column) bool {
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

// Columns returns the common column schema of the file sequence. It
// is valid after the first call to Scan that returns true.
func (f *Files) Columns() []Column {
	return f.cols
}

// Path returns the path of the file the current row was read from.
func (f *Files) Path() string {
	return f.path
}

// Row returns the last row read, or an error if the row was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Row object, as it will be
// overwritten by the next call to Scan.
func (f *Files) Row() (*Row, error) {
	return f.reader.Row()
}

// Err returns the first non-EOF I/O error that was encountered by the
// Files.
func (f *Files) Err() error {
	return f.err
}
