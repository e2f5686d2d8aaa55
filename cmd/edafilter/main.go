// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edafilter reads labeled CSV datasets from input files,
// filters their rows, and writes the filtered dataset to stdout. If
// no inputs are provided, it reads from stdin.
//
// It supports the following query syntax:
//
// 	col:regexp    - Test if column col matches regexp. Both can be quoted.
// 	col:(x y ...) - Test if col matches any of x, y, etc.
// 	x y ...       - Test if x, y, etc. are all true
// 	x AND y       - Same as x y
// 	x OR y        - Test if x or y are true
// 	-x            - Negate x
// 	(...)         - Subexpression
//
// Columns are named by the dataset header. Label columns are matched
// against their values; numeric columns are matched against their
// shortest decimal representation.
//
// Regexp matching is anchored at the beginning and end, so a literal
// string without any regexp operators must match exactly.
//
// For example, the query
//
// 	class:(Hernia Normal) -degree_spondylolisthesis:0
//
// keeps the rows of the Hernia and Normal classes whose
// degree_spondylolisthesis is not exactly 0.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edaproc"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		// Note: Keep this in sync with the package doc.
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s query [inputs...]

edafilter reads labeled CSV datasets from input files, filters their
rows, and writes the filtered dataset to stdout. If no inputs are
provided, it reads from stdin.

It supports the following query syntax:

	col:regexp    - Test if column col matches regexp. Both can be quoted.
	col:(x y ...) - Test if col matches any of x, y, etc.
	x y ...       - Test if x, y, etc. are all true
	x AND y       - Same as x y
	x OR y        - Test if x or y are true
	-x            - Negate x
	(...)         - Subexpression

Columns are named by the dataset header. Label columns are matched
against their values; numeric columns are matched against their
shortest decimal representation.

Regexp matching is anchored at the beginning and end, so a literal
string without any regexp operators must match exactly.

For example, the query

	class:(Hernia Normal) -degree_spondylolisthesis:0

keeps the rows of the Hernia and Normal classes whose
degree_spondylolisthesis is not exactly 0.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	filter, err := edaproc.NewFilter(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	writer := edafmt.NewWriter(os.Stdout)
	files := edafmt.Files{Paths: flag.Args()[1:], AllowStdin: true}
	bound := false
	for files.Scan() {
		row, err := files.Row()
		if err != nil {
			// Non-fatal row parse error. Warn but keep
			// going.
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if !bound {
			if err := filter.Bind(files.Columns()); err != nil {
				log.Fatal(err)
			}
			bound = true
		}
		if !filter.Match(row) {
			continue
		}

		if err := writer.Write(files.Columns(), row); err != nil {
			log.Fatal("writing output: ", err)
		}
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}
	if err := writer.Flush(); err != nil {
		log.Fatal("writing output: ", err)
	}
}
