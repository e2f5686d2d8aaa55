// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edasummary reads labeled CSV datasets from input files and
// prints descriptive statistics of each numeric column, grouped by a
// label column. If no inputs are provided, it reads from stdin.
//
// For every group it prints the sample size, mean, sample standard
// deviation, five-number summary, interquartile range, and the
// Shapiro-Wilk normality statistic with its p-value. Groups appear in
// order of first observation in the input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edaproc"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	groupCol := flag.String("group", "class", "group rows by label column `name`")
	col := flag.String("col", "", "summarize only numeric column `name` (default all)")
	filterQuery := flag.String("filter", "*", "summarize only rows matching `query`; see edafilter for syntax")
	flag.Parse()

	filter, err := edaproc.NewFilter(*filterQuery)
	if err != nil {
		log.Fatal(err)
	}

	c := edaproc.NewCollection(*groupCol)
	files := edafmt.Files{Paths: flag.Args(), AllowStdin: true}
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

		if err := c.Add(files.Columns(), row); err != nil {
			log.Fatal(err)
		}
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}
	if len(c.Labels()) == 0 {
		log.Fatal("no rows to summarize")
	}

	cols := c.Columns()
	if *col != "" {
		cols = strings.Split(*col, ",")
	}
	for i, name := range cols {
		if i > 0 {
			fmt.Println()
		}
		if err := printSummaries(os.Stdout, c, name); err != nil {
			log.Fatal(err)
		}
	}
}

func printSummaries(w io.Writer, c *edaproc.Collection, col string) error {
	sums, err := c.Summaries(col)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s:\n", col)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "class\tn\tmean\tstd\tmin\tq1\tmedian\tq3\tmax\tiqr\tshapiro-W\tp")
	for _, gs := range sums {
		s := gs.Summary
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t",
			gs.Label, s.N, num(s.Mean), num(s.StdDev), num(s.Min),
			num(s.Q1), num(s.Median), num(s.Q3), num(s.Max), num(s.IQR))
		if gs.NormalityErr != nil {
			fmt.Fprintf(tw, "-\t- (%s)\n", gs.NormalityErr)
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", num(gs.Normality.W), num(gs.Normality.P))
		}
	}
	return tw.Flush()
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}
