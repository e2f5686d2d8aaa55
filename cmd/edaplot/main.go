// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edaplot reads labeled CSV datasets from input files and
// renders one chart to an image file. If no inputs are provided, it
// reads from stdin.
//
// The chart kind is selected with -kind:
//
// 	hist     - histogram of one numeric column per group
// 	density  - kernel density curve of one numeric column per group
// 	qq       - normal quantile-quantile plot of one numeric column per group
// 	scatter  - one numeric column against another, colored by group
//
// hist, density, and qq take the column from -col; scatter takes -x
// and -y. Groups come from the label column named by -group; set
// -group to the empty string to plot the whole dataset as one group.
//
// The output format follows the -o file extension (.png, .svg, .pdf).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/edalab/eda/edafmt"
	"github.com/edalab/eda/edaplot"
	"github.com/edalab/eda/edaproc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	kind := flag.String("kind", "hist", "chart `kind`: hist, density, qq, or scatter")
	col := flag.String("col", "", "numeric column `name` for hist, density, and qq")
	xCol := flag.String("x", "", "numeric column `name` for the scatter x axis")
	yCol := flag.String("y", "", "numeric column `name` for the scatter y axis")
	groupCol := flag.String("group", "class", "group rows by label column `name`; empty for no grouping")
	bins := flag.Int("bins", 0, "number of histogram `bins` (default Sturges' rule)")
	out := flag.String("o", "eda.png", "write the chart to `file`")
	title := flag.String("title", "", "chart title")
	flag.Parse()

	d := readDataset(flag.Args())
	if d.Len() == 0 {
		log.Fatal("no rows to plot")
	}

	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	p.Title.Text = *title

	switch *kind {
	case "hist":
		err = histPlot(p, d, *col, *groupCol, *bins)
	case "density":
		err = densityPlot(p, d, *col, *groupCol)
	case "qq":
		err = qqPlot(p, d, *col, *groupCol)
	case "scatter":
		err = scatterPlot(p, d, *xCol, *yCol, *groupCol)
	default:
		log.Fatalf("unknown chart kind %q", *kind)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
}

// readDataset loads all input files (or stdin) into one Dataset.
func readDataset(paths []string) *edafmt.Dataset {
	files := edafmt.Files{Paths: paths, AllowStdin: true}
	d := new(edafmt.Dataset)
	for files.Scan() {
		row, err := files.Row()
		if err != nil {
			// Non-fatal row parse error. Warn but keep
			// going.
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if d.Cols == nil {
			d.Cols = append([]edafmt.Column(nil), files.Columns()...)
		}
		d.Rows = append(d.Rows, *row.Clone())
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}
	return d
}

// groupValues partitions column col by the group column, or returns
// the whole column as a single anonymous group if groupCol is empty.
func groupValues(d *edafmt.Dataset, col, groupCol string) ([]edaproc.Group, error) {
	if groupCol == "" {
		values, err := d.Numeric(col)
		if err != nil {
			return nil, err
		}
		return []edaproc.Group{{Label: col, Values: values}}, nil
	}
	return edaproc.GroupValues(d, col, groupCol)
}

func histPlot(p *plot.Plot, d *edafmt.Dataset, col, groupCol string, bins int) error {
	groups, err := groupValues(d, col, groupCol)
	if err != nil {
		return err
	}
	gh, err := edaplot.GroupedHistogram(groups, bins)
	if err != nil {
		return err
	}

	// Side-by-side bars within each bin.
	barWidth := vg.Points(18) / vg.Length(len(gh))
	for i, g := range gh {
		vals := make(plotter.Values, len(g.Bins))
		for j, b := range g.Bins {
			vals[j] = b.Density
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return err
		}
		bars.Color = palColor(i)
		bars.LineStyle.Width = 0
		bars.Offset = barWidth * (vg.Length(i) - vg.Length(len(gh)-1)/2)
		p.Add(bars)
		if groupCol != "" {
			p.Legend.Add(g.Label, bars)
		}
	}

	names := make([]string, len(gh[0].Bins))
	for j, b := range gh[0].Bins {
		names[j] = fmt.Sprintf("%.3g", b.X+b.Width/2)
	}
	p.NominalX(names...)
	p.X.Label.Text = col
	p.Y.Label.Text = "density"
	p.Legend.Top = true
	return nil
}

func densityPlot(p *plot.Plot, d *edafmt.Dataset, col, groupCol string) error {
	groups, err := groupValues(d, col, groupCol)
	if err != nil {
		return err
	}
	gd, err := edaplot.GroupedDensity(groups, 0)
	if err != nil {
		return err
	}

	for i, g := range gd {
		xys := make(plotter.XYs, len(g.Points))
		for j, pt := range g.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = palColor(i)
		p.Add(line)
		if groupCol != "" {
			p.Legend.Add(g.Label, line)
		}
	}
	p.X.Label.Text = col
	p.Y.Label.Text = "density"
	p.Legend.Top = true
	return nil
}

func qqPlot(p *plot.Plot, d *edafmt.Dataset, col, groupCol string) error {
	groups, err := groupValues(d, col, groupCol)
	if err != nil {
		return err
	}

	for i, g := range groups {
		pts, err := edaplot.QQNormal(g.Values)
		if err != nil {
			return err
		}
		xys := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xys[j].X, xys[j].Y = pt.Theoretical, pt.Sample
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = palColor(i)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		if groupCol != "" {
			p.Legend.Add(g.Label, sc)
		}
	}
	p.X.Label.Text = "theoretical quantiles"
	p.Y.Label.Text = col
	p.Legend.Top = true
	return nil
}

func scatterPlot(p *plot.Plot, d *edafmt.Dataset, xCol, yCol, groupCol string) error {
	pts, err := edaplot.Scatter(d, xCol, yCol, groupCol)
	if err != nil {
		return err
	}

	// Split points by label so each group gets its own color.
	var tracker edaproc.LabelTracker
	byLabel := make(map[string]plotter.XYs)
	for _, pt := range pts {
		tracker.Add(pt.Label)
		byLabel[pt.Label] = append(byLabel[pt.Label], plotter.XY{X: pt.X, Y: pt.Y})
	}
	for i, label := range tracker.Labels {
		sc, err := plotter.NewScatter(byLabel[label])
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = palColor(i)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		if label != "" {
			p.Legend.Add(label, sc)
		}
	}
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol
	p.Legend.Top = true
	return nil
}
