// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaplot

import (
	"sort"

	"github.com/edalab/eda/edastat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A QQPoint pairs a sample order statistic with the standard normal
// quantile expected at its rank. A normal sample's points fall on a
// straight line.
type QQPoint struct {
	Theoretical float64 // standard normal quantile
	Sample      float64 // sample order statistic
}

// QQNormal returns the quantile-quantile points of xs against the
// standard normal distribution, using Blom plotting positions
// (i - 0.375)/(n + 0.25). It does not modify xs.
func QQNormal(xs []float64) ([]QQPoint, error) {
	if len(xs) == 0 {
		return nil, edastat.ErrEmptyInput
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	out := make([]QQPoint, len(sorted))
	for i, x := range sorted {
		p := (float64(i+1) - 0.375) / (n + 0.25)
		out[i] = QQPoint{distuv.UnitNormal.Quantile(p), x}
	}
	return out, nil
}
