// Copyright 2021 The Edalab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrZeroRange indicates all values in a sample are identical, so a
// distributional statistic is undefined.
var ErrZeroRange = errors.New("all values are identical")

// ErrSampleTooLarge indicates a sample exceeds the valid size range of
// the Shapiro-Wilk approximation.
var ErrSampleTooLarge = errors.New("sample size exceeds 5000")

// maxShapiroN is the largest sample size for which Royston's
// approximation is considered valid.
const maxShapiroN = 5000

// A NormalityTest is the result of a test of the hypothesis that a
// sample was drawn from a normal distribution.
type NormalityTest struct {
	N int     // sample size
	W float64 // test statistic, in (0, 1]
	P float64 // probability of a W this small under normality
}

// ShapiroWilk performs the Shapiro-Wilk normality test on xs using
// Royston's AS R94 approximation, which is valid for 3 <= n <= 5000.
// A small P indicates xs is unlikely to be a sample from a normal
// distribution. It does not modify xs.
//
// It returns ErrEmptyInput for an empty sample, an
// InsufficientDataError for 0 < n < 3, ErrSampleTooLarge for
// n > 5000, and ErrZeroRange if all values are identical.
func ShapiroWilk(xs []float64) (NormalityTest, error) {
	n := len(xs)
	switch {
	case n == 0:
		return NormalityTest{}, ErrEmptyInput
	case n < 3:
		return NormalityTest{}, &InsufficientDataError{"ShapiroWilk", n, 3}
	case n > maxShapiroN:
		return NormalityTest{}, ErrSampleTooLarge
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if sorted[0] == sorted[n-1] {
		return NormalityTest{}, ErrZeroRange
	}

	a := shapiroWeights(n)

	// W = (sum a_i x_(i))^2 / sum (x_i - mean)^2.
	mean := 0.0
	for _, x := range sorted {
		mean += x
	}
	mean /= float64(n)
	var num, den float64
	for i, x := range sorted {
		num += a[i] * x
		den += (x - mean) * (x - mean)
	}
	w := num * num / den
	if w > 1 {
		// Guard against roundoff for near-perfect fits.
		w = 1
	}

	return NormalityTest{N: n, W: w, P: shapiroP(n, w)}, nil
}

// shapiroWeights returns the coefficient vector a of the Shapiro-Wilk
// statistic: normalized expected normal order statistics at Blom
// plotting positions, with Royston's polynomial correction to the two
// extreme weights.
func shapiroWeights(n int) []float64 {
	a := make([]float64, n)
	if n == 3 {
		a[0], a[2] = -math.Sqrt(0.5), math.Sqrt(0.5)
		return a
	}

	m := make([]float64, n)
	var m2 float64
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		m2 += m[i] * m[i]
	}
	rm2 := math.Sqrt(m2)
	u := 1 / math.Sqrt(float64(n))

	an := m[n-1]/rm2 + u*(0.221157+u*(-0.147981+u*(-2.071190+u*(4.434685+u*-2.706056))))
	if n > 5 {
		an1 := m[n-2]/rm2 + u*(0.042981+u*(-0.293762+u*(-1.752461+u*(5.682633+u*-3.582633))))
		phi := (m2 - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		rphi := math.Sqrt(phi)
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / rphi
		}
		a[n-1], a[n-2] = an, an1
		a[0], a[1] = -an, -an1
	} else {
		phi := (m2 - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		rphi := math.Sqrt(phi)
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / rphi
		}
		a[n-1] = an
		a[0] = -an
	}
	return a
}

// shapiroP returns the p-value for a Shapiro-Wilk statistic w at
// sample size n, per Royston 1995. The distribution of a transform of
// W is approximately normal; the normalizing constants depend on n.
func shapiroP(n int, w float64) float64 {
	if n == 3 {
		// Exact for n = 3.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return math.Max(0, math.Min(1, p))
	}

	var z float64
	if n <= 11 {
		fn := float64(n)
		g := -2.273 + 0.459*fn
		lw := math.Log1p(-w)
		if lw >= g {
			// W too small for the log-log transform; under
			// normality this is essentially impossible.
			return 0
		}
		w1 := -math.Log(g - lw)
		mu := 0.5440 + fn*(-0.39978+fn*(0.025054+fn*-0.0006714))
		sigma := math.Exp(1.3822 + fn*(-0.77857+fn*(0.062767+fn*-0.0020322)))
		z = (w1 - mu) / sigma
	} else {
		u := math.Log(float64(n))
		w1 := math.Log1p(-w)
		mu := -1.5861 + u*(-0.31082+u*(-0.083751+u*0.0038915))
		sigma := math.Exp(-0.4803 + u*(-0.082676+u*0.0030302))
		z = (w1 - mu) / sigma
	}
	return distuv.UnitNormal.Survival(z)
}
