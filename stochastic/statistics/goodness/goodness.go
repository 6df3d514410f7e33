// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package goodness provides goodness-of-fit tests that check whether drawn
// samples follow the distribution a sampler was configured with.
package goodness

import (
	"math"
	"sort"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrEmptySample is returned when a test receives no observations.
var ErrEmptySample = errors.New("sample is empty")

// Result of a single goodness-of-fit test.
type Result struct {
	Statistic float64 // chi-squared value or Kolmogorov-Smirnov distance
	DF        float64 // degrees of freedom (chi-squared only)
	PValue    float64
	N         int // number of observations
}

// Passed reports whether the null hypothesis survives at level alpha.
func (r Result) Passed(alpha float64) bool {
	return r.PValue >= alpha
}

// ChiSquare tests an integer sample against the distribution with weights p
// over the support x. Cells without expected mass are left out of the
// statistic; a single observation in such a cell, or outside the support,
// yields a p-value of zero. With fewer than two cells the test is trivially
// passed.
func ChiSquare(x []int64, p []float64, sample []int64) (Result, error) {
	if err := statistics.Check(x, p); err != nil {
		return Result{}, err
	}
	n := len(sample)
	if n == 0 {
		return Result{}, ErrEmptySample
	}
	pmf := statistics.Normalize(p)
	index := make(map[int64]int, len(x))
	for i, v := range x {
		index[v] = i
	}
	observed := make([]float64, len(x))
	for _, v := range sample {
		i, ok := index[v]
		if !ok || pmf[i] == 0 {
			return Result{Statistic: math.Inf(1), PValue: 0, N: n}, nil
		}
		observed[i]++
	}

	chi2 := 0.0
	cells := 0
	for i, o := range observed {
		if pmf[i] == 0 {
			continue
		}
		expected := float64(n) * pmf[i]
		d := o - expected
		chi2 += d * d / expected
		cells++
	}
	if cells < 2 {
		return Result{Statistic: 0, PValue: 1, N: n}, nil
	}
	df := float64(cells - 1)
	return Result{
		Statistic: chi2,
		DF:        df,
		PValue:    distuv.ChiSquared{K: df}.Survival(chi2),
		N:         n,
	}, nil
}

// KolmogorovSmirnov tests a real valued sample against a reference
// cumulative distribution function using the one-sample Kolmogorov-Smirnov
// distance. The p-value uses the asymptotic Kolmogorov distribution with
// Stephens' small sample correction.
func KolmogorovSmirnov(cdf func(float64) float64, sample []float64) (Result, error) {
	n := len(sample)
	if n == 0 {
		return Result{}, ErrEmptySample
	}
	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)

	d := 0.0
	fn := float64(n)
	for i, v := range sorted {
		f := cdf(v)
		d = math.Max(d, math.Max(float64(i+1)/fn-f, f-float64(i)/fn))
	}
	sqrtN := math.Sqrt(fn)
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	return Result{
		Statistic: d,
		PValue:    kolmogorovSurvival(lambda),
		N:         n,
	}, nil
}

// kolmogorovSurvival evaluates Q(lambda) = 2 sum_{k>=1} (-1)^{k-1} exp(-2 k^2 lambda^2),
// the probability that the scaled distance exceeds lambda.
func kolmogorovSurvival(lambda float64) float64 {
	const (
		eps1     = 1e-6
		eps2     = 1e-16
		maxTerms = 100
	)
	if lambda <= 0 {
		return 1.0
	}
	a2 := -2.0 * lambda * lambda
	fac := 2.0
	sum := 0.0
	prev := 0.0
	for k := 1; k <= maxTerms; k++ {
		term := fac * math.Exp(a2*float64(k*k))
		sum += term
		if math.Abs(term) <= eps1*prev || math.Abs(term) <= eps2*sum {
			return math.Min(math.Max(sum, 0), 1)
		}
		fac = -fac
		prev = math.Abs(term)
	}
	// the series does not converge for tiny lambda, where Q is one
	return 1.0
}
