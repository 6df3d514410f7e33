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

package goodness

import (
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	Q1       float64
	Median   float64
	Q3       float64
}

// Summarize computes descriptive statistics. An empty sample yields a zero Summary.
func Summarize[T constraints.Integer | constraints.Float](sample []T) Summary {
	n := len(sample)
	if n == 0 {
		return Summary{}
	}
	xs := make([]float64, n)
	for i, v := range sample {
		xs[i] = float64(v)
	}
	sort.Float64s(xs)

	s := Summary{
		N:      n,
		Mean:   stat.Mean(xs, nil),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Q1:     stat.Quantile(0.25, stat.Empirical, xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, xs, nil),
	}
	if n > 1 {
		s.Variance = stat.Variance(xs, nil)
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s
}

// Frequencies returns the relative frequency of every support value in the
// sample, in support order. Values outside the support are ignored.
func Frequencies(x []int64, sample []int64) []float64 {
	index := make(map[int64]int, len(x))
	for i, v := range x {
		index[v] = i
	}
	freq := make([]float64, len(x))
	if len(sample) == 0 {
		return freq
	}
	for _, v := range sample {
		if i, ok := index[v]; ok {
			freq[i]++
		}
	}
	floats.Scale(1/float64(len(sample)), freq)
	return freq
}
