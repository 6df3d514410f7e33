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

package continuous

import (
	"fmt"
	"sort"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// CDF evaluates a piecewise linear cumulative distribution function at x.
// The function is given as a list of points (x_i, y_i) with strictly
// increasing x_i and non-decreasing y_i. Below the first point the CDF is
// zero and from the last point on it is one; in between it is interpolated
// linearly.
func CDF(f [][2]float64, x float64) float64 {
	if len(f) == 0 || x < f[0][0] {
		return 0.0
	}
	// first point whose x is larger than the argument
	i := sort.Search(len(f), func(i int) bool { return f[i][0] > x })
	if i == len(f) {
		return 1.0
	}
	scale := (x - f[i-1][0]) / (f[i][0] - f[i-1][0])
	return f[i-1][1] + scale*(f[i][1]-f[i-1][1])
}

// Quantile computes the inverse of a piecewise linear CDF for a
// probability y. Probabilities at or below the first point map to the
// first x value; probabilities above the last point map to the last x value.
func Quantile(f [][2]float64, y float64) float64 {
	if len(f) == 0 {
		return 0.0
	}
	if y <= f[0][1] {
		return f[0][0]
	}
	// first point whose cumulative probability reaches y
	i := sort.Search(len(f), func(i int) bool { return f[i][1] >= y })
	if i == len(f) {
		return f[len(f)-1][0]
	}
	scale := (y - f[i-1][1]) / (f[i][1] - f[i-1][1])
	return f[i-1][0] + scale*(f[i][0]-f[i-1][0])
}

// Check whether the piecewise linear function is valid as a CDF.
// The function needs at least two points, its x values must be strictly
// increasing, its y values non-decreasing within [0,1] and it must end at one.
func Check(f [][2]float64) error {
	if len(f) < 2 {
		return fmt.Errorf("CDF must have at least two points")
	}
	for i := range len(f) {
		if f[i][1] < 0.0 || f[i][1] > 1.0 {
			return fmt.Errorf("CDF value of point %v (%v,%v) is not in [0,1]", i, f[i][0], f[i][1])
		}
		if i+1 < len(f) && (f[i][0] >= f[i+1][0] || f[i][1] > f[i+1][1]) {
			return fmt.Errorf("CDF points must be monotonically increasing, but point %v (%v,%v) is not smaller than point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	last := len(f) - 1
	if f[last][1] < 1.0-1e-9 {
		return fmt.Errorf("CDF must end at one, but ends at (%v,%v)", f[last][0], f[last][1])
	}
	return nil
}

// ToECDF computes the empirical cumulative distribution function (eCDF) of
// a sample. The eCDF is a step function that is approximated by a piecewise
// linear function through the upper corners of its steps and compressed using
// the Visvalingam-Whyatt algorithm to at most NumECDFPoints points. See:
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func ToECDF(sample []float64) [][2]float64 {
	n := len(sample)
	if n == 0 {
		return [][2]float64{}
	}
	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)

	ls := orb.LineString{}
	for i := 0; i < n; i++ {
		// collapse ties into the highest step
		if i+1 < n && sorted[i+1] == sorted[i] {
			continue
		}
		ls = append(ls, orb.Point{sorted[i], float64(i+1) / float64(n)})
	}
	if len(ls) > stochastic.NumECDFPoints {
		simplifier := simplify.VisvalingamKeep(stochastic.NumECDFPoints)
		ls = simplifier.Simplify(ls).(orb.LineString)
	}
	ecdf := make([][2]float64, len(ls))
	for i := range ls {
		ecdf[i] = [2]float64(ls[i])
	}
	return ecdf
}
