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

package discrete

import (
	"math"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
)

// CheckPMF verifies that a dense pmf is a probability vector: every entry
// lies in [0,1] and the entries add up to one.
func CheckPMF(f []float64) error {
	if len(f) == 0 {
		return statistics.NewValidationError(statistics.ReasonEmpty, "empty pmf")
	}
	for i, v := range f {
		if !(v >= 0 && v <= 1) {
			return statistics.NewValidationError(statistics.ReasonNormalization, "probability %d is %v", i, v)
		}
	}
	if total := statistics.Sum(f); math.Abs(total-1.0) > 1e-9 {
		return statistics.NewValidationError(statistics.ReasonNormalization, "pmf adds up to %v", total)
	}
	return nil
}

// Densify expands sparse weights over the strictly increasing integers x
// into a dense slice covering every integer from x[0] to x[len(x)-1].
// Integers missing in x get weight zero. It returns the offset x[0] of the
// dense index space.
func Densify(x []int64, p []float64) (int64, []float64) {
	if len(x) == 0 {
		return 0, nil
	}
	offset := x[0]
	dense := make([]float64, x[len(x)-1]-offset+1)
	for i, v := range x {
		dense[v-offset] = p[i]
	}
	return offset, dense
}
