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
	"testing"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscrete_CheckPMF checks if the given probability mass function (pmf) is valid.
func TestDiscrete_CheckPMF(t *testing.T) {
	pmf := []float64{0.2, 0.5, 0.3}
	if err := CheckPMF(pmf); err != nil {
		t.Fatalf("valid pmf: want nil, got %v", err)
	}
	pmf = []float64{0.0, 1.0, 0.0}
	if err := CheckPMF(pmf); err != nil {
		t.Fatalf("valid pmf with zeros: want nil, got %v", err)
	}
	pmf = []float64{0.0, 0.0, 0.0}
	if err := CheckPMF(pmf); err == nil {
		t.Fatalf("all zeros pmf: want error, got nil")
	}
	pmf = []float64{-1.0, 0.0, 0.0}
	if err := CheckPMF(pmf); err == nil {
		t.Fatalf("negative number in pmf: want error, got nil")
	}
	pmf = []float64{1.1, 0.0, 0.0}
	if err := CheckPMF(pmf); err == nil {
		t.Fatalf("probability greater than one: want error, got nil")
	}
	pmf = []float64{math.NaN(), 0.0, 0.0}
	if err := CheckPMF(pmf); err == nil {
		t.Fatalf("a probability as NaN: want error, got nil")
	}
	if err := CheckPMF(nil); err == nil {
		t.Fatalf("empty pmf: want error, got nil")
	}
	err := CheckPMF([]float64{math.NaN(), math.NaN()})
	require.ErrorIs(t, err, statistics.ErrValidation)
	reason, _ := statistics.ReasonOf(err)
	assert.Equal(t, statistics.ReasonNormalization, reason)
}

// TestDiscrete_Densify checks the expansion of a sparse support into a dense one.
func TestDiscrete_Densify(t *testing.T) {
	offset, dense := Densify([]int64{-2, 0, 3}, []float64{1, 2, 3})
	assert.Equal(t, int64(-2), offset)
	assert.Equal(t, []float64{1, 0, 2, 0, 0, 3}, dense)

	offset, dense = Densify([]int64{5}, []float64{0.5})
	assert.Equal(t, int64(5), offset)
	assert.Equal(t, []float64{0.5}, dense)

	offset, dense = Densify(nil, nil)
	assert.Equal(t, int64(0), offset)
	require.Empty(t, dense)
}
