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
	"math"
	"math/rand"
	"testing"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func almostEqual(a, b float64) bool {
	const eps = 1e-12
	return math.Abs(a-b) <= eps
}

func TestCDF_PiecewiseInterpolationAndBoundaries(t *testing.T) {
	f := [][2]float64{
		{0.0, 0.1},
		{0.25, 0.2},
		{0.6, 0.7},
		{1.0, 1.0},
	}
	if v := CDF(f, -1.0); !almostEqual(v, 0.0) {
		t.Fatalf("CDF below support: want 0.0, got %g", v)
	}
	if v := CDF(f, 0.0); !almostEqual(v, 0.1) {
		t.Fatalf("CDF at first point: want 0.1, got %g", v)
	}
	if v := CDF(f, 0.125); !almostEqual(v, 0.15) {
		t.Fatalf("CDF at x=0.125: want 0.15, got %g", v)
	}
	if v := CDF(f, 0.25); !almostEqual(v, 0.2) {
		t.Fatalf("CDF at x=0.25 (boundary): want 0.2, got %g", v)
	}
	if v := CDF(f, 0.8); !almostEqual(v, 0.85) {
		t.Fatalf("CDF at x=0.8: want 0.85, got %g", v)
	}
	if v := CDF(f, 1.2); !almostEqual(v, 1.0) {
		t.Fatalf("CDF above support: want 1.0, got %g", v)
	}
	if v := CDF(nil, 0.5); v != 0.0 {
		t.Fatalf("CDF of empty function: want 0.0, got %g", v)
	}
}

func TestQuantile_InvertsCDF(t *testing.T) {
	f := [][2]float64{{-2.0, 0.0}, {0.0, 0.25}, {3.0, 1.0}}
	assert.Equal(t, -2.0, Quantile(f, 0.0))
	assert.InDelta(t, -1.0, Quantile(f, 0.125), 1e-12)
	assert.InDelta(t, 0.0, Quantile(f, 0.25), 1e-12)
	assert.InDelta(t, 1.5, Quantile(f, 0.625), 1e-12)
	assert.Equal(t, 3.0, Quantile(f, 1.5))
	assert.Equal(t, 0.0, Quantile(nil, 0.5))

	n := 10000
	for i := range n {
		y := float64(i) / float64(n)
		if v := CDF(f, Quantile(f, y)); !almostEqual(v, y) {
			t.Fatalf("CDF(Quantile(%v)): want %v, got %v", y, y, v)
		}
	}
}

func TestQuantile_SkipsFlatSegments(t *testing.T) {
	// no mass between 1 and 2
	f := [][2]float64{{0.0, 0.0}, {1.0, 0.5}, {2.0, 0.5}, {3.0, 1.0}}
	assert.InDelta(t, 1.0, Quantile(f, 0.5), 1e-12)
	assert.InDelta(t, 2.5, Quantile(f, 0.75), 1e-12)
}

func TestCheck_PiecewiseLinearCDF(t *testing.T) {
	require.NoError(t, Check([][2]float64{{0, 0}, {0.2, 0.1}, {0.8, 0.9}, {1, 1}}))
	require.NoError(t, Check([][2]float64{{-5, 0.3}, {5, 1}}))
	require.NoError(t, Check([][2]float64{{0, 0}, {1, 0.5}, {2, 0.5}, {3, 1}}), "flat segments are allowed")

	require.Error(t, Check([][2]float64{{0, 1}}), "too short")
	require.Error(t, Check([][2]float64{{0, 0}, {0, 0.5}, {1, 1}}), "x not increasing")
	require.Error(t, Check([][2]float64{{0, 0}, {0.5, 0.6}, {1, 0.5}, {2, 1}}), "y decreasing")
	require.Error(t, Check([][2]float64{{0, -0.1}, {1, 1}}), "y below zero")
	require.Error(t, Check([][2]float64{{0, 0}, {1, 0.9}}), "does not end at one")
}

func TestToECDF_SmallSample(t *testing.T) {
	ecdf := ToECDF([]float64{3, 1, 2, 2})
	assert.Equal(t, [][2]float64{{1, 0.25}, {2, 0.75}, {3, 1}}, ecdf)
	assert.Empty(t, ToECDF(nil))
}

func TestToECDF_CompressesLargeSample(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	sample := make([]float64, 10000)
	for i := range sample {
		sample[i] = rg.Float64()
	}
	ecdf := ToECDF(sample)
	require.LessOrEqual(t, len(ecdf), stochastic.NumECDFPoints)
	require.Greater(t, len(ecdf), 2)
	assert.Equal(t, 1.0, ecdf[len(ecdf)-1][1])
	// the ecdf of a uniform sample is close to the identity
	for _, pt := range ecdf {
		assert.InDelta(t, pt[0], pt[1], 0.03)
	}
}
