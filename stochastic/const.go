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

package stochastic

// DefaultTableSize sets the number of entries of the inverse-CDF lookup table
// of a continuous arbitrary distribution.
const DefaultTableSize = 1000

// MinTableSize is the smallest usable lookup table (one interpolation bin).
const MinTableSize = 2

// NumECDFPoints sets the number of points in the empirical cumulative distribution function.
const NumECDFPoints = 300

// DefaultAlpha is the significance level of goodness-of-fit tests.
const DefaultAlpha = 0.01

// DefaultSupportStep is the spacing of the default continuous support [0, 1).
const DefaultSupportStep = 0.01

// MaxDenseRange bounds the number of integers between the smallest and the
// largest support point of a discrete arbitrary distribution. The alias table
// holds one entry per integer in that range.
const MaxDenseRange = 1 << 24
