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
	"slices"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
)

// Arbitrary draws random numbers from an arbitrary continuous distribution
// given by its density sampled at a set of support points. Sampling is an
// inverse transform using a precomputed inverse-CDF lookup table with linear
// interpolation inside each table bin.
//
// Arbitrary performs no locking; a host sharing one instance between
// goroutines must serialize Configure against Sample.
type Arbitrary struct {
	rg  statistics.Source
	tbl *table
}

// table holds everything derived from one configuration. It is never
// modified after construction, so a reconfiguration replaces it as a whole.
type table struct {
	points  [][2]float64 // (x_i, cdf_i) of the configured distribution
	inverse []float64    // inverse CDF at i/len(inverse)
	delta   []float64    // forward differences of inverse, last is zero
	min     float64
	max     float64
	trim    bool
}

type options struct {
	tableSize int
	trim      bool
}

// Option adjusts a configuration.
type Option func(*options)

// WithTableSize sets the number of inverse-CDF lookup entries.
func WithTableSize(n int) Option {
	return func(o *options) {
		o.tableSize = n
	}
}

// WithTrim controls whether values outside [min(x), max(x)) are redrawn.
func WithTrim(trim bool) Option {
	return func(o *options) {
		o.trim = trim
	}
}

// DefaultSupport returns the support used when no points are given,
// the grid 0, 0.01, ..., 0.99.
func DefaultSupport() []float64 {
	n := int(math.Round(1.0 / stochastic.DefaultSupportStep))
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n)
	}
	return x
}

// New creates a sampler for the density p over the support x. A nil x
// selects DefaultSupport and a nil p selects equal weights. A nil source
// falls back to a time-seeded generator.
func New(rg statistics.Source, x, p []float64, opts ...Option) (*Arbitrary, error) {
	if rg == nil {
		rg = statistics.NewDefaultSource()
	}
	a := &Arbitrary{rg: rg}
	if err := a.Configure(x, p, opts...); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure rebuilds the lookup tables. On failure the previous
// configuration stays in place.
func (a *Arbitrary) Configure(x, p []float64, opts ...Option) error {
	o := options{
		tableSize: stochastic.DefaultTableSize,
		trim:      true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	tbl, err := newTable(x, p, o)
	if err != nil {
		return err
	}
	a.tbl = tbl
	return nil
}

func newTable(x, p []float64, o options) (*table, error) {
	if x == nil {
		x = DefaultSupport()
	}
	if p == nil {
		p = statistics.UniformWeights(len(x))
	}
	if err := statistics.Check(x, p); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, statistics.NewValidationError(statistics.ReasonTooFewPoints, "a density needs at least two support points, got %d", len(x))
	}
	if o.tableSize < stochastic.MinTableSize {
		return nil, statistics.NewValidationError(statistics.ReasonTableSize, "table size must be at least %d, got %d", stochastic.MinTableSize, o.tableSize)
	}

	cdf := statistics.CumulativeSum(statistics.Normalize(p))
	inverse := inverseCDF(x, cdf, o.tableSize)
	delta := make([]float64, len(inverse))
	for i := 0; i+1 < len(inverse); i++ {
		delta[i] = inverse[i+1] - inverse[i]
	}
	points := make([][2]float64, len(x))
	for i := range x {
		points[i] = [2]float64{x[i], cdf[i]}
	}
	return &table{
		points:  points,
		inverse: inverse,
		delta:   delta,
		min:     x[0],
		max:     x[len(x)-1],
		trim:    o.trim,
	}, nil
}

// inverseCDF tabulates the domain value whose CDF equals i/n for i in [0,n).
// The scan position in cdf only moves forward, so the cost is O(n + len(x)).
func inverseCDF(x, cdf []float64, n int) []float64 {
	inverse := make([]float64, n)
	inverse[0] = x[0]
	last := len(cdf) - 1
	k := 0
	for i := 1; i < n; i++ {
		y := float64(i) / float64(n)
		for k < last && cdf[k] < y {
			k++
		}
		switch {
		case k == 0:
			// y lies within the mass of the first point
			inverse[i] = x[0]
		case cdf[k] < y:
			// rounding left the total slightly below y
			inverse[i] = x[last]
		default:
			// cdf[k-1] < y <= cdf[k]
			inverse[i] = x[k-1] + (x[k]-x[k-1])*(y-cdf[k-1])/(cdf[k]-cdf[k-1])
		}
	}
	return inverse
}

// Sample draws a single value.
func (a *Arbitrary) Sample() float64 {
	t := a.tbl
	v := t.lookup(a.rg.Float64())
	// out-of-range values are redrawn, never clamped; bin zero starts at
	// min(x), so the loop ends with probability one
	for t.trim && !(t.min <= v && v < t.max) {
		v = t.lookup(a.rg.Float64())
	}
	return v
}

// SampleN draws n values; it returns an empty slice for n <= 0.
func (a *Arbitrary) SampleN(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = a.Sample()
	}
	return res
}

// lookup maps a uniform value in [0,1) to [0, len(inverse)-1) and
// interpolates inside the selected bin.
func (t *table) lookup(r float64) float64 {
	bins := len(t.inverse) - 1
	u := r * float64(bins)
	bin := int(math.Floor(u))
	if bin >= bins {
		bin = bins - 1
	} else if bin < 0 {
		bin = 0
	}
	frac := u - float64(bin)
	return t.inverse[bin] + frac*t.delta[bin]
}

// TableSize returns the number of inverse-CDF lookup entries.
func (a *Arbitrary) TableSize() int {
	return len(a.tbl.inverse)
}

// Trim reports whether out-of-range values are redrawn.
func (a *Arbitrary) Trim() bool {
	return a.tbl.trim
}

// Support returns the smallest and largest support point.
func (a *Arbitrary) Support() (float64, float64) {
	return a.tbl.min, a.tbl.max
}

// InverseCDF returns a copy of the inverse-CDF lookup table.
func (a *Arbitrary) InverseCDF() []float64 {
	return slices.Clone(a.tbl.inverse)
}

// Points returns the configured distribution as a piecewise linear CDF
// suitable for CDF and Quantile.
func (a *Arbitrary) Points() [][2]float64 {
	return slices.Clone(a.tbl.points)
}
