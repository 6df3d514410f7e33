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
	"slices"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
)

// Alias draws random integers from an arbitrary discrete distribution
// in constant time using Vose's alias method. See:
// M. D. Vose, "A Linear Algorithm For Generating Random Numbers With a Given
// Distribution", IEEE Transactions on Software Engineering 17(9), 1991.
//
// The support is re-indexed into the dense range [min(x), max(x)], so
// memory and construction time grow with the width of that range rather
// than with the number of support points.
//
// Alias performs no locking; a host sharing one instance between
// goroutines must serialize Configure against Sample.
type Alias struct {
	rg  statistics.Source
	tbl *aliasTable
}

// aliasTable is immutable once built.
type aliasTable struct {
	offset int64     // smallest support point
	pmf    []float64 // normalized dense pmf
	prob   []float64 // probability to keep the drawn column
	alias  []int     // column taken otherwise
}

// worklist is an array-based stack of dense indices.
type worklist []int

func (w *worklist) push(i int) {
	*w = append(*w, i)
}

func (w *worklist) pop() int {
	l := len(*w) - 1
	i := (*w)[l]
	*w = (*w)[:l]
	return i
}

// New creates a sampler for the weights p over the integers x. A nil p
// selects equal weights and a nil source falls back to a time-seeded
// generator.
func New(rg statistics.Source, x []int64, p []float64) (*Alias, error) {
	if rg == nil {
		rg = statistics.NewDefaultSource()
	}
	a := &Alias{rg: rg}
	if err := a.Configure(x, p); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure rebuilds the alias table. On failure the previous
// configuration stays in place.
func (a *Alias) Configure(x []int64, p []float64) error {
	if p == nil {
		p = statistics.UniformWeights(len(x))
	}
	if err := statistics.Check(x, p); err != nil {
		return err
	}
	// unsigned arithmetic keeps the width exact for any int64 bounds
	width := uint64(x[len(x)-1]) - uint64(x[0])
	if width >= stochastic.MaxDenseRange {
		return statistics.NewValidationError(statistics.ReasonRange, "support [%d, %d] spans more than %d integers", x[0], x[len(x)-1], stochastic.MaxDenseRange)
	}
	offset, dense := Densify(x, p)
	pmf := statistics.Normalize(dense)
	if err := CheckPMF(pmf); err != nil {
		return err
	}
	prob, alias := vose(pmf, dense)
	a.tbl = &aliasTable{
		offset: offset,
		pmf:    pmf,
		prob:   prob,
		alias:  alias,
	}
	return nil
}

// vose builds the probability and alias columns for a normalized pmf.
// A column has mass only if both its weight and its normalized
// probability are positive; the latter underflows for tiny weights.
func vose(pmf []float64, weights []float64) ([]float64, []int) {
	n := len(pmf)
	nInv := 1.0 / float64(n)
	p := slices.Clone(pmf)
	prob := make([]float64, n)
	alias := make([]int, n)

	// first stage: split indices into small and large ones
	var small, large worklist
	for j, v := range p {
		if v > nInv {
			large.push(j)
		} else {
			small.push(j)
		}
	}

	// second stage: fill each small column with mass donated by a large one
	for len(small) > 0 && len(large) > 0 {
		j := small.pop()
		k := large.pop()
		prob[j] = float64(n) * p[j]
		alias[j] = k
		p[k] = p[k] + p[j] - nInv
		if p[k] > nInv {
			large.push(k)
		} else {
			small.push(k)
		}
	}

	// Leftovers are caused by rounding and select themselves. A column
	// without mass must never be selected, so it defers to a leftover
	// that has mass.
	hasMass := func(j int) bool { return weights[j] > 0 && pmf[j] > 0 }
	leftover := append(large, small...)
	fallback := -1
	for _, j := range leftover {
		if hasMass(j) {
			fallback = j
			break
		}
	}
	for _, j := range leftover {
		alias[j] = j
		if hasMass(j) || fallback < 0 {
			prob[j] = 1.0
		} else {
			prob[j] = 0.0
			alias[j] = fallback
		}
	}
	return prob, alias
}

// Sample draws a single value.
func (a *Alias) Sample() int64 {
	t := a.tbl
	n := len(t.prob)
	u := a.rg.Float64() * float64(n)
	j := int(u)
	if j >= n {
		j = n - 1
	}
	f := u - float64(j)
	if f < t.prob[j] {
		return t.offset + int64(j)
	}
	return t.offset + int64(t.alias[j])
}

// SampleN draws n values; it returns an empty slice for n <= 0.
func (a *Alias) SampleN(n int) []int64 {
	if n <= 0 {
		return []int64{}
	}
	res := make([]int64, n)
	for i := range res {
		res[i] = a.Sample()
	}
	return res
}

// Min returns the smallest support point.
func (a *Alias) Min() int64 {
	return a.tbl.offset
}

// Max returns the largest support point.
func (a *Alias) Max() int64 {
	return a.tbl.offset + int64(len(a.tbl.prob)) - 1
}

// Len returns the size of the dense index space.
func (a *Alias) Len() int {
	return len(a.tbl.prob)
}

// PMF returns a copy of the normalized dense pmf; entry j belongs to Min()+j.
func (a *Alias) PMF() []float64 {
	return slices.Clone(a.tbl.pmf)
}

// Prob returns a copy of the probability column of the alias table.
func (a *Alias) Prob() []float64 {
	return slices.Clone(a.tbl.prob)
}

// Aliases returns a copy of the alias column of the alias table.
func (a *Alias) Aliases() []int {
	return slices.Clone(a.tbl.alias)
}
