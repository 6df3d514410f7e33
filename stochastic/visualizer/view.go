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

package visualizer

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/continuous"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/goodness"
)

// NumHistogramBins is the number of equal width bins of continuous histograms.
const NumHistogramBins = 50

var quartileLevels = [3]float64{0.25, 0.5, 0.75}

// View is the input of the web diagnostics: a configured sampler together
// with the samples drawn from it. Exactly one of the samplers must be set.
type View struct {
	Title string

	Continuous       *continuous.Arbitrary
	ContinuousSample []float64

	Discrete       *discrete.Alias
	DiscreteSample []int64
}

// aliasColumn is one column of an alias table.
type aliasColumn struct {
	value int64
	prob  float64
	alias int64
}

type viewState struct {
	title     string
	discrete  bool
	summary   goodness.Summary
	quartiles [3]float64 // configured Q1, median and Q3
	labels    []string   // histogram bin labels
	observed  []float64  // observed relative frequency per bin
	expected  []float64  // configured probability per bin
	ecdf      [][2]float64
	reference [][2]float64
	columns   []aliasColumn
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(view *View) error {
	if view == nil {
		return fmt.Errorf("visualizer: view is nil")
	}
	derived, err := buildViewState(view)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(view *View) (*viewState, error) {
	switch {
	case view.Continuous != nil && view.Discrete != nil:
		return nil, fmt.Errorf("visualizer: both a continuous and a discrete sampler are set")
	case view.Continuous != nil:
		return buildContinuousState(view), nil
	case view.Discrete != nil:
		return buildDiscreteState(view), nil
	}
	return nil, fmt.Errorf("visualizer: no sampler to show")
}

func buildContinuousState(view *View) *viewState {
	points := view.Continuous.Points()
	lo, hi := view.Continuous.Support()
	width := (hi - lo) / NumHistogramBins

	labels := make([]string, NumHistogramBins)
	observed := make([]float64, NumHistogramBins)
	expected := make([]float64, NumHistogramBins)
	prev := 0.0
	for i := range labels {
		upper := lo + float64(i+1)*width
		if i == NumHistogramBins-1 {
			upper = hi
		}
		labels[i] = strconv.FormatFloat(lo+float64(i)*width, 'g', 4, 64)
		cur := continuous.CDF(points, upper)
		expected[i] = cur - prev
		prev = cur
	}
	for _, v := range view.ContinuousSample {
		if v < lo || v > hi {
			continue
		}
		bin := int((v - lo) / width)
		if bin >= NumHistogramBins {
			bin = NumHistogramBins - 1
		}
		observed[bin]++
	}
	normalize(observed, len(view.ContinuousSample))

	var quartiles [3]float64
	for i, y := range quartileLevels {
		quartiles[i] = continuous.Quantile(points, y)
	}

	return &viewState{
		title:     view.Title,
		summary:   goodness.Summarize(view.ContinuousSample),
		quartiles: quartiles,
		labels:    labels,
		observed:  observed,
		expected:  expected,
		ecdf:      continuous.ToECDF(view.ContinuousSample),
		reference: points,
	}
}

func buildDiscreteState(view *View) *viewState {
	alias := view.Discrete
	pmf := alias.PMF()
	prob := alias.Prob()
	aliases := alias.Aliases()
	offset := alias.Min()

	support := make([]int64, len(pmf))
	labels := make([]string, len(pmf))
	columns := make([]aliasColumn, len(pmf))
	reference := make([][2]float64, len(pmf))
	cdf := 0.0
	for i := range pmf {
		support[i] = offset + int64(i)
		labels[i] = strconv.FormatInt(support[i], 10)
		columns[i] = aliasColumn{value: support[i], prob: prob[i], alias: offset + int64(aliases[i])}
		cdf += pmf[i]
		reference[i] = [2]float64{float64(support[i]), cdf}
	}

	sample := make([]float64, len(view.DiscreteSample))
	for i, v := range view.DiscreteSample {
		sample[i] = float64(v)
	}

	// smallest support value whose cdf reaches the level
	var quartiles [3]float64
	for i, y := range quartileLevels {
		k := sort.Search(len(reference), func(k int) bool { return reference[k][1] >= y })
		quartiles[i] = reference[min(k, len(reference)-1)][0]
	}

	return &viewState{
		title:     view.Title,
		discrete:  true,
		summary:   goodness.Summarize(view.DiscreteSample),
		quartiles: quartiles,
		labels:    labels,
		observed:  goodness.Frequencies(support, view.DiscreteSample),
		expected:  pmf,
		ecdf:      continuous.ToECDF(sample),
		reference: reference,
		columns:   columns,
	}
}

func normalize(counts []float64, n int) {
	if n == 0 {
		return
	}
	for i := range counts {
		counts[i] /= float64(n)
	}
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: samples not initialised")
	}
	return currentState, nil
}
