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
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Trials summarizes a batch of independent goodness-of-fit runs.
type Trials struct {
	Trials   int
	Failures int     // runs whose p-value fell below alpha
	Alpha    float64 // per-run significance level
	// PValue is the probability of seeing at least Failures false rejections
	// among Trials runs when the sampler is correct.
	PValue float64
}

// FailureRate returns the fraction of rejected runs.
func (t Trials) FailureRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Failures) / float64(t.Trials)
}

// Passed reports whether the number of rejections is plausible at level alpha.
func (t Trials) Passed(alpha float64) bool {
	return t.PValue >= alpha
}

// RepeatedTrials executes run the given number of times and counts the runs
// rejected at level alpha. Under a correct sampler the count of rejections is
// Binomial(trials, alpha); the returned p-value is its upper tail.
func RepeatedTrials(trials int, alpha float64, run func() (Result, error)) (Trials, error) {
	if trials <= 0 {
		return Trials{}, errors.Newf("number of trials must be positive, got %d", trials)
	}
	if !(alpha > 0 && alpha < 1) {
		return Trials{}, errors.Newf("alpha must be in (0,1), got %v", alpha)
	}
	res := Trials{Trials: trials, Alpha: alpha}
	for i := 0; i < trials; i++ {
		r, err := run()
		if err != nil {
			return res, errors.Wrapf(err, "trial %d", i)
		}
		if !r.Passed(alpha) {
			res.Failures++
		}
	}
	res.PValue = binomialUpperTail(trials, alpha, res.Failures)
	return res, nil
}

// binomialUpperTail returns P(X >= k) for X ~ Binomial(n, p).
func binomialUpperTail(n int, p float64, k int) float64 {
	if k <= 0 {
		return 1.0
	}
	b := distuv.Binomial{N: float64(n), P: p}
	return 1.0 - b.CDF(float64(k-1))
}
