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

package statistics

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Number is the domain type of a distribution support.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid distribution")

// Reason classifies a validation failure.
type Reason int

const (
	ReasonEmpty         Reason = iota // no support points
	ReasonLength                      // len(x) != len(p)
	ReasonUnsorted                    // support is not strictly increasing
	ReasonNotFinite                   // NaN or infinite support point
	ReasonNegative                    // negative, NaN or infinite weight
	ReasonZeroSum                     // all weights are zero
	ReasonTooFewPoints                // support too small for a density
	ReasonTableSize                   // lookup table too small
	ReasonRange                       // integer support spans too many values
	ReasonNormalization               // weights do not normalize to a pmf
)

var reasonText = map[Reason]string{
	ReasonEmpty:         "empty support",
	ReasonLength:        "length mismatch",
	ReasonUnsorted:      "unsorted support",
	ReasonNotFinite:     "non-finite support",
	ReasonNegative:      "negative weight",
	ReasonZeroSum:       "zero weights",
	ReasonTooFewPoints:  "too few points",
	ReasonTableSize:     "table size",
	ReasonRange:         "support range",
	ReasonNormalization: "normalization",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// ValidationError is returned when a distribution cannot be configured.
// It is terminal for the configuration attempt; nothing is partially applied.
type ValidationError struct {
	Reason Reason
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrValidation, e.Reason, e.Msg)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation failure with a stack trace attached.
func NewValidationError(reason Reason, format string, args ...any) error {
	return errors.WithStack(&ValidationError{Reason: reason, Msg: fmt.Sprintf(format, args...)})
}

// ReasonOf returns the reason of a validation failure and whether err is one.
func ReasonOf(err error) (Reason, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason, true
	}
	return 0, false
}

// IsStrictlyIncreasing checks whether every element is smaller than its
// successor, which also implies uniqueness. Empty and single element
// sequences are strictly increasing.
func IsStrictlyIncreasing[T Number](xs []T) bool {
	return firstUnordered(xs) < 0
}

// firstUnordered returns the first index i with xs[i] >= xs[i+1], or -1.
func firstUnordered[T Number](xs []T) int {
	for i := 0; i+1 < len(xs); i++ {
		if !(xs[i] < xs[i+1]) {
			return i
		}
	}
	return -1
}

// CheckSupport validates the support points of a distribution.
func CheckSupport[T Number](xs []T) error {
	if len(xs) == 0 {
		return NewValidationError(ReasonEmpty, "support must have at least one point")
	}
	for i, v := range xs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return NewValidationError(ReasonNotFinite, "support point %d is %v", i, f)
		}
	}
	if i := firstUnordered(xs); i >= 0 {
		return NewValidationError(ReasonUnsorted, "support point %d (%v) is not smaller than point %d (%v)", i, xs[i], i+1, xs[i+1])
	}
	return nil
}

// CheckWeights validates the weights of a distribution with n support points.
func CheckWeights(n int, p []float64) error {
	if n != len(p) {
		return NewValidationError(ReasonLength, "%d support points but %d weights", n, len(p))
	}
	positive := false
	for i, w := range p {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return NewValidationError(ReasonNegative, "weight %d is %v", i, w)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return NewValidationError(ReasonZeroSum, "at least one weight must be positive")
	}
	return nil
}

// Check validates a support together with its weights.
func Check[T Number](x []T, p []float64) error {
	if len(x) != len(p) {
		return NewValidationError(ReasonLength, "%d support points but %d weights", len(x), len(p))
	}
	if err := CheckSupport(x); err != nil {
		return err
	}
	return CheckWeights(len(x), p)
}

// UniformWeights returns n equal weights.
func UniformWeights(n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = 1.0
	}
	return p
}

// Sum adds up the values using Kahan's summation.
func Sum(p []float64) float64 {
	sum := 0.0
	c := 0.0 // compensation term
	for _, v := range p {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// Normalize returns a copy of p scaled so that it sums to one.
// The sum of p must be positive. Weights whose sum overflows are first
// scaled by their maximum.
func Normalize(p []float64) []float64 {
	out := make([]float64, len(p))
	total := Sum(p)
	if math.IsInf(total, 1) {
		m := floats.Max(p)
		for i, v := range p {
			out[i] = v / m
		}
		total = Sum(out)
		p = out
	}
	for i, v := range p {
		out[i] = v / total
	}
	return out
}

// CumulativeSum returns the running sum of a normalized pdf. Kahan's
// summation keeps the accumulated error small for tiny probabilities and
// values are capped at one.
func CumulativeSum(pdf []float64) []float64 {
	cdf := make([]float64, len(pdf))
	sum := 0.0
	c := 0.0
	for i, v := range pdf {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		cdf[i] = math.Min(sum, 1.0)
	}
	return cdf
}
