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

package arbitrary

import (
	"github.com/0xsoniclabs/aida-arbitrary/config"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/continuous"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/discrete"
	"github.com/cockroachdb/errors"
)

// distribution holds the sampler selected by the configuration.
type distribution struct {
	continuous *continuous.Arbitrary
	discrete   *discrete.Alias
	support    []int64 // discrete support as configured
}

// newDistribution configures the sampler described by cfg.
func newDistribution(cfg *config.Config) (*distribution, error) {
	rg, err := cfg.NewSource()
	if err != nil {
		return nil, err
	}
	if cfg.Discrete {
		x, err := cfg.IntSupport()
		if err != nil {
			return nil, err
		}
		d, err := discrete.New(rg, x, cfg.Weights)
		if err != nil {
			return nil, errors.Wrap(err, "cannot configure discrete sampler")
		}
		return &distribution{discrete: d, support: x}, nil
	}
	c, err := continuous.New(rg, cfg.Support, cfg.Weights,
		continuous.WithTableSize(cfg.TableSize),
		continuous.WithTrim(cfg.Trim))
	if err != nil {
		return nil, errors.Wrap(err, "cannot configure continuous sampler")
	}
	return &distribution{continuous: c}, nil
}

func (d *distribution) kind() string {
	if d.discrete != nil {
		return "discrete"
	}
	return "continuous"
}

// bounds returns the smallest and the largest value the sampler can return.
func (d *distribution) bounds() (float64, float64) {
	if d.discrete != nil {
		return float64(d.discrete.Min()), float64(d.discrete.Max())
	}
	return d.continuous.Support()
}
