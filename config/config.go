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

package config

import (
	"math"
	"time"

	"github.com/0xsoniclabs/aida-arbitrary/logger"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Config summarizes the available configuration flags.
type Config struct {
	AppName     string
	CommandName string

	Support          []float64 // support points; nil selects the default support
	Weights          []float64 // weights; nil selects uniform weights
	DistributionFile string    // file overriding Support and Weights
	Discrete         bool      // alias sampling over integers
	TableSize        int       // inverse CDF table size
	Trim             bool      // redraw continuous samples outside the support
	NumSamples       int       // samples drawn per run
	RandomSeed       int64     // seed of the uniform generator
	Generator        string    // uniform generator kind
	Output           string    // sample output file
	SummaryFile      string    // file receiving the summary table
	Quiet            bool      // suppress console summary
	Trials           int       // goodness-of-fit runs
	Alpha            float64   // significance level per run
	ReportDb         string    // sqlite3 database for run results
	Port             string    // visualizer port
	LogLevel         string    // level of the logger
}

// NewConfig creates and validates the configuration of the current command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	log := logger.NewLogger(cfg.LogLevel, "Config")

	if cfg.DistributionFile != "" {
		x, p, err := utils.ReadDistribution(cfg.DistributionFile)
		if err != nil {
			return nil, err
		}
		cfg.Support, cfg.Weights = x, p
	}
	if len(cfg.Support) == 0 {
		cfg.Support = nil
	}
	if len(cfg.Weights) == 0 {
		cfg.Weights = nil
	}
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano() & math.MaxInt64
		log.Infof("Random seed not set, using %d", cfg.RandomSeed)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log.Debugf("Configuration: %+v", *cfg)
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.NumSamples <= 0 {
		return errors.Newf("number of samples must be positive, got %d", cfg.NumSamples)
	}
	if cfg.Trials <= 0 {
		return errors.Newf("number of trials must be positive, got %d", cfg.Trials)
	}
	if !(cfg.Alpha > 0 && cfg.Alpha < 1) {
		return errors.Newf("alpha must be in (0,1), got %v", cfg.Alpha)
	}
	if _, err := statistics.NewSource(cfg.Generator, 0); err != nil {
		return err
	}
	if len(cfg.Weights) > 0 && cfg.Support == nil {
		return errors.New("weights require an explicit support")
	}
	if cfg.Discrete {
		if cfg.Support == nil {
			return errors.New("discrete sampling requires an explicit support")
		}
		if _, err := cfg.IntSupport(); err != nil {
			return err
		}
	}
	return nil
}

// IntSupport converts the support to integers for discrete sampling.
func (cfg *Config) IntSupport() ([]int64, error) {
	xs := make([]int64, len(cfg.Support))
	for i, x := range cfg.Support {
		if x != math.Trunc(x) || x < -(1<<63) || x >= 1<<63 {
			return nil, errors.Newf("discrete support point %v at position %d is not an integer", x, i)
		}
		xs[i] = int64(x)
	}
	return xs, nil
}

// NewSource returns the configured uniform generator.
func (cfg *Config) NewSource() (statistics.Source, error) {
	return statistics.NewSource(cfg.Generator, cfg.RandomSeed)
}
