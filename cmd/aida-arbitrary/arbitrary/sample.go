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
	"time"

	"github.com/0xsoniclabs/aida-arbitrary/config"
	"github.com/0xsoniclabs/aida-arbitrary/logger"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/goodness"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// SampleCommand draws samples from an arbitrary distribution.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "draw samples from an arbitrary distribution",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.SupportFlag,
		&utils.WeightsFlag,
		&utils.DistributionFileFlag,
		&utils.DiscreteFlag,
		&utils.TableSizeFlag,
		&utils.NoTrimFlag,
		&utils.NumSamplesFlag,
		&utils.RandomSeedFlag,
		&utils.GeneratorFlag,
		&utils.OutputFlag,
		&utils.SummaryFileFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sample command draws --num-samples values from the distribution given by
--support and --weights (or --distribution). Continuous distributions are
sampled via an inverse CDF lookup table, discrete ones via an alias table.`,
}

func sampleAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sample")

	dist, err := newDistribution(cfg)
	if err != nil {
		return err
	}
	lo, hi := dist.bounds()
	log.Infof("Draw %d samples from a %s distribution on [%v, %v] (generator %v, seed %d)",
		cfg.NumSamples, dist.kind(), lo, hi, cfg.Generator, cfg.RandomSeed)

	start := time.Now()
	summary, err := drawSamples(cfg, dist)
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Sampling finished in %vh %vm %vs", hours, minutes, seconds)

	table := func() string {
		return utils.SummaryTable(dist.kind()+" samples", summary)
	}
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, table).
		AddPrinterToFile(cfg.SummaryFile, table)
	defer printers.Close()
	return printers.Print()
}

// drawSamples draws the configured number of samples, streams them to the
// output file if one is set and returns their summary.
func drawSamples(cfg *config.Config, dist *distribution) (_ goodness.Summary, err error) {
	var w utils.SampleWriter
	if cfg.Output != "" {
		if w, err = utils.NewSampleWriter(cfg.Output); err != nil {
			return goodness.Summary{}, err
		}
		defer func() {
			err = errors.CombineErrors(err, w.Close())
		}()
	}

	if dist.discrete != nil {
		sample := dist.discrete.SampleN(cfg.NumSamples)
		if w != nil {
			for _, v := range sample {
				if err = w.WriteInt(v); err != nil {
					return goodness.Summary{}, err
				}
			}
		}
		return goodness.Summarize(sample), nil
	}

	sample := dist.continuous.SampleN(cfg.NumSamples)
	if w != nil {
		for _, v := range sample {
			if err = w.WriteFloat(v); err != nil {
				return goodness.Summary{}, err
			}
		}
	}
	return goodness.Summarize(sample), nil
}
