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
	"fmt"
	"time"

	"github.com/0xsoniclabs/aida-arbitrary/config"
	"github.com/0xsoniclabs/aida-arbitrary/logger"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/continuous"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/goodness"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ErrFitRejected is returned when the repeated goodness-of-fit runs reject the sampler.
var ErrFitRejected = errors.New("samples do not follow the configured distribution")

// ValidateCommand checks a sampler with repeated goodness-of-fit tests.
var ValidateCommand = cli.Command{
	Action:    validateAction,
	Name:      "validate",
	Usage:     "check that samples follow the configured distribution",
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
		&utils.TrialsFlag,
		&utils.AlphaFlag,
		&utils.ReportDbFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The validate command draws --trials independent batches of --num-samples values.
Discrete batches are checked with a chi-square test, continuous batches with a
Kolmogorov-Smirnov test against the configured piecewise linear CDF. The number
of batches rejected at level --alpha is compared with its binomial expectation.`,
}

func validateAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Validate")

	dist, err := newDistribution(cfg)
	if err != nil {
		return err
	}
	test := testName(dist)
	log.Infof("Run %d %s trials with %d samples each", cfg.Trials, test, cfg.NumSamples)

	run := fmt.Sprintf("%s/seed=%d", time.Now().UTC().Format(time.RFC3339), cfg.RandomSeed)
	var records []utils.TrialRecord
	trial, err := dist.trialFunc(cfg)
	if err != nil {
		return err
	}
	res, err := goodness.RepeatedTrials(cfg.Trials, cfg.Alpha, func() (goodness.Result, error) {
		r, err := trial()
		if err != nil {
			return r, err
		}
		records = append(records, utils.TrialRecord{
			Run:       run,
			Trial:     len(records),
			Test:      test,
			Statistic: r.Statistic,
			DF:        r.DF,
			PValue:    r.PValue,
			Passed:    r.Passed(cfg.Alpha),
		})
		log.Debugf("Trial %d: statistic %v, p-value %v", len(records)-1, r.Statistic, r.PValue)
		return r, nil
	})
	if err != nil {
		return err
	}

	printers, err := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, func() string { return utils.TrialsTable(test, res) }).
		AddPrinterToSqlite3(cfg.ReportDb, utils.TrialsTableCreate, utils.TrialsTableInsert, func() [][]any {
			rows := make([][]any, len(records))
			for i, r := range records {
				rows[i] = r.Row()
			}
			return rows
		})
	if err != nil {
		return err
	}
	defer printers.Close()
	if err = printers.Print(); err != nil {
		return err
	}

	if !res.Passed(cfg.Alpha) {
		log.Errorf("%d of %d trials rejected (p-value %v)", res.Failures, res.Trials, res.PValue)
		return errors.Wrapf(ErrFitRejected, "%d of %d trials rejected", res.Failures, res.Trials)
	}
	log.Noticef("%d of %d trials rejected, consistent with alpha %v", res.Failures, res.Trials, cfg.Alpha)
	return nil
}

func testName(d *distribution) string {
	if d.discrete != nil {
		return "chi-square"
	}
	return "kolmogorov-smirnov"
}

// trialFunc returns a function drawing one batch and testing it against the configuration.
func (d *distribution) trialFunc(cfg *config.Config) (func() (goodness.Result, error), error) {
	if d.discrete != nil {
		p := cfg.Weights
		if p == nil {
			p = statistics.UniformWeights(len(d.support))
		}
		return func() (goodness.Result, error) {
			return goodness.ChiSquare(d.support, p, d.discrete.SampleN(cfg.NumSamples))
		}, nil
	}
	points := d.continuous.Points()
	if err := continuous.Check(points); err != nil {
		return nil, errors.Wrap(err, "invalid reference CDF")
	}
	cdf := func(x float64) float64 {
		return continuous.CDF(points, x)
	}
	return func() (goodness.Result, error) {
		return goodness.KolmogorovSmirnov(cdf, d.continuous.SampleN(cfg.NumSamples))
	}, nil
}
