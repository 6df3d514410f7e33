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
	"github.com/0xsoniclabs/aida-arbitrary/logger"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/visualizer"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand serves diagnostic charts of a sampler.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "draw samples and show them in a local web server",
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
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command draws --num-samples values and serves a histogram, the
empirical CDF and, for discrete distributions, the alias table on --port.`,
}

func visualizeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	dist, err := newDistribution(cfg)
	if err != nil {
		return err
	}
	view := &visualizer.View{Title: dist.kind() + " distribution"}
	if dist.discrete != nil {
		view.Discrete = dist.discrete
		view.DiscreteSample = dist.discrete.SampleN(cfg.NumSamples)
	} else {
		view.Continuous = dist.continuous
		view.ContinuousSample = dist.continuous.SampleN(cfg.NumSamples)
	}

	log.Noticef("Open web browser with http://localhost:%v", cfg.Port)
	log.Notice("Cancel with ^C")
	return visualizer.FireUpWeb(view, cfg.Port)
}
