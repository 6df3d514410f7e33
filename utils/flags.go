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

package utils

import (
	"strings"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
	"github.com/urfave/cli/v2"
)

var (
	SupportFlag = cli.Float64SliceFlag{
		Name:    "support",
		Aliases: []string{"x"},
		Usage:   "strictly increasing support points of the distribution (default: 0, 0.01, ..., 0.99)",
	}
	WeightsFlag = cli.Float64SliceFlag{
		Name:    "weights",
		Aliases: []string{"p"},
		Usage:   "non-negative weights, one per support point (default: uniform)",
	}
	DistributionFileFlag = cli.PathFlag{
		Name:    "distribution",
		Aliases: []string{"d"},
		Usage:   "file with one \"x,weight\" pair per line (optionally gzipped); overrides --support and --weights",
	}
	DiscreteFlag = cli.BoolFlag{
		Name:  "discrete",
		Usage: "sample integers with the alias method instead of a continuous density",
	}
	TableSizeFlag = cli.IntFlag{
		Name:  "table-size",
		Usage: "number of entries of the inverse CDF lookup table",
		Value: stochastic.DefaultTableSize,
	}
	NoTrimFlag = cli.BoolFlag{
		Name:  "no-trim",
		Usage: "keep continuous samples that fall outside [min x, max x)",
	}
	NumSamplesFlag = cli.IntFlag{
		Name:    "num-samples",
		Aliases: []string{"n"},
		Usage:   "number of samples to draw",
		Value:   10_000,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the random generator (default: time-based)",
		Value: -1,
	}
	GeneratorFlag = cli.StringFlag{
		Name:  "generator",
		Usage: "uniform random generator, one of " + strings.Join(statistics.Generators(), ", "),
		Value: statistics.DefaultGenerator,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write samples to the given file, gzip compressed if it ends with .gz (default: none)",
	}
	SummaryFileFlag = cli.PathFlag{
		Name:  "summary-file",
		Usage: "append the summary table to the given file",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "do not print the summary to the console",
	}
	TrialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of independent goodness-of-fit runs",
		Value: 100,
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level of each goodness-of-fit run",
		Value: stochastic.DefaultAlpha,
	}
	ReportDbFlag = cli.PathFlag{
		Name:  "report-db",
		Usage: "sqlite3 database to store the results of goodness-of-fit runs",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port of the diagnostic web server",
		Value: "8080",
	}
)
