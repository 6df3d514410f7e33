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
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp() *cli.App {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&SampleCommand, &ValidateCommand, &VisualizeCommand, &ReportCommand}
	return app
}

func readSamples(t *testing.T, path string) []float64 {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if filepath.Ext(path) == ".gz" {
		r, err := gzip.NewReader(file)
		require.NoError(t, err)
		defer r.Close()
		scanner = bufio.NewScanner(r)
	}
	var values []float64
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		require.NoError(t, err)
		values = append(values, v)
	}
	require.NoError(t, scanner.Err())
	return values
}

func TestCmd_SampleContinuous(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "samples.txt")
	summary := filepath.Join(tmpDir, "summary.txt")
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.SupportFlag.Name, []float64{0, 10}).
		Flag(utils.NumSamplesFlag.Name, 500).
		Flag(utils.RandomSeedFlag.Name, int64(42)).
		Flag(utils.OutputFlag.Name, output).
		Flag(utils.SummaryFileFlag.Name, summary).
		Flag(utils.QuietFlag.Name, true).
		Build()

	// when
	err := newTestApp().Run(args)

	// then
	require.NoError(t, err)
	values := readSamples(t, output)
	require.Len(t, values, 500)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 10.0)
	}
	content, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Contains(t, string(content), "continuous samples")
}

func TestCmd_SampleDiscreteGzip(t *testing.T) {
	// given
	output := filepath.Join(t.TempDir(), "samples.txt.gz")
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.DiscreteFlag.Name, true).
		Flag(utils.SupportFlag.Name, []float64{-2, 0, 3}).
		Flag(utils.WeightsFlag.Name, []float64{1, 0, 2}).
		Flag(utils.NumSamplesFlag.Name, 1000).
		Flag(utils.RandomSeedFlag.Name, int64(7)).
		Flag(utils.OutputFlag.Name, output).
		Flag(utils.QuietFlag.Name, true).
		Build()

	// when
	err := newTestApp().Run(args)

	// then
	require.NoError(t, err)
	values := readSamples(t, output)
	require.Len(t, values, 1000)
	for _, v := range values {
		assert.Contains(t, []float64{-2, 3}, v)
	}
}

func TestCmd_SampleSameSeedIsReproducible(t *testing.T) {
	tmpDir := t.TempDir()
	run := func(name string) []float64 {
		output := filepath.Join(tmpDir, name)
		args := utils.NewArgs("test").
			Arg(SampleCommand.Name).
			Flag(utils.NumSamplesFlag.Name, 50).
			Flag(utils.RandomSeedFlag.Name, int64(3)).
			Flag(utils.GeneratorFlag.Name, statistics.MT19937Generator).
			Flag(utils.OutputFlag.Name, output).
			Flag(utils.QuietFlag.Name, true).
			Build()
		require.NoError(t, newTestApp().Run(args))
		return readSamples(t, output)
	}
	assert.Equal(t, run("a.txt"), run("b.txt"))
}

func TestCmd_SampleFromDistributionFile(t *testing.T) {
	tmpDir := t.TempDir()
	dist := filepath.Join(tmpDir, "dist.csv")
	require.NoError(t, os.WriteFile(dist, []byte("5,1\n"), 0644))
	output := filepath.Join(tmpDir, "samples.txt")
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.DiscreteFlag.Name, true).
		Flag(utils.DistributionFileFlag.Name, dist).
		Flag(utils.NumSamplesFlag.Name, 20).
		Flag(utils.OutputFlag.Name, output).
		Flag(utils.QuietFlag.Name, true).
		Build()

	require.NoError(t, newTestApp().Run(args))
	for _, v := range readSamples(t, output) {
		assert.Equal(t, 5.0, v)
	}
}

func TestCmd_SampleRejectsInvalidDistribution(t *testing.T) {
	tests := map[string]*utils.ArgsBuilder{
		"negative weight": utils.NewArgs("test").Arg(SampleCommand.Name).
			Flag(utils.SupportFlag.Name, []float64{0, 1}).
			Flag(utils.WeightsFlag.Name, []float64{1, -1}),
		"zero weights": utils.NewArgs("test").Arg(SampleCommand.Name).
			Flag(utils.DiscreteFlag.Name, true).
			Flag(utils.SupportFlag.Name, []float64{0, 1}).
			Flag(utils.WeightsFlag.Name, []float64{0, 0}),
		"unsorted": utils.NewArgs("test").Arg(SampleCommand.Name).
			Flag(utils.SupportFlag.Name, []float64{1, 0}),
		"table too small": utils.NewArgs("test").Arg(SampleCommand.Name).
			Flag(utils.TableSizeFlag.Name, 1),
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			err := newTestApp().Run(args.Flag(utils.QuietFlag.Name, true).Build())
			require.Error(t, err)
			assert.True(t, errors.Is(err, statistics.ErrValidation), "unexpected error %v", err)
		})
	}
}

func TestCmd_SampleRefusesExistingOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(output, nil, 0644))
	args := utils.NewArgs("test").
		Arg(SampleCommand.Name).
		Flag(utils.OutputFlag.Name, output).
		Flag(utils.QuietFlag.Name, true).
		Build()

	assert.Error(t, newTestApp().Run(args))
}
