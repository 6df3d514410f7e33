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
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/aida-arbitrary/logger"
	"github.com/0xsoniclabs/aida-arbitrary/stochastic"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runWithConfig parses args for a command carrying all flags and returns the resulting config.
func runWithConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var (
		cfg    *Config
		cfgErr error
	)
	app := &cli.App{
		Name:     "test",
		HelpName: "test",
		Commands: []*cli.Command{{
			Name: "cmd",
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
				&utils.TrialsFlag,
				&utils.AlphaFlag,
				&logger.LogLevelFlag,
			},
			Action: func(ctx *cli.Context) error {
				cfg, cfgErr = NewConfig(ctx)
				return nil
			},
		}},
	}
	require.NoError(t, app.Run(append([]string{"test", "cmd"}, args...)))
	return cfg, cfgErr
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := runWithConfig(t)
	require.NoError(t, err)
	assert.Equal(t, "cmd", cfg.CommandName)
	assert.Nil(t, cfg.Support)
	assert.Nil(t, cfg.Weights)
	assert.False(t, cfg.Discrete)
	assert.True(t, cfg.Trim)
	assert.Equal(t, stochastic.DefaultTableSize, cfg.TableSize)
	assert.Equal(t, 10_000, cfg.NumSamples)
	assert.GreaterOrEqual(t, cfg.RandomSeed, int64(0))
	assert.Equal(t, stochastic.DefaultAlpha, cfg.Alpha)
	assert.Equal(t, "8080", cfg.Port)
}

func TestNewConfig_ExplicitFlags(t *testing.T) {
	cfg, err := runWithConfig(t,
		"--support", "1,2,3", "--weights", "1,2,3", "--discrete",
		"--no-trim", "--table-size", "64", "--random-seed", "7",
		"--generator", "xoshiro", "-n", "5", "--log", "debug")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, cfg.Support)
	assert.Equal(t, []float64{1, 2, 3}, cfg.Weights)
	assert.True(t, cfg.Discrete)
	assert.False(t, cfg.Trim)
	assert.Equal(t, 64, cfg.TableSize)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, "xoshiro", cfg.Generator)
	assert.Equal(t, 5, cfg.NumSamples)
	assert.Equal(t, "debug", cfg.LogLevel)

	xs, err := cfg.IntSupport()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, xs)

	rg, err := cfg.NewSource()
	require.NoError(t, err)
	assert.NotNil(t, rg)
}

func TestNewConfig_DistributionFileOverridesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n5,3\n"), 0644))

	cfg, err := runWithConfig(t, "--support", "7,8", "--distribution", path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5}, cfg.Support)
	assert.Equal(t, []float64{1, 3}, cfg.Weights)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := map[string][]string{
		"zero samples":             {"-n", "0"},
		"zero trials":              {"--trials", "0"},
		"alpha out of range":       {"--alpha", "1.5"},
		"unknown generator":        {"--generator", "dice"},
		"weights without support":  {"--weights", "1,2"},
		"discrete without support": {"--discrete"},
		"fractional discrete":      {"--discrete", "--support", "1,1.5"},
		"missing distribution":     {"--distribution", "/does/not/exist"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runWithConfig(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestConfig_IntSupportRejectsHugeValues(t *testing.T) {
	cfg := &Config{Support: []float64{0, 1e19}}
	_, err := cfg.IntSupport()
	assert.Error(t, err)

	for _, x := range []float64{math.Ldexp(1, 63), math.Inf(-1), math.NaN(), 0.5} {
		cfg = &Config{Support: []float64{x}}
		_, err = cfg.IntSupport()
		assert.Error(t, err, "support %v", x)
	}
}

func TestConfig_IntSupportAcceptsInt64Bounds(t *testing.T) {
	cfg := &Config{Support: []float64{math.MinInt64, -1, 0, math.Ldexp(1, 62)}}
	xs, err := cfg.IntSupport()
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MinInt64, -1, 0, 1 << 62}, xs)
}
