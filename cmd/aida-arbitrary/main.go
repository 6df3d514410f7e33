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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/aida-arbitrary/cmd/aida-arbitrary/arbitrary"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "Aida Arbitrary Sampler",
		HelpName:  "aida-arbitrary",
		Usage:     "draw random samples from arbitrary continuous and discrete distributions",
		Copyright: "(c) 2025 Sonic Labs",
		Commands: []*cli.Command{
			&arbitrary.SampleCommand,
			&arbitrary.ValidateCommand,
			&arbitrary.VisualizeCommand,
			&arbitrary.ReportCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
