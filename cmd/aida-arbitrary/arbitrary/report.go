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

	"github.com/0xsoniclabs/aida-arbitrary/logger"
	"github.com/0xsoniclabs/aida-arbitrary/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ReportCommand prints goodness-of-fit runs stored by the validate command.
var ReportCommand = cli.Command{
	Action:    reportAction,
	Name:      "report",
	Usage:     "print stored goodness-of-fit runs",
	ArgsUsage: "<report-db>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
	},
}

func reportAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errors.New("report command requires exactly one argument: the report database")
	}
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Report")

	conn := ctx.Args().First()
	records, err := utils.ReadTrialRecords(conn)
	if err != nil {
		return err
	}
	log.Infof("Read %d trials from %v", len(records), conn)
	_, err = fmt.Fprintln(ctx.App.Writer, utils.TrialRecordsTable(records))
	return err
}
