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
	"fmt"

	"github.com/0xsoniclabs/aida-arbitrary/stochastic/statistics/goodness"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryTable renders descriptive statistics of a sample.
func SummaryTable(title string, s goodness.Summary) string {
	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"samples", s.N},
		{"mean", formatFloat(s.Mean)},
		{"variance", formatFloat(s.Variance)},
		{"std dev", formatFloat(s.StdDev)},
		{"min", formatFloat(s.Min)},
		{"q1", formatFloat(s.Q1)},
		{"median", formatFloat(s.Median)},
		{"q3", formatFloat(s.Q3)},
		{"max", formatFloat(s.Max)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return t.Render()
}

// TrialsTable renders the outcome of repeated goodness-of-fit runs.
func TrialsTable(test string, res goodness.Trials) string {
	verdict := "PASS"
	if !res.Passed(res.Alpha) {
		verdict = "FAIL"
	}
	t := table.NewWriter()
	t.SetTitle(test + " goodness of fit")
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Trials", "Alpha", "Rejected", "Rate", "P-Value", "Verdict"})
	t.AppendRow(table.Row{
		res.Trials,
		formatFloat(res.Alpha),
		res.Failures,
		formatFloat(res.FailureRate()),
		formatFloat(res.PValue),
		verdict,
	})
	return t.Render()
}

// TrialRecordsTable renders stored goodness-of-fit runs.
func TrialRecordsTable(records []TrialRecord) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Trial", "Test", "Statistic", "DF", "P-Value", "Passed"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Run, r.Trial, r.Test, formatFloat(r.Statistic), r.DF, formatFloat(r.PValue), r.Passed})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "total", len(records)})
	return t.Render()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
