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
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

const (
	TrialsTableCreate = `CREATE TABLE IF NOT EXISTS trials (
	run TEXT NOT NULL,
	trial INTEGER NOT NULL,
	test TEXT NOT NULL,
	statistic REAL,
	df REAL,
	p_value REAL,
	passed INTEGER
)`
	TrialsTableInsert = `INSERT INTO trials (run, trial, test, statistic, df, p_value, passed) VALUES (?, ?, ?, ?, ?, ?, ?)`
	trialsTableSelect = `SELECT run, trial, test, statistic, df, p_value, passed FROM trials ORDER BY run, trial`
)

// TrialRecord is one stored goodness-of-fit run.
type TrialRecord struct {
	Run       string  `db:"run"`
	Trial     int     `db:"trial"`
	Test      string  `db:"test"`
	Statistic float64 `db:"statistic"`
	DF        float64 `db:"df"`
	PValue    float64 `db:"p_value"`
	Passed    bool    `db:"passed"`
}

// Row returns the record in TrialsTableInsert column order.
func (r TrialRecord) Row() []any {
	return []any{r.Run, r.Trial, r.Test, r.Statistic, r.DF, r.PValue, r.Passed}
}

// ReadTrialRecords loads every stored run from the sqlite3 database conn.
func ReadTrialRecords(conn string) ([]TrialRecord, error) {
	db, err := sqlx.Open("sqlite3", conn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open connection to sqlite3 %s", conn)
	}
	defer db.Close()

	var records []TrialRecord
	if err = db.Select(&records, trialsTableSelect); err != nil {
		return nil, errors.Wrapf(err, "cannot read trials from %s", conn)
	}
	return records, nil
}
