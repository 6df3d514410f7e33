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
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
)

// Printer is a utility class to output data from the system
//
//go:generate mockgen -source print.go -destination print_mock.go -package utils
type Printer interface {
	Print() error
	Close()
}

// Printers fans a single report out to several destinations.
type Printers struct {
	printers []Printer
}

func NewPrinters() *Printers {
	return &Printers{[]Printer{}}
}

// Print invokes every printer; all failures are returned together.
func (ps *Printers) Print() error {
	var err error
	for _, p := range ps.printers {
		if e := p.Print(); e != nil {
			err = errors.CombineErrors(err, e)
		}
	}
	return err
}

func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

// PrinterToWriter writes the string produced by f to any io.Writer.
type PrinterToWriter struct {
	w io.Writer
	f func() string
}

func NewPrinterToWriter(w io.Writer, f func() string) *PrinterToWriter {
	return &PrinterToWriter{w, f}
}

func NewPrinterToConsole(f func() string) *PrinterToWriter {
	return &PrinterToWriter{os.Stdout, f}
}

func (p *PrinterToWriter) Print() error {
	_, err := fmt.Fprintln(p.w, p.f())
	return err
}

func (p *PrinterToWriter) Close() {}

func (ps *Printers) AddPrinterToWriter(w io.Writer, f func() string) *Printers {
	return ps.AddPrinter(NewPrinterToWriter(w, f))
}

func (ps *Printers) AddPrinterToConsole(isDisabled bool, f func() string) *Printers {
	if isDisabled {
		return ps
	}
	return ps.AddPrinter(NewPrinterToConsole(f))
}

// PrinterToFile appends the string produced by f to a file.
type PrinterToFile struct {
	filepath string
	f        func() string
}

func NewPrinterToFile(filepath string, f func() string) *PrinterToFile {
	return &PrinterToFile{filepath, f}
}

func (p *PrinterToFile) Print() (err error) {
	file, err := os.OpenFile(p.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to print to file %s", p.filepath)
	}
	defer func() {
		if e := file.Close(); e != nil {
			err = errors.CombineErrors(err, e)
		}
	}()
	_, err = file.WriteString(p.f())
	return err
}

func (p *PrinterToFile) Close() {}

func (ps *Printers) AddPrinterToFile(filepath string, f func() string) *Printers {
	if filepath != "" {
		ps.AddPrinter(NewPrinterToFile(filepath, f))
	}
	return ps
}

// PrinterToDb inserts the rows produced by f in a single transaction.
type PrinterToDb struct {
	db     *sql.DB
	insert string
	f      func() [][]any
}

func (p *PrinterToDb) Print() (err error) {
	tx, err := p.db.Begin()
	if err != nil {
		return errors.Wrap(err, "unable to begin a transaction")
	}
	stmt, err := tx.Prepare(p.insert)
	if err != nil {
		return errors.CombineErrors(errors.Wrapf(err, "unable to prepare statement %s", p.insert), tx.Rollback())
	}
	defer func() {
		if e := stmt.Close(); e != nil {
			err = errors.CombineErrors(err, e)
		}
	}()

	for _, row := range p.f() {
		if _, err = stmt.Exec(row...); err != nil {
			return errors.CombineErrors(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

func (p *PrinterToDb) Close() {
	if err := p.db.Close(); err != nil {
		panic(err)
	}
}

// NewPrinterToSqlite3 opens (or creates) the sqlite3 database conn, runs the
// create statement and returns a printer inserting rows with insert.
func NewPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*PrinterToDb, error) {
	db, err := sql.Open("sqlite3", conn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open connection to sqlite3 %s", conn)
	}
	if _, err = db.Exec(create); err != nil {
		return nil, errors.CombineErrors(errors.Wrapf(err, "failed to create table on %s", conn), db.Close())
	}
	return &PrinterToDb{db, insert, f}, nil
}

// AddPrinterToSqlite3 registers a database printer; an empty conn disables it.
func (ps *Printers) AddPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*Printers, error) {
	if conn == "" {
		return ps, nil
	}
	p, err := NewPrinterToSqlite3(conn, create, insert, f)
	if err != nil {
		return ps, err
	}
	return ps.AddPrinter(p), nil
}
