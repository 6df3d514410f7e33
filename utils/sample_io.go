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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// SampleWriter stores drawn samples as text, one value per line.
type SampleWriter interface {
	WriteFloat(v float64) error
	WriteInt(v int64) error
	Close() error
}

type sampleWriter struct {
	buffer  *bufio.Writer
	closers []io.Closer
	scratch []byte
}

// NewSampleWriter creates filename for writing. The content is gzip
// compressed when the name ends with ".gz". Existing files are not overwritten.
func NewSampleWriter(filename string) (SampleWriter, error) {
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return nil, errors.Newf("file %s already exists", filename)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %s", filename)
	}
	if !isGzip(filename) {
		return &sampleWriter{buffer: bufio.NewWriter(file), closers: []io.Closer{file}}, nil
	}
	gzipWriter := gzip.NewWriter(file)
	return &sampleWriter{
		buffer: bufio.NewWriter(gzipWriter),
		// gzip stream must be finished before the file is closed
		closers: []io.Closer{gzipWriter, file},
	}, nil
}

func (w *sampleWriter) WriteFloat(v float64) error {
	w.scratch = strconv.AppendFloat(w.scratch[:0], v, 'g', -1, 64)
	return w.writeLine()
}

func (w *sampleWriter) WriteInt(v int64) error {
	w.scratch = strconv.AppendInt(w.scratch[:0], v, 10)
	return w.writeLine()
}

func (w *sampleWriter) writeLine() error {
	w.scratch = append(w.scratch, '\n')
	if _, err := w.buffer.Write(w.scratch); err != nil {
		return errors.Wrap(err, "error writing sample to buffer")
	}
	return nil
}

func (w *sampleWriter) Close() error {
	err := w.buffer.Flush()
	for _, c := range w.closers {
		err = errors.CombineErrors(err, c.Close())
	}
	return err
}

// ReadDistribution parses a distribution file. Every non-empty line not
// starting with '#' holds a support point and optionally its weight,
// separated by a comma or white space. A missing weight counts as 1.
func ReadDistribution(filename string) (x []float64, p []float64, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot open %s", filename)
	}
	defer func() {
		err = errors.CombineErrors(err, file.Close())
	}()

	var r io.Reader = file
	if isGzip(filename) {
		var gzipReader *gzip.Reader
		if gzipReader, err = gzip.NewReader(file); err != nil {
			return nil, nil, errors.Wrapf(err, "cannot decompress %s", filename)
		}
		defer func() {
			err = errors.CombineErrors(err, gzipReader.Close())
		}()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == ';'
		})
		if len(fields) == 0 || len(fields) > 2 {
			return nil, nil, errors.Newf("%s:%d: expected \"x,weight\", got %q", filename, line, text)
		}
		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s:%d: invalid support point", filename, line)
		}
		pv := 1.0
		if len(fields) == 2 {
			if pv, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, nil, errors.Wrapf(err, "%s:%d: invalid weight", filename, line)
			}
		}
		x = append(x, xv)
		p = append(p, pv)
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "cannot read %s", filename)
	}
	if len(x) == 0 {
		return nil, nil, errors.Newf("%s contains no support points", filename)
	}
	return x, p, nil
}

func isGzip(filename string) bool {
	return strings.HasSuffix(filename, ".gz")
}
