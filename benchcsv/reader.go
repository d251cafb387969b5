// Copyright 2023 The analysis-fp-oop Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A Reader reads benchmark measurements from a CSV stream.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next record and Row to retrieve it. The first Scan consumes the
// header line, which must name the script, time_taken and
// memory_usage columns in any order.
type Reader struct {
	cr       *csv.Reader
	fileName string
	lineNum  int   // physical line of the current record's first field
	err      error // sticky I/O or header error

	row    Row
	rowErr error

	// Column indexes resolved from the header.
	scriptCol, timeCol, memCol int
	header                     bool
}

// SyntaxError represents a malformed record on a particular line of a
// measurement file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noRow = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader that parses the measurement CSV from
// r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.cr = csv.NewReader(ior)
	// Header length fixes the record length.
	r.cr.FieldsPerRecord = 0
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.rowErr = noRow
	r.header = false
	r.row = Row{}
}

// Scan advances the reader to the next measurement and reports
// whether one was read. The caller should use the Row method to get
// the measurement. If an I/O error occurs, or this reaches the end of
// the input, it returns false and the caller should use the Err
// method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.header {
		if !r.readHeader() {
			return false
		}
	}

	rec, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	// Quoted fields may span lines, so count physical lines
	// rather than records.
	r.lineNum, _ = r.cr.FieldPos(0)

	r.rowErr = r.parseRecord(rec)
	return true
}

func (r *Reader) readHeader() bool {
	rec, err := r.cr.Read()
	if err == io.EOF {
		r.err = &SyntaxError{r.fileName, 1, "missing header"}
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	r.lineNum, _ = r.cr.FieldPos(0)

	r.scriptCol, r.timeCol, r.memCol = -1, -1, -1
	for i, name := range rec {
		switch name {
		case scriptColumn:
			r.scriptCol = i
		case AttrTimeTaken:
			r.timeCol = i
		case AttrMemoryUsage:
			r.memCol = i
		}
	}
	for _, col := range []struct {
		name string
		pos  int
	}{
		{scriptColumn, r.scriptCol},
		{AttrTimeTaken, r.timeCol},
		{AttrMemoryUsage, r.memCol},
	} {
		if col.pos < 0 {
			r.err = &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("missing %q column", col.name)}
			return false
		}
	}
	r.header = true
	return true
}

func (r *Reader) parseRecord(rec []string) error {
	r.row = Row{Script: rec[r.scriptCol]}

	var err error
	r.row.TimeTaken, err = strconv.ParseFloat(rec[r.timeCol], 64)
	if err != nil {
		return &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("malformed %s value %q", AttrTimeTaken, rec[r.timeCol])}
	}
	r.row.MemoryUsage, err = strconv.ParseFloat(rec[r.memCol], 64)
	if err != nil {
		return &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("malformed %s value %q", AttrMemoryUsage, rec[r.memCol])}
	}
	return nil
}

// Row returns the measurement read by the last call to Scan.
func (r *Reader) Row() (Row, error) {
	return r.row, r.rowErr
}

// Err returns the I/O or header error that stopped Scan, if any.
func (r *Reader) Err() error {
	return r.err
}

// ReadTable loads every measurement from ior into a Table. Unlike the
// streaming Reader, it fails on the first malformed record.
func ReadTable(ior io.Reader, fileName string) (*Table, error) {
	r := NewReader(ior, fileName)
	table := new(Table)
	for r.Scan() {
		row, err := r.Row()
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// ReadFile loads the measurement file at path into a Table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f, path)
}
