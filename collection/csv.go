// SPDX-License-Identifier: MIT

package collection

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSV layout: one row per vector, no header; column 0 is the row label,
// columns 1..D are the features.
const (
	csvComma     = ','
	csvPrecision = 2 // decimals written by WriteCSV
)

// ReadCSV parses a headerless delimited table into a Collection.
// Column 0 is kept as the row label; every other column must parse as a float.
//
// Errors:
//   - ErrMalformedCSV wrapped with line/column context for unparsable fields
//     or rows whose field count differs from the first row.
//   - Any construction error from NewWithLabels (ErrEmptyVector, ErrNaNInf).
//   - Underlying reader errors, wrapped.
//
// Complexity: O(N·D).
func ReadCSV(r io.Reader) (*Collection, error) {
	cr := csv.NewReader(r)
	cr.Comma = csvComma
	cr.FieldsPerRecord = -1 // field count is checked below to report ErrMalformedCSV
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		labels []string
		rows   [][]float64
		width  = -1
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("ReadCSV: line %d: %v: %w", pe.Line, pe.Err, ErrMalformedCSV)
			}
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		if width < 0 {
			width = len(rec)
		}
		if len(rec) != width {
			return nil, fmt.Errorf("ReadCSV: line %d has %d fields, want %d: %w", line, len(rec), width, ErrMalformedCSV)
		}

		row := make([]float64, len(rec)-1)
		for j := 1; j < len(rec); j++ {
			v, perr := strconv.ParseFloat(rec[j], 64)
			if perr != nil {
				return nil, fmt.Errorf("ReadCSV: line %d column %d: %q: %w", line, j+1, rec[j], ErrMalformedCSV)
			}
			row[j-1] = v
		}
		labels = append(labels, rec[0])
		rows = append(rows, row)
	}

	c, err := NewWithLabels(labels, rows)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return c, nil
}

// Load opens path and reads it with ReadCSV.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	c, err := ReadCSV(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return c, nil
}

// WriteCSV writes c as a headerless table: label, then every feature with
// two-decimal precision.
func WriteCSV(w io.Writer, c *Collection) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvComma

	rec := make([]string, c.Dim()+1)
	for i := 0; i < c.Len(); i++ {
		rec[0] = c.Label(i)
		for j, v := range c.RawRow(i) {
			rec[j+1] = strconv.FormatFloat(v, 'f', csvPrecision, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// Save writes c to path (created or truncated) with WriteCSV.
func Save(path string, c *Collection) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save(%s): %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = WriteCSV(bw, c); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}
