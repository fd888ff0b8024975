// SPDX-License-Identifier: MIT

// Package matrix - text serialization of distance matrices.
//
// Formats:
//   - FormatWhitespace (PHYLIP-like): first line n, then n lines "label d1 ... dn".
//   - FormatCSV: header "taxon,L1,...,Ln", then n lines "Li,d1,...,dn".
//     Header labels must match the row labels in order.
package matrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects a text layout.
type Format int

const (
	// FormatWhitespace is the PHYLIP-like square layout.
	FormatWhitespace Format = iota
	// FormatCSV is a comma-separated table with a header row.
	FormatCSV
)

const csvCorner = "taxon"

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatWhitespace:
		return "whitespace"
	case FormatCSV:
		return "csv"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat maps "whitespace" / "phylip" / "csv" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whitespace", "phylip", "ws", "":
		return FormatWhitespace, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// ReadDistance parses a labelled matrix in the given format and validates it
// like FromRows.
func ReadDistance(r io.Reader, format Format, opts ...Option) (*DistanceMatrix, error) {
	var (
		labels []string
		rows   [][]float64
		err    error
	)
	switch format {
	case FormatWhitespace:
		labels, rows, err = readWhitespace(r)
	case FormatCSV:
		labels, rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	return FromRows(labels, rows, opts...)
}

func parseErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrParse)
}

func readWhitespace(r io.Reader) ([]string, [][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				return f, true
			}
		}

		return nil, false
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, nil, fmt.Errorf("read matrix: %w", err)
		}

		return nil, nil, parseErrorf(line, "missing taxon count")
	}
	n, err := strconv.Atoi(head[0])
	if err != nil || n <= 0 || len(head) != 1 {
		return nil, nil, parseErrorf(line, "bad taxon count %q", strings.Join(head, " "))
	}

	labels := make([]string, 0, n)
	rows := make([][]float64, 0, n)
	for len(rows) < n {
		f, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, nil, fmt.Errorf("read matrix: %w", err)
			}

			return nil, nil, parseErrorf(line, "expected %d rows, got %d", n, len(rows))
		}
		if len(f) != n+1 {
			return nil, nil, parseErrorf(line, "expected label and %d values, got %d fields", n, len(f))
		}
		row, err := parseRow(f[1:], line)
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, f[0])
		rows = append(rows, row)
	}
	if extra, ok := next(); ok {
		return nil, nil, parseErrorf(line, "trailing data %q", strings.Join(extra, " "))
	}

	return labels, rows, nil
}

func readCSV(r io.Reader) ([]string, [][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, nil, parseErrorf(pe.Line, "%v", pe.Err)
		}

		return nil, nil, fmt.Errorf("read matrix: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, parseErrorf(len(records), "need a header and at least one row")
	}

	header := records[0][1:]
	n := len(header)
	if len(records)-1 != n {
		return nil, nil, parseErrorf(len(records), "header names %d taxa, found %d rows", n, len(records)-1)
	}

	labels := make([]string, n)
	rows := make([][]float64, n)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != n+1 {
			return nil, nil, parseErrorf(line, "expected %d fields, got %d", n+1, len(rec))
		}
		if rec[0] != header[i] {
			return nil, nil, parseErrorf(line, "row label %q does not match header %q", rec[0], header[i])
		}
		row, err := parseRow(rec[1:], line)
		if err != nil {
			return nil, nil, err
		}
		labels[i] = rec[0]
		rows[i] = row
	}

	return labels, rows, nil
}

func parseRow(fields []string, line int) ([]float64, error) {
	row := make([]float64, len(fields))
	for j, s := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, parseErrorf(line, "value %q", s)
		}
		row[j] = v
	}

	return row, nil
}

// Write serializes dm in the given format. Values use the shortest
// representation that round-trips.
func (dm *DistanceMatrix) Write(w io.Writer, format Format) error {
	switch format {
	case FormatWhitespace:
		return dm.writeWhitespace(w)
	case FormatCSV:
		return dm.writeCSV(w)
	default:
		return fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (dm *DistanceMatrix) writeWhitespace(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := dm.Len()
	fmt.Fprintf(bw, "%d\n", n)
	for i := 0; i < n; i++ {
		bw.WriteString(dm.labels[i])
		for j := 0; j < n; j++ {
			bw.WriteByte(' ')
			bw.WriteString(formatValue(dm.dense.at(i, j)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func (dm *DistanceMatrix) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	n := dm.Len()
	header := append([]string{csvCorner}, dm.labels...)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, n+1)
	for i := 0; i < n; i++ {
		rec[0] = dm.labels[i]
		for j := 0; j < n; j++ {
			rec[j+1] = formatValue(dm.dense.at(i, j))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
