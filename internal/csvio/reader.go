// Package csvio parses CSV text into raw, header-keyed rows.
//
// The parser is deliberately forgiving about the messy reality of
// user-provided CSV files:
//
//   - UTF-8 BOM (0xEF 0xBB 0xBF) from Windows programs is skipped
//   - Header matching is case-insensitive
//   - Trailing blank lines are ignored
//   - Excel formula prefixes (="value") and stray quotes are stripped
//
// Structural problems on a single line (wrong column count) are reported
// as per-row errors and never abort the rest of the batch.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one CSV data line, keyed by (lowercased) header column name.
type Row struct {
	Line   int               // 1-based line number in the input, header is line 1
	Fields map[string]string // column name -> cleaned raw value
}

// Get returns the cleaned value for a column, or "" if absent.
func (r Row) Get(column string) string {
	return r.Fields[strings.ToLower(column)]
}

// RowError describes a line that could not be mapped onto the header.
type RowError struct {
	Line   int
	Fields []string
	Reason string
}

// Document is the parse result: the normalized header, all mappable rows
// in input order, and structural errors in input order.
type Document struct {
	Header []string
	Rows   []Row
	Errors []RowError
}

// ErrEmptyInput is returned when the input contains no header line.
var ErrEmptyInput = errors.New("csv input is empty")

// ParseString parses CSV text. See Parse.
func ParseString(text string) (*Document, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads CSV data and maps every line onto the header columns.
// It fails only when no header can be read at all; anything wrong with an
// individual data line lands in Document.Errors instead.
func Parse(r io.Reader) (*Document, error) {
	cr := csv.NewReader(newBOMSkippingReader(r))
	cr.FieldsPerRecord = -1 // column count is checked per row below
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	doc := &Document{Header: make([]string, len(header))}
	for i, h := range header {
		doc.Header[i] = strings.ToLower(CleanCell(h))
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv keeps its position after a parse error, so
			// later lines are still read.
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			doc.Errors = append(doc.Errors, RowError{
				Line:   line,
				Reason: fmt.Sprintf("malformed csv line: %v", err),
			})
			continue
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		if len(record) != len(doc.Header) {
			doc.Errors = append(doc.Errors, RowError{
				Line:   line,
				Fields: record,
				Reason: fmt.Sprintf("expected %d columns, got %d", len(doc.Header), len(record)),
			})
			continue
		}

		fields := make(map[string]string, len(record))
		for i, cell := range record {
			fields[doc.Header[i]] = CleanCell(cell)
		}
		doc.Rows = append(doc.Rows, Row{Line: line, Fields: fields})
	}

	return doc, nil
}

// isBlank reports whether a record holds no data at all. encoding/csv
// already skips truly empty lines; this catches lines of bare separators.
func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// CleanCell removes common CSV artifacts from a cell value:
// trims whitespace, strips the Excel formula prefix (="...") and any
// surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}
