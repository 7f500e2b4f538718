package employee

// batch.go applies the row validator to a whole CSV document. It adds no
// cross-row rules: every row is judged on its own, and row order is
// preserved in both partitions.

import (
	"fmt"
	"strings"

	"github.com/fabiandarga/employee-import/internal/csvio"
)

// Result partitions one CSV batch into accepted records and rejections,
// each in original row order.
type Result struct {
	Records    []Record    `json:"records"`
	Rejections []Rejection `json:"rejections"`
}

// Process parses CSV text and validates every row. It returns an error
// only when the input has no usable header; everything row-level becomes
// a Rejection.
func Process(csvText string) (Result, error) {
	doc, err := csvio.ParseString(csvText)
	if err != nil {
		return Result{}, err
	}
	if err := checkHeader(doc.Header); err != nil {
		return Result{}, err
	}

	result := Result{
		Records:    []Record{},
		Rejections: []Rejection{},
	}

	for _, rowErr := range doc.Errors {
		result.Rejections = append(result.Rejections, Rejection{
			Line:   rowErr.Line,
			Row:    rawFields(rowErr.Fields, doc.Header),
			Reason: rowErr.Reason,
		})
	}

	for _, row := range doc.Rows {
		rec, err := Validate(row)
		if err != nil {
			result.Rejections = append(result.Rejections, Rejection{
				Line:   row.Line,
				Row:    row.Fields,
				Reason: err.Error(),
			})
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// checkHeader verifies all required columns exist in the header. A header
// missing a required column would reject every row with the same reason,
// so it is reported once, up front.
func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// rawFields maps what cells exist onto header names, for rejection
// payloads of structurally broken rows.
func rawFields(cells, header []string) map[string]string {
	if len(cells) == 0 {
		return nil
	}
	fields := make(map[string]string, len(cells))
	for i, cell := range cells {
		if i < len(header) {
			fields[header[i]] = cell
		} else {
			fields[fmt.Sprintf("column_%d", i+1)] = cell
		}
	}
	return fields
}
