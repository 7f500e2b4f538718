package employee

// validate.go checks one raw CSV row against the employee schema.
//
// Rules run in a fixed order and the first failure wins:
//
//  1. required fields present and non-empty
//  2. birthday parseable and not in the future
//  3. salary a strictly positive integer
//  4. education in the allowed set
//  5. kids a non-negative integer (missing defaults to 0)
//  6. married boolean-interpretable
//
// Validation never panics on malformed input; it always returns a result.

import (
	"fmt"
	"strings"
	"time"

	"github.com/fabiandarga/employee-import/internal/csvio"
)

// Rejection pairs a raw row with the reason it was refused.
type Rejection struct {
	Line   int               `json:"line"`
	Row    map[string]string `json:"row"`
	Reason string            `json:"reason"`
}

// Validate checks a raw row and either returns the typed record or the
// first failing rule as an error.
func Validate(row csvio.Row) (Record, error) {
	for _, col := range requiredColumns {
		if row.Get(col) == "" {
			return Record{}, fmt.Errorf("missing required field %q", col)
		}
	}

	birthday, ok := parseDate(row.Get(ColBirthday))
	if !ok {
		return Record{}, fmt.Errorf("invalid birthday %q", row.Get(ColBirthday))
	}
	if birthday.After(today()) {
		return Record{}, fmt.Errorf("birthday %s is in the future", birthday.Format("2006-01-02"))
	}

	salary, ok := parseInt(row.Get(ColSalary))
	if !ok {
		return Record{}, fmt.Errorf("invalid salary %q", row.Get(ColSalary))
	}
	if salary <= 0 {
		return Record{}, fmt.Errorf("salary must be positive, got %d", salary)
	}

	education, ok := ParseEducation(row.Get(ColEducation))
	if !ok {
		return Record{}, fmt.Errorf("invalid education value %q, must be one of: %s",
			row.Get(ColEducation), allowedEducations())
	}

	kids := 0
	if raw := row.Get(ColKids); raw != "" {
		kids, ok = parseInt(raw)
		if !ok {
			return Record{}, fmt.Errorf("invalid kids count %q", raw)
		}
		if kids < 0 {
			return Record{}, fmt.Errorf("kids must not be negative, got %d", kids)
		}
	}

	married, ok := parseBool(row.Get(ColMarried))
	if !ok {
		return Record{}, fmt.Errorf("invalid married value %q, use true/false, yes/no or 1/0", row.Get(ColMarried))
	}

	return Record{
		FirstName: row.Get(ColFirstName),
		LastName:  row.Get(ColLastName),
		Birthday:  Date{birthday},
		Salary:    salary,
		Education: education,
		Married:   married,
		Kids:      kids,
	}, nil
}

// today returns the current date truncated to midnight UTC, so a birthday
// of today still passes.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func allowedEducations() string {
	names := make([]string, len(Educations))
	for i, e := range Educations {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
