// Package employee defines the employee record schema and the row-level
// validation pipeline for CSV imports.
//
// A Record is only ever constructed by the validator, and only when every
// field satisfied its constraint. Partial records do not exist.
package employee

import (
	"strings"
	"time"
)

// Education is the closed set of accepted education levels.
type Education string

const (
	EducationNone        Education = "none"
	EducationHauptschule Education = "hauptschule"
	EducationRealschule  Education = "realschule"
	EducationAbitur      Education = "abitur"
	EducationBachelor    Education = "bachelor"
	EducationMaster      Education = "master"
)

// Educations lists the allowed education values.
var Educations = []Education{
	EducationNone,
	EducationHauptschule,
	EducationRealschule,
	EducationAbitur,
	EducationBachelor,
	EducationMaster,
}

// ParseEducation matches a raw value against the allowed set,
// case-insensitively.
func ParseEducation(s string) (Education, bool) {
	for _, e := range Educations {
		if strings.EqualFold(string(e), s) {
			return e, true
		}
	}
	return "", false
}

// Date is a calendar date (no time of day). It marshals as "2006-01-02".
type Date struct {
	time.Time
}

// MarshalJSON renders the date in ISO format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON parses an ISO date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Record is a fully validated, typed employee. Immutable once created;
// it carries no identity until storage assigns one on insert.
type Record struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Birthday  Date      `json:"birthday"`
	Salary    int       `json:"salary"`
	Education Education `json:"education"`
	Married   bool      `json:"married"`
	Kids      int       `json:"kids"`
}

// CSV column names, in template order. kids is the only optional column.
const (
	ColFirstName = "first_name"
	ColLastName  = "last_name"
	ColBirthday  = "birthday"
	ColSalary    = "salary"
	ColEducation = "education"
	ColMarried   = "married"
	ColKids      = "kids"
)

// Columns returns the CSV header columns in canonical order.
func Columns() []string {
	return []string{
		ColFirstName, ColLastName, ColBirthday,
		ColSalary, ColEducation, ColMarried, ColKids,
	}
}

// requiredColumns are checked for presence before any type coercion runs.
var requiredColumns = []string{
	ColFirstName, ColLastName, ColBirthday, ColSalary, ColEducation, ColMarried,
}
