package csvio

import (
	"strings"
	"testing"
)

func TestParseMapsRowsOntoHeader(t *testing.T) {
	doc, err := ParseString("name,city\nHans,Berlin\nAnna,Hamburg\n")
	if err != nil {
		t.Fatalf("ParseString() returned error: %v", err)
	}

	if len(doc.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(doc.Rows))
	}
	if got := doc.Rows[0].Get("name"); got != "Hans" {
		t.Errorf("row 0 name = %q, want Hans", got)
	}
	if got := doc.Rows[1].Get("city"); got != "Hamburg" {
		t.Errorf("row 1 city = %q, want Hamburg", got)
	}
	if doc.Rows[0].Line != 2 {
		t.Errorf("row 0 line = %d, want 2", doc.Rows[0].Line)
	}
}

func TestParseSkipsBOM(t *testing.T) {
	doc, err := ParseString("\xef\xbb\xbfname,city\nHans,Berlin\n")
	if err != nil {
		t.Fatalf("ParseString() returned error: %v", err)
	}
	if doc.Header[0] != "name" {
		t.Errorf("first header = %q, want name without BOM", doc.Header[0])
	}
}

func TestParseLowercasesHeader(t *testing.T) {
	doc, err := ParseString("Name,CITY\nHans,Berlin\n")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Header[0] != "name" || doc.Header[1] != "city" {
		t.Errorf("header = %v, want lowercased", doc.Header)
	}
	if got := doc.Rows[0].Get("City"); got != "Berlin" {
		t.Errorf("Get is not case-insensitive, got %q", got)
	}
}

func TestParseColumnCountMismatch(t *testing.T) {
	doc, err := ParseString("a,b,c\n1,2,3\n1,2\n1,2,3,4\n4,5,6\n")
	if err != nil {
		t.Fatalf("ParseString() returned error: %v", err)
	}

	if len(doc.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(doc.Rows))
	}
	if len(doc.Errors) != 2 {
		t.Fatalf("got %d row errors, want 2", len(doc.Errors))
	}
	if doc.Errors[0].Line != 3 || doc.Errors[1].Line != 4 {
		t.Errorf("error lines = %d, %d, want 3, 4", doc.Errors[0].Line, doc.Errors[1].Line)
	}
	for _, e := range doc.Errors {
		if !strings.Contains(e.Reason, "columns") {
			t.Errorf("reason = %q, want a column count complaint", e.Reason)
		}
	}
}

func TestParseBlankLines(t *testing.T) {
	doc, err := ParseString("a,b\n1,2\n\n   \n3,4\n\n")
	if err != nil {
		t.Fatalf("ParseString() returned error: %v", err)
	}
	if len(doc.Rows) != 2 {
		t.Errorf("got %d rows, want 2; blank lines must be skipped", len(doc.Rows))
	}
	if len(doc.Errors) != 0 {
		t.Errorf("got %d errors, want 0: %v", len(doc.Errors), doc.Errors)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := ParseString(""); err != ErrEmptyInput {
		t.Errorf("ParseString(\"\") error = %v, want ErrEmptyInput", err)
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{`="12345"`, "12345"},
		{"=SUM", "SUM"},
		{`"quoted"`, "quoted"},
		{"'quoted'", "quoted"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
