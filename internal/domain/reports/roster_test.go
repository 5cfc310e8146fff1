package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"staffdesk/internal/domain/employees"
)

func TestWriteRosterPDF(t *testing.T) {
	first := "Zoë"
	list := []employees.Employee{
		{
			EmployeeID: 100,
			FirstName:  &first,
			LastName:   "Doe",
			Email:      "d@x.com",
			HireDate:   employees.NewDate(2024, 1, 1),
			JobID:      "ENG",
			Salary:     employees.NewNullDecimal(decimal.NewFromInt(4200)),
		},
		{EmployeeID: 101, LastName: "Roe", Email: "r@x.com", HireDate: employees.NewDate(2023, 5, 2), JobID: "OPS"},
	}

	var buf bytes.Buffer
	if err := WriteRosterPDF(&buf, list, time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)); err != nil {
		t.Fatalf("render roster: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:8])
	}
}

func TestWriteRosterPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRosterPDF(&buf, nil, time.Now()); err != nil {
		t.Fatalf("render empty roster: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected a document for an empty roster")
	}
}
