package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"staffdesk/internal/domain/employees"
)

type rosterColumn struct {
	title string
	width float64
	value func(employees.Employee) string
}

var rosterColumns = []rosterColumn{
	{title: "ID", width: 16, value: func(e employees.Employee) string { return e.EmployeeID.String() }},
	{title: "Name", width: 48, value: employees.Employee.DisplayName},
	{title: "Email", width: 52, value: func(e employees.Employee) string { return e.Email }},
	{title: "Job", width: 24, value: func(e employees.Employee) string { return e.JobID }},
	{title: "Hired", width: 24, value: func(e employees.Employee) string { return e.HireDate.String() }},
	{title: "Salary", width: 26, value: func(e employees.Employee) string { return e.Salary.Text() }},
}

// WriteRosterPDF renders the employee list as an A4 landscape table.
func WriteRosterPDF(w io.Writer, list []employees.Employee, generatedAt time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Employee roster", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Employee roster")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d employee(s)", generatedAt.UTC().Format("2006-01-02 15:04 MST"), len(list)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(226, 232, 240)
	for _, col := range rosterColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, emp := range list {
		for _, col := range rosterColumns {
			pdf.CellFormat(col.width, 7, tr(col.value(emp)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
