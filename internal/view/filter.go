// Package view holds the client side copy of the employee list and the
// filter, sort and reconcile rules applied to it.
package view

import (
	"strings"

	"staffdesk/internal/domain/employees"
)

// Filter keeps records whose first name, last name, email, job id or
// employee id contains term, ignoring case. An empty term returns a copy of
// the whole list.
func Filter(records []employees.Employee, term string) []employees.Employee {
	out := make([]employees.Employee, 0, len(records))
	needle := strings.ToLower(term)
	if needle == "" {
		return append(out, records...)
	}
	for _, rec := range records {
		if matches(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec employees.Employee, needle string) bool {
	fields := [...]string{
		employees.StringValue(rec.FirstName),
		rec.LastName,
		rec.Email,
		rec.JobID,
		rec.EmployeeID.String(),
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
