package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"staffdesk/internal/domain/employees"
)

// formField ties a flag to the JSON column it fills.
type formField struct {
	flag   string
	column string
	usage  string
}

var formFields = []formField{
	{flag: "first-name", column: "FIRST_NAME", usage: "first name"},
	{flag: "last-name", column: "LAST_NAME", usage: "last name"},
	{flag: "email", column: "EMAIL", usage: "email address"},
	{flag: "phone", column: "PHONE_NUMBER", usage: "phone number"},
	{flag: "hire-date", column: "HIRE_DATE", usage: "hire date, YYYY-MM-DD"},
	{flag: "job-id", column: "JOB_ID", usage: "job id"},
	{flag: "salary", column: "SALARY", usage: "salary"},
	{flag: "commission", column: "COMMISSION_PCT", usage: "commission between 0 and 1"},
	{flag: "manager-id", column: "MANAGER_ID", usage: "manager's employee id"},
	{flag: "department-id", column: "DEPARTMENT_ID", usage: "department id"},
}

type employeeForm struct {
	values map[string]*string
}

// bindForm registers one string flag per column. withID adds --id for
// create, where the caller chooses the key.
func bindForm(fs *flag.FlagSet, withID bool) *employeeForm {
	form := &employeeForm{values: map[string]*string{}}
	if withID {
		form.values["EMPLOYEE_ID"] = fs.String("id", "", "employee id")
	}
	for _, field := range formFields {
		form.values[field.column] = fs.String(field.flag, "", field.usage)
	}
	return form
}

// employee overlays the flags that were set on base. Values go through the
// same JSON decoding the API applies, so "" clears an optional field.
func (f *employeeForm) employee(fs *flag.FlagSet, base employees.Employee) (employees.Employee, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return employees.Employee{}, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return employees.Employee{}, err
	}

	if value, ok := f.values["EMPLOYEE_ID"]; ok && fs.Changed("id") {
		fields["EMPLOYEE_ID"] = *value
	}
	for _, field := range formFields {
		if fs.Changed(field.flag) {
			fields[field.column] = *f.values[field.column]
		}
	}

	raw, err = json.Marshal(fields)
	if err != nil {
		return employees.Employee{}, err
	}
	var out employees.Employee
	if err := json.Unmarshal(raw, &out); err != nil {
		return employees.Employee{}, fmt.Errorf("invalid employee: %w", err)
	}
	return out.Normalized(), nil
}

func parseID(value string) (employees.ID, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", value)
	}
	return employees.ID(parsed), nil
}

func tableRows(list []employees.Employee) [][]string {
	rows := [][]string{{"ID", "Name", "Email", "Phone", "Hired", "Job", "Salary"}}
	for _, emp := range list {
		rows = append(rows, []string{
			emp.EmployeeID.String(),
			emp.DisplayName(),
			emp.Email,
			employees.StringValue(emp.PhoneNumber),
			emp.HireDate.String(),
			emp.JobID,
			emp.Salary.Text(),
		})
	}
	return rows
}

func detailRows(emp employees.Employee) [][]string {
	manager, department := "", ""
	if emp.ManagerID.Valid {
		manager = strconv.FormatInt(emp.ManagerID.Int64, 10)
	}
	if emp.DepartmentID.Valid {
		department = strconv.FormatInt(emp.DepartmentID.Int64, 10)
	}
	return [][]string{
		{"Employee ID", emp.EmployeeID.String()},
		{"First name", employees.StringValue(emp.FirstName)},
		{"Last name", emp.LastName},
		{"Email", emp.Email},
		{"Phone", employees.StringValue(emp.PhoneNumber)},
		{"Hire date", emp.HireDate.String()},
		{"Job", emp.JobID},
		{"Salary", emp.Salary.Text()},
		{"Commission", emp.CommissionPct.Text()},
		{"Manager", manager},
		{"Department", department},
	}
}
