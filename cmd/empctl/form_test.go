package main

import (
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/domain/employees"
)

func TestFormBuildsNewEmployee(t *testing.T) {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	form := bindForm(fs, true)
	require.NoError(t, fs.Parse([]string{
		"--id", "100", "--last-name", "Doe", "--email", "d@x.com",
		"--hire-date", "2024-01-01", "--job-id", "ENG", "--salary", "5000", "--manager-id", "",
	}))

	emp, err := form.employee(fs, employees.Employee{})
	require.NoError(t, err)
	assert.Equal(t, employees.ID(100), emp.EmployeeID)
	assert.Equal(t, "Doe", emp.LastName)
	assert.Equal(t, "2024-01-01", emp.HireDate.String())
	assert.Equal(t, "5000", emp.Salary.Text())
	assert.False(t, emp.ManagerID.Valid)
	assert.Nil(t, emp.FirstName)
}

func TestFormEditKeepsUnsetFields(t *testing.T) {
	phone := "555"
	base := employees.Employee{
		EmployeeID:   7,
		LastName:     "Roe",
		Email:        "r@x.com",
		PhoneNumber:  &phone,
		HireDate:     employees.NewDate(2023, 3, 4),
		JobID:        "OPS",
		DepartmentID: employees.NewNullInt(60),
	}

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	form := bindForm(fs, false)
	require.NoError(t, fs.Parse([]string{"--last-name", "Smith", "--phone", "", "7"}))

	emp, err := form.employee(fs, base)
	require.NoError(t, err)
	assert.Equal(t, employees.ID(7), emp.EmployeeID)
	assert.Equal(t, "Smith", emp.LastName)
	assert.Nil(t, emp.PhoneNumber)
	assert.Equal(t, int64(60), emp.DepartmentID.Int64)
	assert.Equal(t, []string{"7"}, fs.Args())
}

func TestFormRejectsBadNumber(t *testing.T) {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	form := bindForm(fs, true)
	require.NoError(t, fs.Parse([]string{"--salary", "lots"}))

	_, err := form.employee(fs, employees.Employee{})
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, employees.ID(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestTableRowsHeader(t *testing.T) {
	rows := tableRows([]employees.Employee{{EmployeeID: 1, LastName: "Doe"}})
	require.Len(t, rows, 2)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
}
