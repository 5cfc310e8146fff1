package employees

import "strings"

// Employee mirrors one row of the employees table. JSON keys are the column
// names and must not change; clients decode by exact key.
type Employee struct {
	EmployeeID    ID          `json:"EMPLOYEE_ID"`
	FirstName     *string     `json:"FIRST_NAME"`
	LastName      string      `json:"LAST_NAME"`
	Email         string      `json:"EMAIL"`
	PhoneNumber   *string     `json:"PHONE_NUMBER"`
	HireDate      Date        `json:"HIRE_DATE"`
	JobID         string      `json:"JOB_ID"`
	Salary        NullDecimal `json:"SALARY"`
	CommissionPct NullDecimal `json:"COMMISSION_PCT"`
	ManagerID     NullInt     `json:"MANAGER_ID"`
	DepartmentID  NullInt     `json:"DEPARTMENT_ID"`
}

// Normalized returns a copy with blank optional text fields cleared so they
// persist as NULL.
func (e Employee) Normalized() Employee {
	e.FirstName = blankToNil(e.FirstName)
	e.PhoneNumber = blankToNil(e.PhoneNumber)
	return e
}

// DisplayName is "First Last", or just the last name when the first is absent.
func (e Employee) DisplayName() string {
	if e.FirstName == nil || *e.FirstName == "" {
		return e.LastName
	}
	return *e.FirstName + " " + e.LastName
}

func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func blankToNil(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
