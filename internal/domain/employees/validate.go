package employees

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Column limits of the employees table.
const (
	maxFirstNameLen = 20
	maxLastNameLen  = 25
	maxEmailLen     = 100
	maxPhoneLen     = 20
	maxJobIDLen     = 10
	decimalScale    = 2
)

var commissionCeiling = decimal.NewFromInt(1)

// NUMERIC(8,2) holds six integer digits.
var salaryCeiling = decimal.NewFromInt(1_000_000)

// ValidateCreate checks the NOT NULL columns of a new row, including the
// client supplied primary key.
func ValidateCreate(e Employee) error {
	v := &ValidationError{}
	if e.EmployeeID <= 0 {
		v.add("EMPLOYEE_ID", "is required")
	}
	validateColumns(v, e)
	return v.orNil()
}

// ValidateUpdate checks every replaceable column. The key comes from the path.
func ValidateUpdate(e Employee) error {
	v := &ValidationError{}
	validateColumns(v, e)
	return v.orNil()
}

func validateColumns(v *ValidationError, e Employee) {
	v.required("LAST_NAME", e.LastName)
	v.required("EMAIL", e.Email)
	if e.HireDate.IsZero() {
		v.add("HIRE_DATE", "is required")
	}
	v.required("JOB_ID", e.JobID)

	v.maxLen("FIRST_NAME", StringValue(e.FirstName), maxFirstNameLen)
	v.maxLen("LAST_NAME", e.LastName, maxLastNameLen)
	v.maxLen("EMAIL", e.Email, maxEmailLen)
	v.maxLen("PHONE_NUMBER", StringValue(e.PhoneNumber), maxPhoneLen)
	v.maxLen("JOB_ID", e.JobID, maxJobIDLen)

	if e.CommissionPct.Valid {
		pct := e.CommissionPct.Decimal
		if pct.IsNegative() || pct.GreaterThan(commissionCeiling) {
			v.add("COMMISSION_PCT", "must be between 0 and 1")
		}
		v.scale("COMMISSION_PCT", pct)
	}
	if e.Salary.Valid {
		salary := e.Salary.Decimal
		if salary.IsNegative() {
			v.add("SALARY", "must not be negative")
		}
		if salary.GreaterThanOrEqual(salaryCeiling) {
			v.add("SALARY", "must be less than "+salaryCeiling.String())
		}
		v.scale("SALARY", salary)
	}
}

func (e *ValidationError) maxLen(field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		e.add(field, fmt.Sprintf("must be at most %d characters", limit))
	}
}

// scale rejects values the column would round.
func (e *ValidationError) scale(field string, value decimal.Decimal) {
	if !value.Equal(value.Round(decimalScale)) {
		e.add(field, fmt.Sprintf("must have at most %d decimal places", decimalScale))
	}
}
