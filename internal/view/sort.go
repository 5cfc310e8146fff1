package view

import (
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"staffdesk/internal/domain/employees"
)

// Column keys accepted by Sort. They match the JSON field names.
const (
	KeyEmployeeID    = "EMPLOYEE_ID"
	KeyFirstName     = "FIRST_NAME"
	KeyLastName      = "LAST_NAME"
	KeyEmail         = "EMAIL"
	KeyPhoneNumber   = "PHONE_NUMBER"
	KeyHireDate      = "HIRE_DATE"
	KeyJobID         = "JOB_ID"
	KeySalary        = "SALARY"
	KeyCommissionPct = "COMMISSION_PCT"
	KeyManagerID     = "MANAGER_ID"
	KeyDepartmentID  = "DEPARTMENT_ID"
)

// SortConfig selects the sort column and direction.
type SortConfig struct {
	Key  string
	Desc bool
}

func DefaultSortConfig() SortConfig {
	return SortConfig{Key: KeyFirstName}
}

// Toggle flips the direction when key is already selected, otherwise it
// switches to key ascending.
func (c SortConfig) Toggle(key string) SortConfig {
	if c.Key == key {
		return SortConfig{Key: key, Desc: !c.Desc}
	}
	return SortConfig{Key: key}
}

func (c SortConfig) Direction() string {
	if c.Desc {
		return "desc"
	}
	return "asc"
}

var numericKeys = map[string]func(employees.Employee) decimal.Decimal{
	KeyEmployeeID:   func(e employees.Employee) decimal.Decimal { return decimal.NewFromInt(int64(e.EmployeeID)) },
	KeySalary:       func(e employees.Employee) decimal.Decimal { return decimalOrZero(e.Salary) },
	KeyManagerID:    func(e employees.Employee) decimal.Decimal { return decimal.NewFromInt(e.ManagerID.Int64) },
	KeyDepartmentID: func(e employees.Employee) decimal.Decimal { return decimal.NewFromInt(e.DepartmentID.Int64) },
}

var textKeys = map[string]func(employees.Employee) string{
	KeyFirstName:     func(e employees.Employee) string { return employees.StringValue(e.FirstName) },
	KeyLastName:      func(e employees.Employee) string { return e.LastName },
	KeyEmail:         func(e employees.Employee) string { return e.Email },
	KeyPhoneNumber:   func(e employees.Employee) string { return employees.StringValue(e.PhoneNumber) },
	KeyHireDate:      func(e employees.Employee) string { return e.HireDate.String() },
	KeyJobID:         func(e employees.Employee) string { return e.JobID },
	KeyCommissionPct: func(e employees.Employee) string { return e.CommissionPct.Text() },
}

// IsSortKey reports whether key names a sortable column.
func IsSortKey(key string) bool {
	_, numeric := numericKeys[key]
	_, text := textKeys[key]
	return numeric || text
}

// Sort returns a sorted copy of records. Ties keep their input order in both
// directions. An unknown key leaves the order untouched.
func Sort(records []employees.Employee, cfg SortConfig) []employees.Employee {
	return SortWithLocale(records, cfg, language.English)
}

func SortWithLocale(records []employees.Employee, cfg SortConfig, tag language.Tag) []employees.Employee {
	out := slices.Clone(records)
	if out == nil {
		out = []employees.Employee{}
	}

	var cmp func(a, b employees.Employee) int
	if numeric, ok := numericKeys[cfg.Key]; ok {
		cmp = func(a, b employees.Employee) int {
			return numeric(a).Cmp(numeric(b))
		}
	} else if text, ok := textKeys[cfg.Key]; ok {
		col := collate.New(tag)
		cmp = func(a, b employees.Employee) int {
			return col.CompareString(text(a), text(b))
		}
	} else {
		return out
	}

	if cfg.Desc {
		asc := cmp
		cmp = func(a, b employees.Employee) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func decimalOrZero(d employees.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
