package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/domain/employees"
)

func strPtr(s string) *string { return &s }

func rec(id int64, first, last string) employees.Employee {
	e := employees.Employee{
		EmployeeID: employees.ID(id),
		LastName:   last,
		Email:      last + "@x.com",
		HireDate:   employees.NewDate(2024, 1, 1),
		JobID:      "ENG",
	}
	if first != "" {
		e.FirstName = strPtr(first)
	}
	return e
}

func ids(list []employees.Employee) []employees.ID {
	out := make([]employees.ID, 0, len(list))
	for _, e := range list {
		out = append(out, e.EmployeeID)
	}
	return out
}

func TestFilter(t *testing.T) {
	list := []employees.Employee{rec(100, "Ann", "Doe"), rec(205, "Bob", "Roe"), rec(7, "", "Lee")}
	list[1].JobID = "OPS"

	assert.Equal(t, ids(list), ids(Filter(list, "")))
	assert.Equal(t, []employees.ID{100}, ids(Filter(list, "ann")))
	assert.Equal(t, []employees.ID{205}, ids(Filter(list, "ops")))
	assert.Equal(t, []employees.ID{205}, ids(Filter(list, "20")))
	assert.Equal(t, []employees.ID{7}, ids(Filter(list, "LEE@")))
	assert.Empty(t, Filter(list, "zzz"))

	once := Filter(list, "o")
	assert.Equal(t, ids(once), ids(Filter(once, "o")))
}

func TestFilterReturnsCopy(t *testing.T) {
	list := []employees.Employee{rec(1, "Ann", "Doe")}
	out := Filter(list, "")
	out[0].LastName = "Changed"
	assert.Equal(t, "Doe", list[0].LastName)
}

func TestSortTextIsStableBothWays(t *testing.T) {
	list := []employees.Employee{rec(1, "Bea", "A"), rec(2, "ann", "B"), rec(3, "Bea", "C"), rec(4, "", "D")}

	asc := Sort(list, SortConfig{Key: KeyFirstName})
	assert.Equal(t, []employees.ID{4, 2, 1, 3}, ids(asc))

	desc := Sort(list, SortConfig{Key: KeyFirstName, Desc: true})
	assert.Equal(t, []employees.ID{1, 3, 2, 4}, ids(desc))
}

func TestSortNumericTreatsAbsentAsZero(t *testing.T) {
	a := rec(1, "A", "A")
	a.Salary = employees.NewNullDecimal(decimal.RequireFromString("900"))
	b := rec(2, "B", "B")
	c := rec(3, "C", "C")
	c.Salary = employees.NewNullDecimal(decimal.RequireFromString("10000"))
	d := rec(4, "D", "D")
	d.Salary = employees.NewNullDecimal(decimal.Zero)

	got := Sort([]employees.Employee{a, b, c, d}, SortConfig{Key: KeySalary})
	assert.Equal(t, []employees.ID{2, 4, 1, 3}, ids(got))

	got = Sort([]employees.Employee{a, b, c, d}, SortConfig{Key: KeySalary, Desc: true})
	assert.Equal(t, []employees.ID{3, 1, 2, 4}, ids(got))
}

func TestSortByIDAndManager(t *testing.T) {
	list := []employees.Employee{rec(30, "A", "A"), rec(4, "B", "B"), rec(100, "C", "C")}
	list[0].ManagerID = employees.NewNullInt(5)
	list[2].ManagerID = employees.NewNullInt(1)

	assert.Equal(t, []employees.ID{4, 30, 100}, ids(Sort(list, SortConfig{Key: KeyEmployeeID})))
	assert.Equal(t, []employees.ID{4, 100, 30}, ids(Sort(list, SortConfig{Key: KeyManagerID})))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	list := []employees.Employee{rec(3, "C", "C"), rec(1, "A", "A"), rec(2, "B", "B")}
	assert.Equal(t, ids(list), ids(Sort(list, SortConfig{Key: "SHOE_SIZE"})))
	assert.False(t, IsSortKey("SHOE_SIZE"))
	assert.True(t, IsSortKey(KeyCommissionPct))
}

func TestSortCollatesAccents(t *testing.T) {
	list := []employees.Employee{rec(1, "Zoe", "Z"), rec(2, "Émile", "E"), rec(3, "eve", "E")}
	assert.Equal(t, []employees.ID{2, 3, 1}, ids(Sort(list, SortConfig{Key: KeyFirstName})))
}

func TestSortConfigToggle(t *testing.T) {
	cfg := DefaultSortConfig()
	assert.Equal(t, SortConfig{Key: KeyFirstName}, cfg)

	cfg = cfg.Toggle(KeyFirstName)
	assert.True(t, cfg.Desc)
	assert.Equal(t, "desc", cfg.Direction())

	cfg = cfg.Toggle(KeySalary)
	assert.Equal(t, SortConfig{Key: KeySalary}, cfg)
}

func TestStateApplyCreate(t *testing.T) {
	s := NewState()
	s.Load([]employees.Employee{rec(1, "A", "A"), rec(2, "B", "B")})

	s.ApplyCreate(rec(3, "C", "C"))
	assert.Equal(t, []employees.ID{3, 1, 2}, ids(s.Records()))

	s.ApplyCreate(rec(1, "A", "Again"))
	assert.Equal(t, []employees.ID{1, 3, 2}, ids(s.Records()))
	got, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Again", got.LastName)
}

func TestStateApplyUpdateMergesServerFields(t *testing.T) {
	s := NewState()
	old := rec(100, "Ann", "Doe")
	old.PhoneNumber = strPtr("555")
	s.Load([]employees.Employee{old})

	err := s.ApplyUpdate(100, []byte(`{"EMPLOYEE_ID":999,"LAST_NAME":"Smith","SALARY":"4200.50"}`))
	require.NoError(t, err)

	got, ok := s.Find(100)
	require.True(t, ok)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "555", employees.StringValue(got.PhoneNumber))
	assert.Equal(t, "4200.5", got.Salary.Text())
	assert.Equal(t, "2024-01-01", got.HireDate.String())
	_, ok = s.Find(999)
	assert.False(t, ok)
}

func TestStateApplyUpdateMissingIsNoop(t *testing.T) {
	s := NewState()
	s.Load([]employees.Employee{rec(1, "A", "A")})
	require.NoError(t, s.ApplyUpdate(2, []byte(`{"LAST_NAME":"X"}`)))
	assert.Equal(t, []employees.ID{1}, ids(s.Records()))
}

func TestStateApplyUpdateBadBodyLeavesCache(t *testing.T) {
	s := NewState()
	s.Load([]employees.Employee{rec(1, "A", "A")})
	assert.Error(t, s.ApplyUpdate(1, []byte(`{"LAST_NAME":`)))
	got, _ := s.Find(1)
	assert.Equal(t, "A", got.LastName)
}

func TestStateApplyDeleteIsIdempotent(t *testing.T) {
	s := NewState()
	s.Load([]employees.Employee{rec(1, "A", "A"), rec(2, "B", "B")})

	s.ApplyDelete(1)
	once := ids(s.Records())
	s.ApplyDelete(1)
	assert.Equal(t, once, ids(s.Records()))
	assert.Equal(t, []employees.ID{2}, once)
}

func TestStateVisible(t *testing.T) {
	s := NewState()
	s.Load([]employees.Employee{rec(1, "Cara", "Doe"), rec(2, "Abe", "Doe"), rec(3, "Bob", "Roe")})

	assert.Equal(t, []employees.ID{2, 3, 1}, ids(s.Visible()))

	s.SetSearch("doe")
	assert.Equal(t, []employees.ID{2, 1}, ids(s.Visible()))

	s.ToggleSort(KeyFirstName)
	assert.Equal(t, []employees.ID{1, 2}, ids(s.Visible()))
	assert.Equal(t, 3, s.Len())
}
