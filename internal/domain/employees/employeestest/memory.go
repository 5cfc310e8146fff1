// Package employeestest provides an in-memory employees.Repository that
// enforces the same key and email uniqueness as the employees table.
package employeestest

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"staffdesk/internal/domain/employees"
)

type MemoryStore struct {
	mu   sync.Mutex
	rows []employees.Employee
	// FailWith, when set, is returned by every call.
	FailWith error
}

func NewMemoryStore(seed ...employees.Employee) *MemoryStore {
	s := &MemoryStore{}
	for _, emp := range seed {
		s.rows = append(s.rows, emp.Normalized())
	}
	return s
}

// SetFailure changes FailWith while the store is in use.
func (s *MemoryStore) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailWith = err
}

func (s *MemoryStore) List(_ context.Context) ([]employees.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	out := slices.Clone(s.rows)
	slices.SortStableFunc(out, func(a, b employees.Employee) int {
		switch {
		case a.FirstName == nil && b.FirstName != nil:
			return -1
		case a.FirstName != nil && b.FirstName == nil:
			return 1
		}
		if c := cmp.Compare(employees.StringValue(a.FirstName), employees.StringValue(b.FirstName)); c != 0 {
			return c
		}
		return cmp.Compare(a.LastName, b.LastName)
	})
	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, emp employees.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	for _, row := range s.rows {
		if row.EmployeeID == emp.EmployeeID || row.Email == emp.Email {
			return employees.ErrConflict
		}
	}
	s.rows = append(s.rows, emp)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id employees.ID, emp employees.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return employees.ErrNotFound
	}
	for _, row := range s.rows {
		if row.EmployeeID != id && row.Email == emp.Email {
			return employees.ErrConflict
		}
	}
	emp.EmployeeID = id
	s.rows[idx] = emp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id employees.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return employees.ErrNotFound
	}
	s.rows = slices.Delete(s.rows, idx, idx+1)
	return nil
}

func (s *MemoryStore) indexOf(id employees.ID) int {
	return slices.IndexFunc(s.rows, func(row employees.Employee) bool { return row.EmployeeID == id })
}

// ErrUnavailable simulates a backing store outage.
var ErrUnavailable = errors.New("store unavailable")
