package view

import (
	"encoding/json"
	"fmt"
	"slices"

	"staffdesk/internal/domain/employees"
)

// State is the cached record list plus the active search and sort. It has a
// single owner and is not safe for concurrent use.
type State struct {
	records []employees.Employee
	search  string
	sort    SortConfig
}

func NewState() *State {
	return &State{sort: DefaultSortConfig()}
}

// Load replaces the cache with a freshly fetched list.
func (s *State) Load(records []employees.Employee) {
	s.records = slices.Clone(records)
}

func (s *State) Records() []employees.Employee {
	return slices.Clone(s.records)
}

func (s *State) Len() int {
	return len(s.records)
}

func (s *State) Search() string {
	return s.search
}

func (s *State) SetSearch(term string) {
	s.search = term
}

func (s *State) SortConfig() SortConfig {
	return s.sort
}

func (s *State) SetSort(cfg SortConfig) {
	s.sort = cfg
}

func (s *State) ToggleSort(key string) SortConfig {
	s.sort = s.sort.Toggle(key)
	return s.sort
}

// Visible is the filtered then sorted list.
func (s *State) Visible() []employees.Employee {
	return Sort(Filter(s.records, s.search), s.sort)
}

func (s *State) Find(id employees.ID) (employees.Employee, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return employees.Employee{}, false
	}
	return s.records[idx], true
}

// ApplyCreate puts a newly created record at the front of the cache. A cached
// record with the same id is dropped first.
func (s *State) ApplyCreate(rec employees.Employee) {
	s.records = slices.DeleteFunc(s.records, func(e employees.Employee) bool {
		return e.EmployeeID == rec.EmployeeID
	})
	s.records = slices.Insert(s.records, 0, rec)
}

// ApplyUpdate merges the server's JSON body over the cached record with the
// same id. Fields present in body win; the id never changes. A missing id is
// a no-op.
func (s *State) ApplyUpdate(id employees.ID, body []byte) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	merged, err := mergeRecord(s.records[idx], body)
	if err != nil {
		return err
	}
	merged.EmployeeID = id
	s.records[idx] = merged
	return nil
}

// ApplyDelete removes the record with id. Removing a missing id is a no-op.
func (s *State) ApplyDelete(id employees.ID) {
	s.records = slices.DeleteFunc(s.records, func(e employees.Employee) bool {
		return e.EmployeeID == id
	})
}

func (s *State) indexOf(id employees.ID) int {
	return slices.IndexFunc(s.records, func(e employees.Employee) bool {
		return e.EmployeeID == id
	})
}

func mergeRecord(old employees.Employee, body []byte) (employees.Employee, error) {
	base, err := json.Marshal(old)
	if err != nil {
		return employees.Employee{}, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return employees.Employee{}, err
	}

	var incoming map[string]json.RawMessage
	if err := json.Unmarshal(body, &incoming); err != nil {
		return employees.Employee{}, fmt.Errorf("decode update body: %w", err)
	}
	for key, value := range incoming {
		fields[key] = value
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return employees.Employee{}, err
	}
	var merged employees.Employee
	if err := json.Unmarshal(raw, &merged); err != nil {
		return employees.Employee{}, fmt.Errorf("decode merged record: %w", err)
	}
	return merged.Normalized(), nil
}
