package employees

import (
	"context"
	"fmt"
)

type Service struct {
	store Repository
}

func NewService(store Repository) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if list == nil {
		list = []Employee{}
	}
	return list, nil
}

// Create inserts emp and returns it as submitted, after null normalization.
func (s *Service) Create(ctx context.Context, emp Employee) (Employee, error) {
	emp = emp.Normalized()
	if err := ValidateCreate(emp); err != nil {
		return Employee{}, err
	}
	if err := s.store.Insert(ctx, emp); err != nil {
		return Employee{}, fmt.Errorf("create employee %d: %w", emp.EmployeeID, err)
	}
	return emp, nil
}

// Update replaces every column but the key. The returned record is the
// submission with the path id applied; the row is not read back.
func (s *Service) Update(ctx context.Context, id ID, emp Employee) (Employee, error) {
	emp = emp.Normalized()
	emp.EmployeeID = id
	if err := ValidateUpdate(emp); err != nil {
		return Employee{}, err
	}
	if err := s.store.Update(ctx, id, emp); err != nil {
		return Employee{}, fmt.Errorf("update employee %d: %w", id, err)
	}
	return emp, nil
}

func (s *Service) Delete(ctx context.Context, id ID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}
