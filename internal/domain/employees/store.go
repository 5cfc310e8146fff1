package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation   = "23505"
	stringTooLong     = "22001"
	numericOutOfRange = "22003"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, first_name, last_name, email, phone_number, hire_date, job_id,
           salary::text, commission_pct::text, manager_id, department_id
    FROM employees
    ORDER BY first_name ASC NULLS FIRST, last_name ASC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var emp Employee
		var id int64
		var salary, commission *string
		var managerID, departmentID *int64
		if err := rows.Scan(
			&id, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PhoneNumber, &emp.HireDate.Time, &emp.JobID,
			&salary, &commission, &managerID, &departmentID,
		); err != nil {
			return nil, err
		}
		emp.EmployeeID = ID(id)
		if emp.Salary, err = nullDecimalFromText(salary); err != nil {
			return nil, fmt.Errorf("employee %d salary: %w", id, err)
		}
		if emp.CommissionPct, err = nullDecimalFromText(commission); err != nil {
			return nil, fmt.Errorf("employee %d commission: %w", id, err)
		}
		emp.ManagerID = nullIntFromPtr(managerID)
		emp.DepartmentID = nullIntFromPtr(departmentID)
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (employee_id, first_name, last_name, email, phone_number, hire_date, job_id,
      salary, commission_pct, manager_id, department_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9::numeric,$10,$11)
  `,
		int64(emp.EmployeeID), emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber, emp.HireDate.Time, emp.JobID,
		emp.Salary.textPtr(), emp.CommissionPct.textPtr(), emp.ManagerID.Ptr(), emp.DepartmentID.Ptr(),
	)
	return mapWriteError(err)
}

func (s *Store) Update(ctx context.Context, id ID, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1,
        last_name = $2,
        email = $3,
        phone_number = $4,
        hire_date = $5,
        job_id = $6,
        salary = $7::numeric,
        commission_pct = $8::numeric,
        manager_id = $9,
        department_id = $10
    WHERE employee_id = $11
  `,
		emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber, emp.HireDate.Time, emp.JobID,
		emp.Salary.textPtr(), emp.CommissionPct.textPtr(), emp.ManagerID.Ptr(), emp.DepartmentID.Ptr(),
		int64(id),
	)
	if err != nil {
		return mapWriteError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id ID) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, int64(id))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	case stringTooLong, numericOutOfRange:
		field := strings.ToUpper(pgErr.ColumnName)
		if field == "" {
			field = "value"
		}
		return &ValidationError{Issues: []FieldIssue{{Field: field, Reason: "does not fit its column"}}}
	}
	return err
}
