package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedEmployee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	HireDate     string
	JobID        string
	Salary       string
	ManagerID    *int64
	DepartmentID int64
}

func int64Ptr(value int64) *int64 {
	return &value
}

var sampleEmployees = []seedEmployee{
	{ID: 100, FirstName: "Steven", LastName: "King", Email: "SKING", Phone: "515.123.4567", HireDate: "2003-06-17", JobID: "AD_PRES", Salary: "24000", DepartmentID: 90},
	{ID: 101, FirstName: "Neena", LastName: "Kochhar", Email: "NKOCHHAR", Phone: "515.123.4568", HireDate: "2005-09-21", JobID: "AD_VP", Salary: "17000", ManagerID: int64Ptr(100), DepartmentID: 90},
	{ID: 103, FirstName: "Alexander", LastName: "Hunold", Email: "AHUNOLD", Phone: "590.423.4567", HireDate: "2006-01-03", JobID: "IT_PROG", Salary: "9000", ManagerID: int64Ptr(101), DepartmentID: 60},
	{ID: 104, FirstName: "Bruce", LastName: "Ernst", Email: "BERNST", Phone: "590.423.4568", HireDate: "2007-05-21", JobID: "IT_PROG", Salary: "6000", ManagerID: int64Ptr(103), DepartmentID: 60},
}

// Seed inserts a handful of sample employees. Existing ids are left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, emp := range sampleEmployees {
		_, err := pool.Exec(ctx, `
      INSERT INTO employees (employee_id, first_name, last_name, email, phone_number, hire_date, job_id,
        salary, manager_id, department_id)
      VALUES ($1,$2,$3,$4,$5,$6::date,$7,$8::numeric,$9,$10)
      ON CONFLICT DO NOTHING
    `, emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.HireDate, emp.JobID, emp.Salary, emp.ManagerID, emp.DepartmentID)
		if err != nil {
			return err
		}
	}
	return nil
}
