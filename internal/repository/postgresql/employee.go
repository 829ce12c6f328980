package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, name, cedula, date_of_birth, phone, email, eps, contract_type,
	salary, is_pensioned, hire_date, worked_days_total, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Cedula, &emp.DateOfBirth, &emp.Phone,
		&emp.Email, &emp.EPS, &emp.ContractType, &emp.Salary, &emp.IsPensioned,
		&emp.HireDate, &emp.WorkedDaysTotal, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, cedula, date_of_birth, phone, email, eps,
			contract_type, salary, is_pensioned, hire_date, worked_days_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Cedula, emp.DateOfBirth, emp.Phone, emp.Email,
		emp.EPS, emp.ContractType, emp.Salary, emp.IsPensioned, emp.HireDate,
		emp.WorkedDaysTotal,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return created, nil
}

func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %s: %w", id, err)
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, cedula = $3, date_of_birth = $4, phone = $5, email = $6,
			eps = $7, contract_type = $8, salary = $9, is_pensioned = $10,
			hire_date = $11, worked_days_total = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Cedula, emp.DateOfBirth, emp.Phone, emp.Email,
		emp.EPS, emp.ContractType, emp.Salary, emp.IsPensioned, emp.HireDate,
		emp.WorkedDaysTotal,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("update employee %s: %w", emp.ID, err)
	}
	return updated, nil
}

func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (e *employeeRepositoryImpl) ExistsByCedula(ctx context.Context, cedula string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	var err error
	if excludeID != nil {
		err = q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE cedula = $1 AND id <> $2)`,
			cedula, *excludeID).Scan(&exists)
	} else {
		err = q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE cedula = $1)`,
			cedula).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("check cedula: %w", err)
	}
	return exists, nil
}

func (e *employeeRepositoryImpl) UpdateWorkedDaysTotal(ctx context.Context, id string, workedDays int) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET worked_days_total = $2, updated_at = NOW() WHERE id = $1`,
		id, workedDays)
	if err != nil {
		return fmt.Errorf("update worked days for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
