package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (first_name, last_name, department_id, job_id, type_id, skill_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING employee_id
	`

	err := q.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.DepartmentID,
		emp.JobID,
		emp.TypeID,
		emp.SkillID,
	).Scan(&emp.ID)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name,
			   e.department_id, e.job_id, e.type_id, e.skill_id,
			   d.department_name, jt.title_name, et.type_name, s.skill_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.department_id
		LEFT JOIN job_titles jt ON e.job_id = jt.job_id
		LEFT JOIN employment_types et ON e.type_id = et.type_id
		LEFT JOIN skills s ON e.skill_id = s.skill_id
		WHERE e.employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FirstName, &emp.LastName,
		&emp.DepartmentID, &emp.JobID, &emp.TypeID, &emp.SkillID,
		&emp.DepartmentName, &emp.JobTitle, &emp.EmploymentType, &emp.SkillName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name,
			   e.department_id, e.job_id, e.type_id, e.skill_id,
			   d.department_name, jt.title_name, et.type_name, s.skill_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.department_id
		LEFT JOIN job_titles jt ON e.job_id = jt.job_id
		LEFT JOIN employment_types et ON e.type_id = et.type_id
		LEFT JOIN skills s ON e.skill_id = s.skill_id
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName,
			&emp.DepartmentID, &emp.JobID, &emp.TypeID, &emp.SkillID,
			&emp.DepartmentName, &emp.JobTitle, &emp.EmploymentType, &emp.SkillName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ListWithoutAccount implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListWithoutAccount(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name
		FROM employees e
		LEFT JOIN user_accounts ua ON e.employee_id = ua.employee_id
		WHERE ua.user_id IS NULL
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without accounts: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.FirstName, &emp.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}
