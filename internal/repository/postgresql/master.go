package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftline/workforce-backend-go/internal/domain/master"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
)

type masterRepositoryImpl struct {
	db *database.DB
}

func NewMasterRepository(db *database.DB) master.MasterRepository {
	return &masterRepositoryImpl{db: db}
}

// ListWorkLocations implements master.MasterRepository.
func (r *masterRepositoryImpl) ListWorkLocations(ctx context.Context) ([]master.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT location_id, address FROM work_locations ORDER BY location_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list work locations: %w", err)
	}
	defer rows.Close()

	var locations []master.WorkLocation
	for rows.Next() {
		var l master.WorkLocation
		if err := rows.Scan(&l.ID, &l.Address); err != nil {
			return nil, fmt.Errorf("failed to scan work location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

// CreateWorkLocation implements master.MasterRepository.
func (r *masterRepositoryImpl) CreateWorkLocation(ctx context.Context, address string) (master.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	location := master.WorkLocation{Address: address}
	err := q.QueryRow(ctx,
		`INSERT INTO work_locations (address) VALUES ($1) RETURNING location_id`,
		address,
	).Scan(&location.ID)
	if err != nil {
		return master.WorkLocation{}, fmt.Errorf("failed to create work location: %w", err)
	}

	return location, nil
}

// ListDepartments implements master.MasterRepository.
func (r *masterRepositoryImpl) ListDepartments(ctx context.Context) ([]master.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT department_id, department_name, location_id FROM departments ORDER BY department_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []master.Department
	for rows.Next() {
		var d master.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.LocationID); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// CreateDepartment implements master.MasterRepository.
func (r *masterRepositoryImpl) CreateDepartment(ctx context.Context, name string, locationID *int64) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	department := master.Department{Name: name, LocationID: locationID}
	err := q.QueryRow(ctx,
		`INSERT INTO departments (department_name, location_id) VALUES ($1, $2) RETURNING department_id`,
		name, locationID,
	).Scan(&department.ID)
	if err != nil {
		return master.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department, nil
}

// ListJobTitles implements master.MasterRepository.
func (r *masterRepositoryImpl) ListJobTitles(ctx context.Context) ([]master.JobTitle, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT job_id, title_name FROM job_titles ORDER BY title_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}
	defer rows.Close()

	var titles []master.JobTitle
	for rows.Next() {
		var t master.JobTitle
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan job title: %w", err)
		}
		titles = append(titles, t)
	}

	return titles, rows.Err()
}

// CreateJobTitle implements master.MasterRepository.
func (r *masterRepositoryImpl) CreateJobTitle(ctx context.Context, name string) (master.JobTitle, error) {
	q := GetQuerier(ctx, r.db)

	title := master.JobTitle{Name: name}
	err := q.QueryRow(ctx,
		`INSERT INTO job_titles (title_name) VALUES ($1) RETURNING job_id`,
		name,
	).Scan(&title.ID)
	if err != nil {
		return master.JobTitle{}, fmt.Errorf("failed to create job title: %w", err)
	}

	return title, nil
}

// ListEmploymentTypes implements master.MasterRepository.
func (r *masterRepositoryImpl) ListEmploymentTypes(ctx context.Context) ([]master.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT type_id, type_name FROM employment_types ORDER BY type_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}
	defer rows.Close()

	var types []master.EmploymentType
	for rows.Next() {
		var t master.EmploymentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employment type: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// CreateEmploymentType implements master.MasterRepository.
func (r *masterRepositoryImpl) CreateEmploymentType(ctx context.Context, name string) (master.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	t := master.EmploymentType{Name: name}
	err := q.QueryRow(ctx,
		`INSERT INTO employment_types (type_name) VALUES ($1) RETURNING type_id`,
		name,
	).Scan(&t.ID)
	if err != nil {
		return master.EmploymentType{}, fmt.Errorf("failed to create employment type: %w", err)
	}

	return t, nil
}

// ListSkills implements master.MasterRepository.
func (r *masterRepositoryImpl) ListSkills(ctx context.Context) ([]master.Skill, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT skill_id, skill_name FROM skills ORDER BY skill_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []master.Skill
	for rows.Next() {
		var s master.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

// CreateSkill implements master.MasterRepository.
func (r *masterRepositoryImpl) CreateSkill(ctx context.Context, name string) (master.Skill, error) {
	q := GetQuerier(ctx, r.db)

	skill := master.Skill{Name: name}
	err := q.QueryRow(ctx,
		`INSERT INTO skills (skill_name) VALUES ($1) RETURNING skill_id`,
		name,
	).Scan(&skill.ID)
	if err != nil {
		return master.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}
