package master

import "context"

// MasterService exposes the reference-data lookups that populate choices in
// every other screen, plus admin-only creation for each table.
type MasterService interface {
	ListWorkLocations(ctx context.Context) ([]WorkLocation, error)
	CreateWorkLocation(ctx context.Context, req CreateWorkLocationRequest) (WorkLocation, error)

	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (Department, error)

	ListJobTitles(ctx context.Context) ([]JobTitle, error)
	CreateJobTitle(ctx context.Context, req CreateNamedEntryRequest) (JobTitle, error)

	ListEmploymentTypes(ctx context.Context) ([]EmploymentType, error)
	CreateEmploymentType(ctx context.Context, req CreateNamedEntryRequest) (EmploymentType, error)

	ListSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, req CreateNamedEntryRequest) (Skill, error)
}
