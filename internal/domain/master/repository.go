package master

import "context"

type MasterRepository interface {
	ListWorkLocations(ctx context.Context) ([]WorkLocation, error)
	CreateWorkLocation(ctx context.Context, address string) (WorkLocation, error)

	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, name string, locationID *int64) (Department, error)

	ListJobTitles(ctx context.Context) ([]JobTitle, error)
	CreateJobTitle(ctx context.Context, name string) (JobTitle, error)

	ListEmploymentTypes(ctx context.Context) ([]EmploymentType, error)
	CreateEmploymentType(ctx context.Context, name string) (EmploymentType, error)

	ListSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, name string) (Skill, error)
}
