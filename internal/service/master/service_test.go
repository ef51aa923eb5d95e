package master

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/workforce-backend-go/internal/domain/master"
)

type fakeMasterRepo struct {
	locations   []master.WorkLocation
	departments []master.Department
	jobTitles   []master.JobTitle
	empTypes    []master.EmploymentType
	skills      []master.Skill
}

func (f *fakeMasterRepo) ListWorkLocations(ctx context.Context) ([]master.WorkLocation, error) {
	return f.locations, nil
}

func (f *fakeMasterRepo) CreateWorkLocation(ctx context.Context, address string) (master.WorkLocation, error) {
	loc := master.WorkLocation{ID: int64(len(f.locations) + 1), Address: address}
	f.locations = append(f.locations, loc)
	return loc, nil
}

func (f *fakeMasterRepo) ListDepartments(ctx context.Context) ([]master.Department, error) {
	return f.departments, nil
}

func (f *fakeMasterRepo) CreateDepartment(ctx context.Context, name string, locationID *int64) (master.Department, error) {
	dept := master.Department{ID: int64(len(f.departments) + 1), Name: name, LocationID: locationID}
	f.departments = append(f.departments, dept)
	return dept, nil
}

func (f *fakeMasterRepo) ListJobTitles(ctx context.Context) ([]master.JobTitle, error) {
	return f.jobTitles, nil
}

func (f *fakeMasterRepo) CreateJobTitle(ctx context.Context, name string) (master.JobTitle, error) {
	jt := master.JobTitle{ID: int64(len(f.jobTitles) + 1), Name: name}
	f.jobTitles = append(f.jobTitles, jt)
	return jt, nil
}

func (f *fakeMasterRepo) ListEmploymentTypes(ctx context.Context) ([]master.EmploymentType, error) {
	return f.empTypes, nil
}

func (f *fakeMasterRepo) CreateEmploymentType(ctx context.Context, name string) (master.EmploymentType, error) {
	et := master.EmploymentType{ID: int64(len(f.empTypes) + 1), Name: name}
	f.empTypes = append(f.empTypes, et)
	return et, nil
}

func (f *fakeMasterRepo) ListSkills(ctx context.Context) ([]master.Skill, error) {
	return f.skills, nil
}

func (f *fakeMasterRepo) CreateSkill(ctx context.Context, name string) (master.Skill, error) {
	sk := master.Skill{ID: int64(len(f.skills) + 1), Name: name}
	f.skills = append(f.skills, sk)
	return sk, nil
}

func TestCreateAndListWorkLocations(t *testing.T) {
	svc := NewMasterService(&fakeMasterRepo{})

	created, err := svc.CreateWorkLocation(context.Background(), master.CreateWorkLocationRequest{
		Address: "12 Harbour Street",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	list, err := svc.ListWorkLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "12 Harbour Street", list[0].Address)
}

func TestCreateWorkLocationValidation(t *testing.T) {
	svc := NewMasterService(&fakeMasterRepo{})

	_, err := svc.CreateWorkLocation(context.Background(), master.CreateWorkLocationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address")

	_, err = svc.CreateWorkLocation(context.Background(), master.CreateWorkLocationRequest{
		Address: strings.Repeat("x", 151),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "150")
}

func TestCreateDepartmentKeepsLocationLink(t *testing.T) {
	svc := NewMasterService(&fakeMasterRepo{})

	locID := int64(4)
	dept, err := svc.CreateDepartment(context.Background(), master.CreateDepartmentRequest{
		Name:       "Operations",
		LocationID: &locID,
	})
	require.NoError(t, err)
	require.NotNil(t, dept.LocationID)
	assert.Equal(t, int64(4), *dept.LocationID)

	_, err = svc.CreateDepartment(context.Background(), master.CreateDepartmentRequest{})
	assert.Error(t, err)
}

func TestCreateNamedEntries(t *testing.T) {
	svc := NewMasterService(&fakeMasterRepo{})

	jt, err := svc.CreateJobTitle(context.Background(), master.CreateNamedEntryRequest{Name: "Supervisor"})
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", jt.Name)

	et, err := svc.CreateEmploymentType(context.Background(), master.CreateNamedEntryRequest{Name: "Full Time"})
	require.NoError(t, err)
	assert.Equal(t, "Full Time", et.Name)

	sk, err := svc.CreateSkill(context.Background(), master.CreateNamedEntryRequest{Name: "Forklift"})
	require.NoError(t, err)
	assert.Equal(t, "Forklift", sk.Name)

	_, err = svc.CreateSkill(context.Background(), master.CreateNamedEntryRequest{
		Name: strings.Repeat("s", 51),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "50")
}
