package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/workforce-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees    []employee.Employee
	withAccounts map[int64]bool
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = int64(len(f.employees) + 1)
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListWithoutAccount(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if !f.withAccounts[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	repo := &fakeEmployeeRepo{withAccounts: map[int64]bool{}}
	svc := NewEmployeeService(repo)

	deptID := int64(3)
	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Silva",
		DepartmentID: &deptID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Ana", resp.FirstName)
	assert.Equal(t, "Silva", resp.LastName)
	require.Len(t, repo.employees, 1)
	require.NotNil(t, repo.employees[0].DepartmentID)
	assert.Equal(t, int64(3), *repo.employees[0].DepartmentID)
}

func TestCreateValidation(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{withAccounts: map[int64]bool{}})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{LastName: "Silva"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first name")

	_, err = svc.Create(context.Background(), employee.CreateEmployeeRequest{FirstName: "Ana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last name")
}

func TestListJoinsReferenceNames(t *testing.T) {
	repo := &fakeEmployeeRepo{
		employees: []employee.Employee{
			{
				ID:             1,
				FirstName:      "Ana",
				LastName:       "Silva",
				DepartmentName: strPtr("Operations"),
				JobTitle:       strPtr("Supervisor"),
				EmploymentType: strPtr("Full Time"),
			},
			{ID: 2, FirstName: "Bruno", LastName: "Costa"},
		},
		withAccounts: map[int64]bool{},
	}
	svc := NewEmployeeService(repo)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NotNil(t, list[0].DepartmentName)
	assert.Equal(t, "Operations", *list[0].DepartmentName)
	assert.Nil(t, list[1].DepartmentName)
	assert.Nil(t, list[1].SkillName)
}

func TestListWithoutAccount(t *testing.T) {
	repo := &fakeEmployeeRepo{
		employees: []employee.Employee{
			{ID: 1, FirstName: "Ana", LastName: "Silva"},
			{ID: 2, FirstName: "Bruno", LastName: "Costa"},
		},
		withAccounts: map[int64]bool{1: true},
	}
	svc := NewEmployeeService(repo)

	list, err := svc.ListWithoutAccount(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}
