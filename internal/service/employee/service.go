package employee

import (
	"context"

	"github.com/shiftline/workforce-backend-go/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DepartmentID: req.DepartmentID,
		JobID:        req.JobID,
		TypeID:       req.TypeID,
		SkillID:      req.SkillID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponses(employees), nil
}

// ListWithoutAccount implements employee.EmployeeService.
func (s *employeeServiceImpl) ListWithoutAccount(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListWithoutAccount(ctx)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponses(employees), nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		DepartmentName: e.DepartmentName,
		JobTitle:       e.JobTitle,
		EmploymentType: e.EmploymentType,
		SkillName:      e.SkillName,
	}
}

func toEmployeeResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}
	return responses
}
