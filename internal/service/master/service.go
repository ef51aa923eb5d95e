package master

import (
	"context"

	"github.com/shiftline/workforce-backend-go/internal/domain/master"
)

type masterServiceImpl struct {
	masterRepo master.MasterRepository
}

func NewMasterService(masterRepo master.MasterRepository) master.MasterService {
	return &masterServiceImpl{masterRepo: masterRepo}
}

func (s *masterServiceImpl) ListWorkLocations(ctx context.Context) ([]master.WorkLocation, error) {
	return s.masterRepo.ListWorkLocations(ctx)
}

func (s *masterServiceImpl) CreateWorkLocation(ctx context.Context, req master.CreateWorkLocationRequest) (master.WorkLocation, error) {
	if err := req.Validate(); err != nil {
		return master.WorkLocation{}, err
	}
	return s.masterRepo.CreateWorkLocation(ctx, req.Address)
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]master.Department, error) {
	return s.masterRepo.ListDepartments(ctx)
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req master.CreateDepartmentRequest) (master.Department, error) {
	if err := req.Validate(); err != nil {
		return master.Department{}, err
	}
	return s.masterRepo.CreateDepartment(ctx, req.Name, req.LocationID)
}

func (s *masterServiceImpl) ListJobTitles(ctx context.Context) ([]master.JobTitle, error) {
	return s.masterRepo.ListJobTitles(ctx)
}

func (s *masterServiceImpl) CreateJobTitle(ctx context.Context, req master.CreateNamedEntryRequest) (master.JobTitle, error) {
	if err := req.Validate(); err != nil {
		return master.JobTitle{}, err
	}
	return s.masterRepo.CreateJobTitle(ctx, req.Name)
}

func (s *masterServiceImpl) ListEmploymentTypes(ctx context.Context) ([]master.EmploymentType, error) {
	return s.masterRepo.ListEmploymentTypes(ctx)
}

func (s *masterServiceImpl) CreateEmploymentType(ctx context.Context, req master.CreateNamedEntryRequest) (master.EmploymentType, error) {
	if err := req.Validate(); err != nil {
		return master.EmploymentType{}, err
	}
	return s.masterRepo.CreateEmploymentType(ctx, req.Name)
}

func (s *masterServiceImpl) ListSkills(ctx context.Context) ([]master.Skill, error) {
	return s.masterRepo.ListSkills(ctx)
}

func (s *masterServiceImpl) CreateSkill(ctx context.Context, req master.CreateNamedEntryRequest) (master.Skill, error) {
	if err := req.Validate(); err != nil {
		return master.Skill{}, err
	}
	return s.masterRepo.CreateSkill(ctx, req.Name)
}
