package leave

import (
	"context"
	"strings"

	"github.com/shiftline/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
	"github.com/shiftline/workforce-backend-go/internal/pkg/validator"
)

type leaveServiceImpl struct {
	typeRepo    leave.LeaveTypeRepository
	requestRepo leave.LeaveRequestRepository
}

func NewLeaveService(typeRepo leave.LeaveTypeRepository, requestRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &leaveServiceImpl{
		typeRepo:    typeRepo,
		requestRepo: requestRepo,
	}
}

// Submit implements leave.LeaveService.
func (s *leaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	endDate, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	created, err := s.requestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *leaveServiceImpl) Approve(ctx context.Context, id int64) error {
	return s.requestRepo.Approve(ctx, id)
}

// List implements leave.LeaveService.
func (s *leaveServiceImpl) List(ctx context.Context, employeeID *int64) ([]leave.RequestResponse, error) {
	requests, err := s.requestRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toRequestResponse(r))
	}

	return responses, nil
}

// ListTypes implements leave.LeaveService.
func (s *leaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.LeaveTypeResponse{ID: t.ID, Name: t.Name})
	}

	return responses, nil
}

// CreateType implements leave.LeaveService.
func (s *leaveServiceImpl) CreateType(ctx context.Context, name string) (leave.LeaveTypeResponse, error) {
	if validator.IsEmpty(name) {
		return leave.LeaveTypeResponse{}, validator.ValidationErrors{
			{Field: "name", Message: "name is required"},
		}
	}
	if len(name) > 50 {
		return leave.LeaveTypeResponse{}, validator.ValidationErrors{
			{Field: "name", Message: "name must not exceed 50 characters"},
		}
	}

	created, err := s.typeRepo.Create(ctx, name)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return leave.LeaveTypeResponse{ID: created.ID, Name: created.Name}, nil
}

func toRequestResponse(r leave.LeaveRequest) leave.RequestResponse {
	return leave.RequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: strings.TrimSpace(r.FirstName + " " + r.LastName),
		TypeName:     r.TypeName,
		StartDate:    timeutil.FormatDate(r.StartDate),
		EndDate:      timeutil.FormatDate(r.EndDate),
		IsApproved:   r.IsApproved,
	}
}
