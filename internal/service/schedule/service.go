package schedule

import (
	"context"

	"github.com/shiftline/workforce-backend-go/internal/config"
	"github.com/shiftline/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

// scheduleWeekDays is the length of a schedule window minus one: a schedule
// always spans start_date through start_date + 6 days.
const scheduleWeekDays = 6

type scheduleServiceImpl struct {
	cfg            config.SchedulingConfig
	scheduleRepo   schedule.ScheduleRepository
	shiftTypeRepo  schedule.ShiftTypeRepository
	assignmentRepo schedule.AssignmentRepository
	availRepo      schedule.AvailabilityRepository
	employeeRepo   employee.EmployeeRepository
}

func NewScheduleService(
	cfg config.SchedulingConfig,
	scheduleRepo schedule.ScheduleRepository,
	shiftTypeRepo schedule.ShiftTypeRepository,
	assignmentRepo schedule.AssignmentRepository,
	availRepo schedule.AvailabilityRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		cfg:            cfg,
		scheduleRepo:   scheduleRepo,
		shiftTypeRepo:  shiftTypeRepo,
		assignmentRepo: assignmentRepo,
		availRepo:      availRepo,
		employeeRepo:   employeeRepo,
	}
}

// CreateSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.WeeklySchedule{
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, scheduleWeekDays),
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toScheduleResponse(created), nil
}

// ListSchedules implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListSchedules(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toScheduleResponse(sched))
	}

	return responses, nil
}

// PublishSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) PublishSchedule(ctx context.Context, id int64) error {
	return s.scheduleRepo.Publish(ctx, id)
}

// AssignShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) AssignShift(ctx context.Context, req schedule.AssignShiftRequest) (schedule.ShiftAssignment, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftAssignment{}, err
	}

	assignedDate, err := timeutil.ParseDate(req.AssignedDate)
	if err != nil {
		return schedule.ShiftAssignment{}, err
	}

	sched, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return schedule.ShiftAssignment{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftAssignment{}, err
	}

	if _, err := s.shiftTypeRepo.GetByID(ctx, req.ShiftTypeID); err != nil {
		return schedule.ShiftAssignment{}, err
	}

	if s.cfg.EnforceDateRange {
		if assignedDate.Before(sched.StartDate) || assignedDate.After(sched.EndDate) {
			return schedule.ShiftAssignment{}, schedule.ErrDateOutsideSchedule
		}
	}

	if s.cfg.RejectOverlaps {
		exists, err := s.assignmentRepo.ExistsForDate(ctx, req.EmployeeID, assignedDate)
		if err != nil {
			return schedule.ShiftAssignment{}, err
		}
		if exists {
			return schedule.ShiftAssignment{}, schedule.ErrDuplicateAssignment
		}
	}

	return s.assignmentRepo.Create(ctx, schedule.ShiftAssignment{
		ScheduleID:   req.ScheduleID,
		EmployeeID:   req.EmployeeID,
		ShiftTypeID:  req.ShiftTypeID,
		AssignedDate: assignedDate,
	})
}

// UnassignShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UnassignShift(ctx context.Context, assignmentID int64) error {
	return s.assignmentRepo.Delete(ctx, assignmentID)
}

// ListAssignments implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListAssignments(ctx context.Context, scheduleID int64) ([]schedule.AssignmentResponse, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	rows, err := s.assignmentRepo.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.AssignmentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, schedule.AssignmentResponse{
			AssignmentID: row.AssignmentID,
			AssignedDate: timeutil.FormatDate(row.AssignedDate),
			EmployeeName: row.FirstName + " " + row.LastName,
			ShiftName:    row.ShiftName,
			StartTime:    row.StartTime.String(),
			EndTime:      row.EndTime.String(),
		})
	}

	return responses, nil
}

// EmployeeRoster implements schedule.ScheduleService.
func (s *scheduleServiceImpl) EmployeeRoster(ctx context.Context, employeeID int64) ([]schedule.RosterResponse, error) {
	rows, err := s.assignmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.RosterResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, schedule.RosterResponse{
			AssignedDate: timeutil.FormatDate(row.AssignedDate),
			ShiftName:    row.ShiftName,
			StartTime:    row.StartTime.String(),
			EndTime:      row.EndTime.String(),
			IsPublished:  row.IsPublished,
		})
	}

	return responses, nil
}

// ListShiftTypes implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListShiftTypes(ctx context.Context) ([]schedule.ShiftTypeResponse, error) {
	shiftTypes, err := s.shiftTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ShiftTypeResponse, 0, len(shiftTypes))
	for _, st := range shiftTypes {
		responses = append(responses, toShiftTypeResponse(st))
	}

	return responses, nil
}

// CreateShiftType implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateShiftType(ctx context.Context, req schedule.CreateShiftTypeRequest) (schedule.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftTypeResponse{}, err
	}

	// Overnight templates (end before start) are allowed; the values are
	// literal times of day.
	created, err := s.shiftTypeRepo.Create(ctx, schedule.ShiftType{
		Name:      req.Name,
		StartTime: timeutil.TimeOfDay(req.StartTime),
		EndTime:   timeutil.TimeOfDay(req.EndTime),
	})
	if err != nil {
		return schedule.ShiftTypeResponse{}, err
	}

	return toShiftTypeResponse(created), nil
}

// GetAvailability implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetAvailability(ctx context.Context, employeeID int64) ([]schedule.AvailabilityResponse, error) {
	entries, err := s.availRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.AvailabilityResponse, 0, len(entries))
	for _, a := range entries {
		responses = append(responses, toAvailabilityResponse(a))
	}

	return responses, nil
}

// SetAvailability implements schedule.ScheduleService.
func (s *scheduleServiceImpl) SetAvailability(ctx context.Context, employeeID int64, req schedule.SetAvailabilityRequest) (schedule.AvailabilityResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AvailabilityResponse{}, err
	}

	saved, err := s.availRepo.Upsert(ctx, schedule.Availability{
		EmployeeID:  employeeID,
		DayOfWeek:   req.DayOfWeek,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return schedule.AvailabilityResponse{}, err
	}

	return toAvailabilityResponse(saved), nil
}

func toScheduleResponse(s schedule.WeeklySchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:          s.ID,
		StartDate:   timeutil.FormatDate(s.StartDate),
		EndDate:     timeutil.FormatDate(s.EndDate),
		IsPublished: s.IsPublished,
	}
}

func toShiftTypeResponse(st schedule.ShiftType) schedule.ShiftTypeResponse {
	return schedule.ShiftTypeResponse{
		ID:        st.ID,
		Name:      st.Name,
		StartTime: st.StartTime.String(),
		EndTime:   st.EndTime.String(),
	}
}

func toAvailabilityResponse(a schedule.Availability) schedule.AvailabilityResponse {
	return schedule.AvailabilityResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		DayOfWeek:   a.DayOfWeek,
		IsAvailable: a.IsAvailable,
	}
}
