package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/shiftline/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	breakRepo      attendance.BreakRepository
	assignmentRepo schedule.AssignmentRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
	assignmentRepo schedule.AssignmentRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		breakRepo:      breakRepo,
		assignmentRepo: assignmentRepo,
		now:            time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ClockIn(ctx context.Context, employeeID int64) (attendance.LogResponse, error) {
	now := s.now()
	clockIn := timeutil.FromTime(now)

	// No pre-read: the unique index on (employee_id, date) is the authority
	// on double clock-ins.
	created, err := s.attendanceRepo.Create(ctx, attendance.AttendanceLog{
		EmployeeID: employeeID,
		Date:       now,
		ClockIn:    &clockIn,
	})
	if err != nil {
		return attendance.LogResponse{}, err
	}

	return toLogResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ClockOut(ctx context.Context, employeeID int64) (attendance.LogResponse, error) {
	now := s.now()

	log, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return attendance.LogResponse{}, err
	}
	if log == nil {
		return attendance.LogResponse{}, attendance.ErrNotClockedIn
	}

	clockOut := timeutil.FromTime(now)
	if err := s.attendanceRepo.SetClockOut(ctx, log.ID, clockOut); err != nil {
		return attendance.LogResponse{}, err
	}

	log.ClockOut = &clockOut
	return toLogResponse(*log), nil
}

// StartBreak implements attendance.AttendanceService.
func (s *attendanceServiceImpl) StartBreak(ctx context.Context, employeeID int64) (attendance.BreakResponse, error) {
	now := s.now()

	log, err := s.openLog(ctx, employeeID, now)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	created, err := s.breakRepo.Create(ctx, attendance.BreakLog{
		LogID:     log.ID,
		StartTime: timeutil.FromTime(now),
	})
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	return toBreakResponse(created), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *attendanceServiceImpl) EndBreak(ctx context.Context, employeeID int64) (attendance.BreakResponse, error) {
	now := s.now()

	log, err := s.openLog(ctx, employeeID, now)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	active, err := s.breakRepo.GetActive(ctx, log.ID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}
	if active == nil {
		return attendance.BreakResponse{}, attendance.ErrNoActiveBreak
	}

	end := timeutil.FromTime(now)
	if err := s.breakRepo.SetEnd(ctx, active.ID, end); err != nil {
		return attendance.BreakResponse{}, err
	}

	active.EndTime = &end
	return toBreakResponse(*active), nil
}

// Today implements attendance.AttendanceService.
func (s *attendanceServiceImpl) Today(ctx context.Context, employeeID int64) (attendance.TodayResponse, error) {
	now := s.now()

	resp := attendance.TodayResponse{Date: timeutil.FormatDate(now)}

	shift, err := s.assignmentRepo.GetForDate(ctx, employeeID, now)
	switch {
	case err == nil:
		resp.ShiftName = &shift.ShiftName
		start := shift.StartTime.String()
		end := shift.EndTime.String()
		resp.ShiftStart = &start
		resp.ShiftEnd = &end
	case errors.Is(err, schedule.ErrNoShiftScheduled):
		// A day off is a normal dashboard state.
	default:
		return attendance.TodayResponse{}, err
	}

	log, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if log == nil {
		return resp, nil
	}

	logResp := toLogResponse(*log)
	resp.Log = &logResp

	if !log.ClockedOut() {
		active, err := s.breakRepo.GetActive(ctx, log.ID)
		if err != nil {
			return attendance.TodayResponse{}, err
		}
		if active != nil {
			breakResp := toBreakResponse(*active)
			resp.ActiveBreak = &breakResp
		}
	}

	return resp, nil
}

// openLog returns today's log when the employee is clocked in and not yet
// clocked out, the precondition shared by the break operations.
func (s *attendanceServiceImpl) openLog(ctx context.Context, employeeID int64, now time.Time) (*attendance.AttendanceLog, error) {
	log, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return nil, err
	}
	if log == nil || log.ClockedOut() {
		return nil, attendance.ErrNoActiveShift
	}
	return log, nil
}

func toLogResponse(log attendance.AttendanceLog) attendance.LogResponse {
	return attendance.LogResponse{
		ID:         log.ID,
		EmployeeID: log.EmployeeID,
		Date:       timeutil.FormatDate(log.Date),
		ClockIn:    timeOfDayString(log.ClockIn),
		ClockOut:   timeOfDayString(log.ClockOut),
	}
}

func toBreakResponse(b attendance.BreakLog) attendance.BreakResponse {
	return attendance.BreakResponse{
		ID:        b.ID,
		LogID:     b.LogID,
		StartTime: b.StartTime.String(),
		EndTime:   timeOfDayString(b.EndTime),
	}
}

func timeOfDayString(t *timeutil.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
