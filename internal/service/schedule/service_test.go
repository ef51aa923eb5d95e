package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shiftline/workforce-backend-go/internal/config"
	"github.com/shiftline/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	schedules map[int64]schedule.WeeklySchedule
	nextID    int64
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[int64]schedule.WeeklySchedule)}
}

func (f *fakeScheduleRepo) Create(_ context.Context, sched schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	f.nextID++
	sched.ID = f.nextID
	f.schedules[sched.ID] = sched
	return sched, nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id int64) (schedule.WeeklySchedule, error) {
	sched, ok := f.schedules[id]
	if !ok {
		return schedule.WeeklySchedule{}, schedule.ErrScheduleNotFound
	}
	return sched, nil
}

func (f *fakeScheduleRepo) List(_ context.Context) ([]schedule.WeeklySchedule, error) {
	out := make([]schedule.WeeklySchedule, 0, len(f.schedules))
	for _, s := range f.schedules {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeScheduleRepo) Publish(_ context.Context, id int64) error {
	sched, ok := f.schedules[id]
	if !ok {
		return schedule.ErrScheduleNotFound
	}
	sched.IsPublished = true
	f.schedules[id] = sched
	return nil
}

type fakeShiftTypeRepo struct {
	shiftTypes map[int64]schedule.ShiftType
	nextID     int64
}

func newFakeShiftTypeRepo() *fakeShiftTypeRepo {
	return &fakeShiftTypeRepo{shiftTypes: make(map[int64]schedule.ShiftType)}
}

func (f *fakeShiftTypeRepo) List(_ context.Context) ([]schedule.ShiftType, error) {
	out := make([]schedule.ShiftType, 0, len(f.shiftTypes))
	for _, st := range f.shiftTypes {
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeShiftTypeRepo) GetByID(_ context.Context, id int64) (schedule.ShiftType, error) {
	st, ok := f.shiftTypes[id]
	if !ok {
		return schedule.ShiftType{}, schedule.ErrShiftTypeNotFound
	}
	return st, nil
}

func (f *fakeShiftTypeRepo) Create(_ context.Context, st schedule.ShiftType) (schedule.ShiftType, error) {
	f.nextID++
	st.ID = f.nextID
	f.shiftTypes[st.ID] = st
	return st, nil
}

type fakeAssignmentRepo struct {
	assignments map[int64]schedule.ShiftAssignment
	nextID      int64
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[int64]schedule.ShiftAssignment)}
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	f.nextID++
	a.ID = f.nextID
	f.assignments[a.ID] = a
	return a, nil
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, id int64) error {
	delete(f.assignments, id)
	return nil
}

func (f *fakeAssignmentRepo) ListBySchedule(_ context.Context, scheduleID int64) ([]schedule.AssignmentRow, error) {
	var rows []schedule.AssignmentRow
	for _, a := range f.assignments {
		if a.ScheduleID == scheduleID {
			rows = append(rows, schedule.AssignmentRow{AssignmentID: a.ID, AssignedDate: a.AssignedDate})
		}
	}
	return rows, nil
}

func (f *fakeAssignmentRepo) ListByEmployee(_ context.Context, employeeID int64) ([]schedule.RosterRow, error) {
	var rows []schedule.RosterRow
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID {
			rows = append(rows, schedule.RosterRow{AssignedDate: a.AssignedDate})
		}
	}
	return rows, nil
}

func (f *fakeAssignmentRepo) GetForDate(_ context.Context, employeeID int64, date time.Time) (schedule.AssignmentRow, error) {
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID && a.AssignedDate.Equal(date) {
			return schedule.AssignmentRow{AssignmentID: a.ID, AssignedDate: a.AssignedDate}, nil
		}
	}
	return schedule.AssignmentRow{}, schedule.ErrNoShiftScheduled
}

func (f *fakeAssignmentRepo) ExistsForDate(_ context.Context, employeeID int64, date time.Time) (bool, error) {
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID && a.AssignedDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

type fakeAvailabilityRepo struct {
	entries map[string]schedule.Availability
	nextID  int64
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{entries: make(map[string]schedule.Availability)}
}

func (f *fakeAvailabilityRepo) key(employeeID int64, day string) string {
	return fmt.Sprintf("%d/%s", employeeID, day)
}

func (f *fakeAvailabilityRepo) ListByEmployee(_ context.Context, employeeID int64) ([]schedule.Availability, error) {
	var out []schedule.Availability
	for _, a := range f.entries {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, av schedule.Availability) (schedule.Availability, error) {
	k := f.key(av.EmployeeID, av.DayOfWeek)
	if existing, ok := f.entries[k]; ok {
		av.ID = existing.ID
	} else {
		f.nextID++
		av.ID = f.nextID
	}
	f.entries[k] = av
	return av, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListWithoutAccount(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func newTestService(cfg config.SchedulingConfig) (schedule.ScheduleService, *fakeScheduleRepo, *fakeShiftTypeRepo, *fakeAssignmentRepo) {
	scheduleRepo := newFakeScheduleRepo()
	shiftTypeRepo := newFakeShiftTypeRepo()
	assignmentRepo := newFakeAssignmentRepo()
	availRepo := newFakeAvailabilityRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[int64]employee.Employee{
		1: {ID: 1, FirstName: "Ana", LastName: "Silva"},
	}}

	svc := NewScheduleService(cfg, scheduleRepo, shiftTypeRepo, assignmentRepo, availRepo, employeeRepo)
	return svc, scheduleRepo, shiftTypeRepo, assignmentRepo
}

func strictConfig() config.SchedulingConfig {
	return config.SchedulingConfig{EnforceDateRange: true, RejectOverlaps: true}
}

func TestCreateScheduleComputesWeek(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())

	created, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{StartDate: "2025-06-02"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", created.StartDate)
	assert.Equal(t, "2025-06-08", created.EndDate)
	assert.False(t, created.IsPublished)
}

func TestCreateScheduleRejectsBadDate(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())

	_, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{StartDate: "02-06-2025"})
	assert.Error(t, err)
}

func TestPublishScheduleIdempotent(t *testing.T) {
	svc, scheduleRepo, _, _ := newTestService(strictConfig())

	created, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{StartDate: "2025-06-02"})
	require.NoError(t, err)

	require.NoError(t, svc.PublishSchedule(context.Background(), created.ID))
	require.NoError(t, svc.PublishSchedule(context.Background(), created.ID))
	assert.True(t, scheduleRepo.schedules[created.ID].IsPublished)

	assert.ErrorIs(t, svc.PublishSchedule(context.Background(), 999), schedule.ErrScheduleNotFound)
}

func seedAssignmentFixtures(t *testing.T, svc schedule.ScheduleService) (scheduleID, shiftTypeID int64) {
	t.Helper()

	sched, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{StartDate: "2025-06-02"})
	require.NoError(t, err)

	st, err := svc.CreateShiftType(context.Background(), schedule.CreateShiftTypeRequest{
		Name:      "Morning",
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
	})
	require.NoError(t, err)

	return sched.ID, st.ID
}

func TestAssignShift(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())
	scheduleID, shiftTypeID := seedAssignmentFixtures(t, svc)

	assignment, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   1,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-04",
	})
	require.NoError(t, err)
	assert.NotZero(t, assignment.ID)
}

func TestAssignShiftRejectsDateOutsideWeek(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())
	scheduleID, shiftTypeID := seedAssignmentFixtures(t, svc)

	_, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   1,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-09",
	})
	assert.ErrorIs(t, err, schedule.ErrDateOutsideSchedule)
}

func TestAssignShiftDateRangeToggleOff(t *testing.T) {
	svc, _, _, _ := newTestService(config.SchedulingConfig{EnforceDateRange: false, RejectOverlaps: true})
	scheduleID, shiftTypeID := seedAssignmentFixtures(t, svc)

	_, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   1,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-20",
	})
	assert.NoError(t, err)
}

func TestAssignShiftRejectsDuplicateDate(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())
	scheduleID, shiftTypeID := seedAssignmentFixtures(t, svc)

	req := schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   1,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-04",
	}
	_, err := svc.AssignShift(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.AssignShift(context.Background(), req)
	assert.ErrorIs(t, err, schedule.ErrDuplicateAssignment)
}

func TestAssignShiftOverlapToggleOff(t *testing.T) {
	svc, _, _, assignmentRepo := newTestService(config.SchedulingConfig{EnforceDateRange: true, RejectOverlaps: false})
	scheduleID, shiftTypeID := seedAssignmentFixtures(t, svc)

	req := schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   1,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-04",
	}
	_, err := svc.AssignShift(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.AssignShift(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, assignmentRepo.assignments, 2)
}

func TestAssignShiftUnknownReferences(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())
	scheduleID, shiftTypeID := seedAssignmentFixtures(t, svc)

	_, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		ScheduleID:   999,
		EmployeeID:   1,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-04",
	})
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	_, err = svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   999,
		ShiftTypeID:  shiftTypeID,
		AssignedDate: "2025-06-04",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		ScheduleID:   scheduleID,
		EmployeeID:   1,
		ShiftTypeID:  999,
		AssignedDate: "2025-06-04",
	})
	assert.ErrorIs(t, err, schedule.ErrShiftTypeNotFound)
}

func TestCreateShiftTypeValidation(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())

	_, err := svc.CreateShiftType(context.Background(), schedule.CreateShiftTypeRequest{
		Name:      "Night",
		StartTime: "25:00:00",
		EndTime:   "06:00:00",
	})
	assert.Error(t, err)

	// Overnight templates are allowed.
	created, err := svc.CreateShiftType(context.Background(), schedule.CreateShiftTypeRequest{
		Name:      "Night",
		StartTime: "22:00:00",
		EndTime:   "06:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "22:00:00", created.StartTime)
	assert.Equal(t, "06:00:00", created.EndTime)
}

func TestSetAvailabilityUpserts(t *testing.T) {
	svc, _, _, _ := newTestService(strictConfig())

	first, err := svc.SetAvailability(context.Background(), 1, schedule.SetAvailabilityRequest{
		DayOfWeek:   "Monday",
		IsAvailable: false,
	})
	require.NoError(t, err)

	second, err := svc.SetAvailability(context.Background(), 1, schedule.SetAvailabilityRequest{
		DayOfWeek:   "Monday",
		IsAvailable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsAvailable)

	_, err = svc.SetAvailability(context.Background(), 1, schedule.SetAvailabilityRequest{DayOfWeek: "Funday"})
	assert.Error(t, err)
}
