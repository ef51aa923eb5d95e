package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shiftline/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	logs   map[int64]attendance.AttendanceLog
	nextID int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{logs: make(map[int64]attendance.AttendanceLog)}
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	for _, existing := range f.logs {
		if existing.EmployeeID == log.EmployeeID && sameDay(existing.Date, log.Date) {
			return attendance.AttendanceLog{}, attendance.ErrAlreadyClockedIn
		}
	}
	f.nextID++
	log.ID = f.nextID
	f.logs[log.ID] = log
	return log, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id int64) (attendance.AttendanceLog, error) {
	log, ok := f.logs[id]
	if !ok {
		return attendance.AttendanceLog{}, attendance.ErrLogNotFound
	}
	return log, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*attendance.AttendanceLog, error) {
	for _, log := range f.logs {
		if log.EmployeeID == employeeID && sameDay(log.Date, date) {
			copied := log
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetClockOut(_ context.Context, id int64, t timeutil.TimeOfDay) error {
	log, ok := f.logs[id]
	if !ok {
		return attendance.ErrLogNotFound
	}
	if log.ClockOut != nil {
		return attendance.ErrAlreadyClockedOut
	}
	log.ClockOut = &t
	f.logs[id] = log
	return nil
}

type fakeBreakRepo struct {
	breaks map[int64]attendance.BreakLog
	nextID int64
}

func newFakeBreakRepo() *fakeBreakRepo {
	return &fakeBreakRepo{breaks: make(map[int64]attendance.BreakLog)}
}

func (f *fakeBreakRepo) Create(_ context.Context, b attendance.BreakLog) (attendance.BreakLog, error) {
	for _, existing := range f.breaks {
		if existing.LogID == b.LogID && existing.EndTime == nil {
			return attendance.BreakLog{}, attendance.ErrBreakAlreadyActive
		}
	}
	f.nextID++
	b.ID = f.nextID
	f.breaks[b.ID] = b
	return b, nil
}

func (f *fakeBreakRepo) GetActive(_ context.Context, logID int64) (*attendance.BreakLog, error) {
	for _, b := range f.breaks {
		if b.LogID == logID && b.EndTime == nil {
			copied := b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBreakRepo) SetEnd(_ context.Context, id int64, t timeutil.TimeOfDay) error {
	b, ok := f.breaks[id]
	if !ok || b.EndTime != nil {
		return attendance.ErrNoActiveBreak
	}
	b.EndTime = &t
	f.breaks[id] = b
	return nil
}

type fakeShiftLookup struct {
	rows map[int64]schedule.AssignmentRow
}

func (f *fakeShiftLookup) Create(_ context.Context, a schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	return a, nil
}

func (f *fakeShiftLookup) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeShiftLookup) ListBySchedule(_ context.Context, _ int64) ([]schedule.AssignmentRow, error) {
	return nil, nil
}

func (f *fakeShiftLookup) ListByEmployee(_ context.Context, _ int64) ([]schedule.RosterRow, error) {
	return nil, nil
}

func (f *fakeShiftLookup) GetForDate(_ context.Context, employeeID int64, _ time.Time) (schedule.AssignmentRow, error) {
	row, ok := f.rows[employeeID]
	if !ok {
		return schedule.AssignmentRow{}, schedule.ErrNoShiftScheduled
	}
	return row, nil
}

func (f *fakeShiftLookup) ExistsForDate(_ context.Context, employeeID int64, _ time.Time) (bool, error) {
	_, ok := f.rows[employeeID]
	return ok, nil
}

func newTestService(now time.Time) (*attendanceServiceImpl, *fakeAttendanceRepo, *fakeBreakRepo, *fakeShiftLookup) {
	attendanceRepo := newFakeAttendanceRepo()
	breakRepo := newFakeBreakRepo()
	shiftLookup := &fakeShiftLookup{rows: map[int64]schedule.AssignmentRow{}}

	svc := &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		breakRepo:      breakRepo,
		assignmentRepo: shiftLookup,
		now:            func() time.Time { return now },
	}
	return svc, attendanceRepo, breakRepo, shiftLookup
}

var testNow = time.Date(2025, 6, 4, 9, 15, 0, 0, time.UTC)

func TestClockIn(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	log, err := svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-04", log.Date)
	require.NotNil(t, log.ClockIn)
	assert.Equal(t, "09:15:00", *log.ClockIn)
	assert.Nil(t, log.ClockOut)
}

func TestClockInTwiceSameDay(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)

	log, err := svc.ClockOut(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, log.ClockOut)
	assert.Equal(t, "09:15:00", *log.ClockOut)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.ClockOut(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutTwice(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.ClockOut(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestStartBreakRequiresOpenLog(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.StartBreak(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNoActiveShift)

	_, err = svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.ClockOut(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.StartBreak(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNoActiveShift)
}

func TestBreakLifecycle(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)

	started, err := svc.StartBreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", started.StartTime)
	assert.Nil(t, started.EndTime)

	// A second open break is rejected.
	_, err = svc.StartBreak(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyActive)

	ended, err := svc.EndBreak(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, ended.EndTime)

	// After ending, another break may start.
	_, err = svc.StartBreak(context.Background(), 1)
	assert.NoError(t, err)
}

func TestEndBreakWithoutActiveBreak(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	_, err := svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.EndBreak(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)
}

func TestTodayAggregatesDashboard(t *testing.T) {
	svc, _, _, shiftLookup := newTestService(testNow)
	shiftLookup.rows[1] = schedule.AssignmentRow{
		ShiftName: "Morning",
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
	}

	// Before clock-in: shift only.
	today, err := svc.Today(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, today.ShiftName)
	assert.Equal(t, "Morning", *today.ShiftName)
	assert.Nil(t, today.Log)
	assert.Nil(t, today.ActiveBreak)

	_, err = svc.ClockIn(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.StartBreak(context.Background(), 1)
	require.NoError(t, err)

	today, err = svc.Today(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, today.Log)
	require.NotNil(t, today.ActiveBreak)
	assert.Equal(t, "09:15:00", today.ActiveBreak.StartTime)
}

func TestTodayWithoutShift(t *testing.T) {
	svc, _, _, _ := newTestService(testNow)

	today, err := svc.Today(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, today.ShiftName)
	assert.Equal(t, "2025-06-04", today.Date)
}
