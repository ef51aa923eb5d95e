package report

import (
	"context"

	"github.com/shiftline/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftline/workforce-backend-go/internal/domain/report"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

// Notes strings rendered alongside each derived status.
const (
	noteOnLeave     = "On Approved Leave"
	noteArrivedLate = "Arrived Late"
	noteDidNotClock = "Did Not Clock In"
)

type reportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &reportServiceImpl{reportRepo: reportRepo}
}

// Daily implements report.ReportService.
func (s *reportServiceImpl) Daily(ctx context.Context, date string) ([]report.Entry, error) {
	d, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.Rows(ctx, d)
	if err != nil {
		return nil, err
	}

	entries := make([]report.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, derive(row))
	}

	return entries, nil
}

// derive classifies one row. Leave first, then the clock-in comparison against
// the scheduled start.
func derive(row report.Row) report.Entry {
	entry := report.Entry{
		EmployeeID:     row.EmployeeID,
		EmployeeName:   row.FirstName + " " + row.LastName,
		ScheduledStart: timeOfDayString(row.ScheduledStart),
		ScheduledEnd:   timeOfDayString(row.ScheduledEnd),
		ClockIn:        timeOfDayString(row.ClockIn),
		ClockOut:       timeOfDayString(row.ClockOut),
	}

	if row.OnLeave {
		entry.Status = string(attendance.StatusOnLeave)
		entry.Notes = noteOnLeave
		return entry
	}

	// Rows without leave always carry a shift; guard anyway so a malformed
	// row reads as absent rather than panicking.
	var scheduledStart timeutil.TimeOfDay
	if row.ScheduledStart != nil {
		scheduledStart = *row.ScheduledStart
	}

	status := attendance.DeriveStatus(row.ClockIn, scheduledStart)
	entry.Status = string(status)

	switch status {
	case attendance.StatusLate:
		entry.Notes = noteArrivedLate
	case attendance.StatusAbsent:
		entry.Notes = noteDidNotClock
	}

	return entry
}

func timeOfDayString(t *timeutil.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
