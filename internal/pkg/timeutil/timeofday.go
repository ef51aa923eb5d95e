package timeutil

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock "HH:MM:SS" value with no date or zone attached.
// The zero-padded form compares correctly as a plain string, which is exactly
// the comparison the attendance rules use. That comparison is not aware of
// shifts crossing midnight: clocking in at 00:30 hours into an 18:00 overnight
// shift still reads as on time. Known limitation carried over from the system
// this replaces.
type TimeOfDay string

const Layout = "15:04:05"

// Parse validates s as a zero-padded HH:MM:SS value. time.Parse alone also
// accepts unpadded input like "9:30:00", which would defeat the string
// comparison, so the round-trip back through the layout must be exact.
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse(Layout, s)
	if err != nil || t.Format(Layout) != s {
		return "", fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay(s), nil
}

// FromTime extracts the time-of-day portion of t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Format(Layout))
}

// After reports whether t is later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return string(t) > string(other)
}

func (t TimeOfDay) String() string {
	return string(t)
}

const DateLayout = "2006-01-02"

// ParseDate validates s as a zero-padded YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil || d.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
