package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// Rows returns one row per employee with a shift assignment or approved
	// leave on the date, ordered by last name then first name.
	Rows(ctx context.Context, date time.Time) ([]Row, error)
}
