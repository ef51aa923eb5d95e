package report

import "context"

type ReportService interface {
	// Daily derives the per-employee attendance report for one date. Approved
	// leave takes precedence over any attendance the employee logged.
	Daily(ctx context.Context, date string) ([]Entry, error)
}
