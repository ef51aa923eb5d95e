package schedule

import (
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
	"github.com/shiftline/workforce-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	StartDate string `json:"start_date"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID          int64  `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsPublished bool   `json:"is_published"`
}

type AssignShiftRequest struct {
	ScheduleID   int64  `json:"schedule_id"`
	EmployeeID   int64  `json:"employee_id"`
	ShiftTypeID  int64  `json:"shift_type_id"`
	AssignedDate string `json:"assigned_date"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ScheduleID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "schedule_id", Message: "schedule_id is required"})
	}
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.ShiftTypeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "shift_type_id", Message: "shift_type_id is required"})
	}
	if _, ok := validator.IsValidDate(r.AssignedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_date",
			Message: "assigned_date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	AssignmentID int64  `json:"assignment_id"`
	AssignedDate string `json:"assigned_date"`
	EmployeeName string `json:"employee_name"`
	ShiftName    string `json:"shift_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type RosterResponse struct {
	AssignedDate string `json:"assigned_date"`
	ShiftName    string `json:"shift_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsPublished  bool   `json:"is_published"`
}

type CreateShiftTypeRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *CreateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 20 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 20 characters"})
	}

	if _, err := timeutil.Parse(r.StartTime); err != nil {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM:SS"})
	}
	if _, err := timeutil.Parse(r.EndTime); err != nil {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM:SS"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftTypeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SetAvailabilityRequest struct {
	DayOfWeek   string `json:"day_of_week"`
	IsAvailable bool   `json:"is_available"`
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

func (r *SetAvailabilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if !weekdays[r.DayOfWeek] {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be a weekday name, e.g. Monday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AvailabilityResponse struct {
	ID          int64  `json:"id"`
	EmployeeID  int64  `json:"employee_id"`
	DayOfWeek   string `json:"day_of_week"`
	IsAvailable bool   `json:"is_available"`
}
