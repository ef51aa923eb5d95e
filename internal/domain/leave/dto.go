package leave

import "github.com/shiftline/workforce-backend-go/internal/pkg/validator"

type SubmitRequestRequest struct {
	EmployeeID  int64  `json:"-"` // From JWT claims
	LeaveTypeID int64  `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveTypeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TypeName     string `json:"type_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsApproved   bool   `json:"is_approved"`
}

type LeaveTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
