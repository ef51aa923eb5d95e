package employee

import "github.com/shiftline/workforce-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DepartmentID *int64 `json:"department_id"`
	JobID        *int64 `json:"job_id"`
	TypeID       *int64 `json:"type_id"`
	SkillID      *int64 `json:"skill_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	DepartmentName *string `json:"department_name"`
	JobTitle       *string `json:"job_title"`
	EmploymentType *string `json:"employment_type"`
	SkillName      *string `json:"skill_name"`
}
