package master

import "github.com/shiftline/workforce-backend-go/internal/pkg/validator"

type CreateNamedEntryRequest struct {
	Name string `json:"name"`
}

func (r *CreateNamedEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateDepartmentRequest struct {
	Name       string `json:"name"`
	LocationID *int64 `json:"location_id"`
}

func (r *CreateDepartmentRequest) Validate() error {
	named := CreateNamedEntryRequest{Name: r.Name}
	return named.Validate()
}

type CreateWorkLocationRequest struct {
	Address string `json:"address"`
}

func (r *CreateWorkLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	} else if len(r.Address) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 150 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
