package auth

import "github.com/shiftline/workforce-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`

	Principal PrincipalResponse `json:"principal"`
}

// PrincipalResponse mirrors the session principal: who logged in and whether
// they hold the admin flag.
type PrincipalResponse struct {
	UserID     int64  `json:"user_id"`
	EmployeeID int64  `json:"employee_id"`
	IsAdmin    bool   `json:"is_admin"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}
