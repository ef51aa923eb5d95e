package response

import (
	"errors"
	"net/http"

	"github.com/shiftline/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftline/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline/workforce-backend-go/internal/domain/master"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"github.com/shiftline/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User account domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User account not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username is already taken")
	case errors.Is(err, user.ErrEmployeeHasAccount):
		Conflict(w, "Employee already has a user account")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Reference data errors
	case errors.Is(err, master.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, master.ErrWorkLocationNotFound):
		NotFound(w, "Work location not found")

	// Scheduling errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Weekly schedule not found")
	case errors.Is(err, schedule.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrNoShiftScheduled):
		NotFound(w, "No shift scheduled for this date")
	case errors.Is(err, schedule.ErrDateOutsideSchedule):
		BadRequest(w, "Assigned date falls outside the schedule week", nil)
	case errors.Is(err, schedule.ErrDuplicateAssignment):
		Conflict(w, "Employee already has an assignment on this date")

	// Attendance errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNoActiveShift):
		Conflict(w, "No active shift")
	case errors.Is(err, attendance.ErrBreakAlreadyActive):
		Conflict(w, "A break is already active")
	case errors.Is(err, attendance.ErrNoActiveBreak):
		Conflict(w, "No active break")
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
