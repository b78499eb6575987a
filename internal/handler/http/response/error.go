package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hrms/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrEmployeeProfileMissing):
		Forbidden(w, "Account is not linked to an employee")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidWage),
		errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrComponentConsistency):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrDuplicatePayrollPeriod):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrPayrollAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidYear):
		BadRequest(w, "Invalid year", nil)

	// Default
	default:
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
