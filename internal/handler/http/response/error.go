package response

import (
	"errors"
	"net/http"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/auth"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrClerkNotFound):
		NotFound(w, "Clerk not found")

	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCedulaExists):
		Conflict(w, "Cedula already registered")

	case errors.Is(err, novelty.ErrNoveltyNotFound):
		NotFound(w, "Novelty not found")
	case errors.Is(err, novelty.ErrUnknownType):
		BadRequest(w, "Unknown novelty type", nil)

	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")

	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "No payroll run stored for that month")
	case errors.Is(err, payroll.ErrRatesNotFound):
		NotFound(w, "Deduction rates not configured")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
