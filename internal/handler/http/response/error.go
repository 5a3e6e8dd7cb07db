package response

import (
	"errors"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Corrupt schedule or log strings surface as format errors; the
	// stored data needs fixing, not the request.
	var formatErr *timeutil.FormatError
	if errors.As(err, &formatErr) {
		BadRequest(w, formatErr.Error(), nil)
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, attendance.ErrScanRejected):
		NotFound(w, "Card is not enrolled")
	case errors.Is(err, attendance.ErrUnknownMode):
		BadRequest(w, "Unknown report mode", nil)

	// Teacher domain errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, teacher.ErrUIDAlreadyTaken):
		Conflict(w, "Card UID is already registered")
	case errors.Is(err, teacher.ErrScanModeDisabled):
		Conflict(w, "Enrollment scan mode is not active")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
