package teacher

import (
	"context"
)

// TeacherService defines registry and enrollment operations.
type TeacherService interface {
	// Register enrolls a scanned UID under a name and ends the
	// enrollment handshake.
	Register(ctx context.Context, req RegisterTeacherRequest) (TeacherResponse, error)

	List(ctx context.Context) ([]TeacherResponse, error)
	Remove(ctx context.Context, uid string) error

	// StartEnrollment puts the terminal in scan mode; the next tap is
	// captured instead of logged.
	StartEnrollment(ctx context.Context) error

	// CancelEnrollment clears scan mode and any captured UID.
	CancelEnrollment(ctx context.Context) error

	// GetEnrollmentState reports scan mode and the captured UID, if any.
	GetEnrollmentState(ctx context.Context) (EnrollmentStateResponse, error)
}
