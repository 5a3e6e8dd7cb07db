package attendance

import "errors"

// Attendance domain errors
var (
	ErrTeacherNotFound = errors.New("teacher not registered")
	ErrUnknownMode     = errors.New("unknown report mode")

	// ErrScanRejected means the terminal posted a scan for a UID that
	// is not enrolled. The tap is logged to the terminal monitor only.
	ErrScanRejected = errors.New("scan rejected: unknown card")
)
