package teacher

import "errors"

// Teacher domain errors
var (
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrUIDAlreadyTaken  = errors.New("card UID is already registered")
	ErrScanModeDisabled = errors.New("enrollment scan mode is not active")
)
