package timeutil

import "fmt"

// FormatError reports a malformed time, window-span or date string.
// The upstream schedule or log data is corrupt; callers must surface it
// rather than substitute a default.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time string %q: %s", e.Input, e.Reason)
}
