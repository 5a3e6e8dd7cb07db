package attendance

import (
	"context"
)

// ScanLogRepository reads and appends the raw tap log. The log store
// owns the data; reconciliation never writes derived state back.
type ScanLogRepository interface {
	// Append records one tap for a teacher on a date.
	Append(ctx context.Context, date string, uid string, scan ScanEvent) error

	// GetByDate returns every teacher's scans for one ISO date.
	GetByDate(ctx context.Context, date string) (map[string][]ScanEvent, error)

	// GetByMonth returns the scan snapshot for every date with the
	// given "YYYY-MM" prefix.
	GetByMonth(ctx context.Context, month string) (ScansByDate, error)

	// DeleteByDate removes all scans for a date (dashboard reset-day).
	DeleteByDate(ctx context.Context, date string) error
}

// ScheduleRepository reads the timetable snapshot. Windows are parsed
// from their "HH:MM - HH:MM" stored form at this boundary, so corrupt
// schedule rows surface as *timeutil.FormatError instead of being
// coerced.
type ScheduleRepository interface {
	// GetByWeekday returns each teacher's windows for an ISO weekday
	// (1=Monday .. 7=Sunday), sorted ascending by start time.
	GetByWeekday(ctx context.Context, weekday int) (map[string][]ScheduleWindow, error)

	// GetByTeacherAndWeekday returns one teacher's windows for a
	// weekday, sorted ascending by start time.
	GetByTeacherAndWeekday(ctx context.Context, uid string, weekday int) ([]ScheduleWindow, error)
}

// TerminalRepository mirrors the hardware serial monitor shown at the
// bottom of the dashboard.
type TerminalRepository interface {
	Append(ctx context.Context, line string) error
	Tail(ctx context.Context, limit int) ([]string, error)
}
