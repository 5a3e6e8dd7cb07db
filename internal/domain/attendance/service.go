package attendance

import (
	"context"
)

// AttendanceService defines the reconciliation-backed operations the
// dashboard consumes. Every read recomputes from the current store
// snapshot; there is no cached derived state.
type AttendanceService interface {
	// GetDashboard reconciles every registered teacher's scans against
	// their timetable for one date.
	GetDashboard(ctx context.Context, date string) (DashboardResponse, error)

	// GetDaySheet reconciles one teacher's scans for one date.
	GetDaySheet(ctx context.Context, uid string, date string) (DaySheetResponse, error)

	// GetHoursReport aggregates worked hours for one teacher over a
	// month, or over one week-of-month in weekly mode.
	GetHoursReport(ctx context.Context, req HoursReportRequest) (HoursReportResponse, error)

	// RecordScan ingests one tap from the hardware terminal. While the
	// dashboard is in enrollment scan mode the UID is captured for
	// registration instead of being logged.
	RecordScan(ctx context.Context, req RecordScanRequest) (RecordScanResponse, error)

	// ResetDay deletes all scan logs for a date.
	ResetDay(ctx context.Context, req ResetDayRequest) error

	// GetTerminalLog returns the most recent hardware monitor lines.
	GetTerminalLog(ctx context.Context, limit int) ([]string, error)
}
