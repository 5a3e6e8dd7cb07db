package attendance

import (
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
)

// ScanEvent is one recorded tap for one teacher on one day. Events are
// immutable once logged; duplicates (same second) are legal and their
// relative order is insignificant.
type ScanEvent struct {
	Time   timeutil.TimeOfDay
	Method string // RFID or QR
}

// ScheduleWindow is one scheduled class period for a teacher on a
// weekday. Start is strictly before End. Windows on the same weekday
// may overlap.
type ScheduleWindow struct {
	Subject string
	Start   timeutil.TimeOfDay
	End     timeutil.TimeOfDay
}

// Status of one schedule window after reconciliation.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusMissing Status = "missing"
)

// WindowReport is the reconciliation outcome for one schedule window.
// Derived on every read, never stored.
type WindowReport struct {
	Subject  string
	CheckIn  *timeutil.TimeOfDay
	CheckOut *timeutil.TimeOfDay
	Status   Status
}

// DailyHours is the worked-hours reduction of one day's unpartitioned
// scan set, independent of schedule windows.
type DailyHours struct {
	First *timeutil.TimeOfDay
	Last  *timeutil.TimeOfDay
	Hours float64
}

// ReportMode selects the aggregation window for an hours report.
type ReportMode string

const (
	ReportModeMonthly ReportMode = "monthly"
	ReportModeWeekly  ReportMode = "weekly"
)

var ReportModeValues = []string{
	string(ReportModeMonthly),
	string(ReportModeWeekly),
}

// ScansByDate is a snapshot of scan logs: ISO date -> teacher UID ->
// that teacher's scan events on that date.
type ScansByDate map[string]map[string][]ScanEvent
