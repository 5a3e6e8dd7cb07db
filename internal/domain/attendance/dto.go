package attendance

import (
	"strings"

	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type WindowReportResponse struct {
	Subject  string  `json:"subject"`
	Time     string  `json:"time"` // "HH:MM - HH:MM"
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   string  `json:"status"`
}

type DashboardRow struct {
	UID      string                 `json:"uid"`
	Name     string                 `json:"name"`
	CheckIn  *string                `json:"check_in,omitempty"`  // first tap of the day
	CheckOut *string                `json:"check_out,omitempty"` // last tap of the day
	Hours    float64                `json:"hours"`
	Windows  []WindowReportResponse `json:"windows"`
}

type DashboardResponse struct {
	Date               string         `json:"date"`
	DisplayDate        string         `json:"display_date"`
	GracePeriodMinutes int            `json:"grace_period_minutes"`
	Rows               []DashboardRow `json:"rows"`
}

type DaySheetResponse struct {
	UID     string                 `json:"uid"`
	Name    string                 `json:"name"`
	Date    string                 `json:"date"`
	Windows []WindowReportResponse `json:"windows"`
}

type HoursReportRequest struct {
	UID   string `json:"uid"`
	Mode  string `json:"mode"`
	Month string `json:"month"` // "YYYY-MM"
	Week  int    `json:"week"`  // weekly mode only, 1-5
}

func (r *HoursReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid is required",
		})
	}
	if !validator.IsInSlice(r.Mode, ReportModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: " + strings.Join(ReportModeValues, ", "),
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if r.Mode == string(ReportModeWeekly) && (r.Week < 1 || r.Week > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyHoursResponse struct {
	Date  string  `json:"date"`
	First *string `json:"first,omitempty"`
	Last  *string `json:"last,omitempty"`
	Hours float64 `json:"hours"`
}

type HoursReportResponse struct {
	ReportID   string               `json:"report_id"`
	UID        string               `json:"uid"`
	Mode       string               `json:"mode"`
	Month      string               `json:"month"`
	Week       int                  `json:"week,omitempty"`
	TotalHours float64              `json:"total_hours"`
	Days       []DailyHoursResponse `json:"days"`
}

type RecordScanRequest struct {
	UID    string `json:"uid"`
	Time   string `json:"time"` // "HH:MM:SS"
	Method string `json:"method"`
}

func (r *RecordScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUID(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid must be a hex card identifier",
		})
	}
	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	}
	if validator.IsEmpty(r.Method) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordScanResponse struct {
	UID        string `json:"uid"`
	Time       string `json:"time"`
	Enrollment bool   `json:"enrollment"` // captured for enrollment, not logged
}

type ResetDayRequest struct {
	Date string `json:"date"`
}

func (r *ResetDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
