package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/handler/http/response"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	DaySheet(w http.ResponseWriter, r *http.Request)
	HoursReport(w http.ResponseWriter, r *http.Request)
	RecordScan(w http.ResponseWriter, r *http.Request)
	ResetDay(w http.ResponseWriter, r *http.Request)
	TerminalLog(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Dashboard implements AttendanceHandler.
func (h *attendanceHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(timeutil.ISODateLayout)
	}

	resp, err := h.attendanceService.GetDashboard(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DaySheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) DaySheet(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(timeutil.ISODateLayout)
	}

	resp, err := h.attendanceService.GetDaySheet(r.Context(), uid, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// HoursReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) HoursReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	week, _ := strconv.Atoi(query.Get("week"))

	req := attendance.HoursReportRequest{
		UID:   chi.URLParam(r, "uid"),
		Mode:  query.Get("mode"),
		Month: query.Get("month"),
		Week:  week,
	}

	resp, err := h.attendanceService.GetHoursReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// RecordScan implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordScan(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	resp, err := h.attendanceService.RecordScan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Scan recorded", resp)
}

// ResetDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) ResetDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.ResetDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	if err := h.attendanceService.ResetDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance reset for "+req.Date, nil)
}

// TerminalLog implements AttendanceHandler.
func (h *attendanceHandlerImpl) TerminalLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	lines, err := h.attendanceService.GetTerminalLog(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string][]string{"lines": lines})
}
