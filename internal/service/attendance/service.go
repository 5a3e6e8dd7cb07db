package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.ScanLogRepository
	attendance.ScheduleRepository
	attendance.TerminalRepository
	teacherRepo        teacher.TeacherRepository
	deviceRepo         teacher.DeviceStateRepository
	gracePeriodMinutes int
}

// clockPtr safely renders an optional time-of-day as "HH:MM:SS".
func clockPtr(t *timeutil.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	clock := t.Clock()
	return &clock
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// GetDashboard implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetDashboard(ctx context.Context, date string) (attendance.DashboardResponse, error) {
	weekday, err := timeutil.Weekday(date)
	if err != nil {
		return attendance.DashboardResponse{}, err
	}
	displayDate, err := timeutil.DisplayDate(date)
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	teachers, err := a.teacherRepo.List(ctx)
	if err != nil {
		return attendance.DashboardResponse{}, fmt.Errorf("failed to list teachers: %w", err)
	}

	windowsByUID, err := a.ScheduleRepository.GetByWeekday(ctx, weekday)
	if err != nil {
		return attendance.DashboardResponse{}, fmt.Errorf("failed to load schedules: %w", err)
	}

	scansByUID, err := a.ScanLogRepository.GetByDate(ctx, date)
	if err != nil {
		return attendance.DashboardResponse{}, fmt.Errorf("failed to load scan logs: %w", err)
	}

	rows := make([]attendance.DashboardRow, 0, len(teachers))
	for _, t := range teachers {
		scans := scansByUID[t.UID]
		reports := Reconcile(windowsByUID[t.UID], scans, a.gracePeriodMinutes)
		day := DailyHours(scans)

		// The OUT column stays empty until a second distinct tap.
		checkOut := day.Last
		if day.First != nil && day.Last != nil && *day.First == *day.Last {
			checkOut = nil
		}

		rows = append(rows, attendance.DashboardRow{
			UID:      t.UID,
			Name:     t.Name,
			CheckIn:  clockPtr(day.First),
			CheckOut: clockPtr(checkOut),
			Hours:    roundHours(day.Hours),
			Windows:  mapWindowReports(windowsByUID[t.UID], reports),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	return attendance.DashboardResponse{
		Date:               date,
		DisplayDate:        displayDate,
		GracePeriodMinutes: a.gracePeriodMinutes,
		Rows:               rows,
	}, nil
}

// GetDaySheet implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetDaySheet(ctx context.Context, uid string, date string) (attendance.DaySheetResponse, error) {
	weekday, err := timeutil.Weekday(date)
	if err != nil {
		return attendance.DaySheetResponse{}, err
	}

	t, err := a.teacherRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, teacher.ErrTeacherNotFound) {
			return attendance.DaySheetResponse{}, attendance.ErrTeacherNotFound
		}
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	windows, err := a.ScheduleRepository.GetByTeacherAndWeekday(ctx, uid, weekday)
	if err != nil {
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	scansByUID, err := a.ScanLogRepository.GetByDate(ctx, date)
	if err != nil {
		return attendance.DaySheetResponse{}, fmt.Errorf("failed to load scan logs: %w", err)
	}

	reports := Reconcile(windows, scansByUID[uid], a.gracePeriodMinutes)

	return attendance.DaySheetResponse{
		UID:     t.UID,
		Name:    t.Name,
		Date:    date,
		Windows: mapWindowReports(windows, reports),
	}, nil
}

// GetHoursReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHoursReport(ctx context.Context, req attendance.HoursReportRequest) (attendance.HoursReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.HoursReportResponse{}, err
	}

	if _, err := a.teacherRepo.GetByUID(ctx, req.UID); err != nil {
		if errors.Is(err, teacher.ErrTeacherNotFound) {
			return attendance.HoursReportResponse{}, attendance.ErrTeacherNotFound
		}
		return attendance.HoursReportResponse{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	byDate, err := a.ScanLogRepository.GetByMonth(ctx, req.Month)
	if err != nil {
		return attendance.HoursReportResponse{}, fmt.Errorf("failed to load scan logs: %w", err)
	}

	mode := attendance.ReportMode(req.Mode)
	total := PeriodHours(byDate, req.UID, mode, req.Month, req.Week)

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		if strings.HasPrefix(date, req.Month) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	days := make([]attendance.DailyHoursResponse, 0, len(dates))
	for _, date := range dates {
		if mode == attendance.ReportModeWeekly {
			wom, err := timeutil.WeekOfMonth(date)
			if err != nil || wom != req.Week {
				continue
			}
		}
		day := DailyHours(byDate[date][req.UID])
		days = append(days, attendance.DailyHoursResponse{
			Date:  date,
			First: clockPtr(day.First),
			Last:  clockPtr(day.Last),
			Hours: roundHours(day.Hours),
		})
	}

	return attendance.HoursReportResponse{
		ReportID:   uuid.NewString(),
		UID:        req.UID,
		Mode:       req.Mode,
		Month:      req.Month,
		Week:       req.Week,
		TotalHours: roundHours(total),
		Days:       days,
	}, nil
}

// RecordScan implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordScan(ctx context.Context, req attendance.RecordScanRequest) (attendance.RecordScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordScanResponse{}, err
	}

	tod, err := timeutil.ParseClock(req.Time)
	if err != nil {
		return attendance.RecordScanResponse{}, err
	}
	uid := strings.ToUpper(req.UID)

	scanning, err := a.deviceRepo.GetScanMode(ctx)
	if err != nil {
		return attendance.RecordScanResponse{}, fmt.Errorf("failed to read scan mode: %w", err)
	}

	if scanning {
		if err := a.deviceRepo.SetLatestScan(ctx, uid); err != nil {
			return attendance.RecordScanResponse{}, fmt.Errorf("failed to capture enrollment scan: %w", err)
		}
		_ = a.TerminalRepository.Append(ctx, fmt.Sprintf("[%s] ENROLL CAPTURE uid=%s", req.Time, uid))
		return attendance.RecordScanResponse{UID: uid, Time: req.Time, Enrollment: true}, nil
	}

	t, err := a.teacherRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, teacher.ErrTeacherNotFound) {
			_ = a.TerminalRepository.Append(ctx, fmt.Sprintf("[%s] REJECT uid=%s unknown card", req.Time, uid))
			return attendance.RecordScanResponse{}, attendance.ErrScanRejected
		}
		return attendance.RecordScanResponse{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	date := time.Now().Format(timeutil.ISODateLayout)
	scan := attendance.ScanEvent{Time: tod, Method: req.Method}
	if err := a.ScanLogRepository.Append(ctx, date, uid, scan); err != nil {
		return attendance.RecordScanResponse{}, fmt.Errorf("failed to append scan log: %w", err)
	}
	_ = a.TerminalRepository.Append(ctx, fmt.Sprintf("[%s] SCAN uid=%s name=%s method=%s", req.Time, uid, t.Name, req.Method))

	return attendance.RecordScanResponse{UID: uid, Time: req.Time}, nil
}

// ResetDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ResetDay(ctx context.Context, req attendance.ResetDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := a.ScanLogRepository.DeleteByDate(ctx, req.Date); err != nil {
		return fmt.Errorf("failed to reset day: %w", err)
	}
	_ = a.TerminalRepository.Append(ctx, fmt.Sprintf("RESET date=%s", req.Date))
	return nil
}

// GetTerminalLog implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTerminalLog(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	lines, err := a.TerminalRepository.Tail(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal log: %w", err)
	}
	return lines, nil
}

func mapWindowReports(windows []attendance.ScheduleWindow, reports []attendance.WindowReport) []attendance.WindowReportResponse {
	out := make([]attendance.WindowReportResponse, 0, len(reports))
	for i, rep := range reports {
		out = append(out, attendance.WindowReportResponse{
			Subject:  rep.Subject,
			Time:     windows[i].Start.Short() + " - " + windows[i].End.Short(),
			CheckIn:  clockPtr(rep.CheckIn),
			CheckOut: clockPtr(rep.CheckOut),
			Status:   string(rep.Status),
		})
	}
	return out
}

func NewAttendanceService(
	scanRepo attendance.ScanLogRepository,
	scheduleRepo attendance.ScheduleRepository,
	terminalRepo attendance.TerminalRepository,
	teacherRepo teacher.TeacherRepository,
	deviceRepo teacher.DeviceStateRepository,
	gracePeriodMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		ScanLogRepository:  scanRepo,
		ScheduleRepository: scheduleRepo,
		TerminalRepository: terminalRepo,
		teacherRepo:        teacherRepo,
		deviceRepo:         deviceRepo,
		gracePeriodMinutes: gracePeriodMinutes,
	}
}
