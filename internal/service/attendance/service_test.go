package attendance

import (
	"context"
	"testing"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the Postgres repositories.

type stubScanLog struct {
	byDate attendance.ScansByDate
}

func (s *stubScanLog) Append(_ context.Context, date, uid string, scan attendance.ScanEvent) error {
	if s.byDate == nil {
		s.byDate = attendance.ScansByDate{}
	}
	if s.byDate[date] == nil {
		s.byDate[date] = map[string][]attendance.ScanEvent{}
	}
	s.byDate[date][uid] = append(s.byDate[date][uid], scan)
	return nil
}

func (s *stubScanLog) GetByDate(_ context.Context, date string) (map[string][]attendance.ScanEvent, error) {
	return s.byDate[date], nil
}

func (s *stubScanLog) GetByMonth(_ context.Context, month string) (attendance.ScansByDate, error) {
	return s.byDate, nil
}

func (s *stubScanLog) DeleteByDate(_ context.Context, date string) error {
	delete(s.byDate, date)
	return nil
}

type stubSchedule struct {
	byWeekday map[int]map[string][]attendance.ScheduleWindow
}

func (s *stubSchedule) GetByWeekday(_ context.Context, weekday int) (map[string][]attendance.ScheduleWindow, error) {
	return s.byWeekday[weekday], nil
}

func (s *stubSchedule) GetByTeacherAndWeekday(_ context.Context, uid string, weekday int) ([]attendance.ScheduleWindow, error) {
	return s.byWeekday[weekday][uid], nil
}

type stubTerminal struct {
	lines []string
}

func (s *stubTerminal) Append(_ context.Context, line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *stubTerminal) Tail(_ context.Context, limit int) ([]string, error) {
	if len(s.lines) > limit {
		return s.lines[len(s.lines)-limit:], nil
	}
	return s.lines, nil
}

type stubTeachers struct {
	teachers map[string]teacher.Teacher
}

func (s *stubTeachers) Create(_ context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	s.teachers[t.UID] = t
	return t, nil
}

func (s *stubTeachers) GetByUID(_ context.Context, uid string) (teacher.Teacher, error) {
	t, ok := s.teachers[uid]
	if !ok {
		return teacher.Teacher{}, teacher.ErrTeacherNotFound
	}
	return t, nil
}

func (s *stubTeachers) List(_ context.Context) ([]teacher.Teacher, error) {
	out := make([]teacher.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTeachers) Delete(_ context.Context, uid string) error {
	delete(s.teachers, uid)
	return nil
}

type stubDeviceState struct {
	scanMode bool
	latest   *string
}

func (s *stubDeviceState) SetScanMode(_ context.Context, enabled bool) error {
	s.scanMode = enabled
	return nil
}

func (s *stubDeviceState) GetScanMode(_ context.Context) (bool, error) { return s.scanMode, nil }

func (s *stubDeviceState) SetLatestScan(_ context.Context, uid string) error {
	s.latest = &uid
	return nil
}

func (s *stubDeviceState) GetLatestScan(_ context.Context) (*string, error) { return s.latest, nil }

func (s *stubDeviceState) ClearLatestScan(_ context.Context) error {
	s.latest = nil
	return nil
}

const (
	aliceUID = "04A3B2C1"
	bobUID   = "04D4E5F6"
)

func newTestService(t *testing.T) (attendance.AttendanceService, *stubScanLog, *stubDeviceState, *stubTerminal) {
	t.Helper()

	scanLog := &stubScanLog{byDate: attendance.ScansByDate{
		"2024-03-08": {
			aliceUID: scans(t, "08:02:00", "08:02:00", "09:01:00", "12:00:00"),
			bobUID:   scans(t, "08:20:00"),
		},
	}}
	// 2024-03-08 is a Friday (weekday 5).
	schedules := &stubSchedule{byWeekday: map[int]map[string][]attendance.ScheduleWindow{
		5: {
			aliceUID: {
				window(t, "Math", "08:00 - 09:00"),
				window(t, "Physics", "11:55 - 12:40"),
			},
			bobUID: {
				window(t, "Biology", "08:00 - 09:00"),
			},
		},
	}}
	teachers := &stubTeachers{teachers: map[string]teacher.Teacher{
		aliceUID: {UID: aliceUID, Name: "Alice"},
		bobUID:   {UID: bobUID, Name: "Bob"},
	}}
	device := &stubDeviceState{}
	terminal := &stubTerminal{}

	svc := NewAttendanceService(scanLog, schedules, terminal, teachers, device, 10)
	return svc, scanLog, device, terminal
}

func TestAttendanceService_GetDashboard(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.GetDashboard(ctx, "2024-03-08")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-08", resp.Date)
	assert.Equal(t, 10, resp.GracePeriodMinutes)
	require.Len(t, resp.Rows, 2)

	// Rows are sorted by name.
	alice, bob := resp.Rows[0], resp.Rows[1]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "Bob", bob.Name)

	require.NotNil(t, alice.CheckIn)
	assert.Equal(t, "08:02:00", *alice.CheckIn)
	require.NotNil(t, alice.CheckOut)
	assert.Equal(t, "12:00:00", *alice.CheckOut)
	assert.InDelta(t, 3.97, alice.Hours, 0.01)

	require.Len(t, alice.Windows, 2)
	assert.Equal(t, string(attendance.StatusPresent), alice.Windows[0].Status)
	assert.Equal(t, string(attendance.StatusPresent), alice.Windows[1].Status)

	// Bob checked in 20 minutes late for Biology.
	require.Len(t, bob.Windows, 1)
	assert.Equal(t, string(attendance.StatusLate), bob.Windows[0].Status)
	assert.Nil(t, bob.CheckOut) // single tap, no out
}

func TestAttendanceService_GetDaySheet(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	sheet, err := svc.GetDaySheet(ctx, aliceUID, "2024-03-08")
	require.NoError(t, err)

	assert.Equal(t, "Alice", sheet.Name)
	require.Len(t, sheet.Windows, 2)
	assert.Equal(t, "Math", sheet.Windows[0].Subject)
	assert.Equal(t, "08:00 - 09:00", sheet.Windows[0].Time)

	_, err = svc.GetDaySheet(ctx, "FFFFFFFF", "2024-03-08")
	assert.ErrorIs(t, err, attendance.ErrTeacherNotFound)
}

func TestAttendanceService_GetHoursReport(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.GetHoursReport(ctx, attendance.HoursReportRequest{
		UID:   aliceUID,
		Mode:  "weekly",
		Month: "2024-03",
		Week:  2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ReportID)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2024-03-08", resp.Days[0].Date)
	assert.InDelta(t, 3.97, resp.TotalHours, 0.01)
}

func TestAttendanceService_GetHoursReport_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetHoursReport(ctx, attendance.HoursReportRequest{
		UID:   aliceUID,
		Mode:  "daily",
		Month: "2024-03",
	})
	assert.Error(t, err)

	_, err = svc.GetHoursReport(ctx, attendance.HoursReportRequest{
		UID:   aliceUID,
		Mode:  "weekly",
		Month: "March 2024",
		Week:  2,
	})
	assert.Error(t, err)
}

func TestAttendanceService_RecordScan(t *testing.T) {
	svc, scanLog, _, terminal := newTestService(t)
	ctx := context.Background()

	resp, err := svc.RecordScan(ctx, attendance.RecordScanRequest{
		UID:    aliceUID,
		Time:   "07:58:12",
		Method: "RFID",
	})
	require.NoError(t, err)
	assert.False(t, resp.Enrollment)
	assert.NotEmpty(t, terminal.lines)

	found := false
	for _, perUID := range scanLog.byDate {
		if len(perUID[aliceUID]) > 0 {
			for _, s := range perUID[aliceUID] {
				if s.Time == clock(t, "07:58:12") {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "scan should be appended to the log")
}

func TestAttendanceService_RecordScan_UnknownCard(t *testing.T) {
	svc, _, _, terminal := newTestService(t)
	ctx := context.Background()

	_, err := svc.RecordScan(ctx, attendance.RecordScanRequest{
		UID:    "DEADBEEF",
		Time:   "08:00:00",
		Method: "RFID",
	})
	assert.ErrorIs(t, err, attendance.ErrScanRejected)
	assert.NotEmpty(t, terminal.lines)
}

func TestAttendanceService_RecordScan_EnrollmentCapture(t *testing.T) {
	svc, scanLog, device, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, device.SetScanMode(ctx, true))
	before := len(scanLog.byDate)

	resp, err := svc.RecordScan(ctx, attendance.RecordScanRequest{
		UID:    "deadbeef",
		Time:   "08:00:00",
		Method: "RFID",
	})
	require.NoError(t, err)

	assert.True(t, resp.Enrollment)
	assert.Equal(t, "DEADBEEF", resp.UID) // normalized to upper case
	require.NotNil(t, device.latest)
	assert.Equal(t, "DEADBEEF", *device.latest)
	assert.Len(t, scanLog.byDate, before, "enrollment capture must not touch the scan log")
}

func TestAttendanceService_RecordScan_MalformedTime(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RecordScan(ctx, attendance.RecordScanRequest{
		UID:    aliceUID,
		Time:   "8 o'clock",
		Method: "RFID",
	})
	assert.Error(t, err)
}

func TestAttendanceService_ResetDay(t *testing.T) {
	svc, scanLog, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ResetDay(ctx, attendance.ResetDayRequest{Date: "2024-03-08"}))
	assert.Empty(t, scanLog.byDate["2024-03-08"])

	assert.Error(t, svc.ResetDay(ctx, attendance.ResetDayRequest{Date: "today"}))
}
