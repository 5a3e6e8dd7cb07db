package postgresql

import (
	"context"
	"fmt"
	"sort"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
)

type scheduleRepository struct {
	db *database.DB
}

// Windows are stored in their "HH:MM - HH:MM" span form, exactly as
// entered in the schedule editor, and parsed here so a corrupt row
// surfaces as a *timeutil.FormatError instead of a silent default.

// GetByWeekday implements attendance.ScheduleRepository.
func (r *scheduleRepository) GetByWeekday(ctx context.Context, weekday int) (map[string][]attendance.ScheduleWindow, error) {
	query := `
		SELECT teacher_uid, subject, time_span
		FROM schedule_windows
		WHERE day_of_week = $1
		ORDER BY teacher_uid
	`

	rows, err := r.db.Query(ctx, query, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules for weekday %d: %w", weekday, err)
	}
	defer rows.Close()

	byUID := make(map[string][]attendance.ScheduleWindow)
	for rows.Next() {
		var uid string
		w, err := scanWindow(rows.Scan, &uid)
		if err != nil {
			return nil, err
		}
		byUID[uid] = append(byUID[uid], w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for uid := range byUID {
		sortWindows(byUID[uid])
	}
	return byUID, nil
}

// GetByTeacherAndWeekday implements attendance.ScheduleRepository.
func (r *scheduleRepository) GetByTeacherAndWeekday(ctx context.Context, uid string, weekday int) ([]attendance.ScheduleWindow, error) {
	query := `
		SELECT teacher_uid, subject, time_span
		FROM schedule_windows
		WHERE teacher_uid = $1 AND day_of_week = $2
	`

	rows, err := r.db.Query(ctx, query, uid, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule for %s: %w", uid, err)
	}
	defer rows.Close()

	var windows []attendance.ScheduleWindow
	for rows.Next() {
		var rowUID string
		w, err := scanWindow(rows.Scan, &rowUID)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortWindows(windows)
	return windows, nil
}

func scanWindow(scan func(dest ...any) error, uid *string) (attendance.ScheduleWindow, error) {
	var subject, span string
	if err := scan(uid, &subject, &span); err != nil {
		return attendance.ScheduleWindow{}, fmt.Errorf("failed to scan schedule row: %w", err)
	}
	start, end, err := timeutil.ParseWindow(span)
	if err != nil {
		return attendance.ScheduleWindow{}, err
	}
	return attendance.ScheduleWindow{Subject: subject, Start: start, End: end}, nil
}

func sortWindows(windows []attendance.ScheduleWindow) {
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].Start < windows[j].Start
	})
}

func NewScheduleRepository(db *database.DB) attendance.ScheduleRepository {
	return &scheduleRepository{db: db}
}
