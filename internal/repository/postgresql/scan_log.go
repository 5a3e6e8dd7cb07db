package postgresql

import (
	"context"
	"fmt"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timeutil"
)

type scanLogRepository struct {
	db *database.DB
}

// Append implements attendance.ScanLogRepository.
func (r *scanLogRepository) Append(ctx context.Context, date string, uid string, scan attendance.ScanEvent) error {
	query := `
		INSERT INTO scan_logs (scan_date, teacher_uid, scan_time, method)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, date, uid, scan.Time.Clock(), scan.Method)
	if err != nil {
		return fmt.Errorf("failed to append scan log: %w", err)
	}
	return nil
}

// GetByDate implements attendance.ScanLogRepository.
func (r *scanLogRepository) GetByDate(ctx context.Context, date string) (map[string][]attendance.ScanEvent, error) {
	query := `
		SELECT teacher_uid, to_char(scan_time, 'HH24:MI:SS'), method
		FROM scan_logs
		WHERE scan_date = $1
		ORDER BY teacher_uid, scan_time
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get scans for %s: %w", date, err)
	}
	defer rows.Close()

	byUID := make(map[string][]attendance.ScanEvent)
	for rows.Next() {
		var uid, clock, method string
		if err := rows.Scan(&uid, &clock, &method); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		tod, err := timeutil.ParseClock(clock)
		if err != nil {
			return nil, err
		}
		byUID[uid] = append(byUID[uid], attendance.ScanEvent{Time: tod, Method: method})
	}

	return byUID, rows.Err()
}

// GetByMonth implements attendance.ScanLogRepository.
func (r *scanLogRepository) GetByMonth(ctx context.Context, month string) (attendance.ScansByDate, error) {
	query := `
		SELECT to_char(scan_date, 'YYYY-MM-DD'), teacher_uid, to_char(scan_time, 'HH24:MI:SS'), method
		FROM scan_logs
		WHERE to_char(scan_date, 'YYYY-MM') = $1
		ORDER BY scan_date, teacher_uid, scan_time
	`

	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get scans for %s: %w", month, err)
	}
	defer rows.Close()

	byDate := make(attendance.ScansByDate)
	for rows.Next() {
		var date, uid, clock, method string
		if err := rows.Scan(&date, &uid, &clock, &method); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		tod, err := timeutil.ParseClock(clock)
		if err != nil {
			return nil, err
		}
		if byDate[date] == nil {
			byDate[date] = make(map[string][]attendance.ScanEvent)
		}
		byDate[date][uid] = append(byDate[date][uid], attendance.ScanEvent{Time: tod, Method: method})
	}

	return byDate, rows.Err()
}

// DeleteByDate implements attendance.ScanLogRepository.
func (r *scanLogRepository) DeleteByDate(ctx context.Context, date string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM scan_logs WHERE scan_date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete scans for %s: %w", date, err)
	}
	return nil
}

func NewScanLogRepository(db *database.DB) attendance.ScanLogRepository {
	return &scanLogRepository{db: db}
}
