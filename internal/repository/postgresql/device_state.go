package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/edutrack/edutrack-backend-go/internal/domain/teacher"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// device_state is a single-row key/value table shared with the hardware
// terminal, the Postgres counterpart of the realtime store's
// config/scan_mode and latest_scan paths.

type deviceStateRepository struct {
	db *database.DB
}

func (r *deviceStateRepository) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO device_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set device state %s: %w", key, err)
	}
	return nil
}

func (r *deviceStateRepository) get(ctx context.Context, key string) (*string, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM device_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device state %s: %w", key, err)
	}
	return &value, nil
}

// SetScanMode implements teacher.DeviceStateRepository.
func (r *deviceStateRepository) SetScanMode(ctx context.Context, enabled bool) error {
	value := "off"
	if enabled {
		value = "on"
	}
	return r.set(ctx, "scan_mode", value)
}

// GetScanMode implements teacher.DeviceStateRepository.
func (r *deviceStateRepository) GetScanMode(ctx context.Context) (bool, error) {
	value, err := r.get(ctx, "scan_mode")
	if err != nil {
		return false, err
	}
	return value != nil && *value == "on", nil
}

// SetLatestScan implements teacher.DeviceStateRepository.
func (r *deviceStateRepository) SetLatestScan(ctx context.Context, uid string) error {
	return r.set(ctx, "latest_scan", uid)
}

// GetLatestScan implements teacher.DeviceStateRepository.
func (r *deviceStateRepository) GetLatestScan(ctx context.Context) (*string, error) {
	return r.get(ctx, "latest_scan")
}

// ClearLatestScan implements teacher.DeviceStateRepository.
func (r *deviceStateRepository) ClearLatestScan(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM device_state WHERE key = 'latest_scan'`); err != nil {
		return fmt.Errorf("failed to clear latest scan: %w", err)
	}
	return nil
}

func NewDeviceStateRepository(db *database.DB) teacher.DeviceStateRepository {
	return &deviceStateRepository{db: db}
}
