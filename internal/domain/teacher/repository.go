package teacher

import (
	"context"
)

// TeacherRepository defines data access for the enrolled-staff registry.
type TeacherRepository interface {
	Create(ctx context.Context, t Teacher) (Teacher, error)
	GetByUID(ctx context.Context, uid string) (Teacher, error)
	List(ctx context.Context) ([]Teacher, error)
	Delete(ctx context.Context, uid string) error
}

// DeviceStateRepository holds the enrollment handshake shared with the
// hardware terminal: whether the dashboard is waiting for a card, and
// the UID of the last card captured while waiting.
type DeviceStateRepository interface {
	SetScanMode(ctx context.Context, enabled bool) error
	GetScanMode(ctx context.Context) (bool, error)
	SetLatestScan(ctx context.Context, uid string) error
	GetLatestScan(ctx context.Context) (*string, error)
	ClearLatestScan(ctx context.Context) error
}
