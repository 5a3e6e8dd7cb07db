package teacher

import (
	"time"
)

// Teacher is one enrolled staff member, keyed by the UID of their
// RFID card or QR badge.
type Teacher struct {
	UID       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
