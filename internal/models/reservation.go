package models

import (
	"time"

	"github.com/google/uuid"
)

// MinLeadTime is the minimum interval between booking and the reserved slot.
const MinLeadTime = 24 * time.Hour

// Reservation is a table booking for a point in time.
type Reservation struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Time   time.Time `gorm:"not null" json:"time"`
}

// LeadTimeSatisfied reports whether t is far enough in the future to be
// booked: strictly later than now plus MinLeadTime.
func LeadTimeSatisfied(t, now time.Time) bool {
	return t.After(now.Add(MinLeadTime))
}
