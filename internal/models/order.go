package models

import "github.com/google/uuid"

// Order status values. A flat set: any status may follow any other.
const (
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
	StatusCanceled   = "canceled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Order is an immutable snapshot of a cart at checkout time. Orders are
// never deleted; only their status changes.
type Order struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Products   LineMap   `gorm:"type:jsonb;not null;default:'{}'" json:"products"`
	TotalPrice float64   `gorm:"not null;default:0" json:"total_price"`
	Status     string    `gorm:"not null;default:'in progress'" json:"status"`
}

// NewOrderFromCart snapshots the cart's lines and total into a fresh order
// with status "in progress". The line map is copied so the cart can be
// cleared without touching the order.
func NewOrderFromCart(cart *Cart) Order {
	return Order{
		UserID:     cart.UserID,
		Products:   cart.Products.Copy(),
		TotalPrice: cart.TotalPrice,
		Status:     StatusInProgress,
	}
}
