package models

// Role values for the two-tier access model.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or administrator.
type User struct {
	BaseModel
	PhoneNumber  string `gorm:"uniqueIndex;not null" json:"phone_number"`
	Name         string `json:"name"`
	Role         string `gorm:"not null;default:user" json:"role"`
	PasswordHash string `gorm:"not null" json:"-"`

	Cart         *Cart         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders       []Order       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reservations []Reservation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
