package models

import (
	"time"

	"field-service-backend/internal/geo"

	"github.com/paulmach/orb"
)

// User is an admin, agent or clerk. Clerks carry shift and live-location state.
type User struct {
	BaseModel
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName string `json:"full_name" gorm:"not null;size:255" validate:"required,max=255"`
	Phone    string `json:"phone" gorm:"size:50"`
	Role     Role   `json:"role" gorm:"type:varchar(20);not null;index" validate:"required"`

	AddressLine1   string `json:"address_line_1" gorm:"size:255"`
	AddressLine2   string `json:"address_line_2" gorm:"size:255"`
	City           string `json:"city" gorm:"size:100"`
	Postcode       string `json:"postcode" gorm:"size:20"`
	AddressFileURL string `json:"address_file_url" gorm:"size:500"`

	IsActive           bool       `json:"is_active" gorm:"not null;index"`
	IsOnShift          bool       `json:"is_on_shift" gorm:"not null;index"`
	CurrentLat         *float64   `json:"current_lat,omitempty" gorm:"type:numeric(10,8)"`
	CurrentLng         *float64   `json:"current_lng,omitempty" gorm:"type:numeric(11,8)"`
	LastLocationUpdate *time.Time `json:"last_location_update,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsClerk reports whether the user has the clerk role
func (u *User) IsClerk() bool {
	return u.Role == RoleClerk
}

// Location returns the clerk's last reported position, if any.
func (u *User) Location() (orb.Point, bool) {
	return geo.PointFrom(u.CurrentLat, u.CurrentLng)
}

// ShiftAddressComplete reports whether the address fields required to go on shift are filled in.
func (u *User) ShiftAddressComplete() bool {
	return u.AddressLine1 != "" && u.City != "" && u.Postcode != "" && u.AddressFileURL != ""
}
