package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DefaultAvailabilityStart = "08:00"
	DefaultAvailabilityEnd   = "18:00"
)

// Availability is a clerk's opt-in (or block-out) for one calendar date.
// There is at most one record per (user, date).
type Availability struct {
	BaseModel
	UserID        uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_availability_user_date" validate:"required"`
	AvailableDate datatypes.Date `json:"available_date" gorm:"type:date;not null;uniqueIndex:idx_availability_user_date;index"`
	IsAvailable   bool           `json:"is_available" gorm:"not null;index"`
	StartTime     string         `json:"start_time" gorm:"size:5;not null;default:'08:00'"`
	EndTime       string         `json:"end_time" gorm:"size:5;not null;default:'18:00'"`
	Postcode      string         `json:"postcode" gorm:"size:20"`
	Notes         string         `json:"notes" gorm:"type:text"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Availability
func (Availability) TableName() string {
	return "clerk_availability"
}

// Date returns the availability date as a time.Time at midnight UTC.
func (a *Availability) Date() time.Time {
	return time.Time(a.AvailableDate)
}
