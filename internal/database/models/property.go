package models

import (
	"field-service-backend/internal/geo"

	"github.com/paulmach/orb"
)

// Property is a physical location jobs are carried out at
type Property struct {
	BaseModel
	ReferenceNumber string   `json:"reference_number" gorm:"size:100;index"`
	AddressLine1    string   `json:"address_line_1" gorm:"not null;size:255" validate:"required,max=255"`
	AddressLine2    string   `json:"address_line_2" gorm:"size:255"`
	City            string   `json:"city" gorm:"size:100"`
	Postcode        string   `json:"postcode" gorm:"not null;size:20;index" validate:"required,max=20"`
	Latitude        *float64 `json:"latitude,omitempty" gorm:"type:numeric(10,8)"`
	Longitude       *float64 `json:"longitude,omitempty" gorm:"type:numeric(11,8)"`
	ClientName      string   `json:"client_name" gorm:"size:255"`
	IsActive        bool     `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}

// Location returns the property's coordinates when both are known.
func (p *Property) Location() (orb.Point, bool) {
	return geo.PointFrom(p.Latitude, p.Longitude)
}
