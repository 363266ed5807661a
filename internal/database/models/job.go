package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DefaultJobType              = "Logistics_Visit"
	DefaultEstimatedDurationMin = 60
)

// Job is a single inspection visit at a property
type Job struct {
	BaseModel
	PropertyID      uuid.UUID  `json:"property_id" gorm:"type:uuid;not null;index" validate:"required"`
	CreatedByUserID *uuid.UUID `json:"created_by_user_id,omitempty" gorm:"type:uuid"`
	AssignedClerkID *uuid.UUID `json:"assigned_clerk_id,omitempty" gorm:"type:uuid;index"`
	AssignedAgentID *uuid.UUID `json:"assigned_agent_id,omitempty" gorm:"type:uuid;index"`

	JobType                  string    `json:"job_type" gorm:"size:100;not null"`
	Priority                 Priority  `json:"priority" gorm:"type:varchar(20);not null;default:'normal'"`
	AppointmentDate          time.Time `json:"appointment_date" gorm:"not null;index"`
	EstimatedDurationMinutes int       `json:"estimated_duration_minutes" gorm:"not null;default:60"`

	AccessInstructions string            `json:"access_instructions" gorm:"type:text"`
	KeyLocation        string            `json:"key_location" gorm:"size:255"`
	AdminNotes         string            `json:"admin_notes" gorm:"type:text"`
	BookingQuestions   datatypes.JSONMap `json:"booking_questions" gorm:"type:jsonb"`

	Status JobStatus `json:"status" gorm:"type:varchar(30);not null;default:'pending_assignment';index"`

	OnRouteAt           *time.Time `json:"on_route_at,omitempty"`
	CheckInAt           *time.Time `json:"check_in_at,omitempty"`
	CheckInLat          *float64   `json:"check_in_lat,omitempty" gorm:"type:numeric(10,8)"`
	CheckInLng          *float64   `json:"check_in_lng,omitempty" gorm:"type:numeric(11,8)"`
	LocationWarningFlag bool       `json:"location_warning_flag" gorm:"not null"`

	HandoverData datatypes.JSONMap `json:"handover_data" gorm:"type:jsonb"`

	CheckOutAt  *time.Time `json:"check_out_at,omitempty" gorm:"index"`
	CheckOutLat *float64   `json:"check_out_lat,omitempty" gorm:"type:numeric(10,8)"`
	CheckOutLng *float64   `json:"check_out_lng,omitempty" gorm:"type:numeric(11,8)"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Job
func (Job) TableName() string {
	return "jobs"
}

// IsAssignedTo reports whether clerkID is the job's current clerk
func (j *Job) IsAssignedTo(clerkID uuid.UUID) bool {
	return j.AssignedClerkID != nil && *j.AssignedClerkID == clerkID
}
