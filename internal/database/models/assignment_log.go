package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentLog is one immutable assignment decision on a job.
// A nil NewClerkID records an unassignment; a nil TriggeredByUserID a system action.
// Sequence is assigned by the database and gives the replay order.
type AssignmentLog struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Sequence          int64      `json:"sequence" gorm:"autoIncrement;not null;uniqueIndex"`
	JobID             uuid.UUID  `json:"job_id" gorm:"type:uuid;not null;index"`
	PreviousClerkID   *uuid.UUID `json:"previous_clerk_id" gorm:"type:uuid"`
	NewClerkID        *uuid.UUID `json:"new_clerk_id" gorm:"type:uuid"`
	ActionType        ActionType `json:"action_type" gorm:"type:varchar(50);not null"`
	TriggeredByUserID *uuid.UUID `json:"triggered_by_user_id" gorm:"type:uuid"`
	Reason            string     `json:"reason" gorm:"type:text"`
	CreatedAt         time.Time  `json:"created_at" gorm:"not null;index"`

	Job *Job `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentLog
func (AssignmentLog) TableName() string {
	return "assignment_logs"
}

// BeforeCreate sets the UUID if not already set
func (l *AssignmentLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
