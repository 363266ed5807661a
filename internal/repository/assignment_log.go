package repository

import (
	"time"

	"field-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentLogRepository appends and reads assignment decisions. It has no
// update or delete operations.
type AssignmentLogRepository struct {
	db *gorm.DB
}

// NewAssignmentLogRepository creates a new assignment log repository
func NewAssignmentLogRepository(db *gorm.DB) *AssignmentLogRepository {
	return &AssignmentLogRepository{db: db}
}

// Append inserts a new entry
func (r *AssignmentLogRepository) Append(entry *models.AssignmentLog) error {
	return r.db.Create(entry).Error
}

// ListByJob returns a job's entries oldest first
func (r *AssignmentLogRepository) ListByJob(jobID uuid.UUID) ([]models.AssignmentLog, error) {
	var entries []models.AssignmentLog
	err := r.db.Where("job_id = ?", jobID).Order("sequence ASC").Find(&entries).Error
	return entries, err
}

// List returns all entries newest first
func (r *AssignmentLogRepository) List(limit, offset int) ([]models.AssignmentLog, int64, error) {
	var entries []models.AssignmentLog
	var total int64

	if err := r.db.Model(&models.AssignmentLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("sequence DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// ListBetween returns entries created in [from, to) oldest first
func (r *AssignmentLogRepository) ListBetween(from, to time.Time) ([]models.AssignmentLog, error) {
	var entries []models.AssignmentLog
	err := r.db.Where("created_at >= ? AND created_at < ?", from, to).
		Order("sequence ASC").Find(&entries).Error
	return entries, err
}
