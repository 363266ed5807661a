package repository

import (
	"field-service-backend/internal/database/models"
	"field-service-backend/internal/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobFilter narrows List; nil fields are ignored
type JobFilter struct {
	Status     *models.JobStatus
	ClerkID    *uuid.UUID
	AgentID    *uuid.UUID
	PropertyID *uuid.UUID
}

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	return r.db.Omit(clause.Associations).Create(job).Error
}

// GetByID retrieves a job by ID with its property
func (r *JobRepository) GetByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Property").First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByIDForUpdate retrieves a job and locks its row until the surrounding transaction ends
func (r *JobRepository) GetByIDForUpdate(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs matching filter, soonest appointment first
func (r *JobRepository) List(filter JobFilter, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ClerkID != nil {
		query = query.Where("assigned_clerk_id = ?", *filter.ClerkID)
	}
	if filter.AgentID != nil {
		query = query.Where("assigned_agent_id = ?", *filter.AgentID)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Property").Order("appointment_date ASC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

// CountActiveForClerk counts jobs assigned to the clerk that are assigned, on route or in progress
func (r *JobRepository) CountActiveForClerk(clerkID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("assigned_clerk_id = ? AND status IN ?", clerkID, lifecycle.ActiveStatuses()).
		Count(&count).Error
	return count, err
}

// FindLastCompletedAtProperty retrieves the completed job at the property with the latest check-out
func (r *JobRepository) FindLastCompletedAtProperty(propertyID uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.Where("property_id = ? AND status = ?", propertyID, lifecycle.StatusCompleted).
		Order("check_out_at DESC NULLS LAST").
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SaveTransition writes every column of job, but only if the stored status
// still equals expected. Returns ErrStaleRecord otherwise.
func (r *JobRepository) SaveTransition(job *models.Job, expected models.JobStatus) error {
	result := r.db.Model(job).
		Where("status = ?", expected).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleRecord
	}
	return nil
}
