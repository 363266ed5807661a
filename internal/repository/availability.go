package repository

import (
	"time"

	"field-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// AvailabilityRepository handles database operations for clerk availability
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// GetByID retrieves an availability record by ID
func (r *AvailabilityRepository) GetByID(id uuid.UUID) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.First(&availability, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// FindForClerkOnDate retrieves the record for a clerk on a calendar date.
// Only the year, month and day of date are used.
func (r *AvailabilityRepository) FindForClerkOnDate(userID uuid.UUID, date time.Time) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.Where("user_id = ? AND available_date = ?", userID, date.Format(dateLayout)).
		First(&availability).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// ListByUser retrieves a clerk's records ordered by date, optionally bounded (inclusive)
func (r *AvailabilityRepository) ListByUser(userID uuid.UUID, from, to *time.Time) ([]models.Availability, error) {
	var records []models.Availability

	query := r.db.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("available_date >= ?", from.Format(dateLayout))
	}
	if to != nil {
		query = query.Where("available_date <= ?", to.Format(dateLayout))
	}

	err := query.Order("available_date ASC").Find(&records).Error
	return records, err
}

// Upsert inserts the record or overwrites the existing one for the same (user, date)
func (r *AvailabilityRepository) Upsert(availability *models.Availability) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "available_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "start_time", "end_time", "postcode", "notes", "updated_at"}),
	}).Create(availability).Error
	if err != nil {
		return err
	}

	// on conflict the surviving row keeps its original id
	var stored models.Availability
	err = r.db.Where("user_id = ? AND available_date = ?",
		availability.UserID, availability.Date().Format(dateLayout)).First(&stored).Error
	if err != nil {
		return err
	}
	*availability = stored
	return nil
}

// Delete deletes an availability record
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Availability{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
