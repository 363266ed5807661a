package repository

import (
	"field-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetAll retrieves all properties with pagination
func (r *PropertyRepository) GetAll(limit, offset int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	if err := r.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&properties).Error
	return properties, total, err
}

// Update saves all columns of an existing property
func (r *PropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}
