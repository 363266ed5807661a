package repository

import (
	"time"

	"field-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClerkFilter narrows FindClerks beyond the base role=clerk, active=true filter
type ClerkFilter struct {
	OnShiftOnly     bool
	RequireLocation bool
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindClerks returns active clerks matching filter, ordered by id ascending
func (r *UserRepository) FindClerks(filter ClerkFilter) ([]models.User, error) {
	var clerks []models.User

	query := r.db.Where("role = ? AND is_active = ?", models.RoleClerk, true)
	if filter.OnShiftOnly {
		query = query.Where("is_on_shift = ?", true)
	}
	if filter.RequireLocation {
		query = query.Where("current_lat IS NOT NULL AND current_lng IS NOT NULL")
	}

	err := query.Order("id ASC").Find(&clerks).Error
	return clerks, err
}

// GetByRole retrieves users with the given role
func (r *UserRepository) GetByRole(role models.Role, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("role = ?", role)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// UpdateLocation stores a clerk's reported position
func (r *UserRepository) UpdateLocation(id uuid.UUID, lat, lng float64, at time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"current_lat":          lat,
		"current_lng":          lng,
		"last_location_update": at,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetOnShift flips a clerk's on-shift flag
func (r *UserRepository) SetOnShift(id uuid.UUID, onShift bool) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_on_shift", onShift)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateProfile writes the user's contact and address columns
func (r *UserRepository) UpdateProfile(user *models.User) error {
	result := r.db.Model(user).
		Select("FullName", "Phone", "AddressLine1", "AddressLine2", "City", "Postcode", "AddressFileURL").
		Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetActive flips a user's active flag. Deactivated users are also taken off shift.
func (r *UserRepository) SetActive(id uuid.UUID, active bool) error {
	updates := map[string]interface{}{"is_active": active}
	if !active {
		updates["is_on_shift"] = false
	}
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a user; their availability records go with them
func (r *UserRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
