package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/geo"
	"field-service-backend/internal/logger"
	"field-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateLocationRequest represents a clerk's reported position
type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// SetShiftRequest represents a clerk going on or off shift
type SetShiftRequest struct {
	IsOnShift *bool `json:"is_on_shift" validate:"required"`
}

// UpdateProfileRequest carries the contact and address fields a user may change.
// Nil fields are left as they are.
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Phone          *string `json:"phone" validate:"omitempty,max=50"`
	AddressLine1   *string `json:"address_line_1" validate:"omitempty,max=255"`
	AddressLine2   *string `json:"address_line_2" validate:"omitempty,max=255"`
	City           *string `json:"city" validate:"omitempty,max=100"`
	Postcode       *string `json:"postcode" validate:"omitempty,max=20"`
	AddressFileURL *string `json:"address_file_url" validate:"omitempty,max=500"`
}

// SetActiveRequest represents an admin enabling or disabling an account
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// UserListResponse is one page of users
type UserListResponse struct {
	Users    []models.User `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// ClerkService manages user accounts and clerk shift and live-location state
type ClerkService struct {
	uow       repository.UnitOfWorkInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewClerkService creates a new clerk service
func NewClerkService(uow repository.UnitOfWorkInterface, validator *validator.Validate) *ClerkService {
	return &ClerkService{uow: uow, validator: validator, now: time.Now}
}

// GetClerk retrieves a clerk by ID
func (s *ClerkService) GetClerk(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.loadClerk(s.uow.Repositories(ctx), id)
}

// ListClerks retrieves a page of clerks
func (s *ClerkService) ListClerks(ctx context.Context, page, pageSize int) (*UserListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	users, total, err := s.uow.Repositories(ctx).Users.GetByRole(models.RoleClerk, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list clerks: %w", err)
	}
	return &UserListResponse{Users: users, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateLocation stores the calling clerk's position and stamps the update time
func (s *ClerkService) UpdateLocation(ctx context.Context, actor Actor, clerkID uuid.UUID, req *UpdateLocationRequest) (*models.User, error) {
	ctx = withActor(ctx, actor)
	if actor.UserID != clerkID {
		return nil, apperrors.ErrNotSelf
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if !geo.ValidCoordinates(*req.Lat, *req.Lng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	repos := s.uow.Repositories(ctx)
	clerk, err := s.loadClerk(repos, clerkID)
	if err != nil {
		return nil, err
	}

	at := s.now().UTC()
	if err := repos.Users.UpdateLocation(clerkID, *req.Lat, *req.Lng, at); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	clerk.CurrentLat = req.Lat
	clerk.CurrentLng = req.Lng
	clerk.LastLocationUpdate = &at

	logger.WithContext(ctx).WithField("clerk_id", clerkID.String()).Debug("location updated")
	return clerk, nil
}

// SetShift flips the calling clerk's on-shift flag. Going on shift requires a complete address.
func (s *ClerkService) SetShift(ctx context.Context, actor Actor, clerkID uuid.UUID, req *SetShiftRequest) (*models.User, error) {
	ctx = withActor(ctx, actor)
	if actor.UserID != clerkID {
		return nil, apperrors.ErrNotSelf
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	repos := s.uow.Repositories(ctx)
	clerk, err := s.loadClerk(repos, clerkID)
	if err != nil {
		return nil, err
	}
	if *req.IsOnShift && !clerk.ShiftAddressComplete() {
		return nil, apperrors.ErrShiftAddressIncomplete
	}

	if err := repos.Users.SetOnShift(clerkID, *req.IsOnShift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	clerk.IsOnShift = *req.IsOnShift

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"clerk_id":    clerkID.String(),
		"is_on_shift": clerk.IsOnShift,
	}).Info("shift updated")
	return clerk, nil
}

// GetCurrentUser retrieves the calling user's own record
func (s *ClerkService) GetCurrentUser(ctx context.Context, actor Actor) (*models.User, error) {
	return s.loadUser(s.uow.Repositories(ctx), actor.UserID)
}

// UpdateProfile changes a user's contact and address details. Users edit
// themselves; admins may edit anyone. A clerk on shift must keep a complete address.
func (s *ClerkService) UpdateProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	ctx = withActor(ctx, actor)
	if actor.UserID != userID && !actor.IsAdmin() {
		return nil, apperrors.ErrNotSelfOrAdmin
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	repos := s.uow.Repositories(ctx)
	user, err := s.loadUser(repos, userID)
	if err != nil {
		return nil, err
	}

	applyTrimmed(&user.FullName, req.FullName)
	applyTrimmed(&user.Phone, req.Phone)
	applyTrimmed(&user.AddressLine1, req.AddressLine1)
	applyTrimmed(&user.AddressLine2, req.AddressLine2)
	applyTrimmed(&user.City, req.City)
	applyTrimmed(&user.Postcode, req.Postcode)
	applyTrimmed(&user.AddressFileURL, req.AddressFileURL)

	if user.FullName == "" {
		return nil, apperrors.NewValidationError("full_name", "full name cannot be empty")
	}
	if user.IsClerk() && user.IsOnShift && !user.ShiftAddressComplete() {
		return nil, apperrors.ErrShiftAddressIncomplete
	}

	if err := repos.Users.UpdateProfile(user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", userID.String()).Info("profile updated")
	return user, nil
}

// SetActive enables or disables an account; admins only. A disabled clerk
// leaves the candidate pool and is taken off shift.
func (s *ClerkService) SetActive(ctx context.Context, actor Actor, userID uuid.UUID, req *SetActiveRequest) (*models.User, error) {
	ctx = withActor(ctx, actor)
	if !actor.IsAdmin() {
		return nil, apperrors.ErrActorNotPermitted
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	repos := s.uow.Repositories(ctx)
	user, err := s.loadUser(repos, userID)
	if err != nil {
		return nil, err
	}

	if err := repos.Users.SetActive(userID, *req.IsActive); err != nil {
		return nil, fmt.Errorf("failed to update account status: %w", err)
	}
	user.IsActive = *req.IsActive
	if !user.IsActive {
		user.IsOnShift = false
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":   userID.String(),
		"is_active": user.IsActive,
	}).Info("account status updated")
	return user, nil
}

// DeleteUser removes an account; admins only. Admins cannot delete themselves
// and clerks with active jobs must have them reassigned first.
func (s *ClerkService) DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error {
	ctx = withActor(ctx, actor)
	if !actor.IsAdmin() {
		return apperrors.ErrActorNotPermitted
	}
	if actor.UserID == userID {
		return apperrors.ErrCannotDeleteSelf
	}

	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		user, err := s.loadUser(repos, userID)
		if err != nil {
			return err
		}
		if user.IsClerk() {
			active, err := repos.Jobs.CountActiveForClerk(userID)
			if err != nil {
				return fmt.Errorf("failed to count active jobs: %w", err)
			}
			if active > 0 {
				return apperrors.ErrUserHasActiveJobs
			}
		}
		if err := repos.Users.Delete(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to delete user: %w", err)
		}

		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"user_id": userID.String(),
			"role":    string(user.Role),
		}).Info("user deleted")
		return nil
	})
}

func applyTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (s *ClerkService) loadUser(repos *repository.Repositories, id uuid.UUID) (*models.User, error) {
	user, err := repos.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *ClerkService) loadClerk(repos *repository.Repositories, id uuid.UUID) (*models.User, error) {
	user, err := repos.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClerkNotFound
		}
		return nil, fmt.Errorf("failed to get clerk: %w", err)
	}
	if !user.IsClerk() {
		return nil, apperrors.ErrClerkNotFound
	}
	return user, nil
}
