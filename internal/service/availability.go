package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// AvailabilityInput is one day of a clerk's availability
type AvailabilityInput struct {
	AvailableDate string `json:"available_date" validate:"required,datetime=2006-01-02"`
	IsAvailable   *bool  `json:"is_available,omitempty"`
	StartTime     string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime       string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Postcode      string `json:"postcode" validate:"max=20"`
	Notes         string `json:"notes"`
}

// UpsertAvailabilityRequest carries one or more days for one clerk
type UpsertAvailabilityRequest struct {
	Records []AvailabilityInput `json:"records" validate:"required,min=1,max=366,dive"`
}

// AvailabilityService manages clerks' per-date availability
type AvailabilityService struct {
	uow       repository.UnitOfWorkInterface
	validator *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(uow repository.UnitOfWorkInterface, validator *validator.Validate) *AvailabilityService {
	return &AvailabilityService{uow: uow, validator: validator}
}

// Upsert stores each record, overwriting any existing record for the same date.
// All records are written in one transaction.
func (s *AvailabilityService) Upsert(ctx context.Context, actor Actor, clerkID uuid.UUID, req *UpsertAvailabilityRequest) ([]models.Availability, error) {
	ctx = withActor(ctx, actor)
	if actor.UserID != clerkID && !actor.IsAdmin() {
		return nil, apperrors.ErrNotSelf
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("records", err.Error())
	}

	records := make([]models.Availability, 0, len(req.Records))
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		clerk, err := repos.Users.GetByID(clerkID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrClerkNotFound
			}
			return fmt.Errorf("failed to get clerk: %w", err)
		}
		if !clerk.IsClerk() {
			return apperrors.ErrClerkNotFound
		}

		for _, in := range req.Records {
			record, err := toAvailability(clerk, in)
			if err != nil {
				return err
			}
			if err := repos.Availability.Upsert(record); err != nil {
				return fmt.Errorf("failed to save availability for %s: %w", in.AvailableDate, err)
			}
			records = append(records, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// List returns a clerk's records between from and to inclusive; either bound may be nil
func (s *AvailabilityService) List(ctx context.Context, clerkID uuid.UUID, from, to *time.Time) ([]models.Availability, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	records, err := s.uow.Repositories(ctx).Availability.ListByUser(clerkID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return records, nil
}

// Delete removes a record owned by the actor, or any record for an admin
func (s *AvailabilityService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	ctx = withActor(ctx, actor)
	repos := s.uow.Repositories(ctx)

	record, err := repos.Availability.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to get availability: %w", err)
	}
	if record.UserID != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrNotSelf
	}

	if err := repos.Availability.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

func toAvailability(clerk *models.User, in AvailabilityInput) (*models.Availability, error) {
	date, err := time.Parse(dateLayout, in.AvailableDate)
	if err != nil {
		return nil, apperrors.NewValidationError("available_date", err.Error())
	}

	record := &models.Availability{
		UserID:        clerk.ID,
		AvailableDate: datatypes.Date(date),
		IsAvailable:   true,
		StartTime:     models.DefaultAvailabilityStart,
		EndTime:       models.DefaultAvailabilityEnd,
		Postcode:      clerk.Postcode,
		Notes:         in.Notes,
	}
	if in.IsAvailable != nil {
		record.IsAvailable = *in.IsAvailable
	}
	if in.StartTime != "" {
		record.StartTime = in.StartTime
	}
	if in.EndTime != "" {
		record.EndTime = in.EndTime
	}
	if in.Postcode != "" {
		record.Postcode = in.Postcode
	}

	// "HH:MM" compares lexically
	if record.StartTime >= record.EndTime {
		return nil, apperrors.ErrInvalidTimeRange
	}
	return record, nil
}
