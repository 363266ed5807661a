package service

import (
	"context"
	"errors"
	"fmt"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/logger"
	"field-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePropertyRequest represents the request to register a property
type CreatePropertyRequest struct {
	ReferenceNumber string   `json:"reference_number" validate:"max=100"`
	AddressLine1    string   `json:"address_line_1" validate:"required,max=255"`
	AddressLine2    string   `json:"address_line_2" validate:"max=255"`
	City            string   `json:"city" validate:"max=100"`
	Postcode        string   `json:"postcode" validate:"required,max=20"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ClientName      string   `json:"client_name" validate:"max=255"`
}

// UpdatePropertyRequest carries the property fields to change; nil fields are left as they are.
// Coordinates are replaced as a pair.
type UpdatePropertyRequest struct {
	ReferenceNumber *string  `json:"reference_number" validate:"omitempty,max=100"`
	AddressLine1    *string  `json:"address_line_1" validate:"omitempty,min=1,max=255"`
	AddressLine2    *string  `json:"address_line_2" validate:"omitempty,max=255"`
	City            *string  `json:"city" validate:"omitempty,max=100"`
	Postcode        *string  `json:"postcode" validate:"omitempty,min=1,max=20"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ClientName      *string  `json:"client_name" validate:"omitempty,max=255"`
	IsActive        *bool    `json:"is_active"`
}

// PropertyListResponse is one page of properties
type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// PropertyService manages the properties jobs are booked at
type PropertyService struct {
	uow       repository.UnitOfWorkInterface
	validator *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(uow repository.UnitOfWorkInterface, validator *validator.Validate) *PropertyService {
	return &PropertyService{uow: uow, validator: validator}
}

// CreateProperty registers a property; admins and agents only
func (s *PropertyService) CreateProperty(ctx context.Context, actor Actor, req *CreatePropertyRequest) (*models.Property, error) {
	if !actor.Role.CanDispatch() {
		return nil, apperrors.ErrActorNotPermitted
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if err := validateOptionalCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	property := &models.Property{
		ReferenceNumber: req.ReferenceNumber,
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		City:            req.City,
		Postcode:        req.Postcode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ClientName:      req.ClientName,
		IsActive:        true,
	}
	if err := s.uow.Repositories(ctx).Properties.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

// UpdateProperty changes a property; admins and agents only. New coordinates
// affect scoring and the check-in geofence of jobs from then on.
func (s *PropertyService) UpdateProperty(ctx context.Context, actor Actor, id uuid.UUID, req *UpdatePropertyRequest) (*models.Property, error) {
	if !actor.Role.CanDispatch() {
		return nil, apperrors.ErrActorNotPermitted
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if err := validateOptionalCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	repos := s.uow.Repositories(ctx)
	property, err := repos.Properties.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if req.ReferenceNumber != nil {
		property.ReferenceNumber = *req.ReferenceNumber
	}
	if req.AddressLine1 != nil {
		property.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		property.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.Postcode != nil {
		property.Postcode = *req.Postcode
	}
	if req.Latitude != nil {
		property.Latitude = req.Latitude
		property.Longitude = req.Longitude
	}
	if req.ClientName != nil {
		property.ClientName = *req.ClientName
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	if err := repos.Properties.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	logger.WithContext(withActor(ctx, actor)).WithField("property_id", id.String()).Info("property updated")
	return property, nil
}

// GetProperty retrieves a property by ID
func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	property, err := s.uow.Repositories(ctx).Properties.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

// ListProperties retrieves a page of properties
func (s *PropertyService) ListProperties(ctx context.Context, page, pageSize int) (*PropertyListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	properties, total, err := s.uow.Repositories(ctx).Properties.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return &PropertyListResponse{Properties: properties, Total: total, Page: page, PageSize: pageSize}, nil
}
