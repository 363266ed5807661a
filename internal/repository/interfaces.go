package repository

import (
	"context"
	"time"

	"field-service-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	FindClerks(filter ClerkFilter) ([]models.User, error)
	GetByRole(role models.Role, limit, offset int) ([]models.User, int64, error)
	UpdateLocation(id uuid.UUID, lat, lng float64, at time.Time) error
	SetOnShift(id uuid.UUID, onShift bool) error
	UpdateProfile(user *models.User) error
	SetActive(id uuid.UUID, active bool) error
	Delete(id uuid.UUID) error
}

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(property *models.Property) error
	GetByID(id uuid.UUID) (*models.Property, error)
	GetAll(limit, offset int) ([]models.Property, int64, error)
	Update(property *models.Property) error
}

// AvailabilityRepositoryInterface defines the interface for clerk availability operations
type AvailabilityRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Availability, error)
	FindForClerkOnDate(userID uuid.UUID, date time.Time) (*models.Availability, error)
	ListByUser(userID uuid.UUID, from, to *time.Time) ([]models.Availability, error)
	Upsert(availability *models.Availability) error
	Delete(id uuid.UUID) error
}

// JobRepositoryInterface defines the interface for job repository operations
type JobRepositoryInterface interface {
	Create(job *models.Job) error
	GetByID(id uuid.UUID) (*models.Job, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Job, error)
	List(filter JobFilter, limit, offset int) ([]models.Job, int64, error)
	CountActiveForClerk(clerkID uuid.UUID) (int64, error)
	FindLastCompletedAtProperty(propertyID uuid.UUID) (*models.Job, error)
	SaveTransition(job *models.Job, expected models.JobStatus) error
}

// AssignmentLogRepositoryInterface defines the append-only assignment log store
type AssignmentLogRepositoryInterface interface {
	Append(entry *models.AssignmentLog) error
	ListByJob(jobID uuid.UUID) ([]models.AssignmentLog, error)
	List(limit, offset int) ([]models.AssignmentLog, int64, error)
	ListBetween(from, to time.Time) ([]models.AssignmentLog, error)
}

// UnitOfWorkInterface scopes repositories to a request context, optionally inside one transaction
type UnitOfWorkInterface interface {
	Repositories(ctx context.Context) *Repositories
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}
