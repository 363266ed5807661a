package service

import (
	"context"
	"io"
	"time"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/lifecycle"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// JobServiceInterface defines the interface for job service
type JobServiceInterface interface {
	CreateJob(ctx context.Context, actor Actor, req *CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, req *ListJobsRequest) (*JobListResponse, error)
	AssignManually(ctx context.Context, actor Actor, jobID uuid.UUID, req *AssignJobRequest) (*models.Job, error)
	RejectAssignment(ctx context.Context, actor Actor, jobID uuid.UUID) (*models.Job, error)
	Transition(ctx context.Context, actor Actor, jobID uuid.UUID, event lifecycle.Event, payload *TransitionPayload) (*models.Job, error)
	CancelJob(ctx context.Context, actor Actor, jobID uuid.UUID) (*models.Job, error)
	UpdateJob(ctx context.Context, actor Actor, jobID uuid.UUID, req *UpdateJobRequest) (*models.Job, error)
}

// AssignmentLogServiceInterface defines the interface for assignment log service
type AssignmentLogServiceInterface interface {
	GetJobHistory(ctx context.Context, jobID uuid.UUID) ([]models.AssignmentLog, error)
	List(ctx context.Context, page, pageSize int) (*AssignmentLogListResponse, error)
	ExportXLSX(ctx context.Context, from, to time.Time, w io.Writer) error
}

// ClerkServiceInterface defines the interface for clerk service
type ClerkServiceInterface interface {
	GetClerk(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListClerks(ctx context.Context, page, pageSize int) (*UserListResponse, error)
	UpdateLocation(ctx context.Context, actor Actor, clerkID uuid.UUID, req *UpdateLocationRequest) (*models.User, error)
	SetShift(ctx context.Context, actor Actor, clerkID uuid.UUID, req *SetShiftRequest) (*models.User, error)
	GetCurrentUser(ctx context.Context, actor Actor) (*models.User, error)
	UpdateProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error)
	SetActive(ctx context.Context, actor Actor, userID uuid.UUID, req *SetActiveRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error
}

// AvailabilityServiceInterface defines the interface for availability service
type AvailabilityServiceInterface interface {
	Upsert(ctx context.Context, actor Actor, clerkID uuid.UUID, req *UpsertAvailabilityRequest) ([]models.Availability, error)
	List(ctx context.Context, clerkID uuid.UUID, from, to *time.Time) ([]models.Availability, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	CreateProperty(ctx context.Context, actor Actor, req *CreatePropertyRequest) (*models.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListProperties(ctx context.Context, page, pageSize int) (*PropertyListResponse, error)
	UpdateProperty(ctx context.Context, actor Actor, id uuid.UUID, req *UpdatePropertyRequest) (*models.Property, error)
}

var (
	_ JobServiceInterface           = (*JobService)(nil)
	_ AssignmentLogServiceInterface = (*AssignmentLogService)(nil)
	_ ClerkServiceInterface         = (*ClerkService)(nil)
	_ AvailabilityServiceInterface  = (*AvailabilityService)(nil)
	_ PropertyServiceInterface      = (*PropertyService)(nil)
)
