package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/geo"
	"field-service-backend/internal/lifecycle"
	"field-service-backend/internal/logger"
	"field-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GeofenceRadiusKm is the check-in distance above which the location warning is raised
const GeofenceRadiusKm = 0.1

const (
	ReasonAutoAssignOnCreate   = "Auto-assigned by system based on availability and location"
	ReasonManualAssignOnCreate = "Manual assignment during job creation"
	ReasonAdminManualAssign    = "Admin manual assignment"
	ReasonClerkRejected        = "Clerk rejected assignment"
	ReasonAutoReassigned       = "Auto-reassigned after rejection"
)

// AssignmentMode selects how a new job gets its clerk
type AssignmentMode string

const (
	AssignmentModeAuto   AssignmentMode = "auto"
	AssignmentModeManual AssignmentMode = "manual"
)

// CreateJobRequest represents the request to create a job
type CreateJobRequest struct {
	PropertyID               uuid.UUID              `json:"property_id" validate:"required"`
	AppointmentDate          time.Time              `json:"appointment_date" validate:"required"`
	JobType                  string                 `json:"job_type" validate:"max=100"`
	Priority                 models.Priority        `json:"priority" validate:"omitempty,oneof=low normal high emergency"`
	EstimatedDurationMinutes int                    `json:"estimated_duration_minutes" validate:"omitempty,min=1,max=1440"`
	AccessInstructions       string                 `json:"access_instructions"`
	KeyLocation              string                 `json:"key_location" validate:"max=255"`
	AdminNotes               string                 `json:"admin_notes"`
	BookingQuestions         map[string]interface{} `json:"booking_questions"`
	AssignedAgentID          *uuid.UUID             `json:"assigned_agent_id,omitempty"`
	AssignmentMode           AssignmentMode         `json:"assignment_type" validate:"omitempty,oneof=auto manual"`
	ClerkID                  *uuid.UUID             `json:"clerk_id,omitempty"`
	Reason                   string                 `json:"reason" validate:"max=500"`
}

// AssignJobRequest represents the request to assign a clerk manually
type AssignJobRequest struct {
	ClerkID uuid.UUID `json:"clerk_id" validate:"required"`
	Reason  string    `json:"reason" validate:"max=500"`
}

// UpdateJobRequest carries the booking details a dispatcher may change after
// creation. Nil fields are left as they are. Status and clerk are only accepted
// unchanged; the lifecycle endpoints own them.
type UpdateJobRequest struct {
	JobType                  *string                `json:"job_type" validate:"omitempty,min=1,max=100"`
	Priority                 *models.Priority       `json:"priority" validate:"omitempty,oneof=low normal high emergency"`
	AppointmentDate          *time.Time             `json:"appointment_date"`
	EstimatedDurationMinutes *int                   `json:"estimated_duration_minutes" validate:"omitempty,min=1,max=1440"`
	AccessInstructions       *string                `json:"access_instructions"`
	KeyLocation              *string                `json:"key_location" validate:"omitempty,max=255"`
	AdminNotes               *string                `json:"admin_notes"`
	BookingQuestions         map[string]interface{} `json:"booking_questions"`
	AssignedAgentID          *uuid.UUID             `json:"assigned_agent_id"`
	Status                   *models.JobStatus      `json:"status,omitempty"`
	AssignedClerkID          *uuid.UUID             `json:"assigned_clerk_id,omitempty"`
}

// TransitionPayload carries the data a clerk action records
type TransitionPayload struct {
	Lat          *float64               `json:"lat,omitempty"`
	Lng          *float64               `json:"lng,omitempty"`
	HandoverData map[string]interface{} `json:"handover_data,omitempty"`
}

// ListJobsRequest filters and paginates jobs
type ListJobsRequest struct {
	Status     string
	ClerkID    *uuid.UUID
	AgentID    *uuid.UUID
	PropertyID *uuid.UUID
	Page       int
	PageSize   int
}

// JobListResponse is one page of jobs
type JobListResponse struct {
	Jobs     []models.Job `json:"jobs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// JobService applies the job lifecycle: creation, assignment, rejection and clerk actions
type JobService struct {
	uow       repository.UnitOfWorkInterface
	assigner  *Assigner
	notifier  Notifier
	validator *validator.Validate
	now       func() time.Time
}

// JobServiceOption customizes a JobService
type JobServiceOption func(*JobService)

// WithClock replaces time.Now
func WithClock(now func() time.Time) JobServiceOption {
	return func(s *JobService) { s.now = now }
}

// NewJobService creates a new job service
func NewJobService(
	uow repository.UnitOfWorkInterface,
	assigner *Assigner,
	notifier Notifier,
	validator *validator.Validate,
	opts ...JobServiceOption,
) *JobService {
	s := &JobService{
		uow:       uow,
		assigner:  assigner,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier()
	}
	return s
}

// CreateJob stores a pending job and, depending on the mode, assigns a clerk
func (s *JobService) CreateJob(ctx context.Context, actor Actor, req *CreateJobRequest) (*models.Job, error) {
	ctx = withActor(ctx, actor)
	if !actor.Role.CanDispatch() {
		return nil, apperrors.ErrActorNotPermitted
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if req.AssignmentMode == "" {
		req.AssignmentMode = AssignmentModeManual
	}

	var created *models.Job
	var notes []Notification
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		property, err := repos.Properties.GetByID(req.PropertyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPropertyNotFound
			}
			return fmt.Errorf("failed to load property: %w", err)
		}

		job := newJobFromRequest(actor, req)
		if err := repos.Jobs.Create(job); err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		switch req.AssignmentMode {
		case AssignmentModeAuto:
			note, err := s.autoAssign(ctx, repos, job, property, ReasonAutoAssignOnCreate)
			if err != nil {
				return err
			}
			if note != nil {
				notes = append(notes, *note)
			}
		case AssignmentModeManual:
			if req.ClerkID != nil {
				reason := req.Reason
				if reason == "" {
					reason = ReasonManualAssignOnCreate
				}
				note, err := s.assignClerk(ctx, repos, job, *req.ClerkID, actor, reason)
				if err != nil {
					return err
				}
				notes = append(notes, *note)
			}
		}

		job.Property = property
		created = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job_id": created.ID.String(),
		"status": string(created.Status),
	}).Info("job created")

	s.dispatch(ctx, notes)
	return created, nil
}

// GetJob retrieves a job with its property
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.uow.Repositories(ctx).Jobs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs retrieves a filtered page of jobs
func (s *JobService) ListJobs(ctx context.Context, req *ListJobsRequest) (*JobListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	filter := repository.JobFilter{
		ClerkID:    req.ClerkID,
		AgentID:    req.AgentID,
		PropertyID: req.PropertyID,
	}
	if req.Status != "" {
		status, err := lifecycle.ParseStatus(req.Status)
		if err != nil {
			return nil, apperrors.NewValidationError("status", err.Error())
		}
		filter.Status = &status
	}

	jobs, total, err := s.uow.Repositories(ctx).Jobs.List(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return &JobListResponse{Jobs: jobs, Total: total, Page: page, PageSize: pageSize}, nil
}

// AssignManually assigns clerkID to the job on behalf of an admin or agent
func (s *JobService) AssignManually(ctx context.Context, actor Actor, jobID uuid.UUID, req *AssignJobRequest) (*models.Job, error) {
	ctx = withActor(ctx, actor)
	if !actor.Role.CanDispatch() {
		return nil, apperrors.ErrActorNotPermitted
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	reason := req.Reason
	if reason == "" {
		reason = ReasonAdminManualAssign
	}

	var updated *models.Job
	var note *Notification
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		job, err := lockJob(repos, jobID)
		if err != nil {
			return err
		}
		note, err = s.assignClerk(ctx, repos, job, req.ClerkID, actor, reason)
		if err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, []Notification{*note})
	return updated, nil
}

// RejectAssignment unassigns the calling clerk and immediately tries to auto-assign another.
// The rejecting clerk is not excluded from the new candidate pool.
func (s *JobService) RejectAssignment(ctx context.Context, actor Actor, jobID uuid.UUID) (*models.Job, error) {
	ctx = withActor(ctx, actor)

	var updated *models.Job
	var notes []Notification
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		job, err := lockJob(repos, jobID)
		if err != nil {
			return err
		}
		if !job.IsAssignedTo(actor.UserID) {
			return apperrors.ErrNotAssignedClerk
		}

		current := job.Status
		next, err := lifecycle.Next(job.ID.String(), current, lifecycle.EventReject)
		if err != nil {
			return err
		}

		previous := *job.AssignedClerkID
		job.AssignedClerkID = nil
		job.Status = next
		if err := saveTransition(repos, job, current, lifecycle.EventReject); err != nil {
			return err
		}
		triggeredBy := actor.UserID
		if err := appendAssignmentLog(ctx, repos, &models.AssignmentLog{
			JobID:             job.ID,
			PreviousClerkID:   &previous,
			ActionType:        models.ActionRejection,
			TriggeredByUserID: &triggeredBy,
			Reason:            ReasonClerkRejected,
			CreatedAt:         s.now().UTC(),
		}, nil); err != nil {
			return err
		}

		property, err := repos.Properties.GetByID(job.PropertyID)
		if err != nil {
			return fmt.Errorf("failed to load property: %w", err)
		}
		note, err := s.autoAssign(ctx, repos, job, property, ReasonAutoReassigned)
		if err != nil {
			return err
		}
		switch {
		case note != nil:
			notes = append(notes, *note)
		case job.CreatedByUserID != nil:
			notes = append(notes, Notification{
				UserID:  *job.CreatedByUserID,
				JobID:   job.ID,
				Type:    NotificationJobUnassigned,
				Message: "A clerk rejected the job and no other clerk is available",
			})
		}

		job.Property = property
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, notes)
	return updated, nil
}

// Transition applies a clerk field action: start, check_in or complete
func (s *JobService) Transition(ctx context.Context, actor Actor, jobID uuid.UUID, event lifecycle.Event, payload *TransitionPayload) (*models.Job, error) {
	ctx = withActor(ctx, actor)
	switch event {
	case lifecycle.EventStart, lifecycle.EventCheckIn, lifecycle.EventComplete:
	default:
		return nil, apperrors.NewValidationError("event", fmt.Sprintf("%q is not a clerk action", event))
	}
	if payload == nil {
		payload = &TransitionPayload{}
	}
	if err := validateOptionalCoordinates(payload.Lat, payload.Lng); err != nil {
		return nil, err
	}

	var updated *models.Job
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		job, err := lockJob(repos, jobID)
		if err != nil {
			return err
		}
		if !job.IsAssignedTo(actor.UserID) {
			return apperrors.ErrNotAssignedClerk
		}

		current := job.Status
		next, err := lifecycle.Next(job.ID.String(), current, event)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		switch event {
		case lifecycle.EventStart:
			job.OnRouteAt = &now
		case lifecycle.EventCheckIn:
			job.CheckInAt = &now
			job.CheckInLat = payload.Lat
			job.CheckInLng = payload.Lng
			property, err := repos.Properties.GetByID(job.PropertyID)
			if err != nil {
				return fmt.Errorf("failed to load property: %w", err)
			}
			job.LocationWarningFlag = outsideGeofence(property, payload.Lat, payload.Lng)
		case lifecycle.EventComplete:
			job.CheckOutAt = &now
			job.CheckOutLat = payload.Lat
			job.CheckOutLng = payload.Lng
			job.HandoverData = datatypes.JSONMap(payload.HandoverData)
			if job.HandoverData == nil {
				job.HandoverData = datatypes.JSONMap{}
			}
		}
		job.Status = next

		if err := saveTransition(repos, job, current, event); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job_id":           updated.ID.String(),
		"event":            string(event),
		"status":           string(updated.Status),
		"location_warning": updated.LocationWarningFlag,
	}).Info("job transitioned")
	return updated, nil
}

// UpdateJob changes the booking details of a non-terminal job on behalf of an admin or agent
func (s *JobService) UpdateJob(ctx context.Context, actor Actor, jobID uuid.UUID, req *UpdateJobRequest) (*models.Job, error) {
	ctx = withActor(ctx, actor)
	if !actor.Role.CanDispatch() {
		return nil, apperrors.ErrActorNotPermitted
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	var updated *models.Job
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		job, err := lockJob(repos, jobID)
		if err != nil {
			return err
		}
		if job.Status.IsTerminal() {
			return apperrors.NewStateConflictError(job.ID.String(), string(job.Status), "update")
		}
		if req.Status != nil && *req.Status != job.Status {
			return apperrors.ErrStatusNotEditable
		}
		if req.AssignedClerkID != nil && !job.IsAssignedTo(*req.AssignedClerkID) {
			return apperrors.ErrClerkNotEditable
		}

		applyJobUpdate(job, req)
		if err := saveTransition(repos, job, job.Status, "update"); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("job_id", updated.ID.String()).Info("job updated")
	return updated, nil
}

// CancelJob moves a non-terminal job to cancelled. The assigned clerk is kept for the record.
func (s *JobService) CancelJob(ctx context.Context, actor Actor, jobID uuid.UUID) (*models.Job, error) {
	ctx = withActor(ctx, actor)
	if !actor.Role.CanDispatch() {
		return nil, apperrors.ErrActorNotPermitted
	}

	var updated *models.Job
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		job, err := lockJob(repos, jobID)
		if err != nil {
			return err
		}
		current := job.Status
		next, err := lifecycle.Next(job.ID.String(), current, lifecycle.EventCancel)
		if err != nil {
			return err
		}
		job.Status = next
		if err := saveTransition(repos, job, current, lifecycle.EventCancel); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.AssignedClerkID != nil {
		s.dispatch(ctx, []Notification{{
			UserID:  *updated.AssignedClerkID,
			JobID:   updated.ID,
			Type:    NotificationJobCancelled,
			Message: "A job assigned to you was cancelled",
		}})
	}
	return updated, nil
}

// autoAssign runs pool resolution and scoring for a pending job and applies
// the winner. It returns nil without error when nobody is eligible.
func (s *JobService) autoAssign(ctx context.Context, repos *repository.Repositories, job *models.Job, property *models.Property, reason string) (*Notification, error) {
	now := s.now()
	best, err := s.assigner.FindBestClerk(repos, job, property, now)
	if err != nil {
		return nil, fmt.Errorf("failed to select clerk: %w", err)
	}
	if best == nil {
		logger.WithContext(ctx).WithField("job_id", job.ID.String()).Info("no eligible clerk, job left pending")
		return nil, nil
	}

	current := job.Status
	next, err := lifecycle.Next(job.ID.String(), current, lifecycle.EventAutoAssign)
	if err != nil {
		return nil, err
	}
	clerkID := best.ClerkID
	job.AssignedClerkID = &clerkID
	job.Status = next
	if err := saveTransition(repos, job, current, lifecycle.EventAutoAssign); err != nil {
		return nil, err
	}
	if err := appendAssignmentLog(ctx, repos, &models.AssignmentLog{
		JobID:      job.ID,
		NewClerkID: &clerkID,
		ActionType: models.ActionAutoAssign,
		Reason:     reason,
		CreatedAt:  now.UTC(),
	}, best); err != nil {
		return nil, err
	}

	return &Notification{
		UserID:  clerkID,
		JobID:   job.ID,
		Type:    NotificationJobAssigned,
		Message: "New job assigned",
	}, nil
}

// assignClerk validates clerkID and applies a manual assignment
func (s *JobService) assignClerk(ctx context.Context, repos *repository.Repositories, job *models.Job, clerkID uuid.UUID, actor Actor, reason string) (*Notification, error) {
	current := job.Status
	next, err := lifecycle.Next(job.ID.String(), current, lifecycle.EventAssign)
	if err != nil {
		return nil, err
	}

	clerk, err := repos.Users.GetByID(clerkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClerkNotFound
		}
		return nil, fmt.Errorf("failed to load clerk: %w", err)
	}
	if !clerk.IsClerk() {
		return nil, apperrors.NewInvalidCandidateError(clerkID.String(), "user is not a clerk")
	}
	if !clerk.IsActive {
		return nil, apperrors.NewInvalidCandidateError(clerkID.String(), "clerk is not active")
	}

	previous := job.AssignedClerkID
	job.AssignedClerkID = &clerkID
	job.Status = next
	if err := saveTransition(repos, job, current, lifecycle.EventAssign); err != nil {
		return nil, err
	}
	triggeredBy := actor.UserID
	if err := appendAssignmentLog(ctx, repos, &models.AssignmentLog{
		JobID:             job.ID,
		PreviousClerkID:   previous,
		NewClerkID:        &clerkID,
		ActionType:        models.ActionManualOverride,
		TriggeredByUserID: &triggeredBy,
		Reason:            reason,
		CreatedAt:         s.now().UTC(),
	}, nil); err != nil {
		return nil, err
	}

	return &Notification{
		UserID:  clerkID,
		JobID:   job.ID,
		Type:    NotificationJobAssigned,
		Message: "New job assigned",
	}, nil
}

// dispatch sends notifications after commit; failures are only logged
func (s *JobService) dispatch(ctx context.Context, notes []Notification) {
	for _, n := range notes {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = s.now().UTC()
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
				"user_id": n.UserID.String(),
				"job_id":  n.JobID.String(),
				"type":    n.Type,
			}).Warn("failed to send notification")
		}
	}
}

func newJobFromRequest(actor Actor, req *CreateJobRequest) *models.Job {
	createdBy := actor.UserID
	job := &models.Job{
		PropertyID:               req.PropertyID,
		CreatedByUserID:          &createdBy,
		AssignedAgentID:          req.AssignedAgentID,
		JobType:                  req.JobType,
		Priority:                 req.Priority,
		AppointmentDate:          req.AppointmentDate.UTC(),
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		AccessInstructions:       req.AccessInstructions,
		KeyLocation:              req.KeyLocation,
		AdminNotes:               req.AdminNotes,
		BookingQuestions:         datatypes.JSONMap(req.BookingQuestions),
		HandoverData:             datatypes.JSONMap{},
		Status:                   lifecycle.StatusPendingAssignment,
	}
	if actor.Role == models.RoleAgent {
		job.AssignedAgentID = &createdBy
	}
	if job.JobType == "" {
		job.JobType = models.DefaultJobType
	}
	if job.Priority == "" {
		job.Priority = models.PriorityNormal
	}
	if job.EstimatedDurationMinutes == 0 {
		job.EstimatedDurationMinutes = models.DefaultEstimatedDurationMin
	}
	if job.BookingQuestions == nil {
		job.BookingQuestions = datatypes.JSONMap{}
	}
	return job
}

func applyJobUpdate(job *models.Job, req *UpdateJobRequest) {
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Priority != nil {
		job.Priority = *req.Priority
	}
	if req.AppointmentDate != nil {
		job.AppointmentDate = req.AppointmentDate.UTC()
	}
	if req.EstimatedDurationMinutes != nil {
		job.EstimatedDurationMinutes = *req.EstimatedDurationMinutes
	}
	if req.AccessInstructions != nil {
		job.AccessInstructions = *req.AccessInstructions
	}
	if req.KeyLocation != nil {
		job.KeyLocation = *req.KeyLocation
	}
	if req.AdminNotes != nil {
		job.AdminNotes = *req.AdminNotes
	}
	if req.BookingQuestions != nil {
		job.BookingQuestions = datatypes.JSONMap(req.BookingQuestions)
	}
	if req.AssignedAgentID != nil {
		job.AssignedAgentID = req.AssignedAgentID
	}
}

// lockJob loads a job for update, translating a missing row to ErrJobNotFound
func lockJob(repos *repository.Repositories, id uuid.UUID) (*models.Job, error) {
	job, err := repos.Jobs.GetByIDForUpdate(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return job, nil
}

// saveTransition persists job only if its stored status is still expected
func saveTransition(repos *repository.Repositories, job *models.Job, expected models.JobStatus, event lifecycle.Event) error {
	if err := repos.Jobs.SaveTransition(job, expected); err != nil {
		if errors.Is(err, repository.ErrStaleRecord) {
			return apperrors.NewStateConflictError(job.ID.String(), string(expected), string(event))
		}
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// outsideGeofence is true when both positions are known and further apart than GeofenceRadiusKm
func outsideGeofence(property *models.Property, lat, lng *float64) bool {
	target, ok := property.Location()
	if !ok {
		return false
	}
	at, ok := geo.PointFrom(lat, lng)
	if !ok {
		return false
	}
	return geo.DistanceBetween(at, target) > GeofenceRadiusKm
}

func validateOptionalCoordinates(lat, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}
	if lat == nil || lng == nil {
		return apperrors.NewValidationError("lat", "lat and lng must be given together")
	}
	if !geo.ValidCoordinates(*lat, *lng) {
		return apperrors.ErrInvalidCoordinates
	}
	return nil
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
