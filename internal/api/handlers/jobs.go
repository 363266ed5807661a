package handlers

import (
	"errors"
	"io"
	"net/http"

	"field-service-backend/internal/lifecycle"
	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for jobs
type JobHandler struct {
	jobService service.JobServiceInterface
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService service.JobServiceInterface) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob creates a job and optionally assigns it
// @Summary Create a job
// @Description Create a job at a property. With assignment_type "auto" the best clerk is picked
// @Description immediately; with "manual" and a clerk_id that clerk is assigned; otherwise the job
// @Description stays pending_assignment.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body service.CreateJobRequest true "Job data"
// @Success 201 {object} models.Job "Created job"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller may not create jobs"
// @Failure 404 {object} ErrorResponse "Property or clerk not found"
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, jobForClient(job))
}

// GetJob retrieves a job by ID
// @Summary Get job by ID
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.Job
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobForClient(job))
}

// ListJobs lists jobs with optional filters
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Param status query string false "Job status"
// @Param clerk_id query string false "Assigned clerk ID"
// @Param agent_id query string false "Assigned agent ID"
// @Param property_id query string false "Property ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.JobListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	req := service.ListJobsRequest{Status: c.Query("status")}
	if req.Status != "" {
		if _, err := lifecycle.ParseStatus(req.Status); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	var err error
	if req.ClerkID, err = queryUUID(c, "clerk_id"); err != nil {
		respondError(c, err)
		return
	}
	if req.AgentID, err = queryUUID(c, "agent_id"); err != nil {
		respondError(c, err)
		return
	}
	if req.PropertyID, err = queryUUID(c, "property_id"); err != nil {
		respondError(c, err)
		return
	}
	if req.Page, req.PageSize, err = pagination(c); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.jobService.ListJobs(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Jobs = jobsForClient(resp.Jobs)

	c.JSON(http.StatusOK, resp)
}

// AssignJob assigns a clerk to a job by hand
// @Summary Assign a clerk manually
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param assignment body service.AssignJobRequest true "Clerk to assign"
// @Success 200 {object} models.Job
// @Failure 400 {object} ErrorResponse "Invalid request or clerk not assignable"
// @Failure 404 {object} ErrorResponse "Job or clerk not found"
// @Failure 409 {object} ErrorResponse "Job cannot be assigned in its current status"
// @Security BearerAuth
// @Router /jobs/{id}/assign [post]
func (h *JobHandler) AssignJob(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	var req service.AssignJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.jobService.AssignManually(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobForClient(job))
}

// UpdateJob changes a job's booking details
// @Summary Update a job
// @Description Changes booking details of a non-terminal job. Status and clerk may only be
// @Description sent unchanged; use the action and assign endpoints for those.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param job body service.UpdateJobRequest true "Fields to change"
// @Success 200 {object} models.Job
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 409 {object} ErrorResponse "Job is completed or cancelled"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	var req service.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobForClient(job))
}

// RejectJob lets the assigned clerk hand a job back
// @Summary Reject an assignment
// @Description The job returns to pending_assignment and is immediately offered to the next best clerk.
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.Job
// @Failure 403 {object} ErrorResponse "Caller is not the assigned clerk"
// @Failure 409 {object} ErrorResponse "Job cannot be rejected in its current status"
// @Security BearerAuth
// @Router /jobs/{id}/reject [post]
func (h *JobHandler) RejectJob(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.jobService.RejectAssignment(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobForClient(job))
}

// StartJob marks the job on route
// @Summary Start a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.Job
// @Failure 409 {object} ErrorResponse "Job cannot be started in its current status"
// @Security BearerAuth
// @Router /jobs/{id}/start [post]
func (h *JobHandler) StartJob(c *gin.Context) {
	h.transition(c, lifecycle.EventStart)
}

// CheckIn records the clerk's arrival at the property
// @Summary Check in at the property
// @Description A check-in more than 100 m from the property sets location_warning_flag; it is never rejected.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param location body service.TransitionPayload false "Clerk location"
// @Success 200 {object} models.Job
// @Failure 409 {object} ErrorResponse "Job cannot be checked in in its current status"
// @Security BearerAuth
// @Router /jobs/{id}/check-in [post]
func (h *JobHandler) CheckIn(c *gin.Context) {
	h.transition(c, lifecycle.EventCheckIn)
}

// CompleteJob records the check-out and handover data
// @Summary Complete a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param completion body service.TransitionPayload false "Check-out location and handover data"
// @Success 200 {object} models.Job
// @Failure 409 {object} ErrorResponse "Job cannot be completed in its current status"
// @Security BearerAuth
// @Router /jobs/{id}/complete [post]
func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.transition(c, lifecycle.EventComplete)
}

func (h *JobHandler) transition(c *gin.Context, event lifecycle.Event) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	var payload service.TransitionPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	payload.HandoverData = handoverToStorage(payload.HandoverData)

	job, err := h.jobService.Transition(c.Request.Context(), actor, id, event, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobForClient(job))
}

// CancelJob cancels a job that has not finished
// @Summary Cancel a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.Job
// @Failure 403 {object} ErrorResponse "Caller may not cancel jobs"
// @Failure 409 {object} ErrorResponse "Job already completed or cancelled"
// @Security BearerAuth
// @Router /jobs/{id}/cancel [post]
func (h *JobHandler) CancelJob(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.jobService.CancelJob(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobForClient(job))
}
