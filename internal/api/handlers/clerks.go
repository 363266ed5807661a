package handlers

import (
	"net/http"

	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClerkHandler handles HTTP requests for clerks
type ClerkHandler struct {
	clerkService service.ClerkServiceInterface
}

// NewClerkHandler creates a new clerk handler
func NewClerkHandler(clerkService service.ClerkServiceInterface) *ClerkHandler {
	return &ClerkHandler{clerkService: clerkService}
}

// ListClerks lists clerks
// @Summary List clerks
// @Tags clerks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.UserListResponse
// @Security BearerAuth
// @Router /clerks [get]
func (h *ClerkHandler) ListClerks(c *gin.Context) {
	page, pageSize, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.clerkService.ListClerks(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetClerk retrieves a clerk by ID
// @Summary Get clerk by ID
// @Tags clerks
// @Produce json
// @Param id path string true "Clerk ID (UUID)"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Clerk not found"
// @Security BearerAuth
// @Router /clerks/{id} [get]
func (h *ClerkHandler) GetClerk(c *gin.Context) {
	id, ok := pathUUID(c, "id", "clerk")
	if !ok {
		return
	}

	clerk, err := h.clerkService.GetClerk(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clerk)
}

// UpdateLocation stores the clerk's current position
// @Summary Update clerk location
// @Tags clerks
// @Accept json
// @Produce json
// @Param id path string true "Clerk ID (UUID)"
// @Param location body service.UpdateLocationRequest true "Current position"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Coordinates missing or out of range"
// @Failure 403 {object} ErrorResponse "Clerks can only update their own location"
// @Security BearerAuth
// @Router /clerks/{id}/location [put]
func (h *ClerkHandler) UpdateLocation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "clerk")
	if !ok {
		return
	}

	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	clerk, err := h.clerkService.UpdateLocation(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clerk)
}

// SetShift puts the clerk on or off shift
// @Summary Set clerk shift status
// @Description Going on shift requires a complete address and proof of address.
// @Tags clerks
// @Accept json
// @Produce json
// @Param id path string true "Clerk ID (UUID)"
// @Param shift body service.SetShiftRequest true "Shift status"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Address incomplete"
// @Failure 403 {object} ErrorResponse "Clerks can only change their own shift"
// @Security BearerAuth
// @Router /clerks/{id}/shift [put]
func (h *ClerkHandler) SetShift(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "clerk")
	if !ok {
		return
	}

	var req service.SetShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	clerk, err := h.clerkService.SetShift(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clerk)
}
