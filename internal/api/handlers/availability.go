package handlers

import (
	"net/http"

	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles HTTP requests for clerk availability
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// UpsertAvailability stores one or more days for a clerk
// @Summary Set clerk availability
// @Description An existing record for the same date is overwritten.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Clerk ID (UUID)"
// @Param availability body service.UpsertAvailabilityRequest true "Availability records"
// @Success 200 {array} models.Availability
// @Failure 400 {object} ErrorResponse "Invalid records"
// @Failure 403 {object} ErrorResponse "Caller may not edit this clerk"
// @Security BearerAuth
// @Router /clerks/{id}/availability [put]
func (h *AvailabilityHandler) UpsertAvailability(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	clerkID, ok := pathUUID(c, "id", "clerk")
	if !ok {
		return
	}

	var req service.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	records, err := h.availabilityService.Upsert(c.Request.Context(), actor, clerkID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListAvailability lists a clerk's availability, optionally within a date range
// @Summary List clerk availability
// @Tags availability
// @Produce json
// @Param id path string true "Clerk ID (UUID)"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} models.Availability
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /clerks/{id}/availability [get]
func (h *AvailabilityHandler) ListAvailability(c *gin.Context) {
	clerkID, ok := pathUUID(c, "id", "clerk")
	if !ok {
		return
	}
	from, err := queryDate(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := queryDate(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.availabilityService.List(c.Request.Context(), clerkID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteAvailability removes one availability record
// @Summary Delete an availability record
// @Tags availability
// @Param id path string true "Availability ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Caller may not edit this record"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /availability/{id} [delete]
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "availability")
	if !ok {
		return
	}

	if err := h.availabilityService.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
