package handlers

import (
	"net/http"

	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for properties
type PropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// CreateProperty registers a property
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} models.Property
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty changes a property
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param property body service.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} models.Property
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "property")
	if !ok {
		return
	}

	var req service.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetProperty retrieves a property by ID
// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} models.Property
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := pathUUID(c, "id", "property")
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// ListProperties lists properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PropertyListResponse
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	page, pageSize, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.propertyService.ListProperties(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
