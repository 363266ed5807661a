package handlers

import (
	"net/http"

	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	clerkService service.ClerkServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(clerkService service.ClerkServiceInterface) *UserHandler {
	return &UserHandler{clerkService: clerkService}
}

// GetMe returns the authenticated user's own record
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "User no longer exists"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	user, err := h.clerkService.GetCurrentUser(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes a user's contact and address details
// @Summary Update user profile
// @Description Users may update themselves; admins may update anyone.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param profile body service.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid request or address required while on shift"
// @Failure 403 {object} ErrorResponse "Caller may not edit this user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.clerkService.UpdateProfile(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SetActive enables or disables an account
// @Summary Activate or deactivate a user
// @Description Admin only. Deactivated clerks are taken off shift and leave the candidate pool.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param status body service.SetActiveRequest true "Account status"
// @Success 200 {object} models.User
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/active [put]
func (h *UserHandler) SetActive(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.clerkService.SetActive(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account
// @Summary Delete a user
// @Description Admin only. Clerks with active jobs must have them reassigned first.
// @Tags users
// @Param id path string true "User ID (UUID)"
// @Success 204 "User deleted"
// @Failure 400 {object} ErrorResponse "User has active jobs or is the caller"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.clerkService.DeleteUser(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
