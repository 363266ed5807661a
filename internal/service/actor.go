package service

import (
	"context"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/logger"

	"github.com/google/uuid"
)

// Actor is the verified caller of a service operation
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// withActor tags ctx so log lines carry the actor
func withActor(ctx context.Context, actor Actor) context.Context {
	return logger.ContextWithActor(ctx, actor.UserID.String(), string(actor.Role))
}
