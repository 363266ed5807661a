package models

import (
	"fmt"
	"strings"

	"field-service-backend/internal/lifecycle"
)

// Role is the closed set of user roles
type Role string

const (
	RoleAdmin Role = "admin"
	RoleClerk Role = "clerk"
	RoleAgent Role = "agent"
)

// ParseRole converts a raw string to a Role, returning an error for unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.IsValid() {
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClerk, RoleAgent:
		return true
	}
	return false
}

// CanDispatch reports whether the role may create jobs and assign clerks.
func (r Role) CanDispatch() bool {
	switch r {
	case RoleAdmin, RoleAgent:
		return true
	case RoleClerk:
		return false
	}
	return false
}

// Priority of a job
type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityNormal    Priority = "normal"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// JobStatus is stored in jobs.status; transitions are defined in the lifecycle package.
type JobStatus = lifecycle.Status

// ActionType identifies the kind of assignment decision recorded in the log
type ActionType string

const (
	ActionAutoAssign     ActionType = "AUTO_ASSIGN"
	ActionManualOverride ActionType = "MANUAL_OVERRIDE"
	ActionRejection      ActionType = "REJECTION"
)

// IsValid checks if the ActionType is valid
func (a ActionType) IsValid() bool {
	switch a {
	case ActionAutoAssign, ActionManualOverride, ActionRejection:
		return true
	}
	return false
}
