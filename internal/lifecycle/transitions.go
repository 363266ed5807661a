// Package lifecycle defines the job status state machine.
//
// Valid status graph:
//
//	pending_assignment ──► assigned ──► on_route ──► in_progress ──► completed
//	        ▲                 │  │          │  │
//	        └──── reject ─────┘  └─ check_in ─┘ (check-in is accepted from assigned too)
//
// Every non-terminal state may be cancelled. completed and cancelled are terminal.
package lifecycle

import (
	"fmt"

	apperrors "field-service-backend/internal/errors"
)

// Status values mirror the jobs.status column.
type Status string

const (
	StatusPendingAssignment Status = "pending_assignment"
	StatusAssigned          Status = "assigned"
	StatusOnRoute           Status = "on_route"
	StatusInProgress        Status = "in_progress"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
)

// Event is something that moves a job from one status to another.
type Event string

const (
	EventAutoAssign Event = "auto_assign"
	EventAssign     Event = "assign"
	EventReject     Event = "reject"
	EventStart      Event = "start"
	EventCheckIn    Event = "check_in"
	EventComplete   Event = "complete"
	EventCancel     Event = "cancel"
)

type rule struct {
	from []Status
	to   Status
}

var nonTerminal = []Status{StatusPendingAssignment, StatusAssigned, StatusOnRoute, StatusInProgress}

// transitions lists the accepted source states and the target state per event.
var transitions = map[Event]rule{
	EventAutoAssign: {from: []Status{StatusPendingAssignment}, to: StatusAssigned},
	EventAssign:     {from: []Status{StatusPendingAssignment, StatusAssigned}, to: StatusAssigned},
	EventReject:     {from: []Status{StatusAssigned, StatusOnRoute}, to: StatusPendingAssignment},
	EventStart:      {from: []Status{StatusAssigned}, to: StatusOnRoute},
	EventCheckIn:    {from: []Status{StatusAssigned, StatusOnRoute}, to: StatusInProgress},
	EventComplete:   {from: []Status{StatusInProgress}, to: StatusCompleted},
	EventCancel:     {from: nonTerminal, to: StatusCancelled},
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPendingAssignment, StatusAssigned, StatusOnRoute, StatusInProgress, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// ParseEvent converts a raw string to an Event.
func ParseEvent(s string) (Event, error) {
	ev := Event(s)
	if _, ok := transitions[ev]; ok {
		return ev, nil
	}
	return "", fmt.Errorf("unknown job event %q", s)
}

// IsTerminal reports whether no event can leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsActive reports whether a job in status s counts towards a clerk's workload.
func (s Status) IsActive() bool {
	switch s {
	case StatusAssigned, StatusOnRoute, StatusInProgress:
		return true
	}
	return false
}

// ActiveStatuses returns the statuses counted as a clerk's active workload.
func ActiveStatuses() []Status {
	return []Status{StatusAssigned, StatusOnRoute, StatusInProgress}
}

// Sources returns the statuses from which ev is accepted.
func Sources(ev Event) []Status {
	r, ok := transitions[ev]
	if !ok {
		return nil
	}
	out := make([]Status, len(r.from))
	copy(out, r.from)
	return out
}

// IsTransitionAllowed returns true when ev may be applied to a job in status from.
func IsTransitionAllowed(from Status, ev Event) bool {
	r, ok := transitions[ev]
	if !ok {
		return false
	}
	for _, s := range r.from {
		if s == from {
			return true
		}
	}
	return false
}

// Next returns the status a job in current moves to on ev, or a
// StateConflictError when ev is not accepted from current.
func Next(jobID string, current Status, ev Event) (Status, error) {
	if !IsTransitionAllowed(current, ev) {
		return "", apperrors.NewStateConflictError(jobID, string(current), string(ev))
	}
	return transitions[ev].to, nil
}
