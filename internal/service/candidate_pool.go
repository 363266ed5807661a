package service

import (
	"errors"
	"fmt"
	"time"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/repository"

	"gorm.io/gorm"
)

// Candidate is a clerk eligible for scoring. Availability is set only for
// jobs that are not same-day.
type Candidate struct {
	Clerk        models.User
	Availability *models.Availability
}

// CandidatePoolResolver decides which clerks may be considered for a job
type CandidatePoolResolver struct {
	location *time.Location
}

// NewCandidatePoolResolver creates a resolver deciding "today" in loc
func NewCandidatePoolResolver(loc *time.Location) *CandidatePoolResolver {
	if loc == nil {
		loc = time.UTC
	}
	return &CandidatePoolResolver{location: loc}
}

// IsSameDay reports whether appointment falls on the calendar date of now in the resolver's timezone
func (r *CandidatePoolResolver) IsSameDay(appointment, now time.Time) bool {
	ay, am, ad := appointment.In(r.location).Date()
	ny, nm, nd := now.In(r.location).Date()
	return ay == ny && am == nm && ad == nd
}

// Resolve returns the eligible clerks for job, ordered by clerk id ascending.
//
// Same-day jobs need an on-shift clerk with a live location. Any other date
// needs an availability record for that exact date marked available.
func (r *CandidatePoolResolver) Resolve(repos *repository.Repositories, job *models.Job, now time.Time) ([]Candidate, error) {
	if r.IsSameDay(job.AppointmentDate, now) {
		clerks, err := repos.Users.FindClerks(repository.ClerkFilter{OnShiftOnly: true, RequireLocation: true})
		if err != nil {
			return nil, fmt.Errorf("failed to find on-shift clerks: %w", err)
		}
		candidates := make([]Candidate, 0, len(clerks))
		for _, clerk := range clerks {
			if !isActiveClerk(&clerk) || !clerk.IsOnShift || clerk.CurrentLat == nil || clerk.CurrentLng == nil {
				continue
			}
			candidates = append(candidates, Candidate{Clerk: clerk})
		}
		return candidates, nil
	}

	clerks, err := repos.Users.FindClerks(repository.ClerkFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to find clerks: %w", err)
	}

	date := job.AppointmentDate.In(r.location)
	candidates := make([]Candidate, 0, len(clerks))
	for _, clerk := range clerks {
		if !isActiveClerk(&clerk) {
			continue
		}
		availability, err := repos.Availability.FindForClerkOnDate(clerk.ID, date)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load availability for clerk %s: %w", clerk.ID, err)
		}
		if !availability.IsAvailable {
			continue
		}
		candidates = append(candidates, Candidate{Clerk: clerk, Availability: availability})
	}
	return candidates, nil
}

// isActiveClerk re-checks the base filter on what the store returned
func isActiveClerk(u *models.User) bool {
	return u.IsClerk() && u.IsActive
}
