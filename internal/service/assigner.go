package service

import (
	"time"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/repository"
)

// Assigner picks the best clerk for a job. It has no side effects.
type Assigner struct {
	pool    *CandidatePoolResolver
	scoring *ScoringEngine
}

// NewAssigner creates a new assigner
func NewAssigner(pool *CandidatePoolResolver, scoring *ScoringEngine) *Assigner {
	return &Assigner{pool: pool, scoring: scoring}
}

// FindBestClerk resolves the candidate pool and scores it. A nil result with
// a nil error means no clerk is eligible.
func (a *Assigner) FindBestClerk(repos *repository.Repositories, job *models.Job, property *models.Property, now time.Time) (*ScoreBreakdown, error) {
	candidates, err := a.pool.Resolve(repos, job, now)
	if err != nil {
		return nil, err
	}
	return a.scoring.SelectBest(repos, property, candidates, a.pool.IsSameDay(job.AppointmentDate, now))
}
