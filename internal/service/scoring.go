package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/geo"
	"field-service-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scoring weights. Proximity is either the distance score or, for a future
// job and a clerk without live coordinates, the postcode match score.
const (
	ContinuityBonus    = 50.0
	MaxDistanceScore   = 100.0
	DistanceDecayPerKm = 10.0
	PostcodeMatchScore = 30.0
	PostcodePrefixLen  = 4
	MaxWorkloadScore   = 20.0
)

// ScoringInput is everything needed to score one candidate
type ScoringInput struct {
	Candidate   Candidate
	Property    *models.Property
	LastClerkID *uuid.UUID // clerk of the latest completed job at the property
	ActiveJobs  int64
	SameDay     bool
}

// ScoreBreakdown is the scored result for one clerk
type ScoreBreakdown struct {
	ClerkID       uuid.UUID `json:"clerk_id"`
	Continuity    float64   `json:"continuity"`
	Proximity     float64   `json:"proximity"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
	PostcodeMatch bool      `json:"postcode_match"`
	Workload      float64   `json:"workload"`
	ActiveJobs    int64     `json:"active_jobs"`
	Total         float64   `json:"total"`
}

// DistanceScore decays linearly from 100 at 0 km to 0 at 10 km and beyond
func DistanceScore(km float64) float64 {
	return math.Max(0, MaxDistanceScore-km*DistanceDecayPerKm)
}

// WorkloadScore is 20 for an idle clerk and 0 from 20 active jobs upwards
func WorkloadScore(activeJobs int64) float64 {
	return math.Max(0, MaxWorkloadScore-float64(activeJobs))
}

// PostcodeScore awards the match score when both postcodes share the first
// four characters (case-sensitive). Shorter postcodes compare whole.
func PostcodeScore(availabilityPostcode, propertyPostcode string) float64 {
	if availabilityPostcode == "" || propertyPostcode == "" {
		return 0
	}
	if postcodePrefix(availabilityPostcode) == postcodePrefix(propertyPostcode) {
		return PostcodeMatchScore
	}
	return 0
}

func postcodePrefix(p string) string {
	if len(p) > PostcodePrefixLen {
		return p[:PostcodePrefixLen]
	}
	return p
}

// ScoreCandidate computes continuity + proximity + workload for one candidate
func ScoreCandidate(in ScoringInput) ScoreBreakdown {
	clerk := in.Candidate.Clerk
	b := ScoreBreakdown{ClerkID: clerk.ID, ActiveJobs: in.ActiveJobs}

	if in.LastClerkID != nil && *in.LastClerkID == clerk.ID {
		b.Continuity = ContinuityBonus
	}

	propertyPoint, propertyOK := in.Property.Location()
	clerkPoint, clerkOK := clerk.Location()
	switch {
	case propertyOK && clerkOK:
		km := geo.DistanceBetween(clerkPoint, propertyPoint)
		b.DistanceKm = &km
		b.Proximity = DistanceScore(km)
	case propertyOK && !clerkOK && !in.SameDay && in.Candidate.Availability != nil:
		b.Proximity = PostcodeScore(in.Candidate.Availability.Postcode, in.Property.Postcode)
		b.PostcodeMatch = b.Proximity > 0
	}

	b.Workload = WorkloadScore(in.ActiveJobs)
	b.Total = b.Continuity + b.Proximity + b.Workload
	return b
}

// RankScores orders breakdowns by total descending. Equal totals are ordered
// by clerk id ascending, so the lowest id wins a tie.
func RankScores(scores []ScoreBreakdown) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].ClerkID.String() < scores[j].ClerkID.String()
	})
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})
}

// ScoringEngine scores a candidate pool against a job
type ScoringEngine struct{}

// NewScoringEngine creates a new scoring engine
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score loads continuity and workload for each candidate and returns the ranked breakdowns
func (e *ScoringEngine) Score(repos *repository.Repositories, property *models.Property, candidates []Candidate, sameDay bool) ([]ScoreBreakdown, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	var lastClerkID *uuid.UUID
	last, err := repos.Jobs.FindLastCompletedAtProperty(property.ID)
	switch {
	case err == nil:
		lastClerkID = last.AssignedClerkID
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("failed to load last completed job: %w", err)
	}

	scores := make([]ScoreBreakdown, 0, len(candidates))
	for _, c := range candidates {
		active, err := repos.Jobs.CountActiveForClerk(c.Clerk.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count active jobs for clerk %s: %w", c.Clerk.ID, err)
		}
		scores = append(scores, ScoreCandidate(ScoringInput{
			Candidate:   c,
			Property:    property,
			LastClerkID: lastClerkID,
			ActiveJobs:  active,
			SameDay:     sameDay,
		}))
	}

	RankScores(scores)
	return scores, nil
}

// SelectBest returns the highest scoring breakdown, or nil for an empty pool
func (e *ScoringEngine) SelectBest(repos *repository.Repositories, property *models.Property, candidates []Candidate, sameDay bool) (*ScoreBreakdown, error) {
	scores, err := e.Score(repos, property, candidates, sameDay)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil
	}
	best := scores[0]
	return &best, nil
}
