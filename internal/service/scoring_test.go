package service_test

import (
	"math"
	"testing"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kmPerDegreeLat is the meridian arc length of one degree on the haversine sphere
var kmPerDegreeLat = 6371 * math.Pi / 180

func floatPtr(f float64) *float64 { return &f }

func clerkAt(lat, lng float64) models.User {
	u := models.User{Role: models.RoleClerk, IsActive: true, IsOnShift: true, CurrentLat: floatPtr(lat), CurrentLng: floatPtr(lng)}
	u.ID = uuid.New()
	return u
}

func propertyAt(lat, lng float64, postcode string) *models.Property {
	p := &models.Property{Postcode: postcode, Latitude: floatPtr(lat), Longitude: floatPtr(lng)}
	p.ID = uuid.New()
	return p
}

func TestDistanceScore(t *testing.T) {
	assert.Equal(t, 100.0, service.DistanceScore(0))
	assert.InDelta(t, 80.0, service.DistanceScore(2), 1e-9)
	assert.InDelta(t, 0.0, service.DistanceScore(10), 1e-9)
	assert.Equal(t, 0.0, service.DistanceScore(250))
}

func TestDistanceScoreIsStrictlyMonotonicInsideDecayWindow(t *testing.T) {
	for km := 0.0; km < 9.9; km += 0.25 {
		assert.Greater(t, service.DistanceScore(km), service.DistanceScore(km+0.1), "km=%v", km)
	}
}

func TestWorkloadScoreFloor(t *testing.T) {
	assert.Equal(t, 20.0, service.WorkloadScore(0))
	assert.Equal(t, 15.0, service.WorkloadScore(5))
	for _, n := range []int64{20, 21, 50, 1000} {
		assert.Equal(t, 0.0, service.WorkloadScore(n), "active=%d", n)
	}
}

func TestPostcodeScore(t *testing.T) {
	assert.Equal(t, service.PostcodeMatchScore, service.PostcodeScore("SW1A 1AA", "SW1A 2BB"))
	assert.Equal(t, 0.0, service.PostcodeScore("SW1B 1AA", "SW1A 1AA"))
	assert.Equal(t, 0.0, service.PostcodeScore("sw1a 1aa", "SW1A 1AA"))
	assert.Equal(t, 0.0, service.PostcodeScore("", "SW1A 1AA"))
	assert.Equal(t, service.PostcodeMatchScore, service.PostcodeScore("E1", "E1"))
}

func TestScoreCandidateSameLocation(t *testing.T) {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	clerk := clerkAt(51.5, -0.12)

	b := service.ScoreCandidate(service.ScoringInput{
		Candidate: service.Candidate{Clerk: clerk},
		Property:  property,
		SameDay:   true,
	})

	assert.Equal(t, clerk.ID, b.ClerkID)
	require.NotNil(t, b.DistanceKm)
	assert.InDelta(t, 0.0, *b.DistanceKm, 1e-9)
	assert.InDelta(t, 100.0, b.Proximity, 1e-9)
	assert.Equal(t, 20.0, b.Workload)
	assert.Equal(t, 0.0, b.Continuity)
	assert.InDelta(t, 120.0, b.Total, 1e-9)
}

func TestScoreCandidateContinuityBonus(t *testing.T) {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	clerk := clerkAt(51.5, -0.12)
	last := clerk.ID

	b := service.ScoreCandidate(service.ScoringInput{
		Candidate:   service.Candidate{Clerk: clerk},
		Property:    property,
		LastClerkID: &last,
		SameDay:     true,
	})
	assert.Equal(t, service.ContinuityBonus, b.Continuity)
	assert.InDelta(t, 170.0, b.Total, 1e-9)

	other := uuid.New()
	b = service.ScoreCandidate(service.ScoringInput{
		Candidate:   service.Candidate{Clerk: clerk},
		Property:    property,
		LastClerkID: &other,
		SameDay:     true,
	})
	assert.Equal(t, 0.0, b.Continuity)
}

func TestScoreCandidatePostcodeFallback(t *testing.T) {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	clerk := models.User{Role: models.RoleClerk, IsActive: true}
	clerk.ID = uuid.New()
	availability := &models.Availability{Postcode: "SW1A 9ZZ", IsAvailable: true}

	future := service.ScoreCandidate(service.ScoringInput{
		Candidate:  service.Candidate{Clerk: clerk, Availability: availability},
		Property:   property,
		ActiveJobs: 2,
	})
	assert.True(t, future.PostcodeMatch)
	assert.Nil(t, future.DistanceKm)
	assert.Equal(t, service.PostcodeMatchScore, future.Proximity)
	assert.Equal(t, 48.0, future.Total)

	sameDay := service.ScoreCandidate(service.ScoringInput{
		Candidate:  service.Candidate{Clerk: clerk, Availability: availability},
		Property:   property,
		ActiveJobs: 2,
		SameDay:    true,
	})
	assert.False(t, sameDay.PostcodeMatch)
	assert.Equal(t, 0.0, sameDay.Proximity)
}

func TestScoreCandidatePropertyWithoutCoordinatesGetsNoProximity(t *testing.T) {
	property := &models.Property{Postcode: "SW1A 1AA"}
	availability := &models.Availability{Postcode: "SW1A 9ZZ", IsAvailable: true}

	located := clerkAt(51.5, -0.12)
	unlocated := models.User{Role: models.RoleClerk, IsActive: true}
	unlocated.ID = uuid.New()

	for _, clerk := range []models.User{located, unlocated} {
		b := service.ScoreCandidate(service.ScoringInput{
			Candidate: service.Candidate{Clerk: clerk, Availability: availability},
			Property:  property,
		})
		assert.False(t, b.PostcodeMatch)
		assert.Nil(t, b.DistanceKm)
		assert.Equal(t, 0.0, b.Proximity)
		assert.Equal(t, 20.0, b.Total)
	}
}

func TestScoreCandidateCoordinatesWinOverPostcode(t *testing.T) {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	clerk := clerkAt(51.5+20/kmPerDegreeLat, -0.12)
	availability := &models.Availability{Postcode: "SW1A 1AA", IsAvailable: true}

	b := service.ScoreCandidate(service.ScoringInput{
		Candidate: service.Candidate{Clerk: clerk, Availability: availability},
		Property:  property,
	})
	assert.False(t, b.PostcodeMatch)
	assert.Equal(t, 0.0, b.Proximity)
}

func TestScoreCandidateCloserClerkScoresHigher(t *testing.T) {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	near := clerkAt(51.5+1.5/kmPerDegreeLat, -0.12)
	far := clerkAt(51.5+6/kmPerDegreeLat, -0.12)

	nearScore := service.ScoreCandidate(service.ScoringInput{Candidate: service.Candidate{Clerk: near}, Property: property, ActiveJobs: 3, SameDay: true})
	farScore := service.ScoreCandidate(service.ScoringInput{Candidate: service.Candidate{Clerk: far}, Property: property, ActiveJobs: 3, SameDay: true})

	assert.Greater(t, nearScore.Total, farScore.Total)
}

func TestScoreCandidateBusyNearVersusIdleFar(t *testing.T) {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	c1 := clerkAt(51.5+2/kmPerDegreeLat, -0.12)
	c2 := clerkAt(51.5+8/kmPerDegreeLat, -0.12)

	s1 := service.ScoreCandidate(service.ScoringInput{Candidate: service.Candidate{Clerk: c1}, Property: property, ActiveJobs: 5, SameDay: true})
	s2 := service.ScoreCandidate(service.ScoringInput{Candidate: service.Candidate{Clerk: c2}, Property: property, ActiveJobs: 0, SameDay: true})

	assert.InDelta(t, 95.0, s1.Total, 1e-6)
	assert.InDelta(t, 40.0, s2.Total, 1e-6)

	scores := []service.ScoreBreakdown{s2, s1}
	service.RankScores(scores)
	assert.Equal(t, c1.ID, scores[0].ClerkID)
}

func TestRankScoresTieBreaksOnLowestClerkID(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	mid := uuid.MustParse("7fffffff-0000-0000-0000-000000000000")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	scores := []service.ScoreBreakdown{
		{ClerkID: high, Total: 90},
		{ClerkID: mid, Total: 95},
		{ClerkID: low, Total: 90},
		{ClerkID: uuid.New(), Total: 10},
	}
	service.RankScores(scores)

	assert.Equal(t, mid, scores[0].ClerkID)
	assert.Equal(t, low, scores[1].ClerkID)
	assert.Equal(t, high, scores[2].ClerkID)
	assert.Equal(t, 10.0, scores[3].Total)
}
