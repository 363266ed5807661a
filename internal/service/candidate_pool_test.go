package service_test

import (
	"errors"
	"testing"
	"time"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/lifecycle"
	"field-service-backend/internal/repository"
	"field-service-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CandidatePoolTestSuite covers pool resolution, scoring and selection against mocked repositories
type CandidatePoolTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *mockStore
	resolver *service.CandidatePoolResolver
	now      time.Time
}

func (suite *CandidatePoolTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = newMockStore(suite.ctrl)
	suite.resolver = service.NewCandidatePoolResolver(time.UTC)
	suite.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func (suite *CandidatePoolTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CandidatePoolTestSuite) jobOn(appointment time.Time) *models.Job {
	job := &models.Job{AppointmentDate: appointment, Status: lifecycle.StatusPendingAssignment}
	job.ID = uuid.New()
	return job
}

func (suite *CandidatePoolTestSuite) TestIsSameDayUsesConfiguredTimezone() {
	loc := time.FixedZone("UTC+10", 10*60*60)
	resolver := service.NewCandidatePoolResolver(loc)

	// 15:00 UTC on the 9th is already the 10th in UTC+10
	now := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	suite.True(resolver.IsSameDay(time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC), now))
	suite.False(service.NewCandidatePoolResolver(time.UTC).IsSameDay(time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC), now))
	suite.False(resolver.IsSameDay(time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC), now))
}

func (suite *CandidatePoolTestSuite) TestSameDayExcludesInactiveAndOffShift() {
	onShift := clerkAt(51.5, -0.12)
	inactive := clerkAt(51.5, -0.12)
	inactive.IsActive = false
	offShift := clerkAt(51.5, -0.12)
	offShift.IsOnShift = false
	noLocation := clerkAt(51.5, -0.12)
	noLocation.CurrentLat = nil
	agent := clerkAt(51.5, -0.12)
	agent.Role = models.RoleAgent

	suite.store.users.EXPECT().
		FindClerks(repository.ClerkFilter{OnShiftOnly: true, RequireLocation: true}).
		Return([]models.User{onShift, inactive, offShift, noLocation, agent}, nil)

	candidates, err := suite.resolver.Resolve(suite.store.repos, suite.jobOn(suite.now.Add(3*time.Hour)), suite.now)

	suite.NoError(err)
	suite.Len(candidates, 1)
	suite.Equal(onShift.ID, candidates[0].Clerk.ID)
	suite.Nil(candidates[0].Availability)
}

func (suite *CandidatePoolTestSuite) TestFutureDateNeedsAvailableRecord() {
	appointment := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
	available := clerkAt(51.5, -0.12)
	available.IsOnShift = false
	blocked := clerkAt(51.5, -0.12)
	missing := clerkAt(51.5, -0.12)
	inactive := clerkAt(51.5, -0.12)
	inactive.IsActive = false

	suite.store.users.EXPECT().FindClerks(repository.ClerkFilter{}).
		Return([]models.User{available, blocked, missing, inactive}, nil)
	suite.store.avail.EXPECT().FindForClerkOnDate(available.ID, gomock.Any()).
		Return(&models.Availability{UserID: available.ID, IsAvailable: true, Postcode: "SW1A 1AA"}, nil)
	suite.store.avail.EXPECT().FindForClerkOnDate(blocked.ID, gomock.Any()).
		Return(&models.Availability{UserID: blocked.ID, IsAvailable: false}, nil)
	suite.store.avail.EXPECT().FindForClerkOnDate(missing.ID, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)

	candidates, err := suite.resolver.Resolve(suite.store.repos, suite.jobOn(appointment), suite.now)

	suite.NoError(err)
	suite.Len(candidates, 1)
	suite.Equal(available.ID, candidates[0].Clerk.ID)
	suite.Require().NotNil(candidates[0].Availability)
	suite.Equal("SW1A 1AA", candidates[0].Availability.Postcode)
}

func (suite *CandidatePoolTestSuite) TestPastDateFollowsAvailabilityBranch() {
	clerk := clerkAt(51.5, -0.12)
	suite.store.users.EXPECT().FindClerks(repository.ClerkFilter{}).Return([]models.User{clerk}, nil)
	suite.store.avail.EXPECT().FindForClerkOnDate(clerk.ID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	candidates, err := suite.resolver.Resolve(suite.store.repos, suite.jobOn(suite.now.AddDate(0, 0, -2)), suite.now)

	suite.NoError(err)
	suite.Empty(candidates)
}

func (suite *CandidatePoolTestSuite) TestStoreErrorsPropagate() {
	suite.store.users.EXPECT().FindClerks(gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := suite.resolver.Resolve(suite.store.repos, suite.jobOn(suite.now), suite.now)

	suite.Error(err)
	suite.Contains(err.Error(), "connection reset")
}

func (suite *CandidatePoolTestSuite) TestScoringEngineRanksAndUsesContinuity() {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	near := clerkAt(51.5+1/kmPerDegreeLat, -0.12)
	previous := clerkAt(51.5+3/kmPerDegreeLat, -0.12)

	suite.store.jobs.EXPECT().FindLastCompletedAtProperty(property.ID).
		Return(&models.Job{AssignedClerkID: &previous.ID, Status: lifecycle.StatusCompleted}, nil)
	suite.store.jobs.EXPECT().CountActiveForClerk(near.ID).Return(int64(0), nil)
	suite.store.jobs.EXPECT().CountActiveForClerk(previous.ID).Return(int64(4), nil)

	scores, err := service.NewScoringEngine().Score(suite.store.repos, property,
		[]service.Candidate{{Clerk: near}, {Clerk: previous}}, true)

	suite.NoError(err)
	suite.Require().Len(scores, 2)
	// previous: 50 + 70 + 16 = 136, near: 90 + 20 = 110
	suite.Equal(previous.ID, scores[0].ClerkID)
	suite.InDelta(136.0, scores[0].Total, 1e-6)
	suite.InDelta(110.0, scores[1].Total, 1e-6)
}

func (suite *CandidatePoolTestSuite) TestScoringEngineEmptyPool() {
	best, err := service.NewScoringEngine().SelectBest(suite.store.repos, propertyAt(0, 0, "E1"), nil, true)
	suite.NoError(err)
	suite.Nil(best)
}

func (suite *CandidatePoolTestSuite) TestAssignerPicksSameDayClerk() {
	property := propertyAt(51.5, -0.12, "SW1A 1AA")
	clerk := clerkAt(51.5, -0.12)
	job := suite.jobOn(suite.now.Add(2 * time.Hour))
	job.PropertyID = property.ID

	suite.store.users.EXPECT().FindClerks(gomock.Any()).Return([]models.User{clerk}, nil)
	suite.store.jobs.EXPECT().FindLastCompletedAtProperty(property.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.store.jobs.EXPECT().CountActiveForClerk(clerk.ID).Return(int64(0), nil)

	assigner := service.NewAssigner(suite.resolver, service.NewScoringEngine())
	best, err := assigner.FindBestClerk(suite.store.repos, job, property, suite.now)

	suite.NoError(err)
	suite.Require().NotNil(best)
	suite.Equal(clerk.ID, best.ClerkID)
	suite.InDelta(120.0, best.Total, 1e-9)
}

func TestCandidatePoolTestSuite(t *testing.T) {
	suite.Run(t, new(CandidatePoolTestSuite))
}
