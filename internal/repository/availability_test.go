//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"field-service-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AvailabilityRepositoryTestSuite tests the AvailabilityRepository
type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AvailabilityRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

func (suite *AvailabilityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAvailabilityRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AvailabilityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AvailabilityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *AvailabilityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AvailabilityRepositoryTestSuite) clerkID() uuid.UUID {
	clerk := suite.factories.User.Clerk()
	suite.Require().NoError(suite.users.Create(clerk))
	return clerk.ID
}

// TestUpsertOverwritesSameDate keeps one record per (user, date)
func (suite *AvailabilityRepositoryTestSuite) TestUpsertOverwritesSameDate() {
	clerkID := suite.clerkID()
	date := time.Date(2030, 3, 14, 0, 0, 0, 0, time.UTC)

	first := suite.factories.Availability.Available(clerkID, date, "SW1A 1AA")
	suite.NoError(suite.repo.Upsert(first))
	originalID := first.ID

	second := suite.factories.Availability.Available(clerkID, date, "E1 6AN")
	second.IsAvailable = false
	second.Notes = "dentist"
	suite.NoError(suite.repo.Upsert(second))

	suite.Equal(originalID, second.ID)

	records, err := suite.repo.ListByUser(clerkID, nil, nil)
	suite.NoError(err)
	suite.Len(records, 1)
	suite.False(records[0].IsAvailable)
	suite.Equal("E1 6AN", records[0].Postcode)
	suite.Equal("dentist", records[0].Notes)
}

// TestFindForClerkOnDate matches on the calendar date only
func (suite *AvailabilityRepositoryTestSuite) TestFindForClerkOnDate() {
	clerkID := suite.clerkID()
	date := time.Date(2030, 3, 14, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Upsert(suite.factories.Availability.Available(clerkID, date, "SW1A 1AA")))

	got, err := suite.repo.FindForClerkOnDate(clerkID, date.Add(15*time.Hour))
	suite.NoError(err)
	suite.Equal("SW1A 1AA", got.Postcode)

	_, err = suite.repo.FindForClerkOnDate(clerkID, date.AddDate(0, 0, 1))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByUserRange bounds the list inclusively
func (suite *AvailabilityRepositoryTestSuite) TestListByUserRange() {
	clerkID := suite.clerkID()
	start := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Upsert(suite.factories.Availability.Available(clerkID, start.AddDate(0, 0, i), "")))
	}

	from := start.AddDate(0, 0, 1)
	to := start.AddDate(0, 0, 3)
	records, err := suite.repo.ListByUser(clerkID, &from, &to)
	suite.NoError(err)
	suite.Len(records, 3)
	suite.Equal(from, records[0].Date().UTC())
	suite.Equal(to, records[2].Date().UTC())
}

// TestDelete removes a record and reports missing ones
func (suite *AvailabilityRepositoryTestSuite) TestDelete() {
	clerkID := suite.clerkID()
	record := suite.factories.Availability.Available(clerkID, time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC), "")
	suite.NoError(suite.repo.Upsert(record))

	suite.NoError(suite.repo.Delete(record.ID))
	suite.ErrorIs(suite.repo.Delete(record.ID), gorm.ErrRecordNotFound)
}

func TestAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}
