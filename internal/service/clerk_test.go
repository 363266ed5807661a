package service_test

import (
	"context"
	"testing"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/service"
	"field-service-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ClerkServiceTestSuite defines the test suite for ClerkService
type ClerkServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mockStore
	factories *testutils.FactorySet
	service   *service.ClerkService
}

func (suite *ClerkServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = newMockStore(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.service = service.NewClerkService(suite.store.uow, validator.New())
}

func (suite *ClerkServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClerkServiceTestSuite) self(u *models.User) service.Actor {
	return service.Actor{UserID: u.ID, Role: u.Role}
}

func (suite *ClerkServiceTestSuite) TestUpdateLocation() {
	clerk := suite.factories.User.Clerk()
	lat, lng := 51.501, -0.141
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.users.EXPECT().UpdateLocation(clerk.ID, lat, lng, gomock.Any()).Return(nil)

	before := time.Now().UTC()
	got, err := suite.service.UpdateLocation(context.Background(), suite.self(clerk), clerk.ID,
		&service.UpdateLocationRequest{Lat: &lat, Lng: &lng})

	suite.Require().NoError(err)
	suite.Equal(lat, *got.CurrentLat)
	suite.Equal(lng, *got.CurrentLng)
	suite.Require().NotNil(got.LastLocationUpdate)
	suite.False(got.LastLocationUpdate.Before(before))
}

func (suite *ClerkServiceTestSuite) TestUpdateLocationOnlySelf() {
	clerk := suite.factories.User.Clerk()
	admin := suite.factories.User.Admin()
	lat, lng := 51.5, -0.1

	_, err := suite.service.UpdateLocation(context.Background(), suite.self(admin), clerk.ID,
		&service.UpdateLocationRequest{Lat: &lat, Lng: &lng})

	suite.ErrorIs(err, apperrors.ErrNotSelf)
}

func (suite *ClerkServiceTestSuite) TestUpdateLocationValidation() {
	clerk := suite.factories.User.Clerk()
	lat, lng := 51.5, 200.0

	_, err := suite.service.UpdateLocation(context.Background(), suite.self(clerk), clerk.ID,
		&service.UpdateLocationRequest{Lat: &lat})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.UpdateLocation(context.Background(), suite.self(clerk), clerk.ID,
		&service.UpdateLocationRequest{Lat: &lat, Lng: &lng})
	suite.ErrorIs(err, apperrors.ErrInvalidCoordinates)
}

func (suite *ClerkServiceTestSuite) TestGoOnShift() {
	clerk := suite.factories.User.Clerk()
	on := true
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.users.EXPECT().SetOnShift(clerk.ID, true).Return(nil)

	got, err := suite.service.SetShift(context.Background(), suite.self(clerk), clerk.ID, &service.SetShiftRequest{IsOnShift: &on})

	suite.Require().NoError(err)
	suite.True(got.IsOnShift)
}

func (suite *ClerkServiceTestSuite) TestGoOnShiftNeedsAddress() {
	clerk := suite.factories.User.Clerk()
	clerk.AddressFileURL = ""
	on := true
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)

	_, err := suite.service.SetShift(context.Background(), suite.self(clerk), clerk.ID, &service.SetShiftRequest{IsOnShift: &on})

	suite.ErrorIs(err, apperrors.ErrShiftAddressIncomplete)
}

func (suite *ClerkServiceTestSuite) TestGoOffShiftWithoutAddress() {
	clerk := suite.factories.User.Clerk()
	clerk.AddressLine1 = ""
	clerk.IsOnShift = true
	off := false
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.users.EXPECT().SetOnShift(clerk.ID, false).Return(nil)

	got, err := suite.service.SetShift(context.Background(), suite.self(clerk), clerk.ID, &service.SetShiftRequest{IsOnShift: &off})

	suite.Require().NoError(err)
	suite.False(got.IsOnShift)
}

func (suite *ClerkServiceTestSuite) TestGetClerkRejectsOtherRoles() {
	agent := suite.factories.User.Agent()
	suite.store.users.EXPECT().GetByID(agent.ID).Return(agent, nil)

	_, err := suite.service.GetClerk(context.Background(), agent.ID)
	suite.ErrorIs(err, apperrors.ErrClerkNotFound)

	missing := uuid.New()
	suite.store.users.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.GetClerk(context.Background(), missing)
	suite.ErrorIs(err, apperrors.ErrClerkNotFound)
}

func (suite *ClerkServiceTestSuite) TestListClerks() {
	clerks := []models.User{*suite.factories.User.Clerk(), *suite.factories.User.Clerk()}
	suite.store.users.EXPECT().GetByRole(models.RoleClerk, 10, 10).Return(clerks, int64(12), nil)

	resp, err := suite.service.ListClerks(context.Background(), 2, 10)

	suite.Require().NoError(err)
	suite.Len(resp.Users, 2)
	suite.Equal(int64(12), resp.Total)
}

func strPtr(s string) *string { return &s }

func (suite *ClerkServiceTestSuite) TestGetCurrentUser() {
	agent := suite.factories.User.Agent()
	suite.store.users.EXPECT().GetByID(agent.ID).Return(agent, nil)

	got, err := suite.service.GetCurrentUser(context.Background(), suite.self(agent))

	suite.Require().NoError(err)
	suite.Equal(agent.ID, got.ID)

	gone := suite.factories.User.Clerk()
	suite.store.users.EXPECT().GetByID(gone.ID).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.GetCurrentUser(context.Background(), suite.self(gone))
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *ClerkServiceTestSuite) TestUpdateProfileFillsShiftAddress() {
	clerk := suite.factories.User.Clerk()
	clerk.AddressLine1, clerk.City, clerk.Postcode, clerk.AddressFileURL = "", "", "", ""
	on := true

	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil).Times(2)
	suite.store.users.EXPECT().UpdateProfile(clerk).Return(nil)
	suite.store.users.EXPECT().SetOnShift(clerk.ID, true).Return(nil)

	got, err := suite.service.UpdateProfile(context.Background(), suite.self(clerk), clerk.ID, &service.UpdateProfileRequest{
		AddressLine1:   strPtr("  1 High Street "),
		City:           strPtr("London"),
		Postcode:       strPtr("SW1A 1AA"),
		AddressFileURL: strPtr("/uploads/addresses/proof.pdf"),
	})
	suite.Require().NoError(err)
	suite.Equal("1 High Street", got.AddressLine1)
	suite.True(got.ShiftAddressComplete())

	got, err = suite.service.SetShift(context.Background(), suite.self(clerk), clerk.ID, &service.SetShiftRequest{IsOnShift: &on})
	suite.Require().NoError(err)
	suite.True(got.IsOnShift)
}

func (suite *ClerkServiceTestSuite) TestUpdateProfileKeepsOnShiftAddressComplete() {
	clerk := suite.factories.User.Clerk()
	clerk.IsOnShift = true
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)

	_, err := suite.service.UpdateProfile(context.Background(), suite.self(clerk), clerk.ID,
		&service.UpdateProfileRequest{City: strPtr("  ")})

	suite.ErrorIs(err, apperrors.ErrShiftAddressIncomplete)
}

func (suite *ClerkServiceTestSuite) TestUpdateProfileSelfOrAdmin() {
	clerk := suite.factories.User.Clerk()
	other := suite.factories.User.Clerk()
	admin := suite.factories.User.Admin()

	_, err := suite.service.UpdateProfile(context.Background(), suite.self(other), clerk.ID,
		&service.UpdateProfileRequest{Phone: strPtr("07700 900000")})
	suite.ErrorIs(err, apperrors.ErrNotSelfOrAdmin)

	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.users.EXPECT().UpdateProfile(clerk).Return(nil)
	got, err := suite.service.UpdateProfile(context.Background(), suite.self(admin), clerk.ID,
		&service.UpdateProfileRequest{Phone: strPtr("07700 900000")})
	suite.Require().NoError(err)
	suite.Equal("07700 900000", got.Phone)
}

func (suite *ClerkServiceTestSuite) TestUpdateProfileRejectsEmptyName() {
	agent := suite.factories.User.Agent()
	suite.store.users.EXPECT().GetByID(agent.ID).Return(agent, nil)

	_, err := suite.service.UpdateProfile(context.Background(), suite.self(agent), agent.ID,
		&service.UpdateProfileRequest{FullName: strPtr("   ")})

	suite.True(apperrors.IsValidation(err))
}

func (suite *ClerkServiceTestSuite) TestSetActiveAdminOnly() {
	clerk := suite.factories.User.Clerk()
	agent := suite.factories.User.Agent()
	off := false

	_, err := suite.service.SetActive(context.Background(), suite.self(agent), clerk.ID, &service.SetActiveRequest{IsActive: &off})
	suite.ErrorIs(err, apperrors.ErrActorNotPermitted)

	_, err = suite.service.SetActive(context.Background(), suite.self(clerk), clerk.ID, &service.SetActiveRequest{IsActive: &off})
	suite.ErrorIs(err, apperrors.ErrActorNotPermitted)
}

func (suite *ClerkServiceTestSuite) TestDeactivateTakesClerkOffShift() {
	clerk := suite.factories.User.Clerk()
	clerk.IsOnShift = true
	admin := suite.factories.User.Admin()
	off := false
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.users.EXPECT().SetActive(clerk.ID, false).Return(nil)

	got, err := suite.service.SetActive(context.Background(), suite.self(admin), clerk.ID, &service.SetActiveRequest{IsActive: &off})

	suite.Require().NoError(err)
	suite.False(got.IsActive)
	suite.False(got.IsOnShift)
}

func (suite *ClerkServiceTestSuite) TestSetActiveRequiresFlag() {
	admin := suite.factories.User.Admin()

	_, err := suite.service.SetActive(context.Background(), suite.self(admin), uuid.New(), &service.SetActiveRequest{})

	suite.True(apperrors.IsValidation(err))
}

func (suite *ClerkServiceTestSuite) TestDeleteUser() {
	clerk := suite.factories.User.Clerk()
	admin := suite.factories.User.Admin()
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.jobs.EXPECT().CountActiveForClerk(clerk.ID).Return(int64(0), nil)
	suite.store.users.EXPECT().Delete(clerk.ID).Return(nil)

	err := suite.service.DeleteUser(context.Background(), suite.self(admin), clerk.ID)

	suite.NoError(err)
	suite.Equal(1, suite.store.commits)
}

func (suite *ClerkServiceTestSuite) TestDeleteUserWithActiveJobs() {
	clerk := suite.factories.User.Clerk()
	admin := suite.factories.User.Admin()
	suite.store.users.EXPECT().GetByID(clerk.ID).Return(clerk, nil)
	suite.store.jobs.EXPECT().CountActiveForClerk(clerk.ID).Return(int64(2), nil)

	err := suite.service.DeleteUser(context.Background(), suite.self(admin), clerk.ID)

	suite.ErrorIs(err, apperrors.ErrUserHasActiveJobs)
	suite.Equal(1, suite.store.rollback)
}

func (suite *ClerkServiceTestSuite) TestDeleteUserGuards() {
	admin := suite.factories.User.Admin()
	agent := suite.factories.User.Agent()

	suite.ErrorIs(suite.service.DeleteUser(context.Background(), suite.self(admin), admin.ID), apperrors.ErrCannotDeleteSelf)
	suite.ErrorIs(suite.service.DeleteUser(context.Background(), suite.self(agent), admin.ID), apperrors.ErrActorNotPermitted)

	missing := uuid.New()
	suite.store.users.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.DeleteUser(context.Background(), suite.self(admin), missing), apperrors.ErrUserNotFound)
}

func TestClerkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClerkServiceTestSuite))
}
