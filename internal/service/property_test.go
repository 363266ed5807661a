package service_test

import (
	"context"
	"testing"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PropertyServiceTestSuite defines the test suite for PropertyService
type PropertyServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mockStore
	service *service.PropertyService
	agent   service.Actor
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = newMockStore(suite.ctrl)
	suite.service = service.NewPropertyService(suite.store.uow, validator.New())
	suite.agent = service.Actor{UserID: uuid.New(), Role: models.RoleAgent}
}

func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PropertyServiceTestSuite) TestCreateProperty() {
	lat, lng := 51.5, -0.12
	suite.store.props.EXPECT().Create(gomock.Any()).Return(nil)

	p, err := suite.service.CreateProperty(context.Background(), suite.agent, &service.CreatePropertyRequest{
		AddressLine1: "221B Baker Street",
		Postcode:     "NW1 6XE",
		Latitude:     &lat,
		Longitude:    &lng,
	})

	suite.Require().NoError(err)
	suite.True(p.IsActive)
	loc, ok := p.Location()
	suite.True(ok)
	suite.Equal(lat, loc.Lat())
}

func (suite *PropertyServiceTestSuite) TestCreatePropertyChecks() {
	clerk := service.Actor{UserID: uuid.New(), Role: models.RoleClerk}
	_, err := suite.service.CreateProperty(context.Background(), clerk, &service.CreatePropertyRequest{AddressLine1: "x", Postcode: "E1"})
	suite.ErrorIs(err, apperrors.ErrActorNotPermitted)

	_, err = suite.service.CreateProperty(context.Background(), suite.agent, &service.CreatePropertyRequest{AddressLine1: "x"})
	suite.True(apperrors.IsValidation(err))

	lat := 51.5
	_, err = suite.service.CreateProperty(context.Background(), suite.agent, &service.CreatePropertyRequest{AddressLine1: "x", Postcode: "E1", Latitude: &lat})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PropertyServiceTestSuite) TestGetPropertyNotFound() {
	id := uuid.New()
	suite.store.props.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetProperty(context.Background(), id)

	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func (suite *PropertyServiceTestSuite) TestListProperties() {
	suite.store.props.EXPECT().GetAll(20, 0).Return([]models.Property{{}}, int64(1), nil)

	resp, err := suite.service.ListProperties(context.Background(), 0, 0)

	suite.Require().NoError(err)
	suite.Len(resp.Properties, 1)
}

func (suite *PropertyServiceTestSuite) TestUpdatePropertyAddsCoordinates() {
	property := &models.Property{AddressLine1: "1 Mill Lane", Postcode: "E1 6AN", IsActive: true}
	property.ID = uuid.New()
	lat, lng := 51.52, -0.07
	client := "Acme Lettings"
	suite.store.props.EXPECT().GetByID(property.ID).Return(property, nil)
	suite.store.props.EXPECT().Update(property).Return(nil)

	got, err := suite.service.UpdateProperty(context.Background(), suite.agent, property.ID, &service.UpdatePropertyRequest{
		Latitude:   &lat,
		Longitude:  &lng,
		ClientName: &client,
	})

	suite.Require().NoError(err)
	loc, ok := got.Location()
	suite.True(ok)
	suite.Equal(lng, loc.Lon())
	suite.Equal(client, got.ClientName)
	suite.Equal("E1 6AN", got.Postcode)
}

func (suite *PropertyServiceTestSuite) TestUpdatePropertyChecks() {
	clerk := service.Actor{UserID: uuid.New(), Role: models.RoleClerk}
	city := "Leeds"
	_, err := suite.service.UpdateProperty(context.Background(), clerk, uuid.New(), &service.UpdatePropertyRequest{City: &city})
	suite.ErrorIs(err, apperrors.ErrActorNotPermitted)

	empty := ""
	_, err = suite.service.UpdateProperty(context.Background(), suite.agent, uuid.New(), &service.UpdatePropertyRequest{Postcode: &empty})
	suite.True(apperrors.IsValidation(err))

	lat := 51.5
	_, err = suite.service.UpdateProperty(context.Background(), suite.agent, uuid.New(), &service.UpdatePropertyRequest{Latitude: &lat})
	suite.True(apperrors.IsValidation(err))

	missing := uuid.New()
	suite.store.props.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.UpdateProperty(context.Background(), suite.agent, missing, &service.UpdatePropertyRequest{City: &city})
	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
