package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"field-service-backend/internal/api/handlers"
	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/lifecycle"
	"field-service-backend/internal/mocks"
	"field-service-backend/internal/service"
	"field-service-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

// JobHandlerTestSuite defines the test suite for JobHandler
type JobHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockJobServiceInterface
	http        *testutils.HTTPTestSuite
	users       *testutils.UserFactory
	agent       *models.User
	clerk       *models.User
}

func (suite *JobHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockJobServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()
	suite.users = testutils.NewUserFactory()
	suite.agent = suite.users.Agent()
	suite.clerk = suite.users.Clerk()

	h := handlers.NewJobHandler(suite.mockService)
	api := suite.http.Protected()
	api.POST("/jobs", h.CreateJob)
	api.GET("/jobs", h.ListJobs)
	api.GET("/jobs/:id", h.GetJob)
	api.PUT("/jobs/:id", h.UpdateJob)
	api.POST("/jobs/:id/assign", h.AssignJob)
	api.POST("/jobs/:id/reject", h.RejectJob)
	api.POST("/jobs/:id/start", h.StartJob)
	api.POST("/jobs/:id/check-in", h.CheckIn)
	api.POST("/jobs/:id/complete", h.CompleteJob)
	api.POST("/jobs/:id/cancel", h.CancelJob)
}

func (suite *JobHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func actorOf(u *models.User) service.Actor {
	return service.Actor{UserID: u.ID, Role: u.Role}
}

func jobWithStatus(status lifecycle.Status) *models.Job {
	job := &models.Job{PropertyID: uuid.New(), Status: status, JobType: models.DefaultJobType}
	job.ID = uuid.New()
	return job
}

func (suite *JobHandlerTestSuite) TestCreateJob() {
	propertyID := uuid.New()
	appointment := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	created := jobWithStatus(lifecycle.StatusAssigned)

	suite.mockService.EXPECT().
		CreateJob(gomock.Any(), actorOf(suite.agent), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, req *service.CreateJobRequest) (*models.Job, error) {
			suite.Equal(propertyID, req.PropertyID)
			suite.True(appointment.Equal(req.AppointmentDate))
			suite.Equal(service.AssignmentModeAuto, req.AssignmentMode)
			return created, nil
		})

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPost, "/jobs", map[string]interface{}{
		"property_id":      propertyID.String(),
		"appointment_date": appointment.Format(time.RFC3339),
		"assignment_type":  "auto",
	})

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(created.ID, got.ID)
	suite.Equal(lifecycle.StatusAssigned, got.Status)
}

func (suite *JobHandlerTestSuite) TestCreateJobRequiresToken() {
	w := suite.http.MakeRequest(http.MethodPost, "/jobs", map[string]interface{}{"property_id": uuid.New()})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Bearer")
}

func (suite *JobHandlerTestSuite) TestCreateJobInvalidBody() {
	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPost, "/jobs", map[string]interface{}{
		"property_id": "not-a-uuid",
	})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "")
}

func (suite *JobHandlerTestSuite) TestCreateJobMapsServiceErrors() {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrActorNotPermitted, http.StatusForbidden},
		{apperrors.ErrPropertyNotFound, http.StatusNotFound},
		{apperrors.NewValidationError("appointment_date", "required"), http.StatusBadRequest},
		{apperrors.NewInvalidCandidateError("x", "not a clerk"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		suite.mockService.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
		w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs", map[string]interface{}{
			"property_id": uuid.New().String(),
		})
		testutils.AssertErrorResponse(suite.T(), w, tc.status, tc.err.Error())
	}
}

func (suite *JobHandlerTestSuite) TestInternalErrorsAreHidden() {
	suite.mockService.EXPECT().GetJob(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodGet, "/jobs/"+uuid.NewString(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Internal server error")
	suite.NotContains(w.Body.String(), "pq:")
}

func (suite *JobHandlerTestSuite) TestGetJob() {
	job := jobWithStatus(lifecycle.StatusCompleted)
	job.HandoverData = datatypes.JSONMap{"gas_reading": "0042", "key_return_info": "with agent"}
	suite.mockService.EXPECT().GetJob(gomock.Any(), job.ID).Return(job, nil)

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodGet, "/jobs/"+job.ID.String(), nil)

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(job.ID, got.ID)
	suite.Equal(datatypes.JSONMap{"gasReading": "0042", "keyReturn": "with agent"}, got.HandoverData)
}

func (suite *JobHandlerTestSuite) TestGetJobInvalidID() {
	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodGet, "/jobs/abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid job ID")
}

func (suite *JobHandlerTestSuite) TestGetJobNotFound() {
	suite.mockService.EXPECT().GetJob(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrJobNotFound)
	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodGet, "/jobs/"+uuid.NewString(), nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "job not found")
}

func (suite *JobHandlerTestSuite) TestListJobsPassesFilters() {
	clerkID := uuid.New()
	suite.mockService.EXPECT().
		ListJobs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.ListJobsRequest) (*service.JobListResponse, error) {
			suite.Equal("assigned", req.Status)
			suite.Require().NotNil(req.ClerkID)
			suite.Equal(clerkID, *req.ClerkID)
			suite.Nil(req.AgentID)
			suite.Equal(2, req.Page)
			suite.Equal(5, req.PageSize)
			return &service.JobListResponse{Jobs: []models.Job{*jobWithStatus(lifecycle.StatusAssigned)}, Total: 6, Page: 2, PageSize: 5}, nil
		})

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodGet,
		"/jobs?status=assigned&clerk_id="+clerkID.String()+"&page=2&per_page=5", nil)

	var got service.JobListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got.Jobs, 1)
	suite.Equal(int64(6), got.Total)
}

func (suite *JobHandlerTestSuite) TestListJobsRejectsBadFilters() {
	for _, url := range []string{
		"/jobs?status=archived",
		"/jobs?clerk_id=nope",
		"/jobs?page=0",
		"/jobs?page_size=abc",
	} {
		w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodGet, url, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
}

func (suite *JobHandlerTestSuite) TestAssignJob() {
	job := jobWithStatus(lifecycle.StatusAssigned)
	clerkID := uuid.New()
	suite.mockService.EXPECT().
		AssignManually(gomock.Any(), actorOf(suite.agent), job.ID, &service.AssignJobRequest{ClerkID: clerkID, Reason: "Tenant request"}).
		Return(job, nil)

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPost, "/jobs/"+job.ID.String()+"/assign", map[string]interface{}{
		"clerk_id": clerkID.String(),
		"reason":   "Tenant request",
	})

	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
}

func (suite *JobHandlerTestSuite) TestAssignTerminalJobConflicts() {
	id := uuid.New()
	suite.mockService.EXPECT().
		AssignManually(gomock.Any(), gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.NewStateConflictError(id.String(), "completed", "assign"))

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPost, "/jobs/"+id.String()+"/assign", map[string]interface{}{
		"clerk_id": uuid.NewString(),
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "in status completed")
}

func (suite *JobHandlerTestSuite) TestRejectJob() {
	job := jobWithStatus(lifecycle.StatusPendingAssignment)
	suite.mockService.EXPECT().RejectAssignment(gomock.Any(), actorOf(suite.clerk), job.ID).Return(job, nil)

	w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs/"+job.ID.String()+"/reject", nil)

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(lifecycle.StatusPendingAssignment, got.Status)
}

func (suite *JobHandlerTestSuite) TestRejectByOtherClerkIsForbidden() {
	suite.mockService.EXPECT().RejectAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotAssignedClerk)
	w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs/"+uuid.NewString()+"/reject", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "not assigned")
}

func (suite *JobHandlerTestSuite) TestStartJobWithoutBody() {
	job := jobWithStatus(lifecycle.StatusOnRoute)
	suite.mockService.EXPECT().
		Transition(gomock.Any(), actorOf(suite.clerk), job.ID, lifecycle.EventStart, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, _ lifecycle.Event, p *service.TransitionPayload) (*models.Job, error) {
			suite.Nil(p.Lat)
			suite.Nil(p.HandoverData)
			return job, nil
		})

	w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs/"+job.ID.String()+"/start", nil)

	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
}

func (suite *JobHandlerTestSuite) TestCheckInPassesLocation() {
	job := jobWithStatus(lifecycle.StatusInProgress)
	job.LocationWarningFlag = true
	suite.mockService.EXPECT().
		Transition(gomock.Any(), gomock.Any(), job.ID, lifecycle.EventCheckIn, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, _ lifecycle.Event, p *service.TransitionPayload) (*models.Job, error) {
			suite.Require().NotNil(p.Lat)
			suite.InDelta(51.5014, *p.Lat, 1e-9)
			suite.InDelta(-0.1419, *p.Lng, 1e-9)
			return job, nil
		})

	w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs/"+job.ID.String()+"/check-in",
		map[string]interface{}{"lat": 51.5014, "lng": -0.1419})

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.True(got.LocationWarningFlag)
}

func (suite *JobHandlerTestSuite) TestCompleteJobTranslatesHandoverKeys() {
	job := jobWithStatus(lifecycle.StatusCompleted)
	suite.mockService.EXPECT().
		Transition(gomock.Any(), gomock.Any(), job.ID, lifecycle.EventComplete, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, _ lifecycle.Event, p *service.TransitionPayload) (*models.Job, error) {
			suite.Equal(map[string]interface{}{
				"gas_reading":     "01234",
				"key_return_info": "Left in key safe",
				"meter_location":  "Under stairs",
			}, p.HandoverData)
			job.HandoverData = datatypes.JSONMap(p.HandoverData)
			return job, nil
		})

	w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs/"+job.ID.String()+"/complete",
		map[string]interface{}{
			"lat": 51.5, "lng": -0.12,
			"handover_data": map[string]interface{}{
				"gasReading":    "01234",
				"keyReturn":     "Left in key safe",
				"meterLocation": "Under stairs",
			},
		})

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("01234", got.HandoverData["gasReading"])
	suite.Equal("Under stairs", got.HandoverData["meterLocation"])
}

func (suite *JobHandlerTestSuite) TestTransitionConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Transition(gomock.Any(), gomock.Any(), id, lifecycle.EventComplete, gomock.Any()).
		Return(nil, apperrors.NewStateConflictError(id.String(), "on_route", "complete"))

	w := suite.http.MakeAuthedRequest(suite.T(), suite.clerk, http.MethodPost, "/jobs/"+id.String()+"/complete", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "")
}

func (suite *JobHandlerTestSuite) TestCancelJob() {
	job := jobWithStatus(lifecycle.StatusCancelled)
	suite.mockService.EXPECT().CancelJob(gomock.Any(), actorOf(suite.agent), job.ID).Return(job, nil)

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPost, "/jobs/"+job.ID.String()+"/cancel", nil)

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(lifecycle.StatusCancelled, got.Status)
}

func (suite *JobHandlerTestSuite) TestUpdateJob() {
	job := jobWithStatus(lifecycle.StatusPendingAssignment)
	job.Priority = models.PriorityHigh
	job.KeyLocation = "porter"
	suite.mockService.EXPECT().
		UpdateJob(gomock.Any(), actorOf(suite.agent), job.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, _ uuid.UUID, req *service.UpdateJobRequest) (*models.Job, error) {
			suite.Require().NotNil(req.Priority)
			suite.Equal(models.PriorityHigh, *req.Priority)
			suite.Require().NotNil(req.KeyLocation)
			suite.Equal("porter", *req.KeyLocation)
			suite.Nil(req.AppointmentDate)
			return job, nil
		})

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPut, "/jobs/"+job.ID.String(), map[string]interface{}{
		"priority":     "high",
		"key_location": "porter",
	})

	var got models.Job
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(models.PriorityHigh, got.Priority)
	suite.Equal("porter", got.KeyLocation)
}

func (suite *JobHandlerTestSuite) TestUpdateJobTerminalConflict() {
	job := jobWithStatus(lifecycle.StatusCompleted)
	suite.mockService.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), job.ID, gomock.Any()).
		Return(nil, apperrors.NewStateConflictError(job.ID.String(), string(lifecycle.StatusCompleted), "update"))

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPut, "/jobs/"+job.ID.String(),
		map[string]interface{}{"admin_notes": "late"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JobHandlerTestSuite) TestUpdateJobStatusNotEditable() {
	job := jobWithStatus(lifecycle.StatusPendingAssignment)
	suite.mockService.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), job.ID, gomock.Any()).
		Return(nil, apperrors.ErrStatusNotEditable)

	w := suite.http.MakeAuthedRequest(suite.T(), suite.agent, http.MethodPut, "/jobs/"+job.ID.String(),
		map[string]interface{}{"status": "completed"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func TestActorRequiresAuthMiddleware(t *testing.T) {
	h := testutils.SetupHTTPTest()
	jobs := handlers.NewJobHandler(nil)
	h.Router.POST("/jobs/:id/cancel", jobs.CancelJob)

	w := h.MakeRequest(http.MethodPost, "/jobs/"+uuid.NewString()+"/cancel", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
