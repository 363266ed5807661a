package testutils

import (
	"fmt"
	"time"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/lifecycle"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T { return &v }

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test user with the given role and a unique email
func (f *UserFactory) Create(role models.Role) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("%s.%s@test.com", role, id.String()[:8]),
		FullName:  "Test " + string(role),
		Phone:     "+44 20 7946 0000",
		Role:      role,
		IsActive:  true,
	}
}

// Admin creates an active admin
func (f *UserFactory) Admin() *models.User {
	return f.Create(models.RoleAdmin)
}

// Agent creates an active agent
func (f *UserFactory) Agent() *models.User {
	return f.Create(models.RoleAgent)
}

// Clerk creates an active, off-shift clerk with a complete home address and no location
func (f *UserFactory) Clerk() *models.User {
	u := f.Create(models.RoleClerk)
	u.AddressLine1 = "1 Test Street"
	u.City = "London"
	u.Postcode = "SW1A 1AA"
	u.AddressFileURL = "https://files.test/address.pdf"
	return u
}

// ClerkOnShiftAt creates an on-shift clerk reporting the given position
func (f *UserFactory) ClerkOnShiftAt(lat, lng float64) *models.User {
	u := f.Clerk()
	u.IsOnShift = true
	u.CurrentLat = ptr(lat)
	u.CurrentLng = ptr(lng)
	u.LastLocationUpdate = ptr(time.Now().UTC())
	return u
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test property without coordinates
func (f *PropertyFactory) Create() *models.Property {
	id := uuid.New()
	return &models.Property{
		BaseModel:       models.BaseModel{ID: id},
		ReferenceNumber: "REF-" + id.String()[:8],
		AddressLine1:    "10 Downing Street",
		City:            "London",
		Postcode:        "SW1A 2AA",
		ClientName:      "Test Client",
		IsActive:        true,
	}
}

// At creates a test property at the given coordinates
func (f *PropertyFactory) At(lat, lng float64) *models.Property {
	p := f.Create()
	p.Latitude = ptr(lat)
	p.Longitude = ptr(lng)
	return p
}

// AvailabilityFactory provides methods to create test Availability data
type AvailabilityFactory struct{}

// NewAvailabilityFactory creates a new AvailabilityFactory
func NewAvailabilityFactory() *AvailabilityFactory {
	return &AvailabilityFactory{}
}

// Available creates an is_available record for the clerk on date
func (f *AvailabilityFactory) Available(userID uuid.UUID, date time.Time, postcode string) *models.Availability {
	y, m, d := date.Date()
	return &models.Availability{
		UserID:        userID,
		AvailableDate: datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
		IsAvailable:   true,
		StartTime:     models.DefaultAvailabilityStart,
		EndTime:       models.DefaultAvailabilityEnd,
		Postcode:      postcode,
	}
}

// JobFactory provides methods to create test Job data
type JobFactory struct{}

// NewJobFactory creates a new JobFactory
func NewJobFactory() *JobFactory {
	return &JobFactory{}
}

// Create creates a pending job at the property with the given appointment
func (f *JobFactory) Create(propertyID uuid.UUID, appointment time.Time) *models.Job {
	return &models.Job{
		BaseModel:                models.BaseModel{ID: uuid.New()},
		PropertyID:               propertyID,
		JobType:                  models.DefaultJobType,
		Priority:                 models.PriorityNormal,
		AppointmentDate:          appointment,
		EstimatedDurationMinutes: models.DefaultEstimatedDurationMin,
		Status:                   lifecycle.StatusPendingAssignment,
		BookingQuestions:         datatypes.JSONMap{},
		HandoverData:             datatypes.JSONMap{},
	}
}

// WithStatus creates a job in status, assigned to clerkID when it is non-nil
func (f *JobFactory) WithStatus(propertyID uuid.UUID, status models.JobStatus, clerkID *uuid.UUID) *models.Job {
	j := f.Create(propertyID, time.Now().UTC().Add(24*time.Hour))
	j.Status = status
	j.AssignedClerkID = clerkID
	return j
}

// Completed creates a job completed by clerkID at checkOut
func (f *JobFactory) Completed(propertyID, clerkID uuid.UUID, checkOut time.Time) *models.Job {
	j := f.WithStatus(propertyID, lifecycle.StatusCompleted, &clerkID)
	j.AppointmentDate = checkOut.Add(-2 * time.Hour)
	j.CheckOutAt = ptr(checkOut)
	return j
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Property     *PropertyFactory
	Availability *AvailabilityFactory
	Job          *JobFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Property:     NewPropertyFactory(),
		Availability: NewAvailabilityFactory(),
		Job:          NewJobFactory(),
	}
}
