package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"field-service-backend/internal/config"
	"field-service-backend/internal/database"
	"field-service-backend/internal/database/models"
	"field-service-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const demoDataFile = "scripts/data/demo.yaml"

// DemoData mirrors scripts/data/demo.yaml
type DemoData struct {
	Users        []UserData         `yaml:"users"`
	Properties   []PropertyData     `yaml:"properties"`
	Availability []AvailabilityData `yaml:"availability"`
}

type UserData struct {
	Email          string   `yaml:"email"`
	FullName       string   `yaml:"full_name"`
	Phone          string   `yaml:"phone,omitempty"`
	Role           string   `yaml:"role"`
	AddressLine1   string   `yaml:"address_line_1,omitempty"`
	City           string   `yaml:"city,omitempty"`
	Postcode       string   `yaml:"postcode,omitempty"`
	AddressFileURL string   `yaml:"address_file_url,omitempty"`
	OnShift        bool     `yaml:"on_shift,omitempty"`
	Lat            *float64 `yaml:"lat,omitempty"`
	Lng            *float64 `yaml:"lng,omitempty"`
}

type PropertyData struct {
	ReferenceNumber string   `yaml:"reference_number"`
	AddressLine1    string   `yaml:"address_line_1"`
	City            string   `yaml:"city"`
	Postcode        string   `yaml:"postcode"`
	Latitude        *float64 `yaml:"latitude,omitempty"`
	Longitude       *float64 `yaml:"longitude,omitempty"`
	ClientName      string   `yaml:"client_name,omitempty"`
}

// AvailabilityData opts a clerk in for days relative to today, so the demo stays current
type AvailabilityData struct {
	Email      string `yaml:"email"`
	DayOffsets []int  `yaml:"day_offsets"`
	StartTime  string `yaml:"start_time,omitempty"`
	EndTime    string `yaml:"end_time,omitempty"`
	Postcode   string `yaml:"postcode,omitempty"`
}

func main() {
	log.Println("🚀 Loading demo data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := readDemoData(demoDataFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", demoDataFile, err)
	}

	if err := loadDemoData(repository.NewRepositories(db), data, time.Now().In(cfg.Location())); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func readDemoData(path string) (*DemoData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data DemoData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func loadDemoData(repos *repository.Repositories, data *DemoData, today time.Time) error {
	users := make(map[string]*models.User, len(data.Users))
	created := 0
	for _, u := range data.Users {
		user, isNew, err := ensureUser(repos, u)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		users[u.Email] = user
		if isNew {
			created++
		}
	}
	log.Printf("📋 Users: %d created, %d total", created, len(data.Users))

	for _, p := range data.Properties {
		if err := repos.Properties.Create(&models.Property{
			ReferenceNumber: p.ReferenceNumber,
			AddressLine1:    p.AddressLine1,
			City:            p.City,
			Postcode:        p.Postcode,
			Latitude:        p.Latitude,
			Longitude:       p.Longitude,
			ClientName:      p.ClientName,
			IsActive:        true,
		}); err != nil {
			return fmt.Errorf("failed to create property %s: %w", p.ReferenceNumber, err)
		}
	}
	log.Printf("📋 Properties: %d created", len(data.Properties))

	records := 0
	for _, a := range data.Availability {
		user, ok := users[a.Email]
		if !ok || !user.IsClerk() {
			return fmt.Errorf("availability for %s: not a clerk in the demo users", a.Email)
		}
		for _, offset := range a.DayOffsets {
			day := today.AddDate(0, 0, offset)
			record := &models.Availability{
				UserID:        user.ID,
				AvailableDate: datatypes.Date(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)),
				IsAvailable:   true,
				StartTime:     orDefault(a.StartTime, models.DefaultAvailabilityStart),
				EndTime:       orDefault(a.EndTime, models.DefaultAvailabilityEnd),
				Postcode:      orDefault(a.Postcode, user.Postcode),
			}
			if err := repos.Availability.Upsert(record); err != nil {
				return fmt.Errorf("failed to upsert availability for %s: %w", a.Email, err)
			}
			records++
		}
	}
	log.Printf("📋 Availability: %d records upserted", records)

	return nil
}

func ensureUser(repos *repository.Repositories, u UserData) (*models.User, bool, error) {
	existing, err := repos.Users.GetByEmail(u.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role, err := models.ParseRole(u.Role)
	if err != nil {
		return nil, false, err
	}
	user := &models.User{
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Role:           role,
		AddressLine1:   u.AddressLine1,
		City:           u.City,
		Postcode:       u.Postcode,
		AddressFileURL: u.AddressFileURL,
		IsActive:       true,
		IsOnShift:      u.OnShift,
		CurrentLat:     u.Lat,
		CurrentLng:     u.Lng,
	}
	if err := repos.Users.Create(user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
