package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"field-service-backend/internal/config"
	"field-service-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "fieldservice"
	pgPassword = "fieldservice"
	pgDatabase = "fieldservice_test"
)

// domainTables are truncated between tests, children first
var domainTables = []string{
	"assignment_logs",
	"jobs",
	"clerk_availability",
	"properties",
	"users",
}

// One Postgres container is shared by every suite in the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite gives integration suites a migrated database that is emptied around each test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the connection pool and purges the container.
// Packages with integration suites call it from TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool != nil && sharedResource != nil {
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge postgres container: %v", err)
		} else {
			log.Printf("Purged postgres container %s", sharedResource.Container.Name)
		}
		sharedResource = nil
		sharedPool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every domain table and resets the assignment log sequence
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	quoted := make([]string, len(domainTables))
	for i, t := range domainTables {
		quoted[i] = `"` + t + `"`
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(quoted, ", ") + ` RESTART IDENTITY CASCADE`).Error; err != nil {
		log.Printf("WARN: truncate failed: %v", err)
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
			"TZ=UTC",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// the container accepts TCP before postgres is ready; ping through pgx until it answers
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = db

	sharedConfig = &config.Config{
		Environment:               "test",
		Port:                      "8080",
		LogLevel:                  "debug",
		DatabaseURL:               dsn,
		DatabaseName:              pgDatabase,
		JWTSecret:                 "test-secret",
		JWTExpiry:                 time.Hour,
		Timezone:                  "UTC",
		NotificationChannelPrefix: "notifications:",
	}

	log.Printf("Shared postgres ready at %s", resource.GetHostPort("5432/tcp"))
	return nil
}
