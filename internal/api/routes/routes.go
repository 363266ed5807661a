package routes

import (
	"context"
	"fmt"

	"field-service-backend/internal/api/handlers"
	"field-service-backend/internal/api/middleware"
	"field-service-backend/internal/auth"
	"field-service-backend/internal/config"
	"field-service-backend/internal/database/models"
	"field-service-backend/internal/repository"
	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// Dependencies are the process-level collaborators the router wires into services
type Dependencies struct {
	// Notifier receives assignment notifications; a log notifier is used when nil.
	Notifier service.Notifier
	// Redis, when set, is reported by the health endpoints.
	Redis *redis.Client
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	uow := repository.NewUnitOfWork(db)
	assigner := service.NewAssigner(
		service.NewCandidatePoolResolver(cfg.Location()),
		service.NewScoringEngine(),
	)

	jobService := service.NewJobService(uow, assigner, deps.Notifier, validator)
	logService := service.NewAssignmentLogService(uow)
	clerkService := service.NewClerkService(uow, validator)
	availabilityService := service.NewAvailabilityService(uow, validator)
	propertyService := service.NewPropertyService(uow, validator)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, repository.NewUserRepository(db))
	authMiddleware := auth.NewAuthMiddleware(authService)

	checks := map[string]handlers.Check{"database": handlers.DatabaseCheck(db)}
	if deps.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() }
	}
	healthHandler := handlers.NewHealthHandler(Version, checks)
	jobHandler := handlers.NewJobHandler(jobService)
	logHandler := handlers.NewAssignmentLogHandler(logService)
	clerkHandler := handlers.NewClerkHandler(clerkService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	userHandler := handlers.NewUserHandler(clerkService)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/validate", authHandler.ValidateToken)
		if !cfg.IsProduction() {
			authGroup.POST("/dev-token", authHandler.IssueDevToken)
		}
	}

	api := v1.Group("", authMiddleware.RequireAuth())
	dispatchers := authMiddleware.RequireRole(models.RoleAdmin, models.RoleAgent)
	clerks := authMiddleware.RequireRole(models.RoleClerk)
	admins := authMiddleware.RequireRole(models.RoleAdmin)
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", dispatchers, jobHandler.CreateJob)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PUT("/:id", dispatchers, jobHandler.UpdateJob)
			jobs.POST("/:id/assign", dispatchers, jobHandler.AssignJob)
			jobs.POST("/:id/cancel", dispatchers, jobHandler.CancelJob)
			jobs.POST("/:id/reject", clerks, jobHandler.RejectJob)
			jobs.POST("/:id/start", clerks, jobHandler.StartJob)
			jobs.POST("/:id/check-in", clerks, jobHandler.CheckIn)
			jobs.POST("/:id/complete", clerks, jobHandler.CompleteJob)
			jobs.GET("/:id/assignment-logs", logHandler.GetJobHistory)
		}

		logs := api.Group("/assignment-logs", dispatchers)
		{
			logs.GET("", logHandler.ListAssignmentLogs)
			logs.GET("/export", logHandler.ExportAssignmentLogs)
		}

		clerkRoutes := api.Group("/clerks")
		{
			clerkRoutes.GET("", clerkHandler.ListClerks)
			clerkRoutes.GET("/:id", clerkHandler.GetClerk)
			clerkRoutes.PUT("/:id/location", clerks, clerkHandler.UpdateLocation)
			clerkRoutes.PUT("/:id/shift", clerks, clerkHandler.SetShift)
			clerkRoutes.GET("/:id/availability", availabilityHandler.ListAvailability)
			clerkRoutes.PUT("/:id/availability", availabilityHandler.UpsertAvailability)
		}

		api.DELETE("/availability/:id", availabilityHandler.DeleteAvailability)

		users := api.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/:id", userHandler.UpdateProfile)
			users.PUT("/:id/active", admins, userHandler.SetActive)
			users.DELETE("/:id", admins, userHandler.DeleteUser)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", dispatchers, propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", dispatchers, propertyHandler.UpdateProperty)
		}
	}

	return router, nil
}
