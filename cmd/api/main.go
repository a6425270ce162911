package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"facilitrack/internal/config"
	"facilitrack/internal/domain"
	"facilitrack/internal/handler"
	"facilitrack/internal/logger"
	"facilitrack/internal/middleware"
	"facilitrack/internal/migration"
	"facilitrack/internal/repository"
	"facilitrack/internal/service"
	"facilitrack/internal/service/auth"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Environment)

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.Run(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to Redis, analytics caching disabled")
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to MinIO, exports disabled")
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg, log)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(cfg.IsDevelopment(), log),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register-organization", h.Auth.RegisterOrganization)
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.Refresh)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/auth/me", h.Auth.Me)

	org := protected.Group("/organization")
	org.Get("/", h.Organization.Get)
	org.Post("/rotate-invite-code", middleware.RequireRole(domain.RoleAdmin), h.Organization.RotateInviteCode)

	users := protected.Group("/users")
	users.Get("/", middleware.RequireRole(domain.RoleSupervisor), h.User.ListStaff)
	users.Put("/:id/role", middleware.RequireRole(domain.RoleAdmin), h.User.ChangeRole)
	users.Put("/:id/active", middleware.RequireRole(domain.RoleAdmin), h.User.SetActive)

	buildings := protected.Group("/buildings")
	buildings.Post("/", middleware.RequireRole(domain.RoleSupervisor), h.Building.Create)
	buildings.Get("/", h.Building.List)
	buildings.Get("/:id", h.Building.Get)
	buildings.Put("/:id", middleware.RequireRole(domain.RoleSupervisor), h.Building.Update)
	buildings.Delete("/:id", middleware.RequireRole(domain.RoleAdmin), h.Building.Delete)

	buildings.Post("/:buildingId/categories", middleware.RequireRole(domain.RoleSupervisor), h.Category.Create)
	buildings.Get("/:buildingId/categories", h.Category.ListByBuilding)

	categories := protected.Group("/categories")
	categories.Get("/:id", h.Category.Get)
	categories.Put("/:id", middleware.RequireRole(domain.RoleSupervisor), h.Category.Update)
	categories.Delete("/:id", middleware.RequireRole(domain.RoleAdmin), h.Category.Delete)

	tasks := protected.Group("/tasks")
	tasks.Post("/", middleware.RequireRole(domain.RoleSupervisor), h.Task.Create)
	tasks.Get("/", h.Task.List)
	tasks.Get("/available-for-reading", h.Task.AvailableForReading)
	tasks.Get("/:id", h.Task.Get)
	tasks.Put("/:id", middleware.RequireRole(domain.RoleSupervisor), h.Task.Update)
	tasks.Delete("/:id", middleware.RequireRole(domain.RoleAdmin), h.Task.Delete)
	tasks.Post("/:id/assign", middleware.RequireRole(domain.RoleSupervisor), h.Task.Assign)
	tasks.Delete("/:id/assign/:userId", middleware.RequireRole(domain.RoleSupervisor), h.Task.Unassign)

	readings := protected.Group("/readings")
	readings.Post("/", h.Reading.Submit)
	readings.Get("/", h.Reading.List)
	readings.Get("/pending", middleware.RequireRole(domain.RoleSupervisor), h.Reading.ListPending)
	readings.Get("/my-history", h.Reading.MyHistory)
	readings.Get("/export", middleware.RequireRole(domain.RoleSupervisor), h.Export.ExportReadings)
	readings.Get("/category/:buildingId/:categoryId", h.Reading.ApprovedByCategory)
	readings.Get("/:id", h.Reading.Get)
	readings.Post("/:id/approve", middleware.RequireRole(domain.RoleSupervisor), h.Reading.Approve)
	readings.Post("/:id/reject", middleware.RequireRole(domain.RoleSupervisor), h.Reading.Reject)
	readings.Get("/:id/comments", h.Reading.ListComments)
	readings.Post("/:id/comments", h.Reading.AddComment)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)
	notifications.Put("/read-all", h.Notification.MarkAllAsRead)
	notifications.Delete("/:id", h.Notification.Delete)

	analytics := protected.Group("/analytics")
	analytics.Get("/summary", middleware.RequireRole(domain.RoleSupervisor), h.Analytics.Summary)
}
