package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"facilitrack/internal/config"
	"facilitrack/internal/repository"
	"facilitrack/internal/service/analytics"
	"facilitrack/internal/service/auth"
	"facilitrack/internal/service/authz"
	"facilitrack/internal/service/building"
	"facilitrack/internal/service/category"
	"facilitrack/internal/service/email"
	"facilitrack/internal/service/export"
	"facilitrack/internal/service/notification"
	"facilitrack/internal/service/organization"
	"facilitrack/internal/service/reading"
	"facilitrack/internal/service/task"
	"facilitrack/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	Authz        authz.Service
	Organization organization.Service
	User         user.Service
	Building     building.Service
	Category     category.Service
	Task         task.Service
	Reading      reading.Service
	Notification notification.Service
	Analytics    analytics.Service
	Export       export.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config, logger zerolog.Logger) *Services {
	authzSvc := authz.NewService(repos.User)

	var emailSvc email.Service
	if cfg.ResendAPIKey != "" {
		emailSvc = email.NewService(cfg)
	}

	notifSvc := notification.NewService(repos.Notification, repos.User, emailSvc, logger)

	return &Services{
		Auth:         auth.NewService(repos.User, repos.Organization, repos.Session, cfg),
		Authz:        authzSvc,
		Organization: organization.NewService(repos.Organization, authzSvc),
		User:         user.NewService(repos.User, repos.Session, authzSvc),
		Building:     building.NewService(repos.Building),
		Category:     category.NewService(repos.Category, repos.Building),
		Task:         task.NewService(repos.Task, repos.Building, repos.Category, repos.User, notifSvc),
		Reading:      reading.NewService(repos.Reading, repos.ReadingComment, repos.Task, repos.Category, repos.User, authzSvc, notifSvc, redisClient, logger, nil),
		Notification: notifSvc,
		Analytics:    analytics.NewService(repos.Reading, repos.Building, repos.Task, redisClient, logger),
		Export:       export.NewService(repos.Reading, minioClient, cfg.MinIOBucket, logger),
	}
}
