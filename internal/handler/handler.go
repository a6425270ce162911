package handler

import (
	"github.com/gofiber/fiber/v2"

	"facilitrack/internal/domain"
	"facilitrack/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Organization *OrganizationHandler
	User         *UserHandler
	Building     *BuildingHandler
	Category     *CategoryHandler
	Task         *TaskHandler
	Reading      *ReadingHandler
	Notification *NotificationHandler
	Analytics    *AnalyticsHandler
	Export       *ExportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Organization: NewOrganizationHandler(services.Organization),
		User:         NewUserHandler(services.User),
		Building:     NewBuildingHandler(services.Building),
		Category:     NewCategoryHandler(services.Category),
		Task:         NewTaskHandler(services.Task),
		Reading:      NewReadingHandler(services.Reading),
		Notification: NewNotificationHandler(services.Notification),
		Analytics:    NewAnalyticsHandler(services.Analytics),
		Export:       NewExportHandler(services.Export),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if limit := c.QueryInt("limit", 20); limit > 0 {
		params.Limit = limit
	}

	params.Validate()
	return params
}
