package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
)

const cacheTTL = 5 * time.Minute

// CacheKey is the Redis key holding the cached summary for an
// organization. Reading mutations delete it to force a recount.
func CacheKey(orgID uuid.UUID) string {
	return fmt.Sprintf("analytics:summary:%s", orgID)
}

type Summary struct {
	TotalReadings    int64     `json:"total_readings"`
	PendingReadings  int64     `json:"pending_readings"`
	ApprovedReadings int64     `json:"approved_readings"`
	RejectedReadings int64     `json:"rejected_readings"`
	TotalBuildings   int64     `json:"total_buildings"`
	ActiveTasks      int64     `json:"active_tasks"`
	GeneratedAt      time.Time `json:"generated_at"`
}

type Service interface {
	GetSummary(ctx context.Context, orgID uuid.UUID) (*Summary, error)
}

type service struct {
	readingRepo  repository.ReadingRepository
	buildingRepo repository.BuildingRepository
	taskRepo     repository.TaskRepository
	redis        *redis.Client
	logger       zerolog.Logger
}

func NewService(
	readingRepo repository.ReadingRepository,
	buildingRepo repository.BuildingRepository,
	taskRepo repository.TaskRepository,
	redisClient *redis.Client,
	logger zerolog.Logger,
) Service {
	return &service{
		readingRepo:  readingRepo,
		buildingRepo: buildingRepo,
		taskRepo:     taskRepo,
		redis:        redisClient,
		logger:       logger,
	}
}

func (s *service) GetSummary(ctx context.Context, orgID uuid.UUID) (*Summary, error) {
	if cached := s.fromCache(ctx, orgID); cached != nil {
		return cached, nil
	}

	summary, err := s.compute(ctx, orgID)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, orgID, summary)
	return summary, nil
}

func (s *service) compute(ctx context.Context, orgID uuid.UUID) (*Summary, error) {
	summary := &Summary{GeneratedAt: time.Now()}

	var err error
	if summary.TotalReadings, err = s.readingRepo.CountAll(ctx, orgID); err != nil {
		return nil, err
	}
	if summary.PendingReadings, err = s.readingRepo.CountByStatus(ctx, orgID, domain.ReadingPending); err != nil {
		return nil, err
	}
	if summary.ApprovedReadings, err = s.readingRepo.CountByStatus(ctx, orgID, domain.ReadingApproved); err != nil {
		return nil, err
	}
	if summary.RejectedReadings, err = s.readingRepo.CountByStatus(ctx, orgID, domain.ReadingRejected); err != nil {
		return nil, err
	}
	if summary.TotalBuildings, err = s.buildingRepo.Count(ctx, orgID); err != nil {
		return nil, err
	}
	if summary.ActiveTasks, err = s.taskRepo.CountActive(ctx, orgID); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *service) fromCache(ctx context.Context, orgID uuid.UUID) *Summary {
	if s.redis == nil {
		return nil
	}

	raw, err := s.redis.Get(ctx, CacheKey(orgID)).Result()
	if err != nil {
		return nil
	}

	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		s.logger.Warn().Err(err).Msg("failed to decode cached analytics summary")
		return nil
	}
	return &summary
}

func (s *service) toCache(ctx context.Context, orgID uuid.UUID, summary *Summary) {
	if s.redis == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, CacheKey(orgID), raw, cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache analytics summary")
	}
}
