package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
)

const presignExpiry = 15 * time.Minute

type Result struct {
	URL       string    `json:"url"`
	ObjectKey string    `json:"object_key"`
	RowCount  int       `json:"row_count"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service interface {
	// ExportReadings writes the organization's full reading history as a
	// CSV object and returns a short-lived download link.
	ExportReadings(ctx context.Context, orgID uuid.UUID) (*Result, error)
}

type service struct {
	readingRepo repository.ReadingRepository
	minioClient *minio.Client
	bucket      string
	logger      zerolog.Logger
}

func NewService(readingRepo repository.ReadingRepository, minioClient *minio.Client, bucket string, logger zerolog.Logger) Service {
	return &service{
		readingRepo: readingRepo,
		minioClient: minioClient,
		bucket:      bucket,
		logger:      logger,
	}
}

func (s *service) ExportReadings(ctx context.Context, orgID uuid.UUID) (*Result, error) {
	if s.minioClient == nil {
		return nil, domain.Internal("object storage is not configured")
	}

	readings, err := s.readingRepo.ListForExport(ctx, orgID)
	if err != nil {
		return nil, err
	}

	body, err := encodeCSV(readings)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("exports/%s/readings-%s.csv", orgID, time.Now().UTC().Format("20060102-150405"))
	_, err = s.minioClient.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	presigned, err := s.minioClient.PresignedGetObject(ctx, s.bucket, objectKey, presignExpiry, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("failed to presign export: %w", err)
	}

	s.logger.Info().
		Str("organization_id", orgID.String()).
		Int("rows", len(readings)).
		Str("object", objectKey).
		Msg("readings export generated")

	return &Result{
		URL:       presigned.String(),
		ObjectKey: objectKey,
		RowCount:  len(readings),
		ExpiresAt: time.Now().Add(presignExpiry),
	}, nil
}

func encodeCSV(readings []domain.Reading) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "task_id", "building_id", "category_id", "value", "status", "notes", "submitted_by", "submitted_at", "reviewed_by", "approved_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range readings {
		notes := ""
		if r.Notes != nil {
			notes = *r.Notes
		}
		reviewedBy := ""
		if r.ReviewedBy != nil {
			reviewedBy = r.ReviewedBy.String()
		}
		approvedAt := ""
		if r.ApprovedAt != nil {
			approvedAt = r.ApprovedAt.UTC().Format(time.RFC3339)
		}

		row := []string{
			r.ID.String(),
			r.TaskID.String(),
			r.BuildingID.String(),
			r.CategoryID.String(),
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			string(r.Status),
			notes,
			r.SubmittedBy.String(),
			r.SubmittedAt.UTC().Format(time.RFC3339),
			reviewedBy,
			approvedAt,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
