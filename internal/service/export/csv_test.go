package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilitrack/internal/domain"
)

func TestEncodeCSV(t *testing.T) {
	notes := "slight vibration"
	reviewer := uuid.New()
	approvedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	readings := []domain.Reading{
		{
			ID:          uuid.New(),
			TaskID:      uuid.New(),
			BuildingID:  uuid.New(),
			CategoryID:  uuid.New(),
			Value:       73.25,
			Notes:       &notes,
			Status:      domain.ReadingApproved,
			SubmittedBy: uuid.New(),
			SubmittedAt: time.Date(2026, 3, 14, 9, 3, 0, 0, time.UTC),
			ReviewedBy:  &reviewer,
			ApprovedAt:  &approvedAt,
		},
		{
			ID:          uuid.New(),
			TaskID:      uuid.New(),
			BuildingID:  uuid.New(),
			CategoryID:  uuid.New(),
			Value:       12,
			Status:      domain.ReadingPending,
			SubmittedBy: uuid.New(),
			SubmittedAt: time.Date(2026, 3, 14, 9, 4, 0, 0, time.UTC),
		},
	}

	body, err := encodeCSV(readings)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,task_id,building_id"))
	assert.Contains(t, lines[1], "73.25")
	assert.Contains(t, lines[1], "APPROVED")
	assert.Contains(t, lines[1], "slight vibration")
	assert.Contains(t, lines[2], "PENDING")
	// Undecided readings leave the reviewer columns empty.
	assert.True(t, strings.HasSuffix(lines[2], ",,"))
}

func TestEncodeCSV_Empty(t *testing.T) {
	body, err := encodeCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 1)
}
