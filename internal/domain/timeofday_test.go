package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 30, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, tod.Hour)
	assert.Equal(t, 5, tod.Minute)
	assert.Equal(t, "09:05", tod.String())

	_, err = ParseTimeOfDay("24:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("09:60")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("not a time")
	assert.Error(t, err)
}

func TestWindowContains(t *testing.T) {
	nine := TimeOfDay{Hour: 9, Minute: 0}
	window := 10 * time.Minute

	assert.False(t, nine.WindowContains(at(8, 59), window))
	assert.True(t, nine.WindowContains(at(9, 0), window))
	assert.True(t, nine.WindowContains(at(9, 9), window))
	assert.False(t, nine.WindowContains(at(9, 10), window))
	assert.False(t, nine.WindowContains(at(21, 0), window))
}

func TestWindowContains_MidnightWrap(t *testing.T) {
	late := TimeOfDay{Hour: 23, Minute: 57}
	window := 10 * time.Minute

	assert.False(t, late.WindowContains(at(23, 56), window))
	assert.True(t, late.WindowContains(at(23, 57), window))
	assert.True(t, late.WindowContains(at(23, 59), window))
	assert.True(t, late.WindowContains(at(0, 0), window))
	assert.True(t, late.WindowContains(at(0, 6), window))
	assert.False(t, late.WindowContains(at(0, 7), window))
}

func TestTimeOfDayJSON(t *testing.T) {
	tod := TimeOfDay{Hour: 7, Minute: 30}

	data, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"07:30"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, tod, parsed)
}

func TestTaskIsOpenAt(t *testing.T) {
	task := Task{
		IsActive:      true,
		ScheduledTime: TimeOfDay{Hour: 14, Minute: 0},
	}

	assert.True(t, task.IsOpenAt(at(14, 5)))
	assert.False(t, task.IsOpenAt(at(14, 15)))

	task.IsActive = false
	assert.False(t, task.IsOpenAt(at(14, 5)))
}
