package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOfDate(t *testing.T) {
	// 13 октября 2025 - понедельник
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	for i, want := range AllWeekdays {
		got := WeekdayOfDate(monday.AddDate(0, 0, i))
		assert.Equal(t, want, got)
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, day)

	_, err = ParseWeekday("Wednesday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = ParseWeekday("someday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestContainsWeekday(t *testing.T) {
	days := []Weekday{Monday, Wednesday}
	assert.True(t, ContainsWeekday(days, Monday))
	assert.False(t, ContainsWeekday(days, Sunday))
	assert.False(t, ContainsWeekday(nil, Monday))
}
