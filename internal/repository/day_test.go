package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	date := time.Date(2022, 1, 20, 10, 30, 15, 500, time.UTC)

	start, end := DayBounds(date)

	assert.Equal(t, time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC), end)
}

func TestDayBounds_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 02:00 UTC 21 января = 23:00 20 января по UTC-3
	date := time.Date(2022, 1, 21, 2, 0, 0, 0, time.UTC).In(loc)

	start, end := DayBounds(date)

	assert.True(t, start.Equal(time.Date(2022, 1, 20, 0, 0, 0, 0, loc)))
	assert.True(t, end.Equal(time.Date(2022, 1, 21, 0, 0, 0, 0, loc)))
}

func TestCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	date := time.Date(2022, 1, 20, 20, 0, 0, 0, time.UTC).In(loc)

	day := calendarDay(date)

	assert.True(t, day.Valid)
	assert.Equal(t, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC), day.Time)
}
