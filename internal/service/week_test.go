package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/timetable-api/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeWeekParitySemesterStart(t *testing.T) {
	start := day(2024, time.January, 8)

	assert.False(t, ComputeWeekParity(day(2024, time.January, 8), start, false))
	assert.False(t, ComputeWeekParity(day(2024, time.January, 14), start, false))
	assert.True(t, ComputeWeekParity(day(2024, time.January, 15), start, false))
	assert.False(t, ComputeWeekParity(day(2024, time.January, 22), start, false))
}

func TestComputeWeekParityPeriodicity(t *testing.T) {
	start := day(2024, time.September, 2)
	for offset := -30; offset < 120; offset++ {
		today := start.AddDate(0, 0, offset)
		assert.Equal(t, ComputeWeekParity(today, start, false), ComputeWeekParity(today.AddDate(0, 0, 14), start, false), "offset %d", offset)
		assert.NotEqual(t, ComputeWeekParity(today, start, false), ComputeWeekParity(today.AddDate(0, 0, 7), start, false), "offset %d", offset)
		assert.NotEqual(t, ComputeWeekParity(today, start, false), ComputeWeekParity(today, start, true), "offset %d", offset)
	}
}

func TestComputeWeekParityBeforeStart(t *testing.T) {
	start := day(2024, time.January, 8)

	assert.True(t, ComputeWeekParity(day(2024, time.January, 7), start, false))
	assert.True(t, ComputeWeekParity(day(2024, time.January, 1), start, false))
	assert.False(t, ComputeWeekParity(day(2023, time.December, 31), start, false))
}

func TestComputeWeekParityIgnoresClockTime(t *testing.T) {
	start := time.Date(2024, time.January, 8, 23, 30, 0, 0, time.UTC)
	today := time.Date(2024, time.January, 15, 0, 5, 0, 0, time.UTC)

	assert.True(t, ComputeWeekParity(today, start, false))
}

func TestWeekParity(t *testing.T) {
	reverse := true
	semester := models.Semester{StartDate: models.NewDate(2024, time.January, 8), EndDate: models.NewDate(2024, time.May, 31)}

	assert.Nil(t, WeekParity(semester, models.NewDate(2024, time.January, 15)))

	semester.WeekReverse = &reverse
	parity := WeekParity(semester, models.NewDate(2024, time.January, 15))
	if assert.NotNil(t, parity) {
		assert.False(t, *parity)
	}
}
