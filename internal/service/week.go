package service

import (
	"time"

	"github.com/noah-isme/timetable-api/internal/models"
)

// ComputeWeekParity reports whether today falls on an odd week of a double-week
// semester starting on startDate. Weeks are counted from startDate in blocks of
// seven days; weekReverse swaps odd and even.
func ComputeWeekParity(today, startDate time.Time, weekReverse bool) bool {
	days := models.DateOf(today).DaysSince(models.DateOf(startDate))
	week := floorDiv(days, 7)
	if weekReverse {
		week++
	}
	return positiveMod(week, 2) == 1
}

// WeekParity returns the parity of day within semester, or nil when the semester
// does not alternate weeks.
func WeekParity(semester models.Semester, day models.Date) *bool {
	if !semester.UsesDoubleWeek() {
		return nil
	}
	odd := ComputeWeekParity(day.Time, semester.StartDate.Time, *semester.WeekReverse)
	return &odd
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func positiveMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
