// Package planner holds the pure date-bucket logic behind the task list view.
package planner

import (
	"time"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

// upcomingWindowDays is how far ahead the deadline scan looks, inclusive.
const upcomingWindowDays = 2

// FilterBySection returns the subset of tasks whose due day falls in the
// section's range, computed relative to now:
//
//	myDay     — due == today
//	thisWeek  — Monday..Sunday of the current week, inclusive
//	thisMonth — first..last day of the current month, inclusive
//	other     — every task, regardless of date
//
// Any other section value yields an empty result.
func FilterBySection(tasks []domain.Task, section domain.Section, now time.Time) []domain.Task {
	today := domain.Day(now)
	weekStart := startOfWeek(today)
	weekEnd := weekStart.AddDate(0, 0, 6)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		due := domain.Day(t.Due)
		switch section {
		case domain.SectionMyDay:
			if due.Equal(today) {
				out = append(out, t)
			}
		case domain.SectionThisWeek:
			if inRange(due, weekStart, weekEnd) {
				out = append(out, t)
			}
		case domain.SectionThisMonth:
			if inRange(due, monthStart, monthEnd) {
				out = append(out, t)
			}
		case domain.SectionOther:
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns tasks due within [today, today+2] inclusive.
// A task due yesterday or in 3 days is excluded.
func Upcoming(tasks []domain.Task, now time.Time) []domain.Task {
	today := domain.Day(now)
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if inRange(domain.Day(t.Due), today, horizon) {
			out = append(out, t)
		}
	}
	return out
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 { // Sunday belongs to the preceding Monday-start week
		wd = 7
	}
	return day.AddDate(0, 0, -(wd - 1))
}

func inRange(d, lo, hi time.Time) bool {
	return !d.Before(lo) && !d.After(hi)
}
