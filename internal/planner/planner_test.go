package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

// Wednesday, January 8th 2025. Week is Mon Jan 6 .. Sun Jan 12.
var now = time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)

func taskDue(id int64, day string) domain.Task {
	due, err := domain.ParseDue(day)
	if err != nil {
		panic(err)
	}
	return domain.Task{ID: id, Text: "task", Due: due}
}

func ids(tasks []domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterMyDay(t *testing.T) {
	tasks := []domain.Task{
		taskDue(1, "2025-01-08"),
		taskDue(2, "2025-01-09"),
		taskDue(3, "2025-01-07"),
	}
	got := FilterBySection(tasks, domain.SectionMyDay, now)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterThisWeekInclusiveBounds(t *testing.T) {
	tasks := []domain.Task{
		taskDue(1, "2025-01-05"), // Sunday before
		taskDue(2, "2025-01-06"), // Monday
		taskDue(3, "2025-01-12"), // Sunday
		taskDue(4, "2025-01-13"), // Monday after
	}
	got := FilterBySection(tasks, domain.SectionThisWeek, now)
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestFilterThisWeekOnSunday(t *testing.T) {
	// On a Sunday the week still starts the preceding Monday.
	sunday := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		taskDue(1, "2025-01-06"),
		taskDue(2, "2025-01-12"),
		taskDue(3, "2025-01-13"),
	}
	got := FilterBySection(tasks, domain.SectionThisWeek, sunday)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestFilterThisMonthInclusiveBounds(t *testing.T) {
	tasks := []domain.Task{
		taskDue(1, "2024-12-31"),
		taskDue(2, "2025-01-01"),
		taskDue(3, "2025-01-31"),
		taskDue(4, "2025-02-01"),
	}
	got := FilterBySection(tasks, domain.SectionThisMonth, now)
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestFilterOtherReturnsEverything(t *testing.T) {
	tasks := []domain.Task{
		taskDue(1, "1999-06-01"),
		taskDue(2, "2025-01-08"),
		taskDue(3, "2031-12-24"),
	}
	got := FilterBySection(tasks, domain.SectionOther, now)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestFilterUnknownSectionIsEmpty(t *testing.T) {
	tasks := []domain.Task{taskDue(1, "2025-01-08")}
	got := FilterBySection(tasks, domain.Section("someday"), now)
	assert.Empty(t, got)
}

func TestUpcomingWindow(t *testing.T) {
	tasks := []domain.Task{
		taskDue(1, "2025-01-07"), // yesterday: excluded
		taskDue(2, "2025-01-08"), // today
		taskDue(3, "2025-01-09"),
		taskDue(4, "2025-01-10"), // today+2
		taskDue(5, "2025-01-11"), // today+3: excluded
	}
	got := Upcoming(tasks, now)
	assert.Equal(t, []int64{2, 3, 4}, ids(got))
}

func TestUpcomingEmpty(t *testing.T) {
	got := Upcoming(nil, now)
	assert.Empty(t, got)
}
