package domain

import "time"

// DateLayout is the wire format for due dates ("YYYY-MM-DD").
// Dates are parsed once at the write boundary; stored tasks always
// carry a valid UTC-midnight Due.
const DateLayout = "2006-01-02"

// Task is the domain entity for a single to-do item.
// It does not depend on Gin, Redis, or the LLM client.
type Task struct {
	ID        int64
	Text      string
	Due       time.Time // midnight UTC of the due day
	Completed bool
	CreatedAt time.Time
}

// DueString renders the due day in the wire format.
func (t Task) DueString() string { return t.Due.Format(DateLayout) }

// ParseDue parses a "YYYY-MM-DD" string into midnight UTC of that day.
func ParseDue(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Day truncates any instant to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
