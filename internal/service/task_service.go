package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/WorthlessAI/Procastinator/internal/domain"
	"github.com/WorthlessAI/Procastinator/internal/events"
	"github.com/WorthlessAI/Procastinator/internal/planner"
	"github.com/WorthlessAI/Procastinator/internal/store"
)

var (
	// ErrEmptyField means the task text or due date was missing.
	ErrEmptyField = errors.New("task text and due date are required")
	// ErrBadDate means the due date was not a valid YYYY-MM-DD day.
	ErrBadDate = errors.New("due date must be YYYY-MM-DD")
)

// TaskService owns task creation, listing, and the deadline scan.
type TaskService struct {
	store  store.TaskStore
	events events.Publisher
}

// NewTaskService wires the task store and the lifecycle-event publisher.
func NewTaskService(s store.TaskStore, pub events.Publisher) *TaskService {
	return &TaskService{store: s, events: pub}
}

// Create validates and stores a new task under user. The id is the creation
// timestamp in milliseconds; creations spaced under 1ms apart share an id
// and the later write wins, which is the inherited contract.
func (s *TaskService) Create(ctx context.Context, user, text, dueDate string) (domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.TrimSpace(dueDate) == "" {
		return domain.Task{}, ErrEmptyField
	}
	due, err := domain.ParseDue(strings.TrimSpace(dueDate))
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", ErrBadDate, err)
	}

	now := time.Now()
	t := domain.Task{
		ID:        now.UnixMilli(),
		Text:      text,
		Due:       due,
		Completed: false,
		CreatedAt: now,
	}
	if err := s.store.Put(ctx, user, t); err != nil {
		return domain.Task{}, fmt.Errorf("store task: %w", err)
	}
	log.Printf("[info] task added: %s, due date: %s for user: %s", t.Text, t.DueString(), user)
	s.events.Publish("task-added")
	return t, nil
}

// Section returns the user's tasks for a named date bucket.
func (s *TaskService) Section(ctx context.Context, user string, section domain.Section, now time.Time) ([]domain.Task, error) {
	tasks, err := s.store.ListByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return planner.FilterBySection(tasks, section, now), nil
}

// Upcoming returns the user's tasks due within the next two days, inclusive.
func (s *TaskService) Upcoming(ctx context.Context, user string, now time.Time) ([]domain.Task, error) {
	tasks, err := s.store.ListByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return planner.Upcoming(tasks, now), nil
}

// Complete marks the user's task done.
func (s *TaskService) Complete(ctx context.Context, user string, id int64) (domain.Task, error) {
	t, err := s.store.MarkDone(ctx, user, id)
	if err != nil {
		return domain.Task{}, err
	}
	s.events.Publish("task-completed")
	return t, nil
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, user string, id int64) error {
	if err := s.store.Delete(ctx, user, id); err != nil {
		return err
	}
	s.events.Publish("task-deleted")
	return nil
}
