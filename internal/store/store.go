package store

import (
	"context"
	"errors"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

// ErrTaskNotFound is returned when an id does not exist under the given user.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore keeps each user's tasks under their own bucket.
// A task stored under user u is never visible to a different user.
//
// The in-memory implementation is the default; Redis is the upgrade
// path to a store that survives restarts.
type TaskStore interface {
	Put(ctx context.Context, user string, t domain.Task) error
	Get(ctx context.Context, user string, id int64) (domain.Task, error)
	ListByUser(ctx context.Context, user string) ([]domain.Task, error)
	MarkDone(ctx context.Context, user string, id int64) (domain.Task, error)
	Delete(ctx context.Context, user string, id int64) error
}
