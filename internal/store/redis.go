package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

const taskKeyPrefix = "tasks:"

// RedisStore keeps each user's tasks in a Redis hash keyed by task id.
// Drop-in replacement for MemoryStore when the store must outlive the process.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a Redis-backed task store.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func userKey(user string) string { return taskKeyPrefix + user }

func (s *RedisStore) Put(ctx context.Context, user string, t domain.Task) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, userKey(user), strconv.FormatInt(t.ID, 10), b).Err()
}

func (s *RedisStore) Get(ctx context.Context, user string, id int64) (domain.Task, error) {
	b, err := s.rdb.HGet(ctx, userKey(user), strconv.FormatInt(id, 10)).Bytes()
	if err == redis.Nil {
		return domain.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	var t domain.Task
	if err := json.Unmarshal(b, &t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (s *RedisStore) ListByUser(ctx context.Context, user string) ([]domain.Task, error) {
	vals, err := s.rdb.HGetAll(ctx, userKey(user)).Result()
	if err != nil {
		return nil, err
	}
	list := make([]domain.Task, 0, len(vals))
	for _, v := range vals {
		var t domain.Task
		if err := json.Unmarshal([]byte(v), &t); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, nil
}

func (s *RedisStore) MarkDone(ctx context.Context, user string, id int64) (domain.Task, error) {
	t, err := s.Get(ctx, user, id)
	if err != nil {
		return domain.Task{}, err
	}
	t.Completed = true
	if err := s.Put(ctx, user, t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (s *RedisStore) Delete(ctx context.Context, user string, id int64) error {
	n, err := s.rdb.HDel(ctx, userKey(user), strconv.FormatInt(id, 10)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
