package llm

import (
	"context"
	"log"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/WorthlessAI/Procastinator/internal/domain"
	"github.com/WorthlessAI/Procastinator/internal/events"
)

// Assistant turns a batch of upcoming tasks into procrastination messages.
// It fans out one completion per task with a bounded number of in-flight
// requests, and dedupes identical in-flight generations across concurrent
// page loads via singleflight.
type Assistant struct {
	gen    Generator
	limit  int
	events events.Publisher
	sf     singleflight.Group
}

// NewAssistant returns an Assistant. limit bounds the fan-out; values < 1
// mean sequential.
func NewAssistant(gen Generator, limit int, pub events.Publisher) *Assistant {
	if limit < 1 {
		limit = 1
	}
	return &Assistant{gen: gen, limit: limit, events: pub}
}

// MessagesFor generates one message per task, keeping task order.
// A failed generation is logged and skipped; the caller renders whatever
// survived. The listing itself never fails because of the assistant.
func (a *Assistant) MessagesFor(ctx context.Context, tasks []domain.Task) []string {
	results := make([]string, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			key := strconv.FormatInt(t.ID, 10) + ":" + t.DueString()
			v, err, _ := a.sf.Do(key, func() (interface{}, error) {
				return a.gen.Generate(gctx, BuildPrompt(t))
			})
			if err != nil {
				log.Printf("[warn] procrastination message for task %q: %v", t.Text, err)
				return nil
			}
			results[i] = v.(string)
			log.Printf("[info] generated procrastination message for task %q: %s", t.Text, v.(string))
			a.events.Publish("message-generated")
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; failures degrade per task

	out := make([]string, 0, len(results))
	for _, m := range results {
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}
