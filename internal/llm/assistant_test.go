package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WorthlessAI/Procastinator/internal/domain"
	"github.com/WorthlessAI/Procastinator/internal/events"
)

type recordingPublisher struct {
	mu      sync.Mutex
	actions []string
}

func (p *recordingPublisher) Publish(action string) {
	p.mu.Lock()
	p.actions = append(p.actions, action)
	p.mu.Unlock()
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(action string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, a := range p.actions {
		if a == action {
			n++
		}
	}
	return n
}

type stubGenerator struct {
	mu    sync.Mutex
	calls int
	fn    func(prompt string) (string, error)
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.fn(prompt)
}

func upcomingTask(id int64, text, day string) domain.Task {
	due, err := domain.ParseDue(day)
	if err != nil {
		panic(err)
	}
	return domain.Task{ID: id, Text: text, Due: due}
}

func TestBuildPromptEmbedsTaskAndDate(t *testing.T) {
	p := BuildPrompt(upcomingTask(1, "finish report", "2025-01-10"))
	assert.Contains(t, p, "'finish report'")
	assert.Contains(t, p, "2025-01-10")
	assert.Contains(t, p, "make me procrast")
}

func TestMessagesForKeepsTaskOrder(t *testing.T) {
	gen := &stubGenerator{fn: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "first"):
			return "msg one", nil
		case strings.Contains(prompt, "second"):
			return "msg two", nil
		default:
			return "msg three", nil
		}
	}}
	a := NewAssistant(gen, 3, events.Nop{})

	got := a.MessagesFor(context.Background(), []domain.Task{
		upcomingTask(1, "first", "2025-01-10"),
		upcomingTask(2, "second", "2025-01-11"),
		upcomingTask(3, "third", "2025-01-12"),
	})
	assert.Equal(t, []string{"msg one", "msg two", "msg three"}, got)
}

func TestMessagesForSkipsFailedGenerations(t *testing.T) {
	gen := &stubGenerator{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "broken") {
			return "", errors.New("boom")
		}
		return "relax!", nil
	}}
	a := NewAssistant(gen, 2, events.Nop{})

	got := a.MessagesFor(context.Background(), []domain.Task{
		upcomingTask(1, "fine", "2025-01-10"),
		upcomingTask(2, "broken", "2025-01-11"),
		upcomingTask(3, "also fine", "2025-01-12"),
	})
	assert.Equal(t, []string{"relax!", "relax!"}, got)
}

func TestMessagesForPublishesPerGeneration(t *testing.T) {
	gen := &stubGenerator{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "broken") {
			return "", errors.New("boom")
		}
		return "relax!", nil
	}}
	pub := &recordingPublisher{}
	a := NewAssistant(gen, 2, pub)

	got := a.MessagesFor(context.Background(), []domain.Task{
		upcomingTask(1, "fine", "2025-01-10"),
		upcomingTask(2, "broken", "2025-01-11"),
		upcomingTask(3, "also fine", "2025-01-12"),
	})
	assert.Len(t, got, 2)
	// one event per surviving message, none for the failed generation
	assert.Equal(t, 2, pub.count("message-generated"))
}

func TestMessagesForNoTasks(t *testing.T) {
	gen := &stubGenerator{fn: func(string) (string, error) { return "relax!", nil }}
	a := NewAssistant(gen, 2, events.Nop{})

	assert.Empty(t, a.MessagesFor(context.Background(), nil))
	assert.Equal(t, 0, gen.calls)
}
