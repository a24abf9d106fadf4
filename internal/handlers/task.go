package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WorthlessAI/Procastinator/internal/auth"
	"github.com/WorthlessAI/Procastinator/internal/domain"
	"github.com/WorthlessAI/Procastinator/internal/service"
	"github.com/WorthlessAI/Procastinator/internal/store"
)

// MessageSource produces procrastination messages for a batch of upcoming
// tasks. Failures degrade inside the implementation; the handler only sees
// whatever messages survived.
type MessageSource interface {
	MessagesFor(ctx context.Context, tasks []domain.Task) []string
}

// TaskHandler renders the home page and handles task mutations.
type TaskHandler struct {
	svc      *service.TaskService
	messages MessageSource
}

// NewTaskHandler returns a TaskHandler.
func NewTaskHandler(svc *service.TaskService, messages MessageSource) *TaskHandler {
	return &TaskHandler{svc: svc, messages: messages}
}

// Home renders the task list for the requested section (default myDay),
// plus procrastination messages for tasks due within two days. The listing
// renders even when message generation fails.
func (h *TaskHandler) Home(c *gin.Context) {
	sess := auth.SessionFromContext(c)
	section := domain.Section(c.DefaultQuery("section", string(domain.SectionMyDay)))
	now := time.Now()

	tasks, err := h.svc.Section(c.Request.Context(), sess.User, section, now)
	if err != nil {
		log.Printf("[error] list tasks for %s: %v", sess.User, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	upcoming, err := h.svc.Upcoming(c.Request.Context(), sess.User, now)
	if err != nil {
		log.Printf("[error] deadline scan for %s: %v", sess.User, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	var messages []string
	if len(upcoming) > 0 {
		messages = h.messages.MessagesFor(c.Request.Context(), upcoming)
	}

	log.Printf("[info] rendering home page for section: %s, tasks count: %d", section, len(tasks))
	c.HTML(http.StatusOK, "index.html", gin.H{
		"tasks":                   tasks,
		"section":                 string(section),
		"user":                    sess.User,
		"procrastinationMessages": messages,
	})
}

// AddTask accepts the todo + duedate form fields. Validation failures are a
// silent redirect home; nothing is stored.
func (h *TaskHandler) AddTask(c *gin.Context) {
	sess := auth.SessionFromContext(c)
	text := c.PostForm("todo")
	dueDate := c.PostForm("duedate")

	_, err := h.svc.Create(c.Request.Context(), sess.User, text, dueDate)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmptyField), errors.Is(err, service.ErrBadDate):
		// silently ignored, matching the original form contract
	default:
		log.Printf("[error] add task for %s: %v", sess.User, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Complete marks a task done and redirects home.
func (h *TaskHandler) Complete(c *gin.Context) {
	sess := auth.SessionFromContext(c)
	id, ok := parseTaskID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if _, err := h.svc.Complete(c.Request.Context(), sess.User, id); err != nil && !errors.Is(err, store.ErrTaskNotFound) {
		log.Printf("[error] complete task %d for %s: %v", id, sess.User, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete removes a task and redirects home.
func (h *TaskHandler) Delete(c *gin.Context) {
	sess := auth.SessionFromContext(c)
	id, ok := parseTaskID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), sess.User, id); err != nil && !errors.Is(err, store.ErrTaskNotFound) {
		log.Printf("[error] delete task %d for %s: %v", id, sess.User, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func parseTaskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
