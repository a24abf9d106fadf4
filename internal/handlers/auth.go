package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WorthlessAI/Procastinator/internal/auth"
	"github.com/WorthlessAI/Procastinator/internal/domain"
	"github.com/WorthlessAI/Procastinator/internal/events"
)

// AuthHandler handles the login form and logout.
type AuthHandler struct {
	sessions auth.SessionStore
	events   events.Publisher
	ttl      time.Duration
}

// NewAuthHandler returns an AuthHandler. ttl is the session (and cookie) lifetime.
func NewAuthHandler(sessions auth.SessionStore, pub events.Publisher, ttl time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, events: pub, ttl: ttl}
}

// LoginForm renders the login page with any pending flash banner.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flash": popFlash(c),
	})
}

// Login accepts the name+email form. Any non-empty pair is accepted; there
// is no password and no uniqueness check. Missing fields flash a banner and
// redirect back to the form.
func (h *AuthHandler) Login(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))

	if name == "" || email == "" {
		setFlash(c, "Please provide a valid name and email.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := h.sessions.Create(c.Request.Context(), domain.Session{User: name, Email: email})
	if err != nil {
		log.Printf("[error] create session: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.SetCookie(auth.SessionCookieName, id, int(h.ttl.Seconds()), "/", "", false, true)
	log.Printf("[info] user logged in: %s", name)
	h.events.Publish("login")
	c.Redirect(http.StatusFound, "/")
}

// Logout deletes the session record, clears the cookie, and redirects to the
// login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(auth.SessionCookieName); err == nil && id != "" {
		_ = h.sessions.Delete(c.Request.Context(), id)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	log.Printf("[info] user logged out")
	h.events.Publish("logout")
	c.Redirect(http.StatusFound, "/login")
}
