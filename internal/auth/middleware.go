package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

// SessionCookieName is the cookie carrying the server-side session id.
const SessionCookieName = "session_id"

const contextKeySession = "session"

// SessionFromContext returns the session set by RequireSession.
// The zero Session if the middleware did not run.
func SessionFromContext(c *gin.Context) domain.Session {
	v, ok := c.Get(contextKeySession)
	if !ok {
		return domain.Session{}
	}
	sess, ok := v.(domain.Session)
	if !ok {
		return domain.Session{}
	}
	return sess
}

// RequireSession checks for a valid session cookie and puts the session in
// context. Missing or stale sessions redirect to /login — the HTML surface
// never answers with a 4xx for this.
func RequireSession(sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || id == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		sess, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(contextKeySession, sess)
		c.Next()
	}
}
