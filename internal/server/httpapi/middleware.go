package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/logging"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
	"github.com/dmitrijs2005/studyboard/internal/server/sessions"
)

// SessionHeader carries the session ID issued by login.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session"

// RequireAuth resolves the session header against the session manager
// and aborts with 401 before any handler (and so any storage call)
// runs. The resolved session is the request's only source of identity.
func RequireAuth(sm *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing session", "code": "unauthorized"},
			})
			return
		}

		session, ok := sm.Get(id)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "unknown session", "code": "unauthorized"},
			})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// currentSession returns the session stored by RequireAuth. Handlers
// behind the middleware can rely on it being present.
func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*models.Session)
	return s
}

// RequestLog emits one structured line per request.
func RequestLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
