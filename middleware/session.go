package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie    = "session_id"
	ContextSessionID = "sessionID"

	sessionMaxAge = 30 * 24 * 60 * 60
)

// VisitorSession makes sure every storefront visitor carries an anonymous
// session_id cookie; favorites are keyed by it.
func VisitorSession(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.Must(uuid.NewV7()).String()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", secure, true)
		c.Set(ContextSessionID, id)
		c.Next()
	}
}

// GetSessionID returns the visitor session set by VisitorSession.
func GetSessionID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextSessionID)
	return id, id != ""
}
