package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receptkylen/backend/internal/session"
)

// ContextUserIDKey is the gin context key holding the verified user id.
const ContextUserIDKey = "user_id"

// Identity resolves the signed identity cookie and, when it verifies, stores
// the user id in the request context. Requests without a valid cookie pass
// through anonymously; gating happens per handler.
func Identity(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := sessions.UserFromRequest(c.Request); ok {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// CurrentUser returns the verified user id stored by Identity.
func CurrentUser(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}
