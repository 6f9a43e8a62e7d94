package middleware

import (
	"net/http"

	"taskboard/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the context key under which the verified caller id is
// stored for downstream handlers.
const UserIDKey = "userID"

// SessionAuth extracts the session cookie and verifies it before any
// protected handler runs. A missing cookie is 401, a token that fails
// verification is 403. Handlers must take the caller identity from the
// context only, never from the request payload.
func SessionAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.SessionCookie)
		if err != nil || tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token is missing"})
			c.Abort()
			return
		}

		userIDStr, err := auth.ParseToken(tokenStr, []byte(jwtSecret))
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the verified caller id attached by SessionAuth.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
