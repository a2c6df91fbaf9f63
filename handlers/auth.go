package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"musicpass-backend/models"
	"musicpass-backend/session"
)

const sessionKey = "session"

// RequireSession resolves the bearer token to a live session and stores it
// on the context.
func RequireSession(issuer *session.Issuer, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			handleError(c, fmt.Errorf("missing bearer token: %w", models.ErrInvalidToken))
			return
		}

		id, err := issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			handleError(c, err)
			return
		}

		sess, err := store.Get(id)
		if err != nil {
			handleError(c, err)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) session.Session {
	return c.MustGet(sessionKey).(session.Session)
}
