package middleware

import (
	"context"

	"proposaldesk/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// UserLoader resolves a session user id to a full account record.
type UserLoader interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// InjectUser resolves the session to a models.User once per request and
// stores it in the gin context. Downstream code takes the current user
// from there, never from any global.
func InjectUser(store UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := store.GetUser(c.Request.Context(), uid); err == nil {
					c.Set("CurrentUser", *user)
				}
			}
		}

		c.Next()
	}
}
