package handlers

import (
	"strconv"

	"proposaldesk/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the account middleware.InjectUser put on the
// context. Behind RequireAuth it is always present.
func currentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	user, ok := uVal.(models.User)
	return user, ok
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
