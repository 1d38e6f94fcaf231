package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.store.ListAuditLogs(c.Request.Context())
	if err != nil {
		log.Printf("failed to list audit logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
