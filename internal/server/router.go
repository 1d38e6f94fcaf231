package server

import (
	"net/http"

	"proposaldesk/internal/config"
	"proposaldesk/internal/handlers"
	"proposaldesk/internal/middleware"
	"proposaldesk/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config, store handlers.Store) *gin.Engine {
	r := gin.Default()

	h := handlers.NewHandler(store)

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("proposaldesk_session", sessStore))
	r.Use(middleware.InjectUser(store))

	// AUTH
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", h.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/me", h.Me)

	// PROPOSALS
	api.GET("/proposals", h.ListProposals)
	api.GET("/proposals/summary", h.ProposalSummary)
	api.GET("/proposals/export", h.ExportProposalsCSV)
	api.POST("/proposals", h.CreateProposal)

	// mutating existing proposals is admin only
	api.PUT("/proposals/:id",
		middleware.RequireRole(models.RoleAdmin),
		h.UpdateProposal,
	)
	api.DELETE("/proposals/:id",
		middleware.RequireRole(models.RoleAdmin),
		h.DeleteProposal,
	)

	// USERS
	api.GET("/users",
		middleware.RequireRole(models.RoleAdmin),
		h.ListUsers,
	)
	api.POST("/users",
		middleware.RequireRole(models.RoleAdmin),
		h.CreateUser,
	)
	api.PUT("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		h.UpdateUser,
	)
	// password change checks self-or-admin inside the handler
	api.PUT("/users/:id/password", h.UpdateUserPassword)
	api.DELETE("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		h.DeleteUser,
	)

	// AUDIT
	api.GET("/audit",
		middleware.RequireRole(models.RoleAdmin),
		h.ListAuditLogs,
	)

	// METRICS + HEALTHCHECK
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
