package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"proposaldesk/internal/metrics"
	"proposaldesk/internal/models"
	"proposaldesk/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func validRole(role string) bool {
	switch models.UserRole(role) {
	case models.RoleAdmin, models.RoleUser:
		return true
	}
	return false
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	admin, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username or password too short"})
		return
	}
	if !validRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be admin or user"})
		return
	}

	if _, err := h.store.GetUserByUsername(c.Request.Context(), req.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         models.UserRole(req.Role),
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		log.Printf("failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), admin.ID, "user", user.ID, "create", "Created user "+user.Username)
	metrics.Mutations.WithLabelValues("user", "create").Inc()

	c.JSON(http.StatusCreated, user)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	admin, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("failed to load user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username too short"})
		return
	}
	if !validRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be admin or user"})
		return
	}

	user.Username = req.Username
	user.Role = models.UserRole(req.Role)

	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		log.Printf("failed to update user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), admin.ID, "user", user.ID, "update", "Updated user "+user.Username)
	metrics.Mutations.WithLabelValues("user", "update").Inc()

	c.JSON(http.StatusOK, user)
}

type passwordRequest struct {
	Password string `json:"password"`
}

// UpdateUserPassword lets a user change their own password; admins can
// reset anyone's.
func (h *Handler) UpdateUserPassword(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if caller.Role != models.RoleAdmin && caller.ID != id {
		metrics.AuthDenials.Inc()
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("failed to load user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
		return
	}
	user.PasswordHash = string(hash)

	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		log.Printf("failed to update password for user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), caller.ID, "user", user.ID, "update", "Changed password for "+user.Username)
	metrics.Mutations.WithLabelValues("user", "update").Inc()

	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	admin, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if id == admin.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("failed to load user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		log.Printf("failed to delete user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), admin.ID, "user", id, "delete", "Deleted user "+user.Username)
	metrics.Mutations.WithLabelValues("user", "delete").Inc()

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
