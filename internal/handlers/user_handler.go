package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

// GetUserAdmin answers whether the identity carries the admin capability.
// Unknown emails are ordinary users, not errors.
func (h *Handler) GetUserAdmin(c *gin.Context) {
	isAdmin, err := h.Authz.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.Log.Error("failed to check admin role", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

type userRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email" binding:"required,email"`
	// Role passes through so deployments can seed their first admin at
	// registration time; every later elevation goes through MakeAdmin.
	Role string `json:"role"`
}

// CreateUser registers an identity record.
func (h *Handler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user := models.User{DisplayName: req.DisplayName, Email: req.Email, Role: req.Role}
	if err := h.Users.Insert(c.Request.Context(), &user); err != nil {
		h.Log.Error("failed to insert user", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true})
}

// UpsertUser registers an identity idempotently, keyed by email. Retrying
// is always safe here.
func (h *Handler) UpsertUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user := models.User{DisplayName: req.DisplayName, Email: req.Email, Role: req.Role}
	if err := h.Users.Upsert(c.Request.Context(), &user); err != nil {
		h.Log.Error("failed to upsert user", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// MakeAdmin elevates the target user. Only a verified identity that is
// already admin may do this; everyone else gets the 403 payload the
// frontend shows as-is.
func (h *Handler) MakeAdmin(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	requester := middleware.VerifiedEmail(c)
	err := h.Authz.MakeAdmin(c.Request.Context(), requester, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You do not have access to make admin"})
			return
		}
		h.Log.Error("failed to make admin", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": 1})
}
