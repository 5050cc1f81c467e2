package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/middleware"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

// SessionRevoker ends every session of one admin.
type SessionRevoker interface {
	DeleteUser(ctx context.Context, adminID uint) error
}

type AdminUserHandler struct {
	repo     *repository.AdminUserGormRepository
	sessions SessionRevoker
	audit    *audit.Dispatcher
}

func NewAdminUserHandler(repo *repository.AdminUserGormRepository, sessions SessionRevoker, audit *audit.Dispatcher) *AdminUserHandler {
	return &AdminUserHandler{repo: repo, sessions: sessions, audit: audit}
}

// --------- Requests ---------

type CreateAdminUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin editor"`
}

type UpdateAdminUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin editor"`
	Password *string `json:"password"`
}

// --------- Handlers ---------

func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed_to_list_users", "Could not load users.")
		return
	}
	httpresp.List(c, users)
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var req CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", &req.Name) {
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		httperr.BadRequest(c, "weak_password", err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, err, "failed_to_hash_password", "Could not create user.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}

	user := models.AdminUser{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := h.repo.Create(c.Request.Context(), &user); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_taken", "An account with this e-mail already exists.")
			return
		}
		httperr.Internal(c, err, "failed_to_create_user", "Could not create user.")
		return
	}

	writeAudit(c, h.audit, "admin_user_created", "admin_user", user.ID, gin.H{"role": user.Role})
	httpresp.Created(c, user)
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", req.Name) {
		return
	}

	p := partial.New()
	partial.Trimmed(p, "name", req.Name)

	if req.Role != nil && *req.Role != models.RoleAdmin {
		if !h.canDemote(c, id) {
			return
		}
	}
	partial.Field(p, "role", req.Role)

	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			httperr.BadRequest(c, "weak_password", err.Error())
			return
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			httperr.Internal(c, err, "failed_to_hash_password", "Could not update user.")
			return
		}
		p.Set("password_hash", hash)
	}

	user, err := h.repo.Update(c.Request.Context(), id, p)
	if err != nil {
		writeStoreError(c, err, "admin_user")
		return
	}
	if req.Role != nil || req.Password != nil {
		h.revokeSessions(c, id)
	}

	writeAudit(c, h.audit, "admin_user_updated", "admin_user", id, gin.H{"fields": p.Columns()})
	httpresp.OK(c, user)
}

// canDemote refuses to take the admin role away from the last admin.
func (h *AdminUserHandler) canDemote(c *gin.Context, id uint) bool {
	target, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "admin_user")
		return false
	}
	if target.Role != models.RoleAdmin {
		return true
	}

	n, err := h.repo.CountAdmins(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "internal_error", "Unexpected error.")
		return false
	}
	if n <= 1 {
		httperr.Conflict(c, "last_admin", "At least one admin account is required.")
		return false
	}
	return true
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if id == c.GetUint(middleware.ContextAdminID) {
		httperr.BadRequest(c, "cannot_delete_self", "You cannot delete your own account.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "admin_user")
		return
	}
	h.revokeSessions(c, id)

	writeAudit(c, h.audit, "admin_user_deleted", "admin_user", id, nil)
	httpresp.OK(c, gin.H{"success": true})
}

// revokeSessions forces the account to log in again. AdminAuth rereads the
// account on every request, so a failure here is only logged.
func (h *AdminUserHandler) revokeSessions(c *gin.Context, id uint) {
	if err := h.sessions.DeleteUser(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
	}
}
