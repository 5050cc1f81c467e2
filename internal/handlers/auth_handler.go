package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/middleware"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/session"
)

type AuthHandler struct {
	users        *repository.AdminUserGormRepository
	sessions     *session.Store
	tokens       *auth.Tokens
	audit        *audit.Dispatcher
	log          *zap.Logger
	cookieSecure bool
}

func NewAuthHandler(
	users *repository.AdminUserGormRepository,
	sessions *session.Store,
	tokens *auth.Tokens,
	audit *audit.Dispatcher,
	log *zap.Logger,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		users:        users,
		sessions:     sessions,
		tokens:       tokens,
		audit:        audit,
		log:          log,
		cookieSecure: cookieSecure,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login starts a cookie session.
func (h *AuthHandler) Login(c *gin.Context) {
	user, ok := h.authenticate(c)
	if !ok {
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), principalOf(user))
	if err != nil {
		httperr.Internal(c, err, "session_unavailable", "Could not start session.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		sid,
		int(h.sessions.TTL().Seconds()),
		"/",
		"",
		h.cookieSecure,
		true,
	)

	writeAudit(c, h.audit, "admin_login", "admin_user", user.ID, gin.H{"method": "session"})
	httpresp.OK(c, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.ContextSessionID)
	if sid == "" {
		sid, _ = c.Cookie(middleware.SessionCookie)
	}

	if sid != "" {
		if err := h.sessions.Delete(c.Request.Context(), sid); err != nil {
			h.log.Warn("session delete failed", zap.Error(err))
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	httpresp.OK(c, gin.H{"success": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), p.AdminID)
	if errors.Is(err, repository.ErrNotFound) {
		httperr.Unauthorized(c, "unauthorized", "Account no longer exists.")
		return
	}
	if err != nil {
		httperr.Internal(c, err, "internal_error", "Unexpected error.")
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}

// LegacyLogin returns a bearer token for clients that do not keep cookies.
func (h *AuthHandler) LegacyLogin(c *gin.Context) {
	user, ok := h.authenticate(c)
	if !ok {
		return
	}

	token, exp, err := h.tokens.Issue(principalOf(user))
	if err != nil {
		httperr.Internal(c, err, "failed_to_generate_token", "Could not sign in.")
		return
	}

	writeAudit(c, h.audit, "admin_login", "admin_user", user.ID, gin.H{"method": "token"})
	httpresp.OK(c, gin.H{
		"token":      token,
		"expires_at": exp.UTC(),
		"user":       user,
	})
}

func (h *AuthHandler) authenticate(c *gin.Context) (*models.AdminUser, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return nil, false
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return nil, false
	}
	if err != nil {
		httperr.Internal(c, err, "internal_error", "Unexpected error.")
		return nil, false
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return nil, false
	}

	now := time.Now().UTC()
	if err := h.users.TouchLastLogin(c.Request.Context(), user.ID, now); err != nil {
		h.log.Warn("last login update failed", zap.Uint("admin_id", user.ID), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}

	return user, true
}

func principalOf(u *models.AdminUser) auth.Principal {
	return auth.Principal{AdminID: u.ID, Email: u.Email, Role: u.Role}
}
