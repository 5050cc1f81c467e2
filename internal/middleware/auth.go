package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/session"
)

const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
	ContextAdminRole  = "adminRole"
	ContextSessionID  = "sessionID"

	SessionCookie = "admin_session"
)

// AdminLookup loads the stored account behind a session or token.
type AdminLookup interface {
	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)
}

// AdminAuth accepts a session cookie first and falls back to a bearer
// token issued by the legacy login endpoint. The account must still exist;
// its stored role, not the one captured at login, is put on the context.
func AdminAuth(sessions *session.Store, tokens *auth.Tokens, admins AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, sid, ok := credentials(c, sessions, tokens)
		if !ok {
			return
		}

		user, err := admins.GetByID(c.Request.Context(), p.AdminID)
		if errors.Is(err, repository.ErrNotFound) {
			if sid != "" {
				_ = sessions.Delete(c.Request.Context(), sid)
			}
			httperr.Unauthorized(c, "account_not_found", "Account no longer exists.")
			return
		}
		if err != nil {
			httperr.Internal(c, err, "internal_error", "Could not verify account.")
			return
		}

		setPrincipal(c, auth.Principal{AdminID: user.ID, Email: user.Email, Role: user.Role})
		if sid != "" {
			c.Set(ContextSessionID, sid)
		}
		c.Next()
	}
}

// credentials resolves the claimed principal and writes the error response
// when there is none.
func credentials(c *gin.Context, sessions *session.Store, tokens *auth.Tokens) (auth.Principal, string, bool) {
	if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
		p, err := sessions.Get(c.Request.Context(), sid)
		switch {
		case err == nil:
			return p, sid, true
		case !errors.Is(err, session.ErrNotFound):
			httperr.Internal(c, err, "session_unavailable", "Could not verify session.")
			return auth.Principal{}, "", false
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		return auth.Principal{}, "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		httperr.Unauthorized(c, "invalid_authorization_header", "Authentication required.")
		return auth.Principal{}, "", false
	}

	p, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
		return auth.Principal{}, "", false
	}
	return p, "", true
}

// RequireRole must run after AdminAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAdminRole) != role {
			httperr.Forbidden(c, "forbidden", "Insufficient permissions.")
			return
		}
		c.Next()
	}
}

func setPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(ContextAdminID, p.AdminID)
	c.Set(ContextAdminEmail, p.Email)
	c.Set(ContextAdminRole, p.Role)
}

// CurrentPrincipal reads what AdminAuth stored on the context.
func CurrentPrincipal(c *gin.Context) (auth.Principal, bool) {
	id := c.GetUint(ContextAdminID)
	if id == 0 {
		return auth.Principal{}, false
	}
	return auth.Principal{
		AdminID: id,
		Email:   c.GetString(ContextAdminEmail),
		Role:    c.GetString(ContextAdminRole),
	}, true
}
