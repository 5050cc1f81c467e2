package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/ratelimit"
	"github.com/BruksfildServices01/construction-site/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

type adminTable map[uint]*models.AdminUser

func (t adminTable) GetByID(_ context.Context, id uint) (*models.AdminUser, error) {
	if u, ok := t[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func authRouter(sessions *session.Store, tokens *auth.Tokens, admins AdminLookup) *gin.Engine {
	r := gin.New()
	admin := r.Group("/api/admin", AdminAuth(sessions, tokens, admins))
	admin.GET("/me", func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, p)
	})
	admin.GET("/users", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	sessions := session.NewStore(newRedis(t), time.Hour)
	tokens := auth.NewTokens("secret")
	admins := adminTable{
		1: {ID: 1, Email: "root@example.com", Role: models.RoleAdmin},
		3: {ID: 3, Email: "ed@example.com", Role: models.RoleEditor},
		4: {ID: 4, Email: "demoted@example.com", Role: models.RoleEditor},
	}
	r := authRouter(sessions, tokens, admins)

	editor := auth.Principal{AdminID: 3, Email: "ed@example.com", Role: models.RoleEditor}
	sid, err := sessions.Create(context.Background(), editor)
	require.NoError(t, err)

	token, _, err := tokens.Issue(auth.Principal{AdminID: 1, Email: "root@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	// Issued while 4 was still an admin.
	demotedToken, _, err := tokens.Issue(auth.Principal{AdminID: 4, Email: "demoted@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	demotedSID, err := sessions.Create(context.Background(), auth.Principal{AdminID: 4, Role: models.RoleAdmin})
	require.NoError(t, err)

	goneToken, _, err := tokens.Issue(auth.Principal{AdminID: 9, Email: "gone@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	goneSID, err := sessions.Create(context.Background(), auth.Principal{AdminID: 9, Role: models.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		cookie string
		bearer string
		want   int
	}{
		{name: "no credentials", path: "/api/admin/me", want: http.StatusUnauthorized},
		{name: "session cookie", path: "/api/admin/me", cookie: sid, want: http.StatusOK},
		{name: "unknown cookie falls back to bearer", path: "/api/admin/me", cookie: "nope", bearer: token, want: http.StatusOK},
		{name: "bearer token", path: "/api/admin/me", bearer: token, want: http.StatusOK},
		{name: "garbage token", path: "/api/admin/me", bearer: "abc.def.ghi", want: http.StatusUnauthorized},
		{name: "editor on admin route", path: "/api/admin/users", cookie: sid, want: http.StatusForbidden},
		{name: "admin on admin route", path: "/api/admin/users", bearer: token, want: http.StatusNoContent},
		{name: "demoted token on admin route", path: "/api/admin/users", bearer: demotedToken, want: http.StatusForbidden},
		{name: "demoted session on admin route", path: "/api/admin/users", cookie: demotedSID, want: http.StatusForbidden},
		{name: "deleted account token", path: "/api/admin/me", bearer: goneToken, want: http.StatusUnauthorized},
		{name: "deleted account session", path: "/api/admin/me", cookie: goneSID, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	_, err = sessions.Get(context.Background(), goneSID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://site.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://site.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://site.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimit(t *testing.T) {
	l := ratelimit.New(newRedis(t), "contact", 2, time.Minute)
	r := gin.New()
	r.POST("/contact", RateLimit(l), func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRecoveryAndRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()), Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
	assert.JSONEq(t, `{"error_code":"internal_error","message":"Unexpected error."}`, w.Body.String())
}
