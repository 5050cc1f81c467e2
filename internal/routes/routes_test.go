package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/config"
	"github.com/BruksfildServices01/construction-site/internal/middleware"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/testutil"
)

const adminPassword = "S3cure!pass"

type testEnv struct {
	t     *testing.T
	r     *gin.Engine
	db    *gorm.DB
	token string
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	cfg := &config.Config{
		AppEnv:           "development",
		JWTSecret:        "test-secret",
		SessionTTL:       time.Hour,
		SiteTimezone:     "UTC",
		ContactRateLimit: 3,
		LoginRateLimit:   100,
		RateLimitWindow:  time.Hour,
		Storage:          config.StorageConfig{MaxUploadBytes: 1 << 20, MaxImageWidth: 100},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r, err := NewRouter(Deps{
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Log:    zap.NewNop(),
		Audit:  dispatcher,
	})
	require.NoError(t, err)

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Name: "Root", Email: "root@example.com", PasswordHash: hash, Role: models.RoleAdmin,
	}).Error)

	env := &testEnv{t: t, r: r, db: db}

	w := env.do(http.MethodPost, "/api/admin/login", map[string]any{
		"email": "root@example.com", "password": adminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env.token = decode[struct {
		Token string `json:"token"`
	}](t, w).Token

	return env
}

func (e *testEnv) do(method, path string, body any, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) admin(method, path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	return e.do(method, path, body, e.token)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type listBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func TestAdminRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/admin/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decode[errorBody](t, w).Code)

	w = env.do(http.MethodGet, "/api/admin/dashboard", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.admin(http.MethodGet, "/api/admin/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionLoginLogout(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/admin/auth/login", map[string]any{
		"email": "ROOT@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/admin/auth/login", map[string]any{
		"email": "ROOT@example.com", "password": adminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	w = env.do(http.MethodGet, "/api/admin/auth/me", nil, "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "root@example.com")
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(http.MethodPost, "/api/admin/auth/logout", nil, "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/admin/auth/me", nil, "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.admin(http.MethodPost, "/api/admin/projects", map[string]any{"location": "Austin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodPost, "/api/admin/projects", map[string]any{
		"name": "Harbor Lofts", "status": "demolished",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodPost, "/api/admin/projects", map[string]any{
		"name":            "Harbor Lofts",
		"location":        "Austin",
		"features":        []string{"LEED Gold"},
		"completion_date": "2025-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Project](t, w)
	assert.Equal(t, models.ProjectPlanning, created.Status)
	assert.Equal(t, 1, created.OrderPosition)
	assert.True(t, created.IsActive)

	path := "/api/admin/projects/" + itoa(created.ID)

	w = env.admin(http.MethodPut, path, map[string]any{"status": "completed", "is_featured": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Project](t, w)
	assert.Equal(t, models.ProjectCompleted, updated.Status)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, "Austin", updated.Location)
	assert.Equal(t, []string{"LEED Gold"}, []string(updated.Features))
	assert.False(t, updated.UpdatedAt.Equal(created.UpdatedAt))

	w = env.admin(http.MethodPut, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "empty_update", decode[errorBody](t, w).Code)

	w = env.admin(http.MethodPut, path, map[string]any{"status": "finished"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodPut, "/api/admin/projects/9999", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project_not_found", decode[errorBody](t, w).Code)

	w = env.do(http.MethodGet, "/api/projects?featured=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[listBody[models.Project]](t, w).Total)

	w = env.do(http.MethodGet, "/api/projects?status=bogus", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.admin(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicListsOnlyActive(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]any{
		{"name": "Roofing"},
		{"name": "Retired", "is_active": false},
		{"name": "Framing"},
	} {
		w := env.admin(http.MethodPost, "/api/admin/services", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	public := decode[listBody[models.Service]](t, w)
	require.Len(t, public.Data, 2)
	assert.Equal(t, "Roofing", public.Data[0].Name)
	assert.Equal(t, "Framing", public.Data[1].Name)

	w = env.admin(http.MethodGet, "/api/admin/services", nil)
	assert.Equal(t, 3, decode[listBody[models.Service]](t, w).Total)

	w = env.admin(http.MethodPatch, "/api/admin/services/3/position", map[string]any{"direction": "up"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decode[models.Service](t, w).OrderPosition)

	w = env.admin(http.MethodPatch, "/api/admin/services/3/position", map[string]any{"direction": "sideways"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodPatch, "/api/admin/services/3/position", map[string]any{"direction": "up"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[models.Service](t, w).OrderPosition)

	w = env.do(http.MethodGet, "/api/services", nil, "")
	public = decode[listBody[models.Service]](t, w)
	require.Len(t, public.Data, 2)
	assert.Equal(t, "Framing", public.Data[0].Name)
	assert.Equal(t, "Roofing", public.Data[1].Name)

	w = env.admin(http.MethodPost, "/api/admin/team", map[string]any{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.admin(http.MethodPost, "/api/admin/team", map[string]any{"name": "Ana", "position": "Foreman", "specialties": []string{"Concrete"}})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = env.do(http.MethodGet, "/api/team", nil, "")
	assert.Equal(t, 1, decode[listBody[models.TeamMember]](t, w).Total)
}

func TestCompanyUpsert(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/company", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "company_info_not_found", decode[errorBody](t, w).Code)

	w = env.admin(http.MethodPut, "/api/admin/company", map[string]any{"tagline": "Built right"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodPut, "/api/admin/company", map[string]any{
		"business_hours": map[string]any{"monday": "whenever"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_business_hours", decode[errorBody](t, w).Code)

	w = env.admin(http.MethodPut, "/api/admin/company", map[string]any{
		"name":           "Acme Builders",
		"business_hours": map[string]any{"funday": "08:00-17:00"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_business_hours", decode[errorBody](t, w).Code)

	w = env.admin(http.MethodPut, "/api/admin/company", map[string]any{
		"name": "Acme Builders",
		"business_hours": map[string]any{
			"monday": "00:00-23:59", "tuesday": "00:00-23:59", "wednesday": "00:00-23:59",
			"thursday": "00:00-23:59", "friday": "00:00-23:59", "saturday": "00:00-23:59",
			"sunday": "00:00-23:59",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[models.CompanyInfo](t, w)

	w = env.admin(http.MethodPut, "/api/admin/company", map[string]any{"tagline": "Built right"})
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[models.CompanyInfo](t, w)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Builders", second.Name)
	assert.Equal(t, "Built right", second.Tagline)

	var n int64
	require.NoError(t, env.db.Model(&models.CompanyInfo{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	w = env.do(http.MethodGet, "/api/company", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[map[string]any](t, w)
	assert.Equal(t, "Acme Builders", view["name"])
	assert.Contains(t, view, "is_open_now")
}

func TestContactAndInquiries(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/contact", map[string]any{
		"first_name": "Jo", "last_name": "Lee", "email": "jo@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/contact", map[string]any{
		"first_name": "Jo", "last_name": "Lee", "email": "Jo@Example.com", "message": "Kitchen remodel",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[struct {
		ID uint `json:"id"`
	}](t, w).ID
	path := "/api/admin/inquiries/" + itoa(id)

	w = env.admin(http.MethodPut, path, map[string]any{"admin_notes": "Called back"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.admin(http.MethodPut, path, map[string]any{"admin_notes": "Sent estimate", "status": "resolved"})
	require.Equal(t, http.StatusOK, w.Code)
	inq := decode[models.ContactInquiry](t, w)
	assert.Equal(t, models.InquiryResolved, inq.Status)
	assert.Regexp(t, `^\[[^\]]+\] Called back\n\n\[[^\]]+\] Sent estimate$`, inq.AdminNotes)

	w = env.admin(http.MethodPut, path, map[string]any{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.admin(http.MethodPost, path+"/respond", map[string]any{"subject": "Estimate", "message": "Attached"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Response sent: Attached")

	w = env.admin(http.MethodGet, "/api/admin/inquiries?status=resolved&page=1&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Data  []models.ContactInquiry `json:"data"`
		Total int64                   `json:"total"`
		Limit int                     `json:"limit"`
	}](t, w)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, "jo@example.com", page.Data[0].Email)

	w = env.admin(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.admin(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactRateLimited(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"first_name": "A", "last_name": "B", "email": "a@b.co", "message": "hi"}
	for i := 0; i < 3; i++ {
		w := env.do(http.MethodPost, "/api/contact", body, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(http.MethodPost, "/api/contact", body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limited", decode[errorBody](t, w).Code)
}

func postContactFrom(env *testEnv, forwardedFor string) int {
	body := `{"first_name":"A","last_name":"B","email":"a@b.co","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)

	w := httptest.NewRecorder()
	env.r.ServeHTTP(w, req)
	return w.Code
}

func TestContactRateLimitIgnoresForwardedForFromClients(t *testing.T) {
	env := newTestEnv(t)

	codes := map[int]int{}
	for i := 0; i < 6; i++ {
		codes[postContactFrom(env, "203.0.113."+strconv.Itoa(i+1))]++
	}

	assert.Equal(t, map[int]int{http.StatusCreated: 3, http.StatusTooManyRequests: 3}, codes)
}

func TestContactRateLimitHonorsTrustedProxy(t *testing.T) {
	// httptest requests arrive from 192.0.2.1.
	env := newTestEnv(t, func(cfg *config.Config) {
		cfg.TrustedProxies = []string{"192.0.2.1"}
	})

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusCreated, postContactFrom(env, "203.0.113."+strconv.Itoa(i+1)))
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, postContactFrom(env, "198.51.100.7"))
	}
	assert.Equal(t, http.StatusTooManyRequests, postContactFrom(env, "198.51.100.7"))
}

func TestAdminUsers(t *testing.T) {
	env := newTestEnv(t)

	w := env.admin(http.MethodPost, "/api/admin/users", map[string]any{
		"name": "Ed", "email": "ed@example.com", "password": "weak",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "weak_password", decode[errorBody](t, w).Code)

	w = env.admin(http.MethodPost, "/api/admin/users", map[string]any{
		"name": "Ed", "email": "ed@example.com", "password": "Str0ng!pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ed := decode[models.AdminUser](t, w)
	assert.Equal(t, models.RoleEditor, ed.Role)

	w = env.admin(http.MethodPost, "/api/admin/users", map[string]any{
		"name": "Ed 2", "email": "ED@example.com", "password": "Str0ng!pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.admin(http.MethodPut, "/api/admin/users/1", map[string]any{"role": "editor"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "last_admin", decode[errorBody](t, w).Code)

	w = env.admin(http.MethodDelete, "/api/admin/users/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot_delete_self", decode[errorBody](t, w).Code)

	w = env.do(http.MethodPost, "/api/admin/login", map[string]any{
		"email": "ed@example.com", "password": "Str0ng!pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	edToken := decode[struct {
		Token string `json:"token"`
	}](t, w).Token

	w = env.do(http.MethodGet, "/api/admin/users", nil, edToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(http.MethodGet, "/api/admin/services", nil, edToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.admin(http.MethodDelete, "/api/admin/users/"+itoa(ed.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// loginBoth signs an account in through the token and the cookie endpoints.
func (e *testEnv) loginBoth(email, password string) (string, *http.Cookie) {
	e.t.Helper()
	creds := map[string]any{"email": email, "password": password}

	w := e.do(http.MethodPost, "/api/admin/login", creds, "")
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())
	token := decode[struct {
		Token string `json:"token"`
	}](e.t, w).Token

	w = e.do(http.MethodPost, "/api/admin/auth/login", creds, "")
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return token, c
		}
	}
	e.t.Fatal("no session cookie")
	return "", nil
}

func TestRemovedAndDemotedAdminsLoseAccess(t *testing.T) {
	env := newTestEnv(t)

	for _, email := range []string{"gone@example.com", "demo@example.com"} {
		w := env.admin(http.MethodPost, "/api/admin/users", map[string]any{
			"name": "Temp", "email": email, "password": "Str0ng!pass", "role": "admin",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	goneToken, goneCookie := env.loginBoth("gone@example.com", "Str0ng!pass")
	demoToken, demoCookie := env.loginBoth("demo@example.com", "Str0ng!pass")

	var gone, demo models.AdminUser
	require.NoError(t, env.db.Where("email = ?", "gone@example.com").First(&gone).Error)
	require.NoError(t, env.db.Where("email = ?", "demo@example.com").First(&demo).Error)

	w := env.do(http.MethodGet, "/api/admin/users", nil, goneToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.admin(http.MethodDelete, "/api/admin/users/"+itoa(gone.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/admin/users", nil, goneToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "account_not_found", decode[errorBody](t, w).Code)
	w = env.do(http.MethodGet, "/api/admin/users", nil, "", goneCookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = env.do(http.MethodDelete, "/api/admin/users/1", nil, goneToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.admin(http.MethodPut, "/api/admin/users/"+itoa(demo.ID), map[string]any{"role": "editor"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/admin/users", nil, demoToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(http.MethodDelete, "/api/admin/users/1", nil, demoToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(http.MethodGet, "/api/admin/services", nil, demoToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Role changes end existing sessions.
	w = env.do(http.MethodGet, "/api/admin/auth/me", nil, "", demoCookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var admins int64
	require.NoError(t, env.db.Model(&models.AdminUser{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func TestUploadsDisabled(t *testing.T) {
	env := newTestEnv(t)

	w := env.admin(http.MethodPost, "/api/admin/uploads", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "uploads_disabled", decode[errorBody](t, w).Code)
}

func TestPagesAndHealth(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/services", "/projects", "/team", "/contact", "/admin/login", "/admin"} {
		w := env.do(http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
	}

	w := env.do(http.MethodGet, "/projects/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/static/site.css", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLogs(t *testing.T) {
	env := newTestEnv(t)

	w := env.admin(http.MethodPost, "/api/admin/services", map[string]any{"name": "Roofing"})
	require.Equal(t, http.StatusCreated, w.Code)

	require.Eventually(t, func() bool {
		var n int64
		env.db.Model(&models.AuditLog{}).Where("action = ?", "service_created").Count(&n)
		return n == 1
	}, 2*time.Second, 10*time.Millisecond)

	w = env.admin(http.MethodGet, "/api/admin/audit-logs?entity=service", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "service_created")

	w = env.admin(http.MethodGet, "/api/admin/audit-logs?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
