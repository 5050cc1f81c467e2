package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/config"
	"github.com/BruksfildServices01/construction-site/internal/handlers"
	infraRepo "github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/middleware"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/ratelimit"
	"github.com/BruksfildServices01/construction-site/internal/session"
	"github.com/BruksfildServices01/construction-site/internal/storage"
	ucInquiry "github.com/BruksfildServices01/construction-site/internal/usecase/inquiry"
	"github.com/BruksfildServices01/construction-site/internal/web"
)

// Deps are the process-wide singletons the router is built from. Storage
// may be nil, which disables uploads.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Config  *config.Config
	Log     *zap.Logger
	Audit   *audit.Dispatcher
	Storage storage.ObjectStorage
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(d Deps) (*gin.Engine, error) {
	if !d.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Forwarded headers only count when the peer is a configured proxy.
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		return nil, err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORSMiddleware(d.Config.AllowedOrigins),
	)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	RegisterRoutes(r, d)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	companyRepo := infraRepo.NewCompanyGormRepository(d.DB)
	serviceRepo := infraRepo.NewOrderedGormRepository[models.Service](d.DB)
	projectRepo := infraRepo.NewOrderedGormRepository[models.Project](d.DB)
	teamRepo := infraRepo.NewOrderedGormRepository[models.TeamMember](d.DB)
	inquiryRepo := infraRepo.NewInquiryGormRepository(d.DB)
	adminUserRepo := infraRepo.NewAdminUserGormRepository(d.DB)
	dashboardRepo := infraRepo.NewDashboardGormRepository(d.DB)

	sessions := session.NewStore(d.Redis, cfg.SessionTTL)
	tokens := auth.NewTokens(cfg.JWTSecret)

	contactLimiter := ratelimit.New(d.Redis, "contact", cfg.ContactRateLimit, cfg.RateLimitWindow)
	loginLimiter := ratelimit.New(d.Redis, "login", cfg.LoginRateLimit, cfg.RateLimitWindow)

	var uploader *storage.Uploader
	if d.Storage != nil {
		uploader = storage.NewUploader(d.Storage, cfg.Storage.MaxUploadBytes, cfg.Storage.MaxImageWidth)
	}

	site := &handlers.Site{
		Company:  companyRepo,
		Services: serviceRepo,
		Projects: projectRepo,
		Team:     teamRepo,
		Timezone: cfg.SiteTimezone,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	respondUC := ucInquiry.NewRespond(inquiryRepo, d.Audit, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.DB, d.Redis)
	publicHandler := handlers.NewPublicHandler(site, inquiryRepo, cfg.VerifyEmailDomain)
	publicWebHandler := handlers.NewPublicWebHandler(site, d.Log)
	appWebHandler := handlers.NewAppWebHandler()

	authHandler := handlers.NewAuthHandler(adminUserRepo, sessions, tokens, d.Audit, d.Log, cfg.CookieSecure)
	companyHandler := handlers.NewCompanyHandler(companyRepo, d.Audit)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, d.Audit)
	projectHandler := handlers.NewProjectHandler(projectRepo, d.Audit)
	teamHandler := handlers.NewTeamHandler(teamRepo, d.Audit)
	inquiryHandler := handlers.NewInquiryHandler(inquiryRepo, respondUC, d.Audit)
	adminUserHandler := handlers.NewAdminUserHandler(adminUserRepo, sessions, d.Audit)
	uploadHandler := handlers.NewUploadHandler(uploader, d.Audit)
	dashboardHandler := handlers.NewDashboardHandler(dashboardRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	r.GET("/health", healthHandler.Check)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", publicWebHandler.Home)
	r.GET("/services", publicWebHandler.Services)
	r.GET("/projects", publicWebHandler.Projects)
	r.GET("/projects/:id", publicWebHandler.Project)
	r.GET("/team", publicWebHandler.Team)
	r.GET("/contact", publicWebHandler.Contact)

	r.GET("/admin/login", appWebHandler.LoginPage)
	r.GET("/admin", appWebHandler.Dashboard)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/company", publicHandler.Company)
		api.GET("/services", publicHandler.Services)
		api.GET("/projects", publicHandler.Projects)
		api.GET("/projects/:id", publicHandler.Project)
		api.GET("/team", publicHandler.Team)
		api.POST("/contact", middleware.RateLimit(contactLimiter), publicHandler.Contact)

		// ------------------------------
		// AUTH
		// ------------------------------
		loginLimit := middleware.RateLimit(loginLimiter)
		api.POST("/admin/login", loginLimit, authHandler.LegacyLogin)
		api.POST("/admin/auth/login", loginLimit, authHandler.Login)
		api.POST("/admin/auth/logout", authHandler.Logout)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(sessions, tokens, adminUserRepo))
		{
			admin.GET("/auth/me", authHandler.Me)
			admin.GET("/dashboard", dashboardHandler.Get)

			admin.GET("/company", companyHandler.Get)
			admin.PUT("/company", companyHandler.Upsert)

			services := admin.Group("/services")
			services.GET("", serviceHandler.List)
			services.POST("", serviceHandler.Create)
			services.GET("/:id", serviceHandler.Get)
			services.PUT("/:id", serviceHandler.Update)
			services.DELETE("/:id", serviceHandler.Delete)
			services.PATCH("/:id/position", serviceHandler.Move)

			projects := admin.Group("/projects")
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:id", projectHandler.Get)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)
			projects.PATCH("/:id/position", projectHandler.Move)

			team := admin.Group("/team")
			team.GET("", teamHandler.List)
			team.POST("", teamHandler.Create)
			team.GET("/:id", teamHandler.Get)
			team.PUT("/:id", teamHandler.Update)
			team.DELETE("/:id", teamHandler.Delete)
			team.PATCH("/:id/position", teamHandler.Move)

			inquiries := admin.Group("/inquiries")
			inquiries.GET("", inquiryHandler.List)
			inquiries.GET("/:id", inquiryHandler.Get)
			inquiries.PUT("/:id", inquiryHandler.Update)
			inquiries.DELETE("/:id", inquiryHandler.Delete)
			inquiries.POST("/:id/respond", inquiryHandler.Respond)

			users := admin.Group("/users", middleware.RequireRole(models.RoleAdmin))
			users.GET("", adminUserHandler.List)
			users.POST("", adminUserHandler.Create)
			users.PUT("/:id", adminUserHandler.Update)
			users.DELETE("/:id", adminUserHandler.Delete)

			admin.POST("/uploads", uploadHandler.Upload)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
