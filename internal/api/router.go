package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/knowledgehub/knowledge-platform/docs"
	"github.com/knowledgehub/knowledge-platform/internal/api/handler"
	"github.com/knowledgehub/knowledge-platform/internal/api/middleware"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
	"github.com/knowledgehub/knowledge-platform/internal/core/service"
	"github.com/knowledgehub/knowledge-platform/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Repositories arrive as ports so
// the wiring is identical for every storage backend.
type Deps struct {
	Users        ports.UserRepository
	Artifacts    ports.ArtifactRepository
	Audit        ports.AuditRepository
	Sessions     *service.SessionService
	Throttle     service.LoginThrottle
	AuditSink    service.AuditRecorder
	HealthChecks map[string]handlers.Check
	Logger       zerolog.Logger
	Version      string
	// DemoUsers are the seeded account names published on the banner;
	// empty when demo seeding is disabled.
	DemoUsers []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("knowledge"))

	// --- Services and handlers ---
	authService := service.NewAuthService(deps.Users, deps.Sessions, deps.Throttle, deps.Logger)
	artifactService := service.NewArtifactService(deps.Artifacts, deps.AuditSink, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	artifactHandler := handler.NewArtifactHandler(artifactService)
	auditHandler := handler.NewAuditHandler(deps.Audit)

	authMiddleware := middleware.Auth(deps.Sessions)

	// --- Service banner ---
	e.GET("/", bannerHandler(deps.Version, deps.DemoUsers))

	// --- API v1 ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	authed := v1.Group("", authMiddleware)
	authed.GET("/users/me", authHandler.Me)
	authed.GET("/artifacts", artifactHandler.List)
	authed.GET("/artifacts/:id", artifactHandler.Get)
	authed.GET("/search", artifactHandler.Search)
	authed.GET("/audit", auditHandler.List, middleware.RequireHR())

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(deps.HealthChecks).Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// bannerHandler serves the unauthenticated service banner with an endpoint
// map and, on demo deployments, the seeded account names.
func bannerHandler(version string, demoUsers []string) echo.HandlerFunc {
	return func(c echo.Context) error {
		banner := map[string]any{
			"message": "Knowledge Transfer Platform API",
			"version": version,
			"endpoints": map[string]string{
				"docs":      "/swagger/index.html",
				"login":     "/api/v1/auth/login",
				"artifacts": "/api/v1/artifacts",
				"search":    "/api/v1/search",
			},
		}
		if len(demoUsers) > 0 {
			banner["demo_users"] = demoUsers
		}
		return c.JSON(http.StatusOK, banner)
	}
}
