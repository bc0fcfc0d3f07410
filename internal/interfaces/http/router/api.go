package router

import (
	"github.com/argos/backend/internal/infrastructure/auth"
	"github.com/argos/backend/internal/infrastructure/config"
	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/argos/backend/internal/infrastructure/telemetry"
	"github.com/argos/backend/internal/interfaces/http/handler"
	"github.com/argos/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the API serves
type Handlers struct {
	System           *handler.SystemHandler
	Auth             *handler.AuthHandler
	SavedDashboards  *handler.SavedDashboardHandler
	Suppliers        *handler.SupplierHandler
	PurchaseOrders   *handler.PurchaseOrderHandler
	ProductionOrders *handler.ProductionOrderHandler
	Deliveries       *handler.DeliveryHandler
	SupportTickets   *handler.SupportTicketHandler
	Forecasts        *handler.ForecastHandler
	Conversations    *handler.ConversationHandler
	Agent            *handler.AgentHandler
	Analytics        *handler.AnalyticsHandler
	Integrations     *handler.IntegrationHandler
	Exports          *handler.ExportHandler
}

// APIConfig carries what the engine needs besides the handlers
type APIConfig struct {
	HTTP           config.HTTPConfig
	ServiceName    string
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	MeterProvider  *telemetry.MeterProvider
	TracingEnabled bool
	Logger         *zap.Logger
}

// API is the assembled gin engine. Close releases the rate limiters' background loops.
type API struct {
	Engine   *gin.Engine
	limiters []*middleware.RateLimiter
}

// Close stops background work started by NewAPI
func (a *API) Close() {
	for _, l := range a.limiters {
		l.Stop()
	}
}

// NewAPI builds the engine with the full middleware chain and every route.
//
// Global order: RequestID, Recovery, request logging, tracing, metrics,
// security headers, CORS, body limit. Public auth routes get their own
// stricter per-IP limiter. Everything else sits behind JWT authentication
// and a per-user limiter.
func NewAPI(cfg APIConfig, h Handlers) *API {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	middleware.SetupValidator()
	api := &API{Engine: gin.New()}
	engine := api.Engine

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health", "/health/ready"))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: cfg.MeterProvider,
		ServiceName:   cfg.ServiceName,
		Enabled:       cfg.MeterProvider != nil,
	}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	engine.GET("/health", h.System.Health)
	engine.GET("/health/ready", h.System.Ready)

	publicAuth := NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		api.limiters = append(api.limiters, limiter)
		publicAuth.Use(middleware.RateLimit(limiter))
	}
	publicAuth.
		POST("/register", h.Auth.Register).
		POST("/login", h.Auth.Login).
		POST("/refresh", h.Auth.Refresh)

	protected := NewDomainGroup("protected", "")
	protected.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.TokenBlacklist,
		Logger:         log,
	}))
	protected.Use(middleware.TracingAttributeInjector())
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		api.limiters = append(api.limiters, limiter)
		protected.Use(middleware.RateLimit(limiter))
	}

	protected.Group("auth", "/auth").
		POST("/logout", h.Auth.Logout).
		GET("/me", h.Auth.Me)

	protected.Group("saved-dashboards", "/saved-dashboards").
		CRUD(h.SavedDashboards).
		POST("/:id/view", h.SavedDashboards.View)
	protected.Group("suppliers", "/suppliers").CRUD(h.Suppliers)
	protected.Group("purchase-orders", "/purchase-orders").CRUD(h.PurchaseOrders)
	protected.Group("production-orders", "/production-orders").CRUD(h.ProductionOrders)
	protected.Group("deliveries", "/deliveries").CRUD(h.Deliveries)
	protected.Group("support-tickets", "/support-tickets").CRUD(h.SupportTickets)
	protected.Group("forecasts", "/forecasts").CRUD(h.Forecasts)
	protected.Group("agent-conversations", "/agent-conversations").CRUD(h.Conversations)

	protected.Group("agent", "/agent").
		POST("/query", h.Agent.Query).
		POST("/dashboards", h.Agent.SaveDashboard).
		GET("/suggestions", h.Agent.Suggestions)

	protected.Group("analytics", "/analytics").
		GET("/sections", h.Analytics.ListSections).
		GET("/sections/:section", h.Analytics.GetSection)

	protected.Group("integrations", "/integrations").
		GET("/status", h.Integrations.Status).
		GET("/events", h.Integrations.Events).
		GET("/webhooks", h.Integrations.Webhooks).
		GET("/mappings", h.Integrations.Mappings).
		GET("/schedules", h.Integrations.Schedules).
		GET("/stats", h.Integrations.Stats)

	protected.Group("exports", "/exports").
		POST("", h.Exports.Export)

	NewRouter(engine, WithAPIVersion("v1")).
		Register(publicAuth, protected).
		Setup()

	return api
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
