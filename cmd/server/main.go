package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	agentapp "github.com/argos/backend/internal/application/agent"
	analyticsapp "github.com/argos/backend/internal/application/analytics"
	dashboardapp "github.com/argos/backend/internal/application/dashboard"
	exportapp "github.com/argos/backend/internal/application/export"
	forecastapp "github.com/argos/backend/internal/application/forecast"
	identityapp "github.com/argos/backend/internal/application/identity"
	integrationapp "github.com/argos/backend/internal/application/integration"
	logisticsapp "github.com/argos/backend/internal/application/logistics"
	procurementapp "github.com/argos/backend/internal/application/procurement"
	productionapp "github.com/argos/backend/internal/application/production"
	supportapp "github.com/argos/backend/internal/application/support"
	"github.com/argos/backend/internal/infrastructure/auth"
	"github.com/argos/backend/internal/infrastructure/catalog"
	"github.com/argos/backend/internal/infrastructure/config"
	"github.com/argos/backend/internal/infrastructure/idgen"
	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/argos/backend/internal/infrastructure/mail"
	"github.com/argos/backend/internal/infrastructure/persistence"
	"github.com/argos/backend/internal/infrastructure/storage"
	"github.com/argos/backend/internal/infrastructure/telemetry"
	"github.com/argos/backend/internal/interfaces/http/handler"
	"github.com/argos/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 30 * time.Second

//	@title			Argos API
//	@version		1.0
//	@description	Backend of the Argos operations dashboard: agent queries, saved dashboards, operational records and report exports.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	if err := run(cfg, log); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry first so every later component logs and traces through it
	providers, err := telemetry.Setup(ctx, telemetry.FromConfig(cfg.Telemetry, version), log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Error("Telemetry shutdown failed", zap.Error(err))
		}
	}()
	log = providers.Logs.Bridge(log)

	log.Info("Starting Argos backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithFullSQL(cfg.Telemetry.DBLogFullSQL),
	)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	log.Info("Database connected successfully")

	if err := telemetry.InstrumentTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:            cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:         cfg.Telemetry.DBLogFullSQL,
		SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
		DBName:             cfg.Database.DBName,
	}, log); err != nil {
		return err
	}

	var businessMetrics *telemetry.BusinessMetrics
	if providers.Meter.IsEnabled() {
		meter := providers.Meter.Meter(telemetry.TracerName)

		dbMetrics, err := telemetry.NewDBMetrics(meter, telemetry.DBMetricsConfig{
			SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
		}, log)
		if err != nil {
			return err
		}
		if err := dbMetrics.Instrument(db.DB); err != nil {
			return err
		}
		dbMetrics.StartPoolStatsCollection(ctx, sqlDB)
		defer dbMetrics.Stop()

		businessMetrics, err = telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:        meter,
			Logger:       log,
			RecordCounts: telemetry.NewGormRecordCountProvider(db.DB),
		})
		if err != nil {
			return err
		}
		businessMetrics.StartPeriodicCollection(ctx)
		defer businessMetrics.Stop()
	}

	checks := []handler.HealthCheck{{Name: "database", Check: db.Ping}}

	// Revoked tokens live in Redis when configured, otherwise in process memory
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisClient, err := auth.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		checks = append(checks, handler.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}})
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		memory := auth.NewInMemoryTokenBlacklist(time.Minute)
		defer func() { _ = memory.Close() }()
		blacklist = memory
		log.Warn("Redis disabled, revoked tokens are kept in memory and lost on restart")
	}

	// Optional export delivery backends
	var exportOpts []exportapp.Option
	if businessMetrics != nil {
		exportOpts = append(exportOpts, exportapp.WithMetrics(businessMetrics))
	}
	if cfg.Storage.Enabled {
		store, err := storage.NewS3ObjectStorage(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return err
		}
		ids, err := idgen.New(1)
		if err != nil {
			return err
		}
		exportOpts = append(exportOpts, exportapp.WithObjectStore(store, ids))
		log.Info("Export storage enabled", zap.String("bucket", store.Bucket()))
	}
	if cfg.Mail.Enabled {
		exportOpts = append(exportOpts, exportapp.WithMailer(mail.NewSMTPMailer(cfg.Mail, log)))
		log.Info("Export e-mail enabled", zap.String("smtp_host", cfg.Mail.Host))
	}

	// Repositories
	dataset := catalog.NewStaticDataset()
	userRepo := persistence.NewGormUserRepository(db.DB)
	dashboardRepo := persistence.NewGormSavedDashboardRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	productionOrderRepo := persistence.NewGormProductionOrderRepository(db.DB)
	deliveryRepo := persistence.NewGormDeliveryRepository(db.DB)
	ticketRepo := persistence.NewGormSupportTicketRepository(db.DB)
	forecastRepo := persistence.NewGormForecastRepository(db.DB)
	conversationRepo := persistence.NewGormConversationRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	authService.SetMetrics(businessMetrics)
	agentService := agentapp.NewService(dataset, dashboardRepo, conversationRepo, log)
	agentService.SetMetrics(businessMetrics)

	api := router.NewAPI(router.APIConfig{
		HTTP:           cfg.HTTP,
		ServiceName:    cfg.Telemetry.ServiceName,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		MeterProvider:  meterProviderIfEnabled(providers.Meter),
		TracingEnabled: providers.Tracer.IsEnabled(),
		Logger:         log,
	}, router.Handlers{
		System:           handler.NewSystemHandler(version, checks...),
		Auth:             handler.NewAuthHandler(authService),
		SavedDashboards:  handler.NewSavedDashboardHandler(dashboardapp.NewSavedDashboardService(dashboardRepo, dataset)),
		Suppliers:        handler.NewSupplierHandler(procurementapp.NewSupplierService(supplierRepo)),
		PurchaseOrders:   handler.NewPurchaseOrderHandler(procurementapp.NewPurchaseOrderService(purchaseOrderRepo, supplierRepo)),
		ProductionOrders: handler.NewProductionOrderHandler(productionapp.NewProductionOrderService(productionOrderRepo)),
		Deliveries:       handler.NewDeliveryHandler(logisticsapp.NewDeliveryService(deliveryRepo)),
		SupportTickets:   handler.NewSupportTicketHandler(supportapp.NewTicketService(ticketRepo)),
		Forecasts:        handler.NewForecastHandler(forecastapp.NewService(forecastRepo)),
		Conversations:    handler.NewConversationHandler(agentapp.NewConversationService(conversationRepo, dashboardRepo)),
		Agent:            handler.NewAgentHandler(agentService),
		Analytics:        handler.NewAnalyticsHandler(analyticsapp.NewService(dataset)),
		Integrations:     handler.NewIntegrationHandler(integrationapp.NewPanelService(catalog.NewStaticIntegrations())),
		Exports:          handler.NewExportHandler(exportapp.NewService(dataset, userRepo, log, exportOpts...)),
	})
	defer api.Close()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        api.Engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("Server exited gracefully")
	return nil
}

// meterProviderIfEnabled keeps HTTP metrics off when no exporter is configured
func meterProviderIfEnabled(mp *telemetry.MeterProvider) *telemetry.MeterProvider {
	if mp == nil || !mp.IsEnabled() {
		return nil
	}
	return mp
}
