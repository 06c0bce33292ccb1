package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/fsm"
	otelAdapter "github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/otel"
	riverAdapter "github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/river"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/sqlite"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/analytics"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/config"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/logging"

	handler "github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "localbook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Observability ---
	providers, err := otelAdapter.Setup(ctx, otelAdapter.Config{
		ServiceName:    cfg.OTelServiceName,
		ServiceVersion: cfg.OTelServiceVersion,
		Environment:    cfg.OTelEnvironment,
		Exporter:       cfg.OTelExporter,
		Insecure:       cfg.OTelInsecure,
	})
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("otel shutdown", zap.Error(err))
		}
	}()

	// --- Adapters (out) ---
	db, err := otelAdapter.OpenDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	store, err := sqlite.NewFromDB(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("database: %w", err)
	}
	defer store.Close()

	riverClient, err := riverAdapter.Setup(ctx, db, store.Notifications(), logger.Named("river"), cfg.RiverMaxWorkers)
	if err != nil {
		return fmt.Errorf("river: %w", err)
	}
	// River gets its own lifetime so in-flight jobs finish during shutdown.
	if err := riverClient.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("river start: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := riverClient.Stop(stopCtx); err != nil {
			logger.Warn("river stop", zap.Error(err))
		}
	}()

	businesses := otelAdapter.NewTracingBusinessRepository(store.Businesses())
	publisher := otelAdapter.NewTracingPublisher(riverAdapter.NewPublisher(riverClient))
	audit, err := otelAdapter.NewMetricsAuditRecorder(logging.NewAuditLogger(logger))
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}

	// --- Application ---
	withLogger := app.WithLogger(logger)
	withLocks := app.WithLocks(app.NewKeyedLocks())
	engine := analytics.New(analytics.Options{TopCategories: cfg.ReportTopCategories})
	services := handler.Services{
		Businesses:    app.NewBusinessService(businesses, publisher, domain.NewLifecycle(fsm.New()), audit, withLogger, withLocks),
		Imports:       app.NewImportService(businesses, store.Users(), store.Bookings(), withLogger, withLocks),
		Analytics:     app.NewAnalyticsService(businesses, store.Users(), store.Bookings(), engine, withLogger),
		Notifications: app.NewNotificationService(store.Notifications()),
	}

	// --- Adapters (in) ---
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(otelchi.Middleware(cfg.OTelServiceName, otelchi.WithChiRoutes(router)))
	router.Use(handler.RequestLogger(logger.Named("http")))
	router.Use(middleware.Recoverer)

	api := humachi.New(router, huma.DefaultConfig("LocalBook API", cfg.OTelServiceVersion))
	handler.Register(api, services)

	// --- Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("localbook listening", zap.String("addr", srv.Addr), zap.String("docs", "/docs"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
