package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vitacart/storefront/pkg/health"
	"github.com/vitacart/storefront/pkg/tracing"

	"github.com/vitacart/storefront/internal/config"
	"github.com/vitacart/storefront/internal/data"
	handler "github.com/vitacart/storefront/internal/handler/http"
	"github.com/vitacart/storefront/internal/repository/memory"
	"github.com/vitacart/storefront/internal/service"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing. A no-op shutdown is returned when disabled.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.TracingEndpoint,
		SampleRate:     cfg.TracingSampler,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Load and validate the embedded seed data. A malformed seed file is a
	// startup failure, not a runtime one.
	store, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	logger.Info("seed data loaded",
		slog.Int("products", len(store.Products)),
		slog.Int("orders", len(store.Orders)),
		slog.Int("faqs", len(store.FAQs)),
	)

	// Build the dependency graph. All state lives in process memory and is
	// rebuilt from the seed data on every start.
	catalogRepo := memory.NewCatalogRepository(store.Products)
	faqRepo := memory.NewFAQRepository(store.FAQs)
	cartRepo := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository(store.Orders)
	sessionRepo := memory.NewSessionRepository()

	catalogService := service.NewCatalogService(catalogRepo, faqRepo, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, service.OrderConfig{
		ShippingCost:          cfg.ShippingCost,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ProcessingDelay:       cfg.CheckoutDelay(),
	}, logger)
	authService := service.NewAuthService(sessionRepo, service.AuthConfig{
		Username:   cfg.AdminUsername,
		Password:   cfg.AdminPassword,
		LoginDelay: cfg.LoginDelay(),
	}, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", func(ctx context.Context) error {
		products, err := catalogRepo.List(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return fmt.Errorf("catalog is empty")
		}
		return nil
	})
	healthHandler.Register("orders", func(ctx context.Context) error {
		_, err := orderRepo.Count(ctx)
		return err
	})

	// HTTP router.
	router := handler.NewRouter(handler.RouterDeps{
		Catalog:     catalogService,
		Cart:        cartService,
		Orders:      orderService,
		Auth:        authService,
		Health:      healthHandler,
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		PprofCIDRs:  cfg.PprofCIDRs,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
