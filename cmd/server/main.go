package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"freshcart/internal"
	"freshcart/internal/api"
	adminhandler "freshcart/internal/handler/admin"
	"freshcart/internal/handler/storefront"
	"freshcart/internal/middleware"
	"freshcart/internal/router"
	"freshcart/internal/routes"
	"freshcart/internal/service"
	"freshcart/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Run migrations for the postgres slot store; sqlite manages its own
	// schema inline.
	if cfg.Store.Provider == "postgres" {
		logger.Info("Running database migrations...")
		sqlDB, err := sql.Open("pgx", cfg.Store.PostgresURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			return fmt.Errorf("database ping failed: %w", err)
		}
		if err := internal.RunMigrations(sqlDB); err != nil {
			sqlDB.Close()
			return fmt.Errorf("migration failed: %w", err)
		}
		sqlDB.Close()
		logger.Info("Database migrations completed successfully")
	}

	// Initialize the slot store backing carts and sessions
	st, err := store.NewStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()
	logger.Info("Slot store initialized", "provider", cfg.Store.Provider)

	// Initialize the backend API client
	backend := api.NewHTTPClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logger)
	logger.Info("Backend API client initialized", "base_url", cfg.API.BaseURL)

	// Initialize services
	sessionService := service.NewSessionService(backend, st, logger)
	productService := service.NewProductService(backend, logger)
	cartService := service.NewCartService(st, logger)
	checkoutService := service.NewCheckoutService(cartService, cfg.Checkout.SelectionTTL, logger)
	addressService := service.NewAddressService(backend, logger)
	paymentService := service.NewPaymentService(backend, cartService, checkoutService, logger)
	adminService := service.NewAdminService(backend, logger)

	secure := cfg.Env == "prod"

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(productService),
		CartHandler:     storefront.NewCartHandler(cartService, productService),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService, addressService, paymentService),
		AuthHandler:     storefront.NewAuthHandler(sessionService, secure),

		RequireAuth:  middleware.RequireAuth,
		LoginLimiter: middleware.RateLimit(middleware.StrictRateLimiterConfig()),
		BodyLimiter:  middleware.MaxBodySize(),
	}

	adminDeps := routes.AdminDeps{
		OrderHandler:   adminhandler.NewOrderHandler(adminService),
		ProductHandler: adminhandler.NewProductHandler(adminService),
		UserHandler:    adminhandler.NewUserHandler(adminService),
		ReportHandler:  adminhandler.NewReportHandler(adminService),

		RequireAdmin:  middleware.RequireAdmin,
		BodyLimiter:   middleware.MaxBodySize(),
		UploadLimiter: middleware.MaxBodySize(middleware.UploadMaxBodySize),
	}

	// ==========================================================================
	// Initialize middleware and register routes
	// ==========================================================================

	metrics := middleware.NewMetrics("freshcart")
	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer defaultRateLimiter.Stop()

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.CORS.AllowedOrigins),
		middleware.Timeout(middleware.DefaultTimeout),
		defaultRateLimiter.Middleware,
		router.Logger(logger),
		middleware.WithSession(sessionService),
		middleware.WithRequestLogger(logger),
	)

	// Metrics endpoint (no auth required; protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
