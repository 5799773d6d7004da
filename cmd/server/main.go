package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	catalogapp "github.com/vyapar/backend/internal/application/catalog"
	financeapp "github.com/vyapar/backend/internal/application/finance"
	identityapp "github.com/vyapar/backend/internal/application/identity"
	partnerapp "github.com/vyapar/backend/internal/application/partner"
	tradeapp "github.com/vyapar/backend/internal/application/trade"
	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/trade"
	"github.com/vyapar/backend/internal/infrastructure/auth"
	"github.com/vyapar/backend/internal/infrastructure/cache"
	"github.com/vyapar/backend/internal/infrastructure/config"
	"github.com/vyapar/backend/internal/infrastructure/logger"
	"github.com/vyapar/backend/internal/infrastructure/payment"
	"github.com/vyapar/backend/internal/infrastructure/persistence"
	"github.com/vyapar/backend/internal/infrastructure/report"
	"github.com/vyapar/backend/internal/infrastructure/telemetry"
	"github.com/vyapar/backend/internal/interfaces/http/handler"
	"github.com/vyapar/backend/internal/interfaces/http/middleware"
	"github.com/vyapar/backend/internal/interfaces/http/router"
)

const serviceVersion = "1.0.0"

//	@title			Vyapar Saathi API
//	@version		1.0
//	@description	Point of sale and bookkeeping API for small shops: catalog, billing, Udhaar credit, expenses, daily reports and Razorpay payments.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration (.env, config.toml, environment)
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
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Vyapar Saathi backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Invalid timezone", zap.String("timezone", cfg.App.Timezone), zap.Error(err))
	}

	ctx := context.Background()

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    serviceVersion,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    serviceVersion,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	meter := meterProvider.Meter("vyapar-backend")
	posMetrics, err := telemetry.NewPOSMetrics(meter)
	if err != nil {
		log.Fatal("Failed to register POS metrics", zap.Error(err))
	}

	// Database with zap-backed GORM logger
	var gormOpts []logger.GormLoggerOption
	if cfg.Telemetry.DBLogFullSQL {
		gormOpts = append(gormOpts, logger.WithBoundValues())
	}
	if cfg.Telemetry.DBSlowQueryThresh > 0 {
		gormOpts = append(gormOpts, logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	}
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), gormOpts...)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", db.Driver))

	dbSystem := "postgresql"
	if db.Driver == "sqlite" {
		dbSystem = "sqlite"
	}
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        dbSystem,
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}
		log.Info("Schema migrated")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)

	readiness := map[string]handler.Pinger{
		"database": handler.PingFunc(db.Ping),
	}

	// Redis is optional; it only backs the bill counter
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		readiness["redis"] = cache.NewPinger(redisClient)
	}

	var bills trade.BillNumberAllocator
	if cfg.Billing.Counter == "redis" {
		bills = cache.NewRedisBillCounter(redisClient, saleRepo)
		log.Info("Bill numbers allocated by Redis")
	}

	var scope tradeapp.TransactionScope
	if cfg.Billing.Atomic {
		var opts []persistence.TransactionScopeOption
		if bills != nil {
			opts = append(opts, persistence.WithBillNumberAllocator(bills))
		}
		scope = persistence.NewGormTransactionScope(db.DB, opts...)
	} else {
		log.Warn("Checkout runs without a transaction; partial failures need manual reconciliation")
		scope = persistence.NewNoOpTransactionScope(db.DB, bills)
	}

	// Payment gateway
	var gateway finance.OrderGateway = payment.UnavailableGateway{}
	if cfg.Payment.Enabled {
		adapter, err := payment.NewRazorpayAdapter(payment.NewRazorpayConfig(cfg.Payment), log)
		if err != nil {
			log.Fatal("Failed to configure Razorpay", zap.Error(err))
		}
		gateway = adapter
	} else {
		log.Warn("Payment gateway disabled; create-order requests will fail")
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, auth.NewBcryptHasher(bcrypt.DefaultCost), jwtService, log)
	productService := catalogapp.NewProductService(productRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo, log)
	billingService := tradeapp.NewBillingService(scope, saleRepo, posMetrics, log)
	expenseService := financeapp.NewExpenseService(expenseRepo, loc, log)
	reportService := financeapp.NewReportService(saleRepo, expenseRepo, userRepo, report.NewExcelExporter(loc), loc, log)
	paymentService := financeapp.NewPaymentService(
		gateway,
		payment.NewRazorpaySignatureVerifier(cfg.Payment.KeySecret),
		cfg.Payment.Currency,
		decimal.NewFromFloat(cfg.Payment.MinAmount),
		posMetrics,
		log,
	)

	// Amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	// HTTP engine
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	httpMetrics, err := middleware.HTTPMetrics(meter)
	if err != nil {
		log.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}
	engine.Use(httpMetrics)

	authGate := middleware.JWTAuthMiddleware(jwtService, log)
	docsGuard := middleware.DocsGuard(middleware.DocsConfig{
		Enabled:     cfg.Swagger.Enabled,
		RequireAuth: cfg.Swagger.RequireAuth,
		AllowedIPs:  cfg.Swagger.AllowedIPs,
	}, authGate)
	router.Mount(engine, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService),
		Sale:      handler.NewSaleHandler(billingService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Report:    handler.NewReportHandler(reportService),
		Payment:   handler.NewPaymentHandler(paymentService),
		System:    handler.NewSystemHandler(readiness),
		DocsGuard: docsGuard,
	},
		authGate,
		middleware.SpanAttributes(),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if limiter != nil {
		limiter.Stop()
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis", zap.Error(err))
		}
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
