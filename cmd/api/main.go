package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hsrmotors/leadpulse/config"
	"github.com/hsrmotors/leadpulse/pkg/ai"
	"github.com/hsrmotors/leadpulse/pkg/ai/llm"
	"github.com/hsrmotors/leadpulse/pkg/analytics"
	"github.com/hsrmotors/leadpulse/pkg/api/handlers"
	"github.com/hsrmotors/leadpulse/pkg/assignment"
	"github.com/hsrmotors/leadpulse/pkg/audit"
	"github.com/hsrmotors/leadpulse/pkg/cache"
	"github.com/hsrmotors/leadpulse/pkg/database"
	"github.com/hsrmotors/leadpulse/pkg/jobs"
	"github.com/hsrmotors/leadpulse/pkg/lifecycle"
	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/metrics"
	custommiddleware "github.com/hsrmotors/leadpulse/pkg/middleware"
	"github.com/hsrmotors/leadpulse/pkg/sla"
	"github.com/hsrmotors/leadpulse/pkg/testdata"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize services
	slaEval := sla.New(cfg.SLAResponseHours)
	assigner := assignment.NewService(db.Ent)
	auditor := audit.NewService(db.Ent)
	lifecycleService := lifecycle.NewService(db.Ent, assigner, auditor, slaEval, redisClient, prometheusMetrics, appLogger)
	analyticsService := analytics.NewService(db.Ent, redisClient, slaEval, prometheusMetrics, appLogger)
	generator := testdata.NewGenerator(db.Ent, 0)

	var completer ai.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = llm.NewOpenAIClient(llm.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, log.Default())
		log.Printf("✅ OpenAI client initialized (model: %s)", cfg.OpenAIModel)
	} else {
		log.Printf("ℹ️  OpenAI disabled (no API key); AI endpoints serve fallback copy")
	}
	assistant := ai.NewAssistant(completer, prometheusMetrics, appLogger)

	// Seed the roster, then the lead book if it is empty
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := assigner.SeedRoster(ctx); err != nil {
		cancel()
		log.Fatalf("❌ Failed to seed executive roster: %v", err)
	}
	if cfg.FeatureSeedOnStartup {
		created, err := generator.SeedIfEmpty(ctx, cfg.SeedLeadCount)
		if err != nil {
			cancel()
			log.Fatalf("❌ Failed to seed leads: %v", err)
		}
		if created > 0 {
			log.Printf("✅ Seeded %d synthetic leads", created)
		}
	}
	cancel()

	// Initialize cron manager for background jobs
	cronManager := jobs.NewCronManager(lifecycleService, generator, analyticsService, log.Default())
	if err := cronManager.SetupJobs(cfg.ArrivalIntervalSeconds, cfg.FeatureArrivalSimulator); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "LeadPulse API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(lifecycleService, assistant, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService, assistant)
	teamHandler := handlers.NewTeamHandler(assigner, auditor)

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	leadsGroup := v1.Group("/leads")
	{
		leadsGroup.GET("", leadHandler.ListLeads)
		leadsGroup.POST("", leadHandler.CreateLead)
		leadsGroup.POST("/bulk/status", leadHandler.BulkUpdateStatus)
		leadsGroup.POST("/bulk/assign", leadHandler.BulkReassign)
		leadsGroup.GET("/:id", leadHandler.GetLead)
		leadsGroup.DELETE("/:id", leadHandler.DeleteLead)
		leadsGroup.PATCH("/:id/status", leadHandler.UpdateStatus)
		leadsGroup.PATCH("/:id/assign", leadHandler.Reassign)
		leadsGroup.POST("/:id/calls", leadHandler.LogCall)
		leadsGroup.POST("/:id/calls/:call_id/summary", leadHandler.SummarizeCall)
		leadsGroup.POST("/:id/notes", leadHandler.AddNote)
		leadsGroup.POST("/:id/callback", leadHandler.ScheduleCallback)
	}

	dashboardGroup := v1.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", dashboardHandler.GetStats)
		dashboardGroup.POST("/ask", dashboardHandler.Ask)
	}

	teamGroup := v1.Group("/team")
	{
		teamGroup.GET("", teamHandler.ListExecutives)
		teamGroup.GET("/rules", teamHandler.ListRules)
		teamGroup.POST("/rules", teamHandler.CreateRule)
		teamGroup.DELETE("/rules/:id", teamHandler.DeleteRule)
	}

	v1.GET("/audit/deletions", teamHandler.RecentDeletions)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 LeadPulse API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	if cfg.FeatureArrivalSimulator {
		log.Printf("⏰ Arrival simulator: every %ds", cfg.ArrivalIntervalSeconds)
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
