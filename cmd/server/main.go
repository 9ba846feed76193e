package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking_backend/internal/cache"
	"booking_backend/internal/config"
	"booking_backend/internal/database"
	"booking_backend/internal/handlers"
	"booking_backend/internal/middleware"
	"booking_backend/internal/notifications"
	"booking_backend/internal/repositories"
	"booking_backend/internal/router"
	"booking_backend/internal/services"
	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger with defaults until config is known
	utils.InitLogger(utils.Getenv("LOG_FORMAT", "console"), utils.Getenv("LOG_LEVEL", "info"))

	cfg, err := config.Load()
	if err != nil {
		utils.LogError(err, "Failed to load configuration")
		os.Exit(1)
	}
	utils.InitLogger(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	db, err := database.Open(ctx, cfg.DSN())
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := database.ApplySchema(ctx, db); err != nil {
		utils.LogError(err, "Failed to apply database schema")
		os.Exit(1)
	}

	appointmentRepo := repositories.NewAppointmentRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	if err := services.NewAuthService(authRepo).EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		utils.LogError(err, "Failed to seed admin user")
		os.Exit(1)
	}

	healthChecks := map[string]handlers.HealthCheck{"database": db.PingContext}

	var dashboardCache cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			utils.LogError(err, "Redis unavailable, dashboard caching disabled", map[string]interface{}{"addr": cfg.RedisAddr})
		} else {
			defer redisCache.Close()
			dashboardCache = redisCache
			healthChecks["redis"] = redisCache.Ping
			utils.LogInfo("Dashboard cache enabled", map[string]interface{}{"addr": cfg.RedisAddr, "ttl": cfg.DashboardCacheTTL.String()})
		}
	}

	var notifier notifications.BookingNotifier = notifications.Noop{}
	telegram, err := notifications.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		utils.LogError(err, "Telegram notifier unavailable, booking notifications disabled")
	} else if telegram != nil {
		notifier = telegram
		utils.LogInfo("Booking notifications enabled", map[string]interface{}{"chat_id": cfg.TelegramChatID})
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	err = router.Setup(engine, router.Dependencies{
		AppointmentRepo:   appointmentRepo,
		AuthRepo:          authRepo,
		Cache:             dashboardCache,
		DashboardCacheTTL: cfg.DashboardCacheTTL,
		Notifier:          notifier,
		Sessions:          session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure),
		LoginLimiter:      middleware.NewRateLimiter(cfg.LoginRateLimitRPS, cfg.LoginRateLimitBurst),
		HealthChecks:      healthChecks,
		TrustedProxies:    cfg.TrustedProxies,
	})
	if err != nil {
		utils.LogError(err, "Failed to set up routes")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Failed to start server")
			stop()
		}
	}()

	<-ctx.Done()
	utils.LogInfo("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.LogError(err, "Graceful shutdown failed")
	}
	utils.LogInfo("Server stopped")
}
