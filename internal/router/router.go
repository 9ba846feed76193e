package router

import (
	"fmt"
	"time"

	"booking_backend/internal/cache"
	"booking_backend/internal/handlers"
	"booking_backend/internal/middleware"
	"booking_backend/internal/notifications"
	"booking_backend/internal/repositories"
	"booking_backend/internal/services"
	"booking_backend/internal/session"

	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators Setup wires into handlers.
type Dependencies struct {
	AppointmentRepo repositories.AppointmentRepository
	AuthRepo        repositories.AuthRepository

	Cache             cache.Cache // nil disables dashboard caching
	DashboardCacheTTL time.Duration
	Notifier          notifications.BookingNotifier // nil disables booking notifications

	Sessions     *session.Manager
	LoginLimiter *middleware.RateLimiter // nil disables login throttling

	HealthChecks map[string]handlers.HealthCheck

	// TrustedProxies lists proxies whose X-Forwarded-For is honoured. Empty means none.
	TrustedProxies []string
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, deps Dependencies) error {
	// client IPs key the login throttle, so forwarding headers are only honoured from known proxies
	if err := engine.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Initialize Services
	bookingService := services.NewBookingService(deps.AppointmentRepo, deps.Cache, deps.Notifier)
	authService := services.NewAuthService(deps.AuthRepo)
	reportService := services.NewReportService(deps.AppointmentRepo, deps.Cache, deps.DashboardCacheTTL)
	appointmentService := services.NewAppointmentService(deps.AppointmentRepo, deps.Cache)

	// Initialize Handlers
	publicHandler := handlers.NewPublicHandler(bookingService, deps.Sessions)
	authHandler := handlers.NewAuthHandler(authService, deps.Sessions)
	adminHandler := handlers.NewAdminHandler(reportService, appointmentService, deps.Sessions)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)

	SetupHealthRoutes(engine, healthHandler)

	site := engine.Group("")
	site.Use(deps.Sessions.Load())
	{
		SetupPublicRoutes(site, publicHandler)
		SetupAuthRoutes(site, authHandler, deps.LoginLimiter)

		admin := site.Group("/admin")
		admin.Use(middleware.RequireAdmin(deps.Sessions))
		SetupAdminRoutes(admin, adminHandler)
	}
	return nil
}
