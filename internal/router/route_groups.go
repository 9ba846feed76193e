package router

import (
	"booking_backend/internal/handlers"
	"booking_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes sets up the liveness and readiness probes. They carry no session.
func SetupHealthRoutes(engine *gin.Engine, healthHandler *handlers.HealthHandler) {
	engine.GET("/ping", healthHandler.Ping)
	engine.GET("/health", healthHandler.Health)
}

// SetupPublicRoutes sets up the visitor-facing pages.
func SetupPublicRoutes(group *gin.RouterGroup, publicHandler *handlers.PublicHandler) {
	group.GET("/", publicHandler.Index)
	group.GET("/book", publicHandler.BookForm)
	group.POST("/book", publicHandler.Book)
}

// SetupAuthRoutes sets up admin login and logout. Login submissions are throttled when limiter is set.
func SetupAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler, limiter *middleware.RateLimiter) {
	authRoutes := group.Group("/admin")
	{
		authRoutes.GET("/login", authHandler.LoginForm)
		if limiter != nil {
			authRoutes.POST("/login", middleware.RateLimit(limiter), authHandler.Login)
		} else {
			authRoutes.POST("/login", authHandler.Login)
		}
		authRoutes.GET("/logout", authHandler.Logout)
	}
}

// SetupAdminRoutes sets up the admin panel. The group must already require an admin session.
func SetupAdminRoutes(adminGroup *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	adminGroup.GET("", adminHandler.Dashboard)
	adminGroup.POST("/delete/:id", adminHandler.DeleteAppointment)
}
