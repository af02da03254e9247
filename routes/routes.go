package routes

import (
	"Polyclinic/config"
	"Polyclinic/controllers"
	"Polyclinic/handlers"
	"Polyclinic/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, reportHandler *handlers.ReportHandler, logger zerolog.Logger) http.Handler {
	if !config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.LoggingMiddleware(logger))

	// CORS runs ahead of authentication so preflight requests succeed
	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{"GET", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
	}))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
		IdleTTL:           config.RateLimitIdleTTL,
	}))

	controllers.SetupRootRoute(router)

	reports := router.Group("/reports", middlewares.ValidateBearerToken(config.GetBearerToken()))
	controllers.SetupReportRoutes(reports, reportHandler)

	return router
}
