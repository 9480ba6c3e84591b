package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/l2drycleaners/cleanpress/internal/server/http/handlers"
	"github.com/l2drycleaners/cleanpress/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CleanersFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	trackingHandler := handlers.NewTrackingHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	serviceHandler := handlers.NewServiceHandler()
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/ping", healthHandler.Ping)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/signout", authHandler.Signout)

	api.GET("/services", serviceHandler.List)
	// Tracking stays public: the order id is the only credential.
	api.GET("/orders/:id/track", trackingHandler.Track)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.PUT("/:id", orderHandler.Update)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/customers", adminHandler.Customers)

	return engine
}
