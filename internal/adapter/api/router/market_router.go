package router

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/handler"
	"ludomarket/internal/adapter/api/middleware"
)

func SetupMarketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	marketHandler := handler.GetMarketHandler()

	purchase := e.Group("/v1/games/:id/licenses/:licenseId")
	purchase.Use(authMiddleware.Authenticate)
	purchase.Use(rateLimiter.Limit())
	purchase.POST("/purchase", marketHandler.Purchase)

	instances := e.Group("/v1/instances")
	instances.Use(authMiddleware.Authenticate)

	instances.GET("", marketHandler.ListInstances)
	instances.GET("/:id", marketHandler.GetInstance)
	instances.POST("/:id/authenticate", marketHandler.Authenticate)
}
