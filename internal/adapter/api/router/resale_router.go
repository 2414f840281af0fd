package router

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/handler"
	"ludomarket/internal/adapter/api/middleware"
)

func SetupResaleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	resaleHandler := handler.GetResaleHandler()

	// Public market reads
	e.GET("/v1/listings", resaleHandler.ListListings)
	e.GET("/v1/listings/:id", resaleHandler.GetListing)

	listings := e.Group("/v1/listings")
	listings.Use(authMiddleware.Authenticate)
	listings.Use(rateLimiter.Limit())
	listings.POST("/:id/buy", resaleHandler.BuyListing)

	list := e.Group("/v1/instances/:id/list")
	list.Use(authMiddleware.Authenticate)
	list.Use(rateLimiter.Limit())
	list.POST("", resaleHandler.ListInstance)
}
