package router

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/handler"
	"ludomarket/internal/adapter/api/middleware"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	catalogHandler := handler.GetCatalogHandler()

	// Public catalog reads
	e.GET("/v1/games", catalogHandler.ListGames)
	e.GET("/v1/games/:id", catalogHandler.GetGame)
	e.GET("/v1/games/:id/licenses", catalogHandler.ListLicenses)
	e.GET("/v1/games/:id/licenses/index/:index", catalogHandler.GetLicenseAt)
	e.GET("/v1/games/:id/licenses/:licenseId", catalogHandler.GetLicense)

	// Mutations: registration needs the caller identity; license creation
	// and metadata updates are gated by the publisher capability header.
	games := e.Group("/v1/games")
	games.Use(authMiddleware.Authenticate)
	games.Use(rateLimiter.Limit())

	games.POST("", catalogHandler.RegisterGame)
	games.PUT("/:id", catalogHandler.UpdateGame)
	games.POST("/:id/licenses", catalogHandler.CreateLicense)
}
