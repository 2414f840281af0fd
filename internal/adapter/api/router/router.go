package router

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	SetupHealthRouter(e)
	SetupCatalogRouter(e, authMiddleware, rateLimiter)
	SetupMarketRouter(e, authMiddleware, rateLimiter)
	SetupResaleRouter(e, authMiddleware, rateLimiter)
	SetupWalletRouter(e, authMiddleware)
	SetupPayoutRouter(e, authMiddleware)
}
