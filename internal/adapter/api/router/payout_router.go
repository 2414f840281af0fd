package router

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/handler"
	"ludomarket/internal/adapter/api/middleware"
)

func SetupPayoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	payoutHandler := handler.GetPayoutHandler()

	payouts := e.Group("/v1/payouts")
	payouts.Use(authMiddleware.Authenticate)

	payouts.POST("/platform/:pool", payoutHandler.WithdrawPlatformPool)
	payouts.POST("/games/:id/:pool", payoutHandler.WithdrawGamePool)
	payouts.POST("/address", payoutHandler.WithdrawPayout)
}
