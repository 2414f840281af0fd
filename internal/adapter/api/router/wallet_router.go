package router

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/handler"
	"ludomarket/internal/adapter/api/middleware"
)

func SetupWalletRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	walletHandler := handler.GetWalletHandler()

	wallet := e.Group("/v1/wallet")
	wallet.Use(authMiddleware.Authenticate)

	wallet.GET("", walletHandler.GetWallet)
	wallet.POST("/topup", walletHandler.Topup)
}
