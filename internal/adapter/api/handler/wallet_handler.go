package handler

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/middleware"
	"ludomarket/internal/usecase"
	"ludomarket/pkg/response"
)

type WalletHandler struct {
	walletUseCase *usecase.WalletUseCase
}

func NewWalletHandler(walletUseCase *usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
	}
}

func (h *WalletHandler) GetWallet(c echo.Context) error {
	wallet, err := h.walletUseCase.GetWallet(c.Request().Context(), middleware.CallerAddress(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wallet)
}

type topupRequest struct {
	Amount uint64 `json:"amount" validate:"required,min=1"`
}

func (h *WalletHandler) Topup(c echo.Context) error {
	var req topupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wallet, err := h.walletUseCase.Topup(c.Request().Context(), middleware.CallerAddress(c), req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wallet)
}
