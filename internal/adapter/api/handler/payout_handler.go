package handler

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/middleware"
	"ludomarket/internal/domain/entity"
	"ludomarket/internal/usecase"
	"ludomarket/pkg/errors"
	"ludomarket/pkg/response"
)

type PayoutHandler struct {
	payoutUseCase *usecase.PayoutUseCase
}

func NewPayoutHandler(payoutUseCase *usecase.PayoutUseCase) *PayoutHandler {
	return &PayoutHandler{
		payoutUseCase: payoutUseCase,
	}
}

func platformPoolKind(name string) (entity.PoolKind, error) {
	switch name {
	case "submission":
		return entity.PoolSubmission, nil
	case "purchase":
		return entity.PoolPurchaseFee, nil
	default:
		return "", errors.BadRequest("Pool must be submission or purchase", nil)
	}
}

func gamePoolKind(name string) (entity.PoolKind, error) {
	switch name {
	case "escrow":
		return entity.PoolGameEscrow, nil
	case "royalty":
		return entity.PoolRoyalty, nil
	default:
		return "", errors.BadRequest("Pool must be escrow or royalty", nil)
	}
}

func (h *PayoutHandler) WithdrawPlatformPool(c echo.Context) error {
	kind, err := platformPoolKind(c.Param("pool"))
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.payoutUseCase.WithdrawPlatformPool(
		c.Request().Context(),
		middleware.CallerAddress(c),
		c.Request().Header.Get("X-Capability"),
		kind,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *PayoutHandler) WithdrawGamePool(c echo.Context) error {
	kind, err := gamePoolKind(c.Param("pool"))
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.payoutUseCase.WithdrawGamePool(
		c.Request().Context(),
		middleware.CallerAddress(c),
		c.Request().Header.Get("X-Capability"),
		c.Param("id"),
		kind,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *PayoutHandler) WithdrawPayout(c echo.Context) error {
	result, err := h.payoutUseCase.WithdrawPayout(c.Request().Context(), middleware.CallerAddress(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
