package handler

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/middleware"
	"ludomarket/internal/usecase"
	"ludomarket/pkg/response"
	"ludomarket/pkg/utils"
)

// MarketHandler serves the primary market: purchases, owned instances and
// the activation gate.
type MarketHandler struct {
	purchaseUseCase   *usecase.PurchaseUseCase
	activationUseCase *usecase.ActivationUseCase
}

func NewMarketHandler(purchaseUseCase *usecase.PurchaseUseCase, activationUseCase *usecase.ActivationUseCase) *MarketHandler {
	return &MarketHandler{
		purchaseUseCase:   purchaseUseCase,
		activationUseCase: activationUseCase,
	}
}

type purchaseRequest struct {
	Payment uint64 `json:"payment" validate:"required"`
}

func (h *MarketHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	instance, err := h.purchaseUseCase.Purchase(
		c.Request().Context(),
		middleware.CallerAddress(c),
		c.Param("id"),
		c.Param("licenseId"),
		req.Payment,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, instance)
}

func (h *MarketHandler) ListInstances(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	instances, total, err := h.purchaseUseCase.ListInstances(
		c.Request().Context(),
		middleware.CallerAddress(c),
		pagination.PageSize,
		pagination.Offset,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, instances, total, pagination.Page, pagination.PageSize)
}

func (h *MarketHandler) GetInstance(c echo.Context) error {
	instance, err := h.purchaseUseCase.GetInstance(c.Request().Context(), middleware.CallerAddress(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, instance)
}

func (h *MarketHandler) Authenticate(c echo.Context) error {
	instance, err := h.activationUseCase.Authenticate(c.Request().Context(), middleware.CallerAddress(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, instance)
}
