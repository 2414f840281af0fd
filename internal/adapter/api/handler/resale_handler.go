package handler

import (
	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/middleware"
	"ludomarket/internal/usecase"
	"ludomarket/pkg/response"
	"ludomarket/pkg/utils"
)

type ResaleHandler struct {
	resaleUseCase *usecase.ResaleUseCase
}

func NewResaleHandler(resaleUseCase *usecase.ResaleUseCase) *ResaleHandler {
	return &ResaleHandler{
		resaleUseCase: resaleUseCase,
	}
}

type listInstanceRequest struct {
	ResellerName string `json:"reseller_name" validate:"required"`
	Description  string `json:"description"`
	AskPriceUSD  uint64 `json:"ask_price_usd" validate:"required"`
}

func (h *ResaleHandler) ListInstance(c echo.Context) error {
	var req listInstanceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.resaleUseCase.List(
		c.Request().Context(),
		middleware.CallerAddress(c),
		c.Param("id"),
		usecase.ListInstanceInput{
			ResellerName: req.ResellerName,
			Description:  req.Description,
			AskPriceUSD:  req.AskPriceUSD,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ResaleHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.resaleUseCase.ListListings(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ResaleHandler) GetListing(c echo.Context) error {
	listing, err := h.resaleUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

type buyListingRequest struct {
	Payment uint64 `json:"payment" validate:"required"`
}

func (h *ResaleHandler) BuyListing(c echo.Context) error {
	var req buyListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	instance, err := h.resaleUseCase.Resell(
		c.Request().Context(),
		middleware.CallerAddress(c),
		c.Param("id"),
		req.Payment,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, instance)
}
