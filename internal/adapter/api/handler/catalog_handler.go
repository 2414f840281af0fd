package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ludomarket/internal/adapter/api/middleware"
	"ludomarket/internal/domain/entity"
	"ludomarket/internal/usecase"
	"ludomarket/pkg/response"
	"ludomarket/pkg/utils"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type gameMetadataRequest struct {
	Name               string            `json:"name" validate:"required"`
	CoverURL           string            `json:"cover_url" validate:"omitempty,url"`
	MediaURLs          []string          `json:"media_urls,omitempty"`
	ShortDescriptions  map[string]string `json:"short_descriptions,omitempty"`
	Genre              string            `json:"genre"`
	Developer          string            `json:"developer"`
	Publisher          string            `json:"publisher"`
	Languages          []string          `json:"languages,omitempty"`
	Platforms          []string          `json:"platforms,omitempty"`
	SystemRequirements string            `json:"system_requirements,omitempty"`
}

func (r *gameMetadataRequest) toEntity() entity.GameMetadata {
	return entity.GameMetadata{
		Name:               r.Name,
		CoverURL:           r.CoverURL,
		MediaURLs:          r.MediaURLs,
		ShortDescriptions:  r.ShortDescriptions,
		Genre:              r.Genre,
		Developer:          r.Developer,
		Publisher:          r.Publisher,
		Languages:          r.Languages,
		Platforms:          r.Platforms,
		SystemRequirements: r.SystemRequirements,
	}
}

type registerGameRequest struct {
	GameID     string              `json:"game_id" validate:"required"`
	Metadata   gameMetadataRequest `json:"metadata" validate:"required"`
	SaleLocked bool                `json:"sale_locked"`
	Payment    uint64              `json:"payment" validate:"required"`
}

func (h *CatalogHandler) RegisterGame(c echo.Context) error {
	var req registerGameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	registered, err := h.catalogUseCase.RegisterGame(c.Request().Context(), middleware.CallerAddress(c), usecase.RegisterGameInput{
		GameID:     req.GameID,
		Metadata:   req.Metadata.toEntity(),
		SaleLocked: req.SaleLocked,
		Payment:    req.Payment,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, registered)
}

func (h *CatalogHandler) ListGames(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	games, total, err := h.catalogUseCase.ListGames(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, games, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) GetGame(c echo.Context) error {
	game, err := h.catalogUseCase.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

type updateGameRequest struct {
	Metadata gameMetadataRequest `json:"metadata" validate:"required"`
}

func (h *CatalogHandler) UpdateGame(c echo.Context) error {
	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	game, err := h.catalogUseCase.UpdateGameMetadata(
		c.Request().Context(),
		c.Request().Header.Get("X-Capability"),
		c.Param("id"),
		usecase.UpdateGameInput{Metadata: req.Metadata.toEntity()},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

type createLicenseRequest struct {
	Name              string            `json:"name" validate:"required"`
	Thumbnail         string            `json:"thumbnail" validate:"omitempty,url"`
	ShortDescriptions map[string]string `json:"short_descriptions,omitempty"`
	PublisherPriceUSD uint64            `json:"publisher_price_usd" validate:"required"`
	DiscountRateBP    uint64            `json:"discount_rate_bp"`
	RoyaltyRateBP     uint64            `json:"royalty_rate_bp"`
	PermitResale      bool              `json:"permit_resale"`
	LimitAuthCount    uint64            `json:"limit_auth_count" validate:"required,min=1"`
}

func (h *CatalogHandler) CreateLicense(c echo.Context) error {
	var req createLicenseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	license, err := h.catalogUseCase.CreateLicense(
		c.Request().Context(),
		c.Request().Header.Get("X-Capability"),
		c.Param("id"),
		usecase.CreateLicenseInput{
			Name:              req.Name,
			Thumbnail:         req.Thumbnail,
			ShortDescriptions: req.ShortDescriptions,
			PublisherPriceUSD: req.PublisherPriceUSD,
			DiscountRateBP:    req.DiscountRateBP,
			RoyaltyRateBP:     req.RoyaltyRateBP,
			PermitResale:      req.PermitResale,
			LimitAuthCount:    req.LimitAuthCount,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, license)
}

func (h *CatalogHandler) ListLicenses(c echo.Context) error {
	game, err := h.catalogUseCase.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game.Licenses)
}

func (h *CatalogHandler) GetLicense(c echo.Context) error {
	license, err := h.catalogUseCase.GetLicense(c.Request().Context(), c.Param("id"), c.Param("licenseId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, license)
}

// GetLicenseAt serves positional access into a game's license collection.
func (h *CatalogHandler) GetLicenseAt(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		index = -1
	}

	license, err := h.catalogUseCase.GetLicenseAt(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, license)
}
