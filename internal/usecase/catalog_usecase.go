package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/internal/domain/service"
	"ludomarket/pkg/errors"
	"ludomarket/pkg/logger"
)

type CatalogUseCase struct {
	gameRepo         repository.GameRepository
	walletRepo       repository.WalletRepository
	ledgerRepo       repository.LedgerRepository
	capabilities     *service.CapabilityAuthority
	pricing          service.PricingOracle
	events           EventBus
	locks            *OpLocks
	submissionFeeUSD uint64
}

func NewCatalogUseCase(
	gameRepo repository.GameRepository,
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	capabilities *service.CapabilityAuthority,
	pricing service.PricingOracle,
	events EventBus,
	locks *OpLocks,
	submissionFeeUSD uint64,
) *CatalogUseCase {
	return &CatalogUseCase{
		gameRepo:         gameRepo,
		walletRepo:       walletRepo,
		ledgerRepo:       ledgerRepo,
		capabilities:     capabilities,
		pricing:          pricing,
		events:           events,
		locks:            locks,
		submissionFeeUSD: submissionFeeUSD,
	}
}

type RegisterGameInput struct {
	GameID     string
	Metadata   entity.GameMetadata
	SaleLocked bool
	// Payment is the submission fee the caller commits, in token units.
	// It must equal the converted current submission fee exactly.
	Payment uint64
}

type RegisteredGame struct {
	Game       *entity.Game `json:"game"`
	Capability string       `json:"capability"`
}

// RegisterGame creates a catalog entry, collects the submission fee into
// the submission pool and hands the caller a publisher capability bound to
// the new game.
func (uc *CatalogUseCase) RegisterGame(ctx context.Context, caller string, input RegisterGameInput) (*RegisteredGame, error) {
	if err := input.Metadata.Validate(); err != nil {
		return nil, err
	}

	defer uc.locks.Lock(gameLockKey(input.GameID))()

	if _, err := uc.gameRepo.GetByID(ctx, input.GameID); err == nil {
		return nil, errors.DuplicateGameID(input.GameID)
	}

	fee := uc.pricing.UsdToToken(uc.submissionFeeUSD)
	if input.Payment != fee {
		return nil, errors.InsufficientFee(fee)
	}

	if _, err := uc.walletRepo.DebitExact(ctx, caller, fee); err != nil {
		return nil, err
	}

	if err := uc.ledgerRepo.Deposit(ctx, entity.SubmissionPool(), fee); err != nil {
		reverse(ctx, uc.ledgerRepo, uc.walletRepo, caller, fee, nil)
		return nil, err
	}

	game := entity.NewGame(input.GameID, input.Metadata, input.SaleLocked)
	if err := uc.gameRepo.Create(ctx, game); err != nil {
		reverse(ctx, uc.ledgerRepo, uc.walletRepo, caller, fee, []poolReversal{{entity.SubmissionPool(), fee}})
		return nil, err
	}

	capability, err := uc.capabilities.Issue(service.CapabilityPublisher, game.ID)
	if err != nil {
		return nil, err
	}

	event := entity.NewEvent(entity.EventGameRegistered)
	event.GameID = game.ID
	uc.events.Publish(event)

	logger.Info("Game registered: %s", game.ID)

	return &RegisteredGame{Game: game, Capability: capability}, nil
}

type CreateLicenseInput struct {
	Name              string
	Thumbnail         string
	ShortDescriptions map[string]string
	PublisherPriceUSD uint64
	DiscountRateBP    uint64
	RoyaltyRateBP     uint64
	PermitResale      bool
	LimitAuthCount    uint64
}

// CreateLicense adds a new SKU to a game. Requires a publisher capability
// bound to that game.
func (uc *CatalogUseCase) CreateLicense(ctx context.Context, capability, gameID string, input CreateLicenseInput) (*entity.License, error) {
	defer uc.locks.Lock(gameLockKey(gameID))()

	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := uc.capabilities.Authorize(capability, service.CapabilityPublisher, game.ID); err != nil {
		return nil, err
	}

	license := entity.License{
		ID:                uuid.New().String(),
		GameID:            game.ID,
		Name:              input.Name,
		Thumbnail:         input.Thumbnail,
		ShortDescriptions: input.ShortDescriptions,
		PublisherPriceUSD: input.PublisherPriceUSD,
		DiscountRateBP:    input.DiscountRateBP,
		RoyaltyRateBP:     input.RoyaltyRateBP,
		PermitResale:      input.PermitResale,
		LimitAuthCount:    input.LimitAuthCount,
		CreatedAt:         time.Now(),
	}

	if err := license.Validate(); err != nil {
		return nil, err
	}

	if err := uc.gameRepo.AppendLicense(ctx, game.ID, license); err != nil {
		return nil, err
	}

	event := entity.NewEvent(entity.EventLicenseCreated)
	event.GameID = game.ID
	event.LicenseID = license.ID
	uc.events.Publish(event)

	return &license, nil
}

func (uc *CatalogUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	return uc.gameRepo.GetByID(ctx, gameID)
}

func (uc *CatalogUseCase) ListGames(ctx context.Context, limit, offset int) ([]*entity.Game, int64, error) {
	return uc.gameRepo.List(ctx, limit, offset)
}

func (uc *CatalogUseCase) GetLicense(ctx context.Context, gameID, licenseID string) (*entity.License, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return game.LicenseByID(licenseID)
}

func (uc *CatalogUseCase) GetLicenseAt(ctx context.Context, gameID string, index int) (*entity.License, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return game.LicenseAt(index)
}

type UpdateGameInput struct {
	Metadata entity.GameMetadata
}

// UpdateGameMetadata validates the request and the capability but leaves
// the stored entry unchanged. Catalog entries are immutable until the
// snapshot-versus-live read rules for issued instances are settled; see
// DESIGN.md.
func (uc *CatalogUseCase) UpdateGameMetadata(ctx context.Context, capability, gameID string, input UpdateGameInput) (*entity.Game, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := uc.capabilities.Authorize(capability, service.CapabilityPublisher, game.ID); err != nil {
		return nil, err
	}

	if err := input.Metadata.Validate(); err != nil {
		return nil, err
	}

	logger.Warn("UpdateGameMetadata is a no-op for game %s", game.ID)

	return game, nil
}
