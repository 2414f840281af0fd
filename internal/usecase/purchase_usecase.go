package usecase

import (
	"context"

	"github.com/google/uuid"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/internal/domain/service"
	"ludomarket/pkg/errors"
	"ludomarket/pkg/logger"
)

type PurchaseUseCase struct {
	gameRepo      repository.GameRepository
	instanceRepo  repository.InstanceRepository
	walletRepo    repository.WalletRepository
	ledgerRepo    repository.LedgerRepository
	pricing       service.PricingOracle
	events        EventBus
	locks         *OpLocks
	purchaseFeeBP uint64
}

func NewPurchaseUseCase(
	gameRepo repository.GameRepository,
	instanceRepo repository.InstanceRepository,
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	pricing service.PricingOracle,
	events EventBus,
	locks *OpLocks,
	purchaseFeeBP uint64,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		gameRepo:      gameRepo,
		instanceRepo:  instanceRepo,
		walletRepo:    walletRepo,
		ledgerRepo:    ledgerRepo,
		pricing:       pricing,
		events:        events,
		locks:         locks,
		purchaseFeeBP: purchaseFeeBP,
	}
}

// Purchase validates funds, splits the platform fee into the purchase-fee
// pool, escrows the remainder for the game's publisher and mints a license
// instance owned by the buyer. Payment must equal the converted effective
// price exactly; there is no change-making. A step failing after the debit
// reverses the completed deposits and refunds the buyer.
func (uc *PurchaseUseCase) Purchase(ctx context.Context, buyer, gameID, licenseID string, payment uint64) (*entity.LicenseInstance, error) {
	defer uc.locks.Lock(gameLockKey(gameID))()

	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	license, err := game.LicenseByID(licenseID)
	if err != nil {
		return nil, err
	}

	if game.SaleLocked {
		return nil, errors.SaleLocked(game.ID)
	}

	price := uc.pricing.UsdToToken(license.EffectivePriceUSD())
	if payment != price {
		return nil, errors.InsufficientFunds(price)
	}

	if _, err := uc.walletRepo.DebitExact(ctx, buyer, price); err != nil {
		return nil, err
	}

	fee := entity.FeeAmount(price, uc.purchaseFeeBP)
	if fee > 0 {
		if err := uc.ledgerRepo.Deposit(ctx, entity.PurchaseFeePool(), fee); err != nil {
			reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, nil)
			return nil, err
		}
	}

	remainder := price - fee
	if remainder > 0 {
		if err := uc.ledgerRepo.Deposit(ctx, entity.GameEscrowPool(game.ID), remainder); err != nil {
			reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, []poolReversal{
				{entity.PurchaseFeePool(), fee},
			})
			return nil, err
		}
	}

	instance := entity.MintLicenseInstance(uuid.New().String(), license, buyer)
	if err := uc.instanceRepo.Create(ctx, instance); err != nil {
		reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, []poolReversal{
			{entity.PurchaseFeePool(), fee},
			{entity.GameEscrowPool(game.ID), remainder},
		})
		return nil, err
	}

	event := entity.NewEvent(entity.EventPurchased)
	event.GameID = game.ID
	event.LicenseID = license.ID
	event.InstanceID = instance.ID
	event.Amount = price
	uc.events.Publish(event)

	logger.Info("License purchased: game=%s license=%s instance=%s", game.ID, license.ID, instance.ID)

	return instance, nil
}

func (uc *PurchaseUseCase) GetInstance(ctx context.Context, caller, instanceID string) (*entity.LicenseInstance, error) {
	instance, err := uc.instanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if instance.Owner != caller {
		return nil, errors.NotOwner()
	}
	return instance, nil
}

func (uc *PurchaseUseCase) ListInstances(ctx context.Context, owner string, limit, offset int) ([]*entity.LicenseInstance, int64, error) {
	return uc.instanceRepo.ListByOwner(ctx, owner, limit, offset)
}
