package usecase

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/internal/domain/service"
	"ludomarket/pkg/errors"
	"ludomarket/pkg/logger"
)

// PayoutUseCase drains accrued-fee pools to their beneficiaries. Platform
// pools need a platform capability bound to the marketplace root, game
// pools a publisher capability bound to the game, and the per-address
// payout pool only the ambient caller identity.
type PayoutUseCase struct {
	gameRepo      repository.GameRepository
	walletRepo    repository.WalletRepository
	ledgerRepo    repository.LedgerRepository
	capabilities  *service.CapabilityAuthority
	events        EventBus
	locks         *OpLocks
	marketplaceID string
}

func NewPayoutUseCase(
	gameRepo repository.GameRepository,
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	capabilities *service.CapabilityAuthority,
	events EventBus,
	locks *OpLocks,
	marketplaceID string,
) *PayoutUseCase {
	return &PayoutUseCase{
		gameRepo:      gameRepo,
		walletRepo:    walletRepo,
		ledgerRepo:    ledgerRepo,
		capabilities:  capabilities,
		events:        events,
		locks:         locks,
		marketplaceID: marketplaceID,
	}
}

type PayoutResult struct {
	Pool   string `json:"pool"`
	Amount uint64 `json:"amount"`
}

// WithdrawPlatformPool drains the submission or purchase-fee pool.
func (uc *PayoutUseCase) WithdrawPlatformPool(ctx context.Context, caller, capability string, kind entity.PoolKind) (*PayoutResult, error) {
	if kind != entity.PoolSubmission && kind != entity.PoolPurchaseFee {
		return nil, errors.BadRequest("Unknown platform pool", nil)
	}

	if err := uc.capabilities.Authorize(capability, service.CapabilityPlatform, uc.marketplaceID); err != nil {
		return nil, err
	}

	return uc.drain(ctx, caller, entity.PoolKey{Kind: kind})
}

// WithdrawGamePool drains a game's sales escrow or royalty pool.
func (uc *PayoutUseCase) WithdrawGamePool(ctx context.Context, caller, capability, gameID string, kind entity.PoolKind) (*PayoutResult, error) {
	if kind != entity.PoolGameEscrow && kind != entity.PoolRoyalty {
		return nil, errors.BadRequest("Unknown game pool", nil)
	}

	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := uc.capabilities.Authorize(capability, service.CapabilityPublisher, game.ID); err != nil {
		return nil, err
	}

	return uc.drain(ctx, caller, entity.PoolKey{Kind: kind, Ref: game.ID})
}

// WithdrawPayout drains the caller's own resale payout pool. No capability
// object here: being the address is the proof.
func (uc *PayoutUseCase) WithdrawPayout(ctx context.Context, caller string) (*PayoutResult, error) {
	return uc.drain(ctx, caller, entity.PayoutPool(caller))
}

func (uc *PayoutUseCase) drain(ctx context.Context, beneficiary string, key entity.PoolKey) (*PayoutResult, error) {
	defer uc.locks.Lock(poolLockKey(key.DocID()))()

	amount, err := uc.ledgerRepo.DrainAll(ctx, key)
	if err != nil {
		if errors.Is(err, errors.CodeEmptyPool) {
			return nil, errors.NoFundsAvailable()
		}
		return nil, err
	}

	if _, err := uc.walletRepo.Credit(ctx, beneficiary, amount); err != nil {
		if derr := uc.ledgerRepo.Deposit(ctx, key, amount); derr != nil {
			logger.Error("Failed to restore %d to pool %s after payout failure: %v", amount, key.DocID(), derr)
		}
		return nil, err
	}

	event := entity.NewEvent(entity.EventWithdrawn)
	event.Pool = key.DocID()
	event.Amount = amount
	uc.events.Publish(event)

	logger.Info("Pool drained: pool=%s amount=%d beneficiary=%s", key.DocID(), amount, beneficiary)

	return &PayoutResult{Pool: key.DocID(), Amount: amount}, nil
}
