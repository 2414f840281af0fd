package usecase

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/logger"
)

// poolReversal records one deposit a failed operation has to take back.
type poolReversal struct {
	key    entity.PoolKey
	amount uint64
}

// reverse undoes the completed money movements of a failed operation:
// deposits come back out of their pools and the payer gets the debited
// amount back. Zero entries are skipped, matching the zero-skip on the
// forward path. A reversal step that itself fails is logged for manual
// reconciliation; the operation's error is reported regardless.
func reverse(
	ctx context.Context,
	ledgerRepo repository.LedgerRepository,
	walletRepo repository.WalletRepository,
	payer string,
	amount uint64,
	deposits []poolReversal,
) {
	for _, d := range deposits {
		if d.amount == 0 {
			continue
		}
		if err := ledgerRepo.Withdraw(ctx, d.key, d.amount); err != nil {
			logger.Error("Failed to reverse deposit of %d into pool %s: %v", d.amount, d.key.DocID(), err)
		}
	}

	if amount == 0 {
		return
	}
	if _, err := walletRepo.Credit(ctx, payer, amount); err != nil {
		logger.Error("Failed to refund %d to %s: %v", amount, payer, err)
	}
}
