package usecase

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
)

type WalletUseCase struct {
	walletRepo repository.WalletRepository
}

func NewWalletUseCase(walletRepo repository.WalletRepository) *WalletUseCase {
	return &WalletUseCase{walletRepo: walletRepo}
}

func (uc *WalletUseCase) GetWallet(ctx context.Context, address string) (*entity.Wallet, error) {
	return uc.walletRepo.GetOrCreate(ctx, address)
}

// Topup funds the caller's wallet. This is the development on-ramp; a
// production deployment replaces it with a payment-gateway callback.
func (uc *WalletUseCase) Topup(ctx context.Context, address string, amount uint64) (*entity.Wallet, error) {
	return uc.walletRepo.Credit(ctx, address, amount)
}
