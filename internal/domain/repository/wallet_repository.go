package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
)

type WalletRepository interface {
	// GetOrCreate returns the wallet for address, creating an empty one on
	// first use.
	GetOrCreate(ctx context.Context, address string) (*entity.Wallet, error)
	Credit(ctx context.Context, address string, amount uint64) (*entity.Wallet, error)
	// DebitExact fails with INSUFFICIENT_BALANCE when the wallet holds less
	// than amount.
	DebitExact(ctx context.Context, address string, amount uint64) (*entity.Wallet, error)
	// TotalBalance sums every wallet, for conservation audits.
	TotalBalance(ctx context.Context) (uint64, error)
}
