package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
)

type LedgerRepository interface {
	// Deposit adds to the pool, creating it on first use. Never fails on
	// amount; zero-amount deposits are the caller's responsibility to skip.
	Deposit(ctx context.Context, key entity.PoolKey, amount uint64) error
	// DrainAll withdraws the full balance and zeroes the pool. Fails with
	// NO_FUNDS_AVAILABLE when the pool does not exist and EMPTY_POOL when
	// it holds zero.
	DrainAll(ctx context.Context, key entity.PoolKey) (uint64, error)
	// Withdraw removes an exact amount, reversing an earlier deposit when a
	// later step of the same operation failed. Fails with NO_FUNDS_AVAILABLE
	// when the pool is missing or holds less than amount.
	Withdraw(ctx context.Context, key entity.PoolKey, amount uint64) error
	// Balance reports the current total; missing pools read as zero.
	Balance(ctx context.Context, key entity.PoolKey) (uint64, error)
	// TotalBalance sums every pool, for conservation audits.
	TotalBalance(ctx context.Context) (uint64, error)
}
