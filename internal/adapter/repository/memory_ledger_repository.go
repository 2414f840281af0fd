package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/errors"
)

type memoryLedgerRepository struct {
	store *MemoryStore
}

func NewMemoryLedgerRepository(store *MemoryStore) repository.LedgerRepository {
	return &memoryLedgerRepository{store: store}
}

func (r *memoryLedgerRepository) Deposit(ctx context.Context, key entity.PoolKey, amount uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pool, ok := r.store.pools[key.DocID()]
	if !ok {
		pool = entity.NewPool(key)
		r.store.pools[key.DocID()] = pool
	}
	pool.Deposit(amount)
	return nil
}

func (r *memoryLedgerRepository) DrainAll(ctx context.Context, key entity.PoolKey) (uint64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pool, ok := r.store.pools[key.DocID()]
	if !ok {
		return 0, errors.NoFundsAvailable()
	}
	return pool.WithdrawAll()
}

func (r *memoryLedgerRepository) Withdraw(ctx context.Context, key entity.PoolKey, amount uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pool, ok := r.store.pools[key.DocID()]
	if !ok {
		return errors.NoFundsAvailable()
	}
	return pool.Withdraw(amount)
}

func (r *memoryLedgerRepository) Balance(ctx context.Context, key entity.PoolKey) (uint64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pool, ok := r.store.pools[key.DocID()]
	if !ok {
		return 0, nil
	}
	return pool.Balance, nil
}

func (r *memoryLedgerRepository) TotalBalance(ctx context.Context) (uint64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total uint64
	for _, pool := range r.store.pools {
		total += pool.Balance
	}
	return total, nil
}
