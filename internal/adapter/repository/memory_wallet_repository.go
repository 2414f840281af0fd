package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
)

type memoryWalletRepository struct {
	store *MemoryStore
}

func NewMemoryWalletRepository(store *MemoryStore) repository.WalletRepository {
	return &memoryWalletRepository{store: store}
}

func (r *memoryWalletRepository) getOrCreateLocked(address string) *entity.Wallet {
	wallet, ok := r.store.wallets[address]
	if !ok {
		wallet = entity.NewWallet(address)
		r.store.wallets[address] = wallet
	}
	return wallet
}

func (r *memoryWalletRepository) GetOrCreate(ctx context.Context, address string) (*entity.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallet := r.getOrCreateLocked(address)
	clone := *wallet
	return &clone, nil
}

func (r *memoryWalletRepository) Credit(ctx context.Context, address string, amount uint64) (*entity.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallet := r.getOrCreateLocked(address)
	wallet.Credit(amount)
	clone := *wallet
	return &clone, nil
}

func (r *memoryWalletRepository) DebitExact(ctx context.Context, address string, amount uint64) (*entity.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallet := r.getOrCreateLocked(address)
	if err := wallet.DebitExact(amount); err != nil {
		return nil, err
	}
	clone := *wallet
	return &clone, nil
}

func (r *memoryWalletRepository) TotalBalance(ctx context.Context) (uint64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total uint64
	for _, wallet := range r.store.wallets {
		total += wallet.Balance
	}
	return total, nil
}
