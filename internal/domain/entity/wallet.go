package entity

import (
	"time"

	"ludomarket/pkg/errors"
)

// Wallet holds an address's token balance. Purchases debit the buyer's
// wallet; withdrawals credit the beneficiary's wallet. Integer units only.
type Wallet struct {
	Address   string    `json:"address" firestore:"address"`
	Balance   uint64    `json:"balance" firestore:"balance"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func NewWallet(address string) *Wallet {
	now := time.Now()
	return &Wallet{
		Address:   address,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (w *Wallet) Credit(amount uint64) {
	w.Balance += amount
	w.UpdatedAt = time.Now()
}

// DebitExact splits an exact amount out of the wallet.
func (w *Wallet) DebitExact(amount uint64) error {
	if w.Balance < amount {
		return errors.InsufficientBalance()
	}
	w.Balance -= amount
	w.UpdatedAt = time.Now()
	return nil
}
