package entity

import (
	"fmt"
	"time"

	"ludomarket/pkg/errors"
)

// BasisPointScale is the denominator for all rate math: 10000 bp = 100%.
const BasisPointScale = 10000

type PoolKind string

const (
	PoolSubmission  PoolKind = "submission"
	PoolPurchaseFee PoolKind = "purchase_fee"
	PoolGameEscrow  PoolKind = "game_escrow"
	PoolRoyalty     PoolKind = "royalty"
	PoolPayout      PoolKind = "payout"
)

// PoolKey addresses one accrued-fee pool. Kind and Ref are disjoint
// namespaces: game-keyed pools and address-keyed pools can never collide
// because they live under different kinds.
type PoolKey struct {
	Kind PoolKind `json:"kind" firestore:"kind"`
	Ref  string   `json:"ref,omitempty" firestore:"ref,omitempty"`
}

func SubmissionPool() PoolKey {
	return PoolKey{Kind: PoolSubmission}
}

func PurchaseFeePool() PoolKey {
	return PoolKey{Kind: PoolPurchaseFee}
}

func GameEscrowPool(gameID string) PoolKey {
	return PoolKey{Kind: PoolGameEscrow, Ref: gameID}
}

func RoyaltyPool(gameID string) PoolKey {
	return PoolKey{Kind: PoolRoyalty, Ref: gameID}
}

func PayoutPool(address string) PoolKey {
	return PoolKey{Kind: PoolPayout, Ref: address}
}

// DocID is the storage key for the pool. Stable across drivers.
func (k PoolKey) DocID() string {
	if k.Ref == "" {
		return string(k.Kind)
	}
	return fmt.Sprintf("%s_%s", k.Kind, k.Ref)
}

// Pool is an accumulating balance of platform token units. Balances grow
// through Deposit and shrink through a full drain, or through an exact
// Withdraw when a deposit has to be reversed; all arithmetic is unsigned
// integer.
type Pool struct {
	Kind      PoolKind  `json:"kind" firestore:"kind"`
	Ref       string    `json:"ref,omitempty" firestore:"ref,omitempty"`
	Balance   uint64    `json:"balance" firestore:"balance"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func NewPool(key PoolKey) *Pool {
	now := time.Now()
	return &Pool{
		Kind:      key.Kind,
		Ref:       key.Ref,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Pool) Key() PoolKey {
	return PoolKey{Kind: p.Kind, Ref: p.Ref}
}

func (p *Pool) Deposit(amount uint64) {
	p.Balance += amount
	p.UpdatedAt = time.Now()
}

// WithdrawAll drains the pool to zero and returns the drained amount.
func (p *Pool) WithdrawAll() (uint64, error) {
	if p.Balance == 0 {
		return 0, errors.EmptyPool()
	}
	amount := p.Balance
	p.Balance = 0
	p.UpdatedAt = time.Now()
	return amount, nil
}

// Withdraw removes an exact amount, reversing an earlier deposit of the
// same size.
func (p *Pool) Withdraw(amount uint64) error {
	if p.Balance < amount {
		return errors.NoFundsAvailable()
	}
	p.Balance -= amount
	p.UpdatedAt = time.Now()
	return nil
}

// FeeAmount computes floor(amount * rateBP / 10000). A zero result means
// the transfer is skipped entirely by callers. The quotient/remainder
// split keeps the intermediate product inside uint64 for any amount.
func FeeAmount(amount, rateBP uint64) uint64 {
	return amount/BasisPointScale*rateBP + amount%BasisPointScale*rateBP/BasisPointScale
}

// DiscountedPrice applies a basis-point discount with floor rounding.
// A zero discount leaves the price untouched.
func DiscountedPrice(price, discountBP uint64) uint64 {
	if discountBP == 0 {
		return price
	}
	return price - FeeAmount(price, discountBP)
}
