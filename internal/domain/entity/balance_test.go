package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludomarket/pkg/errors"
)

func TestPoolDepositAndWithdrawAll(t *testing.T) {
	pool := NewPool(SubmissionPool())

	pool.Deposit(100)
	pool.Deposit(250)
	assert.Equal(t, uint64(350), pool.Balance)

	amount, err := pool.WithdrawAll()
	require.NoError(t, err)
	assert.Equal(t, uint64(350), amount)
	assert.Equal(t, uint64(0), pool.Balance)
}

func TestPoolWithdrawAllEmpty(t *testing.T) {
	pool := NewPool(PurchaseFeePool())

	_, err := pool.WithdrawAll()
	assert.True(t, errors.Is(err, errors.CodeEmptyPool))

	// A drained pool behaves like an empty one.
	pool.Deposit(10)
	_, err = pool.WithdrawAll()
	require.NoError(t, err)
	_, err = pool.WithdrawAll()
	assert.True(t, errors.Is(err, errors.CodeEmptyPool))
}

func TestPoolWithdrawExactAmount(t *testing.T) {
	pool := NewPool(RoyaltyPool("g1"))
	pool.Deposit(500)

	require.NoError(t, pool.Withdraw(200))
	assert.Equal(t, uint64(300), pool.Balance)

	err := pool.Withdraw(301)
	assert.True(t, errors.Is(err, errors.CodeNoFundsAvailable))
	assert.Equal(t, uint64(300), pool.Balance)
}

func TestPoolKeyNamespaces(t *testing.T) {
	// Game-keyed and address-keyed pools must never collide, even when a
	// game id equals an address string.
	escrow := GameEscrowPool("alice")
	payout := PayoutPool("alice")
	assert.NotEqual(t, escrow.DocID(), payout.DocID())

	assert.Equal(t, "submission", SubmissionPool().DocID())
	assert.Equal(t, "game_escrow_g1", GameEscrowPool("g1").DocID())
}

func TestFeeAmountTruncates(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		rateBP uint64
		want   uint64
	}{
		{"worked example", 7500, 100, 75},
		{"royalty example", 10000, 500, 500},
		{"truncation", 999, 100, 9},
		{"sub-unit truncates to zero", 99, 100, 0},
		{"zero rate", 10000, 0, 0},
		{"full rate", 10000, 10000, 10000},
		{"large balance", 1 << 62, 2500, 1 << 60},
		{"large balance full rate", 1<<64 - 1, 10000, 1<<64 - 1},
		{"large balance odd rate", 1e18, 333, 33300000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeAmount(tt.amount, tt.rateBP))
		})
	}
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, uint64(7500), DiscountedPrice(10000, 2500))
	assert.Equal(t, uint64(10000), DiscountedPrice(10000, 0))
	assert.Equal(t, uint64(0), DiscountedPrice(10000, 10000))
}

func TestDiscountedPriceMonotonic(t *testing.T) {
	const price = 10000
	prev := DiscountedPrice(price, 0)
	for bp := uint64(1); bp <= 10000; bp += 7 {
		cur := DiscountedPrice(price, bp)
		assert.LessOrEqual(t, cur, prev, "discount %d bp", bp)
		prev = cur
	}
}
