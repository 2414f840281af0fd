package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/errors"
)

// failingLedger rejects deposits into one pool, standing in for a driver
// that fails mid-operation.
type failingLedger struct {
	repository.LedgerRepository
	failDoc string
}

func (f *failingLedger) Deposit(ctx context.Context, key entity.PoolKey, amount uint64) error {
	if key.DocID() == f.failDoc {
		return errors.Internal("Ledger unavailable", nil)
	}
	return f.LedgerRepository.Deposit(ctx, key, amount)
}

// failingInstances rejects every create.
type failingInstances struct {
	repository.InstanceRepository
}

func (f *failingInstances) Create(ctx context.Context, instance *entity.LicenseInstance) error {
	return errors.Internal("Instance store unavailable", nil)
}

func TestRegisterGameRefundsOnDepositFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	catalog := NewCatalogUseCase(
		env.gameRepo, env.walletRepo,
		&failingLedger{env.ledgerRepo, entity.SubmissionPool().DocID()},
		env.capabilities, env.pricing, env.events, env.locks, testSubmissionFeeUSD,
	)

	env.fund(t, "publisher", testSubmissionFeeUSD)
	_, err := catalog.RegisterGame(ctx, "publisher", RegisterGameInput{
		GameID:   "game-1",
		Metadata: testMetadata("game-1"),
		Payment:  testSubmissionFeeUSD,
	})
	require.Error(t, err)

	// The debit was rolled back and no game was created.
	assert.Equal(t, uint64(testSubmissionFeeUSD), env.balance(t, "publisher"))
	_, err = env.catalog.GetGame(ctx, "game-1")
	assert.True(t, errors.Is(err, errors.CodeGameNotFound))
	assert.Equal(t, uint64(testSubmissionFeeUSD), env.systemTotal(t))
}

func TestPurchaseRefundsOnEscrowFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	capability := env.registerGame(t, "publisher", "game-1")
	license := env.createLicense(t, capability, "game-1", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 10000,
		LimitAuthCount:    1,
	})

	purchase := NewPurchaseUseCase(
		env.gameRepo, env.instanceRepo, env.walletRepo,
		&failingLedger{env.ledgerRepo, entity.GameEscrowPool("game-1").DocID()},
		env.pricing, env.events, env.locks, testPurchaseFeeBP,
	)

	env.fund(t, "buyer", 10000)
	total := env.systemTotal(t)

	_, err := purchase.Purchase(ctx, "buyer", "game-1", license.ID, 10000)
	require.Error(t, err)

	// The buyer got the full price back and the banked fee was reversed.
	assert.Equal(t, uint64(10000), env.balance(t, "buyer"))
	assert.Equal(t, uint64(0), env.poolBalance(t, entity.PurchaseFeePool()))
	assert.Equal(t, uint64(0), env.poolBalance(t, entity.GameEscrowPool("game-1")))

	_, count, err := env.purchase.ListInstances(ctx, "buyer", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, total, env.systemTotal(t))
}

func TestPurchaseRefundsOnMintFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	capability := env.registerGame(t, "publisher", "game-1")
	license := env.createLicense(t, capability, "game-1", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 10000,
		LimitAuthCount:    1,
	})

	purchase := NewPurchaseUseCase(
		env.gameRepo, &failingInstances{env.instanceRepo}, env.walletRepo,
		env.ledgerRepo, env.pricing, env.events, env.locks, testPurchaseFeeBP,
	)

	env.fund(t, "buyer", 10000)
	total := env.systemTotal(t)

	_, err := purchase.Purchase(ctx, "buyer", "game-1", license.ID, 10000)
	require.Error(t, err)

	// Both completed deposits were withdrawn again and the buyer refunded.
	assert.Equal(t, uint64(10000), env.balance(t, "buyer"))
	assert.Equal(t, uint64(0), env.poolBalance(t, entity.PurchaseFeePool()))
	assert.Equal(t, uint64(0), env.poolBalance(t, entity.GameEscrowPool("game-1")))
	assert.Equal(t, total, env.systemTotal(t))
}

func TestResellRefundsOnProceedsFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	instance := env.mintResalable(t, "alice")
	listing, err := env.resale.List(ctx, "alice", instance.ID, ListInstanceInput{
		ResellerName: "alice's shop",
		AskPriceUSD:  10000,
	})
	require.NoError(t, err)

	resale := NewResaleUseCase(
		env.gameRepo, env.instanceRepo, env.listingRepo, env.walletRepo,
		&failingLedger{env.ledgerRepo, entity.PayoutPool("alice").DocID()},
		env.pricing, env.events, env.locks,
	)

	env.fund(t, "bob", 10000)
	total := env.systemTotal(t)

	_, err = resale.Resell(ctx, "bob", listing.ID, 10000)
	require.Error(t, err)

	// The royalty deposit was reversed, the buyer refunded and the
	// listing is still for sale.
	assert.Equal(t, uint64(10000), env.balance(t, "bob"))
	assert.Equal(t, uint64(0), env.poolBalance(t, entity.RoyaltyPool("game-1")))

	_, err = env.resale.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, total, env.systemTotal(t))

	// With the store healthy again the sale goes through.
	resold, err := env.resale.Resell(ctx, "bob", listing.ID, 10000)
	require.NoError(t, err)
	assert.Equal(t, "bob", resold.Owner)
}
