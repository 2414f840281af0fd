package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	adapterrepo "ludomarket/internal/adapter/repository"
	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/internal/domain/service"
)

const (
	testMarketplaceID    = "marketplace-root"
	testSubmissionFeeUSD = 100
	testPurchaseFeeBP    = 100
)

// eventRecorder captures published events for assertion.
type eventRecorder struct {
	mu     sync.Mutex
	events []entity.Event
}

func (r *eventRecorder) Publish(event entity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	gameRepo     repository.GameRepository
	instanceRepo repository.InstanceRepository
	listingRepo  repository.ListingRepository
	walletRepo   repository.WalletRepository
	ledgerRepo   repository.LedgerRepository
	capabilities *service.CapabilityAuthority
	pricing      service.PricingOracle
	events       *eventRecorder
	locks        *OpLocks

	catalog    *CatalogUseCase
	purchase   *PurchaseUseCase
	activation *ActivationUseCase
	resale     *ResaleUseCase
	payout     *PayoutUseCase
	wallet     *WalletUseCase
}

// newTestEnv wires every use case over a shared in-memory store with a
// 1:1 USD-to-token rate, so amounts in tests read as USD.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := adapterrepo.NewMemoryStore()
	env := &testEnv{
		gameRepo:     adapterrepo.NewMemoryGameRepository(store),
		instanceRepo: adapterrepo.NewMemoryInstanceRepository(store),
		listingRepo:  adapterrepo.NewMemoryListingRepository(store),
		walletRepo:   adapterrepo.NewMemoryWalletRepository(store),
		ledgerRepo:   adapterrepo.NewMemoryLedgerRepository(store),
		capabilities: service.NewCapabilityAuthority("test-secret"),
		pricing:      service.NewFixedRatePricing(1),
		events:       &eventRecorder{},
		locks:        NewOpLocks(),
	}

	env.catalog = NewCatalogUseCase(env.gameRepo, env.walletRepo, env.ledgerRepo, env.capabilities, env.pricing, env.events, env.locks, testSubmissionFeeUSD)
	env.purchase = NewPurchaseUseCase(env.gameRepo, env.instanceRepo, env.walletRepo, env.ledgerRepo, env.pricing, env.events, env.locks, testPurchaseFeeBP)
	env.activation = NewActivationUseCase(env.gameRepo, env.instanceRepo, env.locks)
	env.resale = NewResaleUseCase(env.gameRepo, env.instanceRepo, env.listingRepo, env.walletRepo, env.ledgerRepo, env.pricing, env.events, env.locks)
	env.payout = NewPayoutUseCase(env.gameRepo, env.walletRepo, env.ledgerRepo, env.capabilities, env.events, env.locks, testMarketplaceID)
	env.wallet = NewWalletUseCase(env.walletRepo)
	return env
}

func (env *testEnv) fund(t *testing.T, address string, amount uint64) {
	t.Helper()
	_, err := env.walletRepo.Credit(context.Background(), address, amount)
	require.NoError(t, err)
}

func (env *testEnv) balance(t *testing.T, address string) uint64 {
	t.Helper()
	wallet, err := env.walletRepo.GetOrCreate(context.Background(), address)
	require.NoError(t, err)
	return wallet.Balance
}

func (env *testEnv) poolBalance(t *testing.T, key entity.PoolKey) uint64 {
	t.Helper()
	balance, err := env.ledgerRepo.Balance(context.Background(), key)
	require.NoError(t, err)
	return balance
}

// systemTotal sums wallets and pools; operations never create or destroy
// value, so this stays constant across purchases, resales and payouts.
func (env *testEnv) systemTotal(t *testing.T) uint64 {
	t.Helper()
	wallets, err := env.walletRepo.TotalBalance(context.Background())
	require.NoError(t, err)
	pools, err := env.ledgerRepo.TotalBalance(context.Background())
	require.NoError(t, err)
	return wallets + pools
}

func testMetadata(name string) entity.GameMetadata {
	return entity.GameMetadata{
		Name:      name,
		CoverURL:  "https://cdn.example.com/cover.png",
		Genre:     "rpg",
		Developer: "studio",
		Publisher: "publisher",
		ShortDescriptions: map[string]string{
			"en": "An example game",
			"ja": "サンプルゲーム",
		},
		Languages: []string{"en", "ja"},
		Platforms: []string{"windows"},
	}
}

// registerGame funds the publisher, registers a game and returns the
// publisher capability bound to it.
func (env *testEnv) registerGame(t *testing.T, publisher, gameID string) string {
	t.Helper()
	env.fund(t, publisher, testSubmissionFeeUSD)
	registered, err := env.catalog.RegisterGame(context.Background(), publisher, RegisterGameInput{
		GameID:   gameID,
		Metadata: testMetadata(gameID),
		Payment:  testSubmissionFeeUSD,
	})
	require.NoError(t, err)
	return registered.Capability
}

func (env *testEnv) createLicense(t *testing.T, capability, gameID string, input CreateLicenseInput) *entity.License {
	t.Helper()
	license, err := env.catalog.CreateLicense(context.Background(), capability, gameID, input)
	require.NoError(t, err)
	return license
}
