package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludomarket/internal/domain/entity"
	"ludomarket/pkg/errors"
)

// run fires fn from n goroutines behind a shared start barrier and
// returns the per-goroutine errors.
func run(n int, fn func(i int) error) []error {
	start := make(chan struct{})
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}

func TestConcurrentListSameInstance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	instance := env.mintResalable(t, "alice")

	errs := run(4, func(int) error {
		_, err := env.resale.List(ctx, "alice", instance.ID, ListInstanceInput{
			ResellerName: "alice's shop",
			AskPriceUSD:  100,
		})
		return err
	})

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, errors.Is(err, errors.CodeInstanceNotFound))
	}
	assert.Equal(t, 1, wins)

	// Exactly one listing exists and the instance left direct ownership.
	_, total, err := env.resale.ListListings(ctx, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, err = env.instanceRepo.GetByID(ctx, instance.ID)
	assert.True(t, errors.Is(err, errors.CodeInstanceNotFound))
}

func TestConcurrentRegisterSameGameID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const workers = 4
	for i := 0; i < workers; i++ {
		env.fund(t, fmt.Sprintf("caller%d", i), testSubmissionFeeUSD)
	}

	errs := run(workers, func(i int) error {
		_, err := env.catalog.RegisterGame(ctx, fmt.Sprintf("caller%d", i), RegisterGameInput{
			GameID:   "game-1",
			Metadata: testMetadata("game-1"),
			Payment:  testSubmissionFeeUSD,
		})
		return err
	})

	var wins int
	for i, err := range errs {
		if err == nil {
			wins++
			assert.Equal(t, uint64(0), env.balance(t, fmt.Sprintf("caller%d", i)))
			continue
		}
		assert.True(t, errors.Is(err, errors.CodeDuplicateGameID))
		// A losing registration keeps its fee.
		assert.Equal(t, uint64(testSubmissionFeeUSD), env.balance(t, fmt.Sprintf("caller%d", i)))
	}
	assert.Equal(t, 1, wins)

	assert.Equal(t, uint64(testSubmissionFeeUSD), env.poolBalance(t, entity.SubmissionPool()))
	assert.Equal(t, uint64(workers*testSubmissionFeeUSD), env.systemTotal(t))
}

func TestConcurrentBuySameListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	instance := env.mintResalable(t, "alice")
	listing, err := env.resale.List(ctx, "alice", instance.ID, ListInstanceInput{
		ResellerName: "alice's shop",
		AskPriceUSD:  10000,
	})
	require.NoError(t, err)

	const workers = 3
	for i := 0; i < workers; i++ {
		env.fund(t, fmt.Sprintf("buyer%d", i), 10000)
	}
	total := env.systemTotal(t)

	errs := run(workers, func(i int) error {
		_, err := env.resale.Resell(ctx, fmt.Sprintf("buyer%d", i), listing.ID, 10000)
		return err
	})

	var wins int
	for i, err := range errs {
		if err == nil {
			wins++
			assert.Equal(t, uint64(0), env.balance(t, fmt.Sprintf("buyer%d", i)))
			continue
		}
		assert.True(t, errors.Is(err, errors.CodeListingNotFound))
		assert.Equal(t, uint64(10000), env.balance(t, fmt.Sprintf("buyer%d", i)))
	}
	assert.Equal(t, 1, wins)

	// One owner, one instance, no listing left, nothing minted or lost.
	got, err := env.instanceRepo.GetByID(ctx, instance.ID)
	require.NoError(t, err)
	assert.Contains(t, got.Owner, "buyer")
	assert.Equal(t, total, env.systemTotal(t))
}
