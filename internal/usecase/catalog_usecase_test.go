package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludomarket/internal/domain/entity"
	"ludomarket/pkg/errors"
)

func TestRegisterGame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.fund(t, "publisher", testSubmissionFeeUSD)
	registered, err := env.catalog.RegisterGame(ctx, "publisher", RegisterGameInput{
		GameID:   "game-1",
		Metadata: testMetadata("game-1"),
		Payment:  testSubmissionFeeUSD,
	})
	require.NoError(t, err)

	assert.Equal(t, "game-1", registered.Game.ID)
	assert.NotEmpty(t, registered.Capability)
	assert.NoError(t, env.capabilities.Authorize(registered.Capability, "publisher", "game-1"))

	// The submission fee moved from the wallet into the submission pool.
	assert.Equal(t, uint64(0), env.balance(t, "publisher"))
	assert.Equal(t, uint64(testSubmissionFeeUSD), env.poolBalance(t, entity.SubmissionPool()))
	assert.Equal(t, []string{entity.EventGameRegistered}, env.events.types())
}

func TestRegisterGameDuplicateID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerGame(t, "publisher", "game-1")

	env.fund(t, "other", testSubmissionFeeUSD)
	_, err := env.catalog.RegisterGame(ctx, "other", RegisterGameInput{
		GameID:   "game-1",
		Metadata: testMetadata("game-1"),
		Payment:  testSubmissionFeeUSD,
	})
	assert.True(t, errors.Is(err, errors.CodeDuplicateGameID))

	// Rejected registration takes nothing.
	assert.Equal(t, uint64(testSubmissionFeeUSD), env.balance(t, "other"))
}

func TestRegisterGameFeeMismatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.fund(t, "publisher", testSubmissionFeeUSD*2)

	for _, payment := range []uint64{0, testSubmissionFeeUSD - 1, testSubmissionFeeUSD + 1} {
		_, err := env.catalog.RegisterGame(ctx, "publisher", RegisterGameInput{
			GameID:   "game-1",
			Metadata: testMetadata("game-1"),
			Payment:  payment,
		})
		assert.True(t, errors.Is(err, errors.CodeInsufficientFee), "payment=%d", payment)
	}
	assert.Equal(t, uint64(testSubmissionFeeUSD*2), env.balance(t, "publisher"))
}

func TestRegisterGameUnfundedWallet(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.RegisterGame(context.Background(), "broke", RegisterGameInput{
		GameID:   "game-1",
		Metadata: testMetadata("game-1"),
		Payment:  testSubmissionFeeUSD,
	})
	assert.True(t, errors.Is(err, errors.CodeInsufficientBalance))
}

func TestRegisterGameBadLanguageKey(t *testing.T) {
	env := newTestEnv(t)

	metadata := testMetadata("game-1")
	metadata.ShortDescriptions = map[string]string{"eng": "three-letter key"}

	_, err := env.catalog.RegisterGame(context.Background(), "publisher", RegisterGameInput{
		GameID:   "game-1",
		Metadata: metadata,
		Payment:  testSubmissionFeeUSD,
	})
	assert.True(t, errors.Is(err, errors.CodeMalformedLanguagePair))
}

func TestCreateLicense(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	capability := env.registerGame(t, "publisher", "game-1")

	license := env.createLicense(t, capability, "game-1", CreateLicenseInput{
		Name:              "Deluxe",
		PublisherPriceUSD: 10000,
		DiscountRateBP:    2500,
		RoyaltyRateBP:     500,
		PermitResale:      true,
		LimitAuthCount:    3,
	})

	assert.NotEmpty(t, license.ID)
	assert.Equal(t, "game-1", license.GameID)
	assert.Equal(t, uint64(7500), license.EffectivePriceUSD())

	got, err := env.catalog.GetLicense(ctx, "game-1", license.ID)
	require.NoError(t, err)
	assert.Equal(t, license.Name, got.Name)

	byIndex, err := env.catalog.GetLicenseAt(ctx, "game-1", 0)
	require.NoError(t, err)
	assert.Equal(t, license.ID, byIndex.ID)
}

func TestCreateLicenseRequiresMatchingCapability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerGame(t, "publisher", "game-1")
	otherCap := env.registerGame(t, "publisher", "game-2")

	// A capability for game-2 does not authorize game-1.
	_, err := env.catalog.CreateLicense(ctx, otherCap, "game-1", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 100,
		LimitAuthCount:    1,
	})
	assert.True(t, errors.Is(err, errors.CodeNotPublisher))

	_, err = env.catalog.CreateLicense(ctx, "garbage-token", "game-1", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 100,
		LimitAuthCount:    1,
	})
	assert.True(t, errors.Is(err, errors.CodeNotPublisher))
}

func TestCreateLicenseInvalidRates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	capability := env.registerGame(t, "publisher", "game-1")

	_, err := env.catalog.CreateLicense(ctx, capability, "game-1", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 100,
		DiscountRateBP:    10001,
		LimitAuthCount:    1,
	})
	assert.True(t, errors.Is(err, errors.CodeInvalidDiscountRate))

	_, err = env.catalog.CreateLicense(ctx, capability, "game-1", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 100,
		RoyaltyRateBP:     10001,
		LimitAuthCount:    1,
	})
	assert.True(t, errors.Is(err, errors.CodeInvalidRoyaltyRate))
}

func TestCreateLicenseGameNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateLicense(context.Background(), "whatever", "missing", CreateLicenseInput{
		Name:              "Standard",
		PublisherPriceUSD: 100,
		LimitAuthCount:    1,
	})
	assert.True(t, errors.Is(err, errors.CodeGameNotFound))
}

func TestGetLicenseAtOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerGame(t, "publisher", "game-1")

	_, err := env.catalog.GetLicenseAt(ctx, "game-1", 0)
	assert.True(t, errors.Is(err, errors.CodeIndexOutOfRange))

	_, err = env.catalog.GetLicenseAt(ctx, "game-1", -1)
	assert.True(t, errors.Is(err, errors.CodeIndexOutOfRange))
}

func TestListGames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerGame(t, "publisher", "game-1")
	env.registerGame(t, "publisher", "game-2")
	env.registerGame(t, "publisher", "game-3")

	games, total, err := env.catalog.ListGames(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, games, 2)
	assert.Equal(t, "game-1", games[0].ID)
	assert.Equal(t, "game-2", games[1].ID)

	games, _, err = env.catalog.ListGames(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "game-3", games[0].ID)
}

func TestUpdateGameMetadataIsValidatedNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	capability := env.registerGame(t, "publisher", "game-1")
	original, err := env.catalog.GetGame(ctx, "game-1")
	require.NoError(t, err)

	updated := testMetadata("renamed")
	_, err = env.catalog.UpdateGameMetadata(ctx, capability, "game-1", UpdateGameInput{Metadata: updated})
	require.NoError(t, err)

	after, err := env.catalog.GetGame(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, original.Metadata.Name, after.Metadata.Name)

	_, err = env.catalog.UpdateGameMetadata(ctx, "bad-token", "game-1", UpdateGameInput{Metadata: updated})
	assert.True(t, errors.Is(err, errors.CodeNotPublisher))
}
