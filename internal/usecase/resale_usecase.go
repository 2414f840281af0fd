package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/internal/domain/service"
	"ludomarket/pkg/errors"
	"ludomarket/pkg/logger"
)

type ResaleUseCase struct {
	gameRepo     repository.GameRepository
	instanceRepo repository.InstanceRepository
	listingRepo  repository.ListingRepository
	walletRepo   repository.WalletRepository
	ledgerRepo   repository.LedgerRepository
	pricing      service.PricingOracle
	events       EventBus
	locks        *OpLocks
}

func NewResaleUseCase(
	gameRepo repository.GameRepository,
	instanceRepo repository.InstanceRepository,
	listingRepo repository.ListingRepository,
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	pricing service.PricingOracle,
	events EventBus,
	locks *OpLocks,
) *ResaleUseCase {
	return &ResaleUseCase{
		gameRepo:     gameRepo,
		instanceRepo: instanceRepo,
		listingRepo:  listingRepo,
		walletRepo:   walletRepo,
		ledgerRepo:   ledgerRepo,
		pricing:      pricing,
		events:       events,
		locks:        locks,
	}
}

type ListInstanceInput struct {
	ResellerName string
	Description  string
	AskPriceUSD  uint64
}

// List consumes the caller's instance into a new resale listing. The
// instance leaves direct ownership atomically with listing creation. An
// instance with every activation spent cannot be listed, and the
// originating license must permit resale.
func (uc *ResaleUseCase) List(ctx context.Context, caller, instanceID string, input ListInstanceInput) (*entity.ResellerListing, error) {
	defer uc.locks.Lock(instanceLockKey(instanceID))()

	instance, err := uc.instanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	if instance.Owner != caller {
		return nil, errors.NotOwner()
	}

	game, err := uc.gameRepo.GetByID(ctx, instance.GameID)
	if err != nil {
		return nil, err
	}

	license, err := game.LicenseByID(instance.LicenseID)
	if err != nil {
		return nil, err
	}

	if !license.PermitResale {
		return nil, errors.ResaleNotPermitted()
	}

	if instance.Exhausted(license) {
		return nil, errors.AuthLimitExceeded()
	}

	listing := entity.NewResellerListing(uuid.New().String(), instance, input.ResellerName, input.Description, input.AskPriceUSD)
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	if err := uc.instanceRepo.Delete(ctx, instance.ID); err != nil {
		if derr := uc.listingRepo.Delete(ctx, listing.ID); derr != nil {
			logger.Error("Failed to remove listing %s after list failure: %v", listing.ID, derr)
		}
		return nil, err
	}

	event := entity.NewEvent(entity.EventListed)
	event.GameID = instance.GameID
	event.InstanceID = instance.ID
	event.ListingID = listing.ID
	uc.events.Publish(event)

	return listing, nil
}

// Resell sells a listing to the buyer: the royalty computed from the live
// license goes to the game's royalty pool, the remainder to the original
// owner's payout pool, and the extracted instance is re-released to the
// buyer with its activation history intact.
func (uc *ResaleUseCase) Resell(ctx context.Context, buyer, listingID string, payment uint64) (*entity.LicenseInstance, error) {
	defer uc.locks.Lock(listingLockKey(listingID))()

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	price := uc.pricing.UsdToToken(listing.AskPriceUSD)
	if payment != price {
		return nil, errors.InsufficientFunds(price)
	}

	game, err := uc.gameRepo.GetByID(ctx, listing.Instance.GameID)
	if err != nil {
		return nil, err
	}

	license, err := game.LicenseByID(listing.Instance.LicenseID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.walletRepo.DebitExact(ctx, buyer, price); err != nil {
		return nil, err
	}

	royalty := entity.FeeAmount(price, license.RoyaltyRateBP)
	if royalty > 0 {
		if err := uc.ledgerRepo.Deposit(ctx, entity.RoyaltyPool(game.ID), royalty); err != nil {
			reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, nil)
			return nil, err
		}
	}

	proceeds := price - royalty
	if proceeds > 0 {
		if err := uc.ledgerRepo.Deposit(ctx, entity.PayoutPool(listing.Seller()), proceeds); err != nil {
			reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, []poolReversal{
				{entity.RoyaltyPool(game.ID), royalty},
			})
			return nil, err
		}
	}

	reversals := []poolReversal{
		{entity.RoyaltyPool(game.ID), royalty},
		{entity.PayoutPool(listing.Seller()), proceeds},
	}

	instance := listing.Instance
	instance.Owner = buyer
	instance.UpdatedAt = time.Now()
	if err := uc.instanceRepo.Create(ctx, &instance); err != nil {
		reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, reversals)
		return nil, err
	}

	if err := uc.listingRepo.Delete(ctx, listing.ID); err != nil {
		if derr := uc.instanceRepo.Delete(ctx, instance.ID); derr != nil {
			logger.Error("Failed to remove instance %s after resale failure: %v", instance.ID, derr)
		}
		reverse(ctx, uc.ledgerRepo, uc.walletRepo, buyer, price, reversals)
		return nil, err
	}

	event := entity.NewEvent(entity.EventResold)
	event.ListingID = listing.ID
	event.InstanceID = instance.ID
	event.Amount = price
	uc.events.Publish(event)

	logger.Info("Listing resold: listing=%s instance=%s", listing.ID, instance.ID)

	return &instance, nil
}

func (uc *ResaleUseCase) GetListing(ctx context.Context, listingID string) (*entity.ResellerListing, error) {
	return uc.listingRepo.GetByID(ctx, listingID)
}

func (uc *ResaleUseCase) ListListings(ctx context.Context, limit, offset int) ([]*entity.ResellerListing, int64, error) {
	return uc.listingRepo.List(ctx, limit, offset)
}
