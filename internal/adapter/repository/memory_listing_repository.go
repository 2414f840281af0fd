package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/errors"
)

type memoryListingRepository struct {
	store *MemoryStore
}

func NewMemoryListingRepository(store *MemoryStore) repository.ListingRepository {
	return &memoryListingRepository{store: store}
}

func (r *memoryListingRepository) Create(ctx context.Context, listing *entity.ResellerListing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.listings[listing.ID] = cloneListing(listing)
	r.store.listingOrder = append(r.store.listingOrder, listing.ID)
	return nil
}

func (r *memoryListingRepository) GetByID(ctx context.Context, id string) (*entity.ResellerListing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	listing, ok := r.store.listings[id]
	if !ok {
		return nil, errors.ListingNotFound(id)
	}
	return cloneListing(listing), nil
}

func (r *memoryListingRepository) List(ctx context.Context, limit, offset int) ([]*entity.ResellerListing, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := len(r.store.listingOrder)
	start, end := paginate(total, limit, offset)

	listings := make([]*entity.ResellerListing, 0, end-start)
	for _, id := range r.store.listingOrder[start:end] {
		listings = append(listings, cloneListing(r.store.listings[id]))
	}
	return listings, int64(total), nil
}

func (r *memoryListingRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.listings[id]; !ok {
		return errors.ListingNotFound(id)
	}
	delete(r.store.listings, id)
	for i, listingID := range r.store.listingOrder {
		if listingID == id {
			r.store.listingOrder = append(r.store.listingOrder[:i], r.store.listingOrder[i+1:]...)
			break
		}
	}
	return nil
}
