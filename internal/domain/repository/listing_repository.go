package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.ResellerListing) error
	// GetByID fails with LISTING_NOT_FOUND.
	GetByID(ctx context.Context, id string) (*entity.ResellerListing, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ResellerListing, int64, error)
	Delete(ctx context.Context, id string) error
}
