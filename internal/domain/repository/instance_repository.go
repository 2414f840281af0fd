package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
)

type InstanceRepository interface {
	Create(ctx context.Context, instance *entity.LicenseInstance) error
	// GetByID fails with INSTANCE_NOT_FOUND.
	GetByID(ctx context.Context, id string) (*entity.LicenseInstance, error)
	ListByOwner(ctx context.Context, owner string, limit, offset int) ([]*entity.LicenseInstance, int64, error)
	Update(ctx context.Context, instance *entity.LicenseInstance) error
	// Delete removes the instance record; used when a listing consumes it.
	Delete(ctx context.Context, id string) error
}
