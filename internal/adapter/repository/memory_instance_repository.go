package repository

import (
	"context"
	"sort"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/errors"
)

type memoryInstanceRepository struct {
	store *MemoryStore
}

func NewMemoryInstanceRepository(store *MemoryStore) repository.InstanceRepository {
	return &memoryInstanceRepository{store: store}
}

func (r *memoryInstanceRepository) Create(ctx context.Context, instance *entity.LicenseInstance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.instances[instance.ID] = cloneInstance(instance)
	return nil
}

func (r *memoryInstanceRepository) GetByID(ctx context.Context, id string) (*entity.LicenseInstance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	instance, ok := r.store.instances[id]
	if !ok {
		return nil, errors.InstanceNotFound(id)
	}
	return cloneInstance(instance), nil
}

func (r *memoryInstanceRepository) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]*entity.LicenseInstance, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var owned []*entity.LicenseInstance
	for _, instance := range r.store.instances {
		if instance.Owner == owner {
			owned = append(owned, cloneInstance(instance))
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})

	total := len(owned)
	start, end := paginate(total, limit, offset)
	return owned[start:end], int64(total), nil
}

func (r *memoryInstanceRepository) Update(ctx context.Context, instance *entity.LicenseInstance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.instances[instance.ID]; !ok {
		return errors.InstanceNotFound(instance.ID)
	}
	r.store.instances[instance.ID] = cloneInstance(instance)
	return nil
}

func (r *memoryInstanceRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.instances[id]; !ok {
		return errors.InstanceNotFound(id)
	}
	delete(r.store.instances, id)
	return nil
}
