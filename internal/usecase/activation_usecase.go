package usecase

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
)

// ActivationUseCase is the authentication gate: it enforces the per-
// instance activation cap and the single-current-user binding.
type ActivationUseCase struct {
	gameRepo     repository.GameRepository
	instanceRepo repository.InstanceRepository
	locks        *OpLocks
}

func NewActivationUseCase(
	gameRepo repository.GameRepository,
	instanceRepo repository.InstanceRepository,
	locks *OpLocks,
) *ActivationUseCase {
	return &ActivationUseCase{
		gameRepo:     gameRepo,
		instanceRepo: instanceRepo,
		locks:        locks,
	}
}

// Authenticate binds the caller as the instance's current user. The cap is
// read from the live license, not the purchase-time snapshot. Binding the
// already-bound user is a quota-free no-op.
func (uc *ActivationUseCase) Authenticate(ctx context.Context, caller, instanceID string) (*entity.LicenseInstance, error) {
	defer uc.locks.Lock(instanceLockKey(instanceID))()

	instance, err := uc.instanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	game, err := uc.gameRepo.GetByID(ctx, instance.GameID)
	if err != nil {
		return nil, err
	}

	license, err := game.LicenseByID(instance.LicenseID)
	if err != nil {
		return nil, err
	}

	alreadyBound := instance.User == caller

	if err := instance.Authenticate(license, caller); err != nil {
		return nil, err
	}

	if !alreadyBound {
		if err := uc.instanceRepo.Update(ctx, instance); err != nil {
			return nil, err
		}
	}

	return instance, nil
}
