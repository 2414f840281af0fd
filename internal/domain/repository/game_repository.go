package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
)

type GameRepository interface {
	// Create fails with DUPLICATE_GAME_ID when the identifier is taken.
	Create(ctx context.Context, game *entity.Game) error
	// GetByID fails with GAME_NOT_FOUND.
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Game, int64, error)
	Update(ctx context.Context, game *entity.Game) error
	// AppendLicense atomically adds a license to the game's collection.
	AppendLicense(ctx context.Context, gameID string, license entity.License) error
}
