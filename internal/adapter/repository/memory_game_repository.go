package repository

import (
	"context"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/errors"
)

type memoryGameRepository struct {
	store *MemoryStore
}

func NewMemoryGameRepository(store *MemoryStore) repository.GameRepository {
	return &memoryGameRepository{store: store}
}

func (r *memoryGameRepository) Create(ctx context.Context, game *entity.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.games[game.ID]; exists {
		return errors.DuplicateGameID(game.ID)
	}

	r.store.games[game.ID] = cloneGame(game)
	r.store.gameOrder = append(r.store.gameOrder, game.ID)
	return nil
}

func (r *memoryGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	game, ok := r.store.games[id]
	if !ok {
		return nil, errors.GameNotFound(id)
	}
	return cloneGame(game), nil
}

func (r *memoryGameRepository) List(ctx context.Context, limit, offset int) ([]*entity.Game, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := len(r.store.gameOrder)
	start, end := paginate(total, limit, offset)

	games := make([]*entity.Game, 0, end-start)
	for _, id := range r.store.gameOrder[start:end] {
		games = append(games, cloneGame(r.store.games[id]))
	}
	return games, int64(total), nil
}

func (r *memoryGameRepository) Update(ctx context.Context, game *entity.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.games[game.ID]; !ok {
		return errors.GameNotFound(game.ID)
	}
	r.store.games[game.ID] = cloneGame(game)
	return nil
}

func (r *memoryGameRepository) AppendLicense(ctx context.Context, gameID string, license entity.License) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	game, ok := r.store.games[gameID]
	if !ok {
		return errors.GameNotFound(gameID)
	}
	game.Licenses = append(game.Licenses, cloneLicense(license))
	return nil
}
