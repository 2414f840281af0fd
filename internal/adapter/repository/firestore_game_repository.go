package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ludomarket/internal/domain/entity"
	"ludomarket/internal/domain/repository"
	"ludomarket/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) repository.GameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

func (r *firestoreGameRepository) Create(ctx context.Context, game *entity.Game) error {
	// Doc.Create fails when the document exists, which is exactly the
	// uniqueness rule for game identifiers.
	_, err := r.client.Collection("games").Doc(game.ID).Create(ctx, game)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.DuplicateGameID(game.ID)
		}
		return errors.Internal("Failed to create game", err)
	}
	return nil
}

func (r *firestoreGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := r.client.Collection("games").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.GameNotFound(id)
		}
		return nil, errors.Internal("Failed to get game", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return nil, errors.Internal("Failed to parse game data", err)
	}

	return &game, nil
}

func (r *firestoreGameRepository) List(ctx context.Context, limit, offset int) ([]*entity.Game, int64, error) {
	query := r.client.Collection("games").OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count games", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var games []*entity.Game

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate games", err)
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, 0, errors.Internal("Failed to parse game data", err)
		}
		games = append(games, &game)
	}

	return games, total, nil
}

func (r *firestoreGameRepository) Update(ctx context.Context, game *entity.Game) error {
	_, err := r.client.Collection("games").Doc(game.ID).Set(ctx, game)
	if err != nil {
		return errors.Internal("Failed to update game", err)
	}
	return nil
}

func (r *firestoreGameRepository) AppendLicense(ctx context.Context, gameID string, license entity.License) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("games").Doc(gameID)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.GameNotFound(gameID)
			}
			return err
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return err
		}

		game.Licenses = append(game.Licenses, license)
		return tx.Set(docRef, &game)
	})
}
