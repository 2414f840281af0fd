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

type firestoreLedgerRepository struct {
	client *firestore.Client
}

func NewFirestoreLedgerRepository(client *firestore.Client) repository.LedgerRepository {
	return &firestoreLedgerRepository{
		client: client,
	}
}

func (r *firestoreLedgerRepository) Deposit(ctx context.Context, key entity.PoolKey, amount uint64) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("pools").Doc(key.DocID())
		doc, err := tx.Get(docRef)

		var pool entity.Pool
		switch {
		case err == nil:
			if err := doc.DataTo(&pool); err != nil {
				return err
			}
		case status.Code(err) == codes.NotFound:
			pool = *entity.NewPool(key)
		default:
			return err
		}

		pool.Deposit(amount)
		return tx.Set(docRef, &pool)
	})
}

func (r *firestoreLedgerRepository) DrainAll(ctx context.Context, key entity.PoolKey) (uint64, error) {
	var drained uint64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("pools").Doc(key.DocID())
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NoFundsAvailable()
			}
			return err
		}

		var pool entity.Pool
		if err := doc.DataTo(&pool); err != nil {
			return err
		}

		amount, err := pool.WithdrawAll()
		if err != nil {
			return err
		}
		drained = amount
		return tx.Set(docRef, &pool)
	})
	if err != nil {
		return 0, err
	}
	return drained, nil
}

func (r *firestoreLedgerRepository) Withdraw(ctx context.Context, key entity.PoolKey, amount uint64) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("pools").Doc(key.DocID())
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NoFundsAvailable()
			}
			return err
		}

		var pool entity.Pool
		if err := doc.DataTo(&pool); err != nil {
			return err
		}

		if err := pool.Withdraw(amount); err != nil {
			return err
		}
		return tx.Set(docRef, &pool)
	})
}

func (r *firestoreLedgerRepository) Balance(ctx context.Context, key entity.PoolKey) (uint64, error) {
	doc, err := r.client.Collection("pools").Doc(key.DocID()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, errors.Internal("Failed to get pool", err)
	}

	var pool entity.Pool
	if err := doc.DataTo(&pool); err != nil {
		return 0, errors.Internal("Failed to parse pool data", err)
	}
	return pool.Balance, nil
}

func (r *firestoreLedgerRepository) TotalBalance(ctx context.Context) (uint64, error) {
	iter := r.client.Collection("pools").Documents(ctx)
	defer iter.Stop()

	var total uint64
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Internal("Failed to iterate pools", err)
		}

		var pool entity.Pool
		if err := doc.DataTo(&pool); err != nil {
			return 0, errors.Internal("Failed to parse pool data", err)
		}
		total += pool.Balance
	}
	return total, nil
}
