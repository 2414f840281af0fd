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

type firestoreWalletRepository struct {
	client *firestore.Client
}

func NewFirestoreWalletRepository(client *firestore.Client) repository.WalletRepository {
	return &firestoreWalletRepository{
		client: client,
	}
}

func (r *firestoreWalletRepository) GetOrCreate(ctx context.Context, address string) (*entity.Wallet, error) {
	var result entity.Wallet
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("wallets").Doc(address)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				wallet := entity.NewWallet(address)
				result = *wallet
				return tx.Set(docRef, wallet)
			}
			return err
		}
		return doc.DataTo(&result)
	})
	if err != nil {
		return nil, errors.Internal("Failed to get wallet", err)
	}
	return &result, nil
}

func (r *firestoreWalletRepository) Credit(ctx context.Context, address string, amount uint64) (*entity.Wallet, error) {
	return r.mutate(ctx, address, func(wallet *entity.Wallet) error {
		wallet.Credit(amount)
		return nil
	})
}

func (r *firestoreWalletRepository) DebitExact(ctx context.Context, address string, amount uint64) (*entity.Wallet, error) {
	return r.mutate(ctx, address, func(wallet *entity.Wallet) error {
		return wallet.DebitExact(amount)
	})
}

func (r *firestoreWalletRepository) mutate(ctx context.Context, address string, apply func(*entity.Wallet) error) (*entity.Wallet, error) {
	var result entity.Wallet
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("wallets").Doc(address)
		doc, err := tx.Get(docRef)

		var wallet entity.Wallet
		switch {
		case err == nil:
			if err := doc.DataTo(&wallet); err != nil {
				return err
			}
		case status.Code(err) == codes.NotFound:
			wallet = *entity.NewWallet(address)
		default:
			return err
		}

		if err := apply(&wallet); err != nil {
			return err
		}
		result = wallet
		return tx.Set(docRef, &wallet)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *firestoreWalletRepository) TotalBalance(ctx context.Context) (uint64, error) {
	iter := r.client.Collection("wallets").Documents(ctx)
	defer iter.Stop()

	var total uint64
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Internal("Failed to iterate wallets", err)
		}

		var wallet entity.Wallet
		if err := doc.DataTo(&wallet); err != nil {
			return 0, errors.Internal("Failed to parse wallet data", err)
		}
		total += wallet.Balance
	}
	return total, nil
}
