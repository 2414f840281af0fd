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

type firestoreInstanceRepository struct {
	client *firestore.Client
}

func NewFirestoreInstanceRepository(client *firestore.Client) repository.InstanceRepository {
	return &firestoreInstanceRepository{
		client: client,
	}
}

func (r *firestoreInstanceRepository) Create(ctx context.Context, instance *entity.LicenseInstance) error {
	_, err := r.client.Collection("instances").Doc(instance.ID).Set(ctx, instance)
	if err != nil {
		return errors.Internal("Failed to create license instance", err)
	}
	return nil
}

func (r *firestoreInstanceRepository) GetByID(ctx context.Context, id string) (*entity.LicenseInstance, error) {
	doc, err := r.client.Collection("instances").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.InstanceNotFound(id)
		}
		return nil, errors.Internal("Failed to get license instance", err)
	}

	var instance entity.LicenseInstance
	if err := doc.DataTo(&instance); err != nil {
		return nil, errors.Internal("Failed to parse license instance data", err)
	}

	return &instance, nil
}

func (r *firestoreInstanceRepository) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]*entity.LicenseInstance, int64, error) {
	query := r.client.Collection("instances").
		Where("owner", "==", owner).
		OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count license instances", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var instances []*entity.LicenseInstance

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate license instances", err)
		}

		var instance entity.LicenseInstance
		if err := doc.DataTo(&instance); err != nil {
			return nil, 0, errors.Internal("Failed to parse license instance data", err)
		}
		instances = append(instances, &instance)
	}

	return instances, total, nil
}

func (r *firestoreInstanceRepository) Update(ctx context.Context, instance *entity.LicenseInstance) error {
	_, err := r.client.Collection("instances").Doc(instance.ID).Set(ctx, instance)
	if err != nil {
		return errors.Internal("Failed to update license instance", err)
	}
	return nil
}

func (r *firestoreInstanceRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection("instances").Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.InstanceNotFound(id)
		}
		return errors.Internal("Failed to get license instance", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete license instance", err)
	}
	return nil
}
