package patients

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/healthdesk/registry/store"
)

const (
	patientsCollectionName = "patients"
)

//go:generate go tool mockgen -source=./repo.go -destination=./test/mock_repository.go -package test

type Repository interface {
	Create(ctx context.Context, patient Patient) (*Patient, error)
	Get(ctx context.Context, ownerId string, id string) (*Patient, error)
	GetById(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Patient, int64, error)
	Remove(ctx context.Context, ownerId string, id string) error
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(patientsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "ownerId", Value: 1},
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueOwnerEmail"),
		},
		{
			Keys: bson.D{
				{Key: "ownerId", Value: 1},
				{Key: "createdTime", Value: -1},
			},
			Options: options.Index().
				SetName("OwnerNewestFirst"),
		},
	})
	return err
}

var searchAttributes = map[string]string{
	SearchFieldName:  "fullName",
	SearchFieldEmail: "email",
	SearchFieldPhone: "phone",
}

func (r *repository) Create(ctx context.Context, patient Patient) (*Patient, error) {
	// Pre-check is an optimization for a friendlier error; the unique
	// index is the authority under concurrent inserts
	selector := bson.M{"ownerId": patient.OwnerId, "email": patient.Email}
	count, err := r.collection.CountDocuments(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("error checking for duplicate patient: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	if _, err := r.collection.InsertOne(ctx, patient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	return r.Get(ctx, patient.OwnerId, patient.Id)
}

func (r *repository) Get(ctx context.Context, ownerId string, id string) (*Patient, error) {
	selector := bson.M{
		"_id":     id,
		"ownerId": ownerId,
	}

	patient := &Patient{}
	err := r.collection.FindOne(ctx, selector).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	return patient, nil
}

// GetById fetches a patient regardless of owner. Used by the deletion
// workflow to distinguish a missing record from an ownership violation.
func (r *repository) GetById(ctx context.Context, id string) (*Patient, error) {
	patient := &Patient{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	return patient, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Patient, int64, error) {
	selector := bson.M{"ownerId": filter.OwnerId}
	if filter.Search != nil && *filter.Search != "" {
		attribute, ok := searchAttributes[filter.Field]
		if !ok {
			// Unknown search fields fall back to name
			attribute = searchAttributes[SearchFieldName]
		}
		selector[attribute] = primitive.Regex{
			Pattern: regexp.QuoteMeta(*filter.Search),
			Options: "i",
		}
	}

	total, err := r.collection.CountDocuments(ctx, selector)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting patients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdTime", Value: -1}}).
		SetSkip(int64(pagination.Offset)).
		SetLimit(int64(pagination.Limit))

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing patients: %w", err)
	}

	patients := make([]*Patient, 0)
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, 0, fmt.Errorf("error decoding patients list: %w", err)
	}

	return patients, total, nil
}

func (r *repository) Remove(ctx context.Context, ownerId string, id string) error {
	selector := bson.M{
		"_id":     id,
		"ownerId": ownerId,
	}

	res, err := r.collection.DeleteOne(ctx, selector)
	if err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
