package contact

import (
	"context"
	"errors"
	"time"

	"go-insights/internal/common/models"
	"go-insights/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	FindPage(ctx context.Context, filter bson.M, p models.Pagination) ([]Contact, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindAll(ctx context.Context, filter bson.M) ([]Contact, error)
	FindByID(ctx context.Context, id string) (*Contact, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type ContactRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewContactRepository(db *database.MongodbDB) ContactRepository {
	return &ContactRepositoryImpl{
		Collection: db.DB.Collection("contacts"),
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *Contact) error {
	contact.CreatedAt = time.Now()

	result, err := r.Collection.InsertOne(ctx, contact)
	if err != nil {
		return err
	}

	contact.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ContactRepositoryImpl) FindPage(ctx context.Context, filter bson.M, p models.Pagination) ([]Contact, error) {
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)

	return r.find(ctx, filter, opts)
}

// Count runs against the same filter as FindPage but as a separate read; the
// two are not a snapshot.
func (r *ContactRepositoryImpl) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.Collection.CountDocuments(ctx, filter)
}

func (r *ContactRepositoryImpl) FindAll(ctx context.Context, filter bson.M) ([]Contact, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *ContactRepositoryImpl) FindByID(ctx context.Context, id string) (*Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var contact Contact
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	err = r.Collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ContactRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *ContactRepositoryImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Contact, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
