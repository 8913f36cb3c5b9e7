package insight

import (
	"context"
	"errors"
	"time"

	"go-insights/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InsightRepository interface {
	Create(ctx context.Context, insight *Insight) error
	FindAll(ctx context.Context) ([]Insight, error)
	FindBySlug(ctx context.Context, slug string) (*Insight, error)
	FindByCategory(ctx context.Context, category string) ([]Insight, error)
	Search(ctx context.Context, filter bson.M) ([]Insight, error)
	Update(ctx context.Context, slug string, set bson.M) (*Insight, error)
	Delete(ctx context.Context, slug string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type InsightRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewInsightRepository(db *database.MongodbDB) InsightRepository {
	return &InsightRepositoryImpl{
		Collection: db.DB.Collection("insights"),
	}
}

func (r *InsightRepositoryImpl) Create(ctx context.Context, insight *Insight) error {
	insight.CreatedAt = time.Now()
	insight.UpdatedAt = insight.CreatedAt

	result, err := r.Collection.InsertOne(ctx, insight)
	if err != nil {
		return err
	}

	insight.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *InsightRepositoryImpl) FindAll(ctx context.Context) ([]Insight, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *InsightRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Insight, error) {
	var insight Insight
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&insight)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

// FindByCategory sorts by published date, not creation time.
func (r *InsightRepositoryImpl) FindByCategory(ctx context.Context, category string) ([]Insight, error) {
	return r.find(ctx, bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}}))
}

func (r *InsightRepositoryImpl) Search(ctx context.Context, filter bson.M) ([]Insight, error) {
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *InsightRepositoryImpl) Update(ctx context.Context, slug string, set bson.M) (*Insight, error) {
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Insight
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *InsightRepositoryImpl) Delete(ctx context.Context, slug string) (bool, error) {
	err := r.Collection.FindOneAndDelete(ctx, bson.M{"slug": slug}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *InsightRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "insightId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *InsightRepositoryImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Insight, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	insights := []Insight{}
	if err := cursor.All(ctx, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}
