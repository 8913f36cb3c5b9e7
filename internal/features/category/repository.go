package category

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

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindAll(ctx context.Context) ([]Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	Delete(ctx context.Context, slug string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type CategoryRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCategoryRepository(db *database.MongodbDB) CategoryRepository {
	return &CategoryRepositoryImpl{
		Collection: db.DB.Collection("categories"),
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *Category) error {
	category.CreatedAt = time.Now()

	result, err := r.Collection.InsertOne(ctx, category)
	if err != nil {
		return err
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context) ([]Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, slug string) (bool, error) {
	err := r.Collection.FindOneAndDelete(ctx, bson.M{"slug": slug}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CategoryRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
