package report

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

type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	FindAll(ctx context.Context) ([]Report, error)
	FindBySlug(ctx context.Context, slug string) (*Report, error)
	FindByIndustry(ctx context.Context, industry string) ([]Report, error)
	Search(ctx context.Context, filter bson.M) ([]Report, error)
	Update(ctx context.Context, slug string, set bson.M) (*Report, error)
	Delete(ctx context.Context, slug string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type ReportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewReportRepository(db *database.MongodbDB) ReportRepository {
	return &ReportRepositoryImpl{
		Collection: db.DB.Collection("reports"),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *Report) error {
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt

	result, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}

	report.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ReportRepositoryImpl) FindAll(ctx context.Context) ([]Report, error) {
	return r.find(ctx, bson.M{}, newestFirst())
}

func (r *ReportRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Report, error) {
	var report Report
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) FindByIndustry(ctx context.Context, industry string) ([]Report, error) {
	return r.find(ctx, bson.M{"industry": industry}, newestFirst())
}

func (r *ReportRepositoryImpl) Search(ctx context.Context, filter bson.M) ([]Report, error) {
	return r.find(ctx, filter, newestFirst())
}

// Update applies a $set of the provided top-level fields and returns the
// updated document. A missing slug yields (nil, nil); no upsert happens.
func (r *ReportRepositoryImpl) Update(ctx context.Context, slug string, set bson.M) (*Report, error) {
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Report
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ReportRepositoryImpl) Delete(ctx context.Context, slug string) (bool, error) {
	err := r.Collection.FindOneAndDelete(ctx, bson.M{"slug": slug}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReportRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ReportRepositoryImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Report, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
