package email

import (
	"context"
	"time"

	"go-insights/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmailRepository struct {
	Collection *mongo.Collection
}

func NewEmailRepository(db *database.MongodbDB) *EmailRepository {
	return &EmailRepository{
		Collection: db.DB.Collection("emails"),
	}
}

func (r *EmailRepository) Create(ctx context.Context, email *Email) error {
	email.ID = primitive.NewObjectID()
	email.CreatedAt = time.Now()
	email.UpdatedAt = email.CreatedAt

	_, err := r.Collection.InsertOne(ctx, email)
	return err
}

func (r *EmailRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status EmailStatus, errMsg string) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"error":     errMsg,
		"updatedAt": time.Now(),
	}}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
