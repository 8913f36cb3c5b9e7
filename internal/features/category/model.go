package category

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups insights. Slug is the primary external key and must be
// unique; there is no update path in the base design.
type Category struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Slug string             `json:"slug" bson:"slug"`
	Name string             `json:"name" bson:"name"`

	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
