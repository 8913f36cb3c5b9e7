package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is an inbound submission. Contacts are append-only: they can be
// listed and deleted but never updated, and createdAt is set exactly once.
type Contact struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	FullName string `json:"fullName" bson:"fullName"`
	Email    string `json:"email" bson:"email"`

	CountryCode string `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`

	Company  string `json:"company,omitempty" bson:"company,omitempty"`
	Industry string `json:"industry,omitempty" bson:"industry,omitempty"`
	Subject  string `json:"subject,omitempty" bson:"subject,omitempty"`

	Message string `json:"message" bson:"message"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
