package email

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmailStatus string

const (
	EmailQueued EmailStatus = "queued"
	EmailSent   EmailStatus = "sent"
	EmailFailed EmailStatus = "failed"
)

// Email is the audit record of an outbound message.
type Email struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	From    string             `json:"from" bson:"from"`
	To      []string           `json:"to" bson:"to"`
	Subject string             `json:"subject" bson:"subject"`
	Body    string             `json:"body" bson:"body"`

	Status EmailStatus `json:"status" bson:"status"`
	Error  string      `json:"error,omitempty" bson:"error,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
