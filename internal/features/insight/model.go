package insight

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Insight is an editorial article. insightId and slug are both unique;
// relatedInsights hold weak references, nothing enforces they resolve.
type Insight struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InsightID string             `json:"insightId" bson:"insightId"`
	Slug      string             `json:"slug" bson:"slug"`

	Title   string   `json:"title" bson:"title"`
	Excerpt string   `json:"excerpt" bson:"excerpt"`
	Content []string `json:"content" bson:"content"`

	Category string `json:"category" bson:"category"`
	Author   string `json:"author" bson:"author"`

	PublishedDate string `json:"publishedDate" bson:"publishedDate"`
	ReadTime      string `json:"readTime" bson:"readTime"`

	Tags     []string `json:"tags" bson:"tags"`
	ImageURL string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`

	RelatedInsights []string `json:"relatedInsights,omitempty" bson:"relatedInsights,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
