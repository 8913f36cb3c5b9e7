package report

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter(t *testing.T) {
	tests := []struct {
		name string
		q    string
		want bson.M
	}{
		{name: "Empty", q: "", want: nil},
		{name: "Whitespace Only", q: "   \t", want: nil},
		{
			name: "Term",
			q:    "cloud",
			want: bson.M{"$or": []bson.M{
				{"title": primitive.Regex{Pattern: "cloud", Options: "i"}},
				{"industry": primitive.Regex{Pattern: "cloud", Options: "i"}},
				{"publisher": primitive.Regex{Pattern: "cloud", Options: "i"}},
			}},
		},
		{
			name: "Metacharacters Escaped",
			q:    "c++",
			want: bson.M{"$or": []bson.M{
				{"title": primitive.Regex{Pattern: `c\+\+`, Options: "i"}},
				{"industry": primitive.Regex{Pattern: `c\+\+`, Options: "i"}},
				{"publisher": primitive.Regex{Pattern: `c\+\+`, Options: "i"}},
			}},
		},
		{
			name: "Trimmed",
			q:    "  ai  ",
			want: bson.M{"$or": []bson.M{
				{"title": primitive.Regex{Pattern: "ai", Options: "i"}},
				{"industry": primitive.Regex{Pattern: "ai", Options: "i"}},
				{"publisher": primitive.Regex{Pattern: "ai", Options: "i"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchFilter(tt.q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchFilter(%q) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestSanitizeUpdate(t *testing.T) {
	fields := map[string]interface{}{
		"title":     "New Title",
		"slug":      "sneaky-new-slug",
		"reportId":  "sneaky-id",
		"_id":       "whatever",
		"createdAt": "2020-01-01",
		"price":     99.0,
		"segmentation": map[string]interface{}{
			"byRegion": []string{"EU"},
		},
	}

	set := SanitizeUpdate(fields)

	if _, ok := set["slug"]; ok {
		t.Error("slug must not be updatable")
	}
	if _, ok := set["reportId"]; ok {
		t.Error("reportId must not be updatable")
	}
	if _, ok := set["_id"]; ok {
		t.Error("_id must not be updatable")
	}
	if _, ok := set["createdAt"]; ok {
		t.Error("createdAt must not be updatable")
	}
	if set["title"] != "New Title" {
		t.Errorf("title = %v, want New Title", set["title"])
	}
	if set["price"] != 99.0 {
		t.Errorf("price = %v, want 99.0", set["price"])
	}
	// Nested objects are replaced wholesale, not merged.
	if _, ok := set["segmentation"]; !ok {
		t.Error("segmentation should pass through as a whole value")
	}
}
