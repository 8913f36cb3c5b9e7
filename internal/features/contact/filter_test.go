package contact

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDateRangeFilter(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantNil  bool
		wantGte  bool
		wantLte  bool
	}{
		{name: "No Bounds", from: "", to: "", wantNil: true},
		{name: "Both Invalid", from: "yesterday", to: "soon", wantNil: true},
		{name: "Both Valid", from: "2025-01-01", to: "2025-06-30", wantGte: true, wantLte: true},
		{name: "From Only", from: "2025-01-01", wantGte: true},
		{name: "To Only", to: "2025-06-30", wantLte: true},
		{name: "Invalid From Dropped", from: "not-a-date", to: "2025-06-30", wantLte: true},
		{name: "RFC3339", from: "2025-01-01T12:00:00Z", wantGte: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateRangeFilter(tt.from, tt.to)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("filter = %v, want nil", got)
				}
				return
			}

			r, ok := got["createdAt"].(bson.M)
			if !ok {
				t.Fatalf("filter = %v, want createdAt range", got)
			}
			if _, has := r["$gte"]; has != tt.wantGte {
				t.Errorf("$gte present = %v, want %v", has, tt.wantGte)
			}
			if _, has := r["$lte"]; has != tt.wantLte {
				t.Errorf("$lte present = %v, want %v", has, tt.wantLte)
			}
		})
	}
}

func TestDateRangeFilterParsesDayPrecision(t *testing.T) {
	got := DateRangeFilter("2025-03-15", "")
	r := got["createdAt"].(bson.M)
	gte := r["$gte"].(time.Time)

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !gte.Equal(want) {
		t.Errorf("$gte = %v, want %v", gte, want)
	}
}
