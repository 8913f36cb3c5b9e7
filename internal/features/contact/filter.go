package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// DateRangeFilter turns optional from/to bounds into a createdAt predicate.
// Each bound is parsed independently; a bound that fails to parse is dropped
// rather than reported. With neither bound parseable the date clause is
// omitted entirely so the filter never produces an impossible range.
func DateRangeFilter(from, to string) bson.M {
	r := bson.M{}

	if t, ok := parseDate(from); ok {
		r["$gte"] = t
	}
	if t, ok := parseDate(to); ok {
		r["$lte"] = t
	}

	if len(r) == 0 {
		return nil
	}
	return bson.M{"createdAt": r}
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
