package insight

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var searchFields = []string{"title", "tags", "category"}

// SearchFilter builds the $or predicate for the insight search. Unlike the
// report path, a blank term never reaches this point; the controller rejects
// it with a client error first.
func SearchFilter(q string) bson.M {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	pattern := regexp.QuoteMeta(q)

	or := make([]bson.M, 0, len(searchFields))
	for _, field := range searchFields {
		or = append(or, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
	}
	return bson.M{"$or": or}
}

var immutableFields = map[string]struct{}{
	"_id":       {},
	"id":        {},
	"slug":      {},
	"insightId": {},
	"createdAt": {},
	"updatedAt": {},
}

// SanitizeUpdate drops immutable keys from a partial payload. Supplied
// arrays and nested values replace the stored ones wholesale.
func SanitizeUpdate(fields map[string]interface{}) bson.M {
	set := bson.M{}
	for k, v := range fields {
		if _, immutable := immutableFields[k]; immutable {
			continue
		}
		set[k] = v
	}
	return set
}
