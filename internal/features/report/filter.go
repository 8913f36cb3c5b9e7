package report

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchFields are the report fields the free-text search matches against.
var searchFields = []string{"title", "industry", "publisher"}

// SearchFilter builds the $or predicate for a free-text term: a
// case-insensitive substring match against each search field. A blank term
// returns nil; the search path answers that with an empty result set, not
// with a match-all query.
func SearchFilter(q string) bson.M {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	// Queries are literal text, never regex operators.
	pattern := regexp.QuoteMeta(q)

	or := make([]bson.M, 0, len(searchFields))
	for _, field := range searchFields {
		or = append(or, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
	}
	return bson.M{"$or": or}
}

// immutableFields must survive every partial update untouched.
var immutableFields = map[string]struct{}{
	"_id":       {},
	"id":        {},
	"slug":      {},
	"reportId":  {},
	"createdAt": {},
	"updatedAt": {},
}

// SanitizeUpdate converts a partial payload into a $set document, dropping
// immutable keys. Provided nested objects replace the stored value wholesale;
// omitted fields are left untouched.
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
