package db

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rectransport/rideshare-api/internal/domain"
)

// objectIDFor parses a hex id for a lookup. An unparsable id can never
// match a stored record, so it is reported as the record being absent.
func objectIDFor(resource, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NotFoundError{Resource: resource, Err: err}
	}
	return oid, nil
}

// objectIDsFor parses a batch of hex ids for an $in lookup, dropping ids
// that cannot be parsed.
func objectIDsFor(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}
