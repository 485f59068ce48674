// Package mongodb holds the per-collection store adapters. Each repository
// wraps one collection of the toolsplazadb database and maps driver errors
// onto the domain error taxonomy.
package mongodb

import (
	"errors"
	"fmt"

	"toolsPlaza/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "toolsplazadb"

// newestFirst sorts by descending ObjectID, which is reverse insertion
// order. Listings are newest-first as a product decision.
var newestFirst = options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// storeErr maps a driver failure onto the domain taxonomy, keeping the
// driver detail wrapped for server-side logs.
func storeErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
