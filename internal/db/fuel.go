package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// MongoFuelEntryCollection implements FuelEntryCollection for MongoDB.
type MongoFuelEntryCollection struct {
	Collection *mongo.Collection
}

// InsertFuelEntry inserts a new fuel entry and returns its id.
func (c *MongoFuelEntryCollection) InsertFuelEntry(ctx context.Context, entry models.FuelEntry) (string, error) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, err := c.Collection.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID.Hex(), nil
}

// FindAllFuelEntries returns every fuel entry in an unordered scan.
func (c *MongoFuelEntryCollection) FindAllFuelEntries(ctx context.Context) ([]models.FuelEntry, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var entries []models.FuelEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceFuelEntry saves the whole fuel entry record.
func (c *MongoFuelEntryCollection) ReplaceFuelEntry(ctx context.Context, id string, entry models.FuelEntry) error {
	oid, err := objectIDFor("fuel entry", id)
	if err != nil {
		return err
	}
	entry.ID = oid

	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, entry)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "fuel entry"}
	}
	return nil
}
