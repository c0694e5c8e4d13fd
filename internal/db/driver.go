package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// MongoDriverCollection implements DriverCollection for MongoDB.
type MongoDriverCollection struct {
	Collection *mongo.Collection
}

// InsertDriver inserts a new driver profile and returns its id.
func (c *MongoDriverCollection) InsertDriver(ctx context.Context, driver models.Driver) (string, error) {
	if driver.ID.IsZero() {
		driver.ID = primitive.NewObjectID()
	}
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = time.Now()

	if _, err := c.Collection.InsertOne(ctx, driver); err != nil {
		return "", err
	}
	return driver.ID.Hex(), nil
}

// FindDriverByID finds a driver profile by id.
func (c *MongoDriverCollection) FindDriverByID(ctx context.Context, id string) (*models.Driver, error) {
	oid, err := objectIDFor("driver", id)
	if err != nil {
		return nil, err
	}

	var driver models.Driver
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&driver)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "driver"}
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// FindDriverByUserID resolves the driver profile owned by a user identity.
func (c *MongoDriverCollection) FindDriverByUserID(ctx context.Context, userID string) (*models.Driver, error) {
	var driver models.Driver
	err := c.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&driver)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "driver profile"}
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// FindDriversByIDs finds drivers whose id is in the given set.
func (c *MongoDriverCollection) FindDriversByIDs(ctx context.Context, ids []string) ([]models.Driver, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := c.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDsFor(ids)}})
	if err != nil {
		return nil, err
	}
	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// FindAllDrivers returns every driver profile in an unordered scan.
func (c *MongoDriverCollection) FindAllDrivers(ctx context.Context) ([]models.Driver, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// ReplaceDriver saves the whole driver record.
func (c *MongoDriverCollection) ReplaceDriver(ctx context.Context, id string, driver models.Driver) error {
	oid, err := objectIDFor("driver", id)
	if err != nil {
		return err
	}
	driver.ID = oid
	driver.UpdatedAt = time.Now()

	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, driver)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}
