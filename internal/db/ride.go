package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// MongoRideCollection implements RideCollection for MongoDB.
type MongoRideCollection struct {
	Collection *mongo.Collection
}

// InsertRide inserts a new ride and returns its id.
func (c *MongoRideCollection) InsertRide(ctx context.Context, ride models.Ride) (string, error) {
	if ride.ID.IsZero() {
		ride.ID = primitive.NewObjectID()
	}
	if _, err := c.Collection.InsertOne(ctx, ride); err != nil {
		return "", err
	}
	return ride.ID.Hex(), nil
}

// FindRideByID finds a ride by id.
func (c *MongoRideCollection) FindRideByID(ctx context.Context, id string) (*models.Ride, error) {
	oid, err := objectIDFor("ride", id)
	if err != nil {
		return nil, err
	}

	var ride models.Ride
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&ride)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "ride"}
	}
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

// FindRides queries rides by the filter's equality predicates.
func (c *MongoRideCollection) FindRides(ctx context.Context, filter RideFilter) ([]models.Ride, error) {
	query := bson.M{}
	if filter.PassengerID != "" {
		query["passenger_id"] = filter.PassengerID
	}
	if filter.DriverID != "" {
		query["driver_id"] = filter.DriverID
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}

	cursor, err := c.Collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	var rides []models.Ride
	if err := cursor.All(ctx, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

// ReplaceRide saves the whole ride record. There is no version check:
// concurrent saves are last-writer-wins.
func (c *MongoRideCollection) ReplaceRide(ctx context.Context, id string, ride models.Ride) error {
	oid, err := objectIDFor("ride", id)
	if err != nil {
		return err
	}
	ride.ID = oid

	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, ride)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "ride"}
	}
	return nil
}
