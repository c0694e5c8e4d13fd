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

// MongoPassengerCollection implements PassengerCollection for MongoDB.
type MongoPassengerCollection struct {
	Collection *mongo.Collection
}

// InsertPassenger inserts a new passenger profile and returns its id.
func (c *MongoPassengerCollection) InsertPassenger(ctx context.Context, passenger models.Passenger) (string, error) {
	if passenger.ID.IsZero() {
		passenger.ID = primitive.NewObjectID()
	}
	passenger.CreatedAt = time.Now()
	passenger.UpdatedAt = time.Now()

	if _, err := c.Collection.InsertOne(ctx, passenger); err != nil {
		return "", err
	}
	return passenger.ID.Hex(), nil
}

// FindPassengerByID finds a passenger profile by id.
func (c *MongoPassengerCollection) FindPassengerByID(ctx context.Context, id string) (*models.Passenger, error) {
	oid, err := objectIDFor("passenger", id)
	if err != nil {
		return nil, err
	}

	var passenger models.Passenger
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&passenger)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "passenger"}
	}
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

// FindPassengerByUserID resolves the passenger profile owned by a user
// identity.
func (c *MongoPassengerCollection) FindPassengerByUserID(ctx context.Context, userID string) (*models.Passenger, error) {
	var passenger models.Passenger
	err := c.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&passenger)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "passenger profile"}
	}
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

// FindPassengersByIDs finds passengers whose id is in the given set.
func (c *MongoPassengerCollection) FindPassengersByIDs(ctx context.Context, ids []string) ([]models.Passenger, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := c.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDsFor(ids)}})
	if err != nil {
		return nil, err
	}
	var passengers []models.Passenger
	if err := cursor.All(ctx, &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}

// FindAllPassengers returns every passenger profile.
func (c *MongoPassengerCollection) FindAllPassengers(ctx context.Context) ([]models.Passenger, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var passengers []models.Passenger
	if err := cursor.All(ctx, &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}
