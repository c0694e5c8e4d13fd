package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the rideshare database.
const (
	usersCollection      = "users"
	driversCollection    = "drivers"
	passengersCollection = "passengers"
	adminsCollection     = "admins"
	vehiclesCollection   = "vehicles"
	ridesCollection      = "rides"
	fuelCollection       = "fuel_entries"
	attendanceCollection = "driver_attendance"
)

// ConnectMongo connects to MongoDB at the given URI and verifies the
// connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Store bundles the per-entity collections backed by a single database.
type Store struct {
	Users      UserCollection
	Drivers    DriverCollection
	Passengers PassengerCollection
	Admins     AdminCollection
	Vehicles   VehicleCollection
	Rides      RideCollection
	Fuel       FuelEntryCollection
	Attendance AttendanceCollection
}

// NewStore wires Mongo-backed collections for the given database.
func NewStore(database *mongo.Database) *Store {
	return &Store{
		Users:      &MongoUserCollection{Collection: database.Collection(usersCollection)},
		Drivers:    &MongoDriverCollection{Collection: database.Collection(driversCollection)},
		Passengers: &MongoPassengerCollection{Collection: database.Collection(passengersCollection)},
		Admins:     &MongoAdminCollection{Collection: database.Collection(adminsCollection)},
		Vehicles:   &MongoVehicleCollection{Collection: database.Collection(vehiclesCollection)},
		Rides:      &MongoRideCollection{Collection: database.Collection(ridesCollection)},
		Fuel:       &MongoFuelEntryCollection{Collection: database.Collection(fuelCollection)},
		Attendance: &MongoAttendanceCollection{Collection: database.Collection(attendanceCollection)},
	}
}
