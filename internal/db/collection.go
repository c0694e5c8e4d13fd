package db

import (
	"context"
	"time"

	"github.com/rectransport/rideshare-api/internal/models"
)

// RideFilter selects rides by equality predicates. Zero-valued fields are
// ignored.
type RideFilter struct {
	PassengerID string
	DriverID    string
	Statuses    []models.RideStatus
}

// AttendanceQuery selects attendance records by driver and an optional date
// range. Nil bounds are ignored.
type AttendanceQuery struct {
	DriverID string
	Start    *time.Time
	End      *time.Time
}

// UserCollection defines the interface for user record operations.
type UserCollection interface {
	InsertUser(ctx context.Context, user models.User) (string, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	ReplaceUser(ctx context.Context, id string, user models.User) error
}

// DriverCollection defines the interface for driver profile operations.
type DriverCollection interface {
	InsertDriver(ctx context.Context, driver models.Driver) (string, error)
	FindDriverByID(ctx context.Context, id string) (*models.Driver, error)
	FindDriverByUserID(ctx context.Context, userID string) (*models.Driver, error)
	FindDriversByIDs(ctx context.Context, ids []string) ([]models.Driver, error)
	FindAllDrivers(ctx context.Context) ([]models.Driver, error)
	ReplaceDriver(ctx context.Context, id string, driver models.Driver) error
}

// PassengerCollection defines the interface for passenger profile operations.
type PassengerCollection interface {
	InsertPassenger(ctx context.Context, passenger models.Passenger) (string, error)
	FindPassengerByID(ctx context.Context, id string) (*models.Passenger, error)
	FindPassengerByUserID(ctx context.Context, userID string) (*models.Passenger, error)
	FindPassengersByIDs(ctx context.Context, ids []string) ([]models.Passenger, error)
	FindAllPassengers(ctx context.Context) ([]models.Passenger, error)
}

// AdminCollection defines the interface for admin profile operations.
type AdminCollection interface {
	InsertAdmin(ctx context.Context, admin models.Admin) (string, error)
}

// VehicleCollection defines the interface for standalone vehicle records.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (string, error)
	FindAllVehicles(ctx context.Context) ([]models.Vehicle, error)
}

// RideCollection defines the interface for ride record operations.
type RideCollection interface {
	InsertRide(ctx context.Context, ride models.Ride) (string, error)
	FindRideByID(ctx context.Context, id string) (*models.Ride, error)
	FindRides(ctx context.Context, filter RideFilter) ([]models.Ride, error)
	ReplaceRide(ctx context.Context, id string, ride models.Ride) error
}

// FuelEntryCollection defines the interface for fuel ledger operations.
type FuelEntryCollection interface {
	InsertFuelEntry(ctx context.Context, entry models.FuelEntry) (string, error)
	FindAllFuelEntries(ctx context.Context) ([]models.FuelEntry, error)
	ReplaceFuelEntry(ctx context.Context, id string, entry models.FuelEntry) error
}

// AttendanceCollection defines the interface for attendance ledger
// operations.
type AttendanceCollection interface {
	InsertAttendance(ctx context.Context, record models.DriverAttendance) (string, error)
	FindAttendanceByID(ctx context.Context, id string) (*models.DriverAttendance, error)
	FindAttendance(ctx context.Context, query AttendanceQuery) ([]models.DriverAttendance, error)
	ReplaceAttendance(ctx context.Context, id string, record models.DriverAttendance) error
	DeleteAttendance(ctx context.Context, id string) error
}
