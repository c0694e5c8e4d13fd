package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver is the operational record for a vehicle operator, distinct from
// the User identity it references 1:1 via UserID.
type Driver struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string             `bson:"user_id" json:"user_id"`
	VehicleMake      string             `bson:"vehicle_make" json:"vehicle_make"`
	VehicleModel     string             `bson:"vehicle_model" json:"vehicle_model"`
	VehicleYear      int                `bson:"vehicle_year" json:"vehicle_year"`
	LicensePlate     string             `bson:"license_plate" json:"license_plate"`
	VehicleColor     string             `bson:"vehicle_color" json:"vehicle_color"`
	LicenseNumber    string             `bson:"license_number" json:"license_number"`
	LicenseExpiry    *time.Time         `bson:"license_expiry,omitempty" json:"license_expiry,omitempty"`
	Rating           float64            `bson:"rating" json:"rating"`
	TotalRides       int                `bson:"total_rides" json:"total_rides"`
	CurrentKMReading float64            `bson:"current_km_reading" json:"current_km_reading"`
	IsOnline         bool               `bson:"is_online" json:"is_online"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// DriverDetails is a Driver joined with its User for read responses.
type DriverDetails struct {
	Driver `bson:",inline"`
	User   *User `bson:"-" json:"user,omitempty"`
}
