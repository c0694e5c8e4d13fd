package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle represents a fleet vehicle registered on its own, not attached
// to a driver profile.
type Vehicle struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleMake   string             `bson:"vehicle_make" json:"vehicle_make"`
	VehicleModel  string             `bson:"vehicle_model" json:"vehicle_model"`
	VehicleYear   int                `bson:"vehicle_year" json:"vehicle_year"`
	LicensePlate  string             `bson:"license_plate" json:"license_plate"`
	VehicleColor  string             `bson:"vehicle_color" json:"vehicle_color"`
	LicenseNumber string             `bson:"license_number" json:"license_number"`
	LicenseExpiry *time.Time         `bson:"license_expiry,omitempty" json:"license_expiry,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
