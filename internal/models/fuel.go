package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FuelEntry records a fuel purchase attributed to a driver. DriverID is a
// plain string reference and may become dangling if the driver is deleted;
// the fuel service's reconciliation routine repairs such entries.
type FuelEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DriverID string             `bson:"driver_id" json:"driver_id"`
	Amount   float64            `bson:"amount" json:"amount"`
	Cost     float64            `bson:"cost" json:"cost"`
	Location string             `bson:"location" json:"location"`
	Date     time.Time          `bson:"date" json:"date"`
	AddedBy  string             `bson:"added_by" json:"added_by"` // "driver" or "admin"
	AdminID  string             `bson:"admin_id" json:"admin_id"` // authenticated actor at creation, regardless of role
}

// FuelEntryDetails is a FuelEntry joined with driver and user display
// fields.
type FuelEntryDetails struct {
	ID           string     `json:"id"`
	DriverID     string     `json:"driver_id"`
	DriverName   string     `json:"driver_name"`
	VehicleMake  string     `json:"vehicle_make"`
	LicensePlate string     `json:"license_plate"`
	FuelAmount   float64    `json:"fuel_amount"`
	FuelCost     float64    `json:"fuel_cost"`
	FuelStation  string     `json:"fuel_station"`
	Date         *time.Time `json:"date,omitempty"`
	Inconsistent bool       `json:"inconsistent,omitempty"`
}

// ReconcileResult reports a fuel-ledger repair pass.
type ReconcileResult struct {
	FixedCount   int `json:"fixed_count"`
	TotalEntries int `json:"total_entries"`
}
