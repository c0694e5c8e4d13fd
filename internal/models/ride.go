package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideStatus is the lifecycle state of a ride.
type RideStatus string

const (
	RideStatusRequested  RideStatus = "REQUESTED"
	RideStatusAssigned   RideStatus = "ASSIGNED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
)

// Ride represents a single passenger transport request tracked from
// creation to completion. Each timestamp is set exactly once by the
// corresponding transition; StartKM and EndKM are odometer readings
// captured at pickup and completion.
type Ride struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PassengerID      string             `bson:"passenger_id" json:"passenger_id"`
	DriverID         string             `bson:"driver_id,omitempty" json:"driver_id,omitempty"`
	Status           RideStatus         `bson:"status" json:"status"`
	PickupLatitude   float64            `bson:"pickup_latitude" json:"pickup_latitude"`
	PickupLongitude  float64            `bson:"pickup_longitude" json:"pickup_longitude"`
	PickupAddress    string             `bson:"pickup_address" json:"pickup_address"`
	DropoffLatitude  float64            `bson:"dropoff_latitude" json:"dropoff_latitude"`
	DropoffLongitude float64            `bson:"dropoff_longitude" json:"dropoff_longitude"`
	DropoffAddress   string             `bson:"dropoff_address" json:"dropoff_address"`
	RequestedAt      time.Time          `bson:"requested_at" json:"requested_at"`
	AssignedAt       *time.Time         `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`
	PickedUpAt       *time.Time         `bson:"picked_up_at,omitempty" json:"picked_up_at,omitempty"`
	CompletedAt      *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	StartKM          *float64           `bson:"start_km,omitempty" json:"start_km,omitempty"`
	EndKM            *float64           `bson:"end_km,omitempty" json:"end_km,omitempty"`
	Distance         float64            `bson:"distance" json:"distance"`
}

// MarkAssigned records a driver assignment. It intentionally performs no
// prior-state check: re-assignment overwrites the existing driver
// (force-reassign, last-writer-wins).
func (r *Ride) MarkAssigned(driverID string, at time.Time) {
	r.DriverID = driverID
	r.Status = RideStatusAssigned
	r.AssignedAt = &at
}

// MarkStarted records pickup: the ride enters IN_PROGRESS and the starting
// odometer reading, when supplied, is captured.
func (r *Ride) MarkStarted(at time.Time, startKM *float64) {
	r.Status = RideStatusInProgress
	r.PickedUpAt = &at
	r.StartKM = startKM
}

// MarkCompleted records completion and derives the distance. Distance is
// EndKM-StartKM only when both readings are present and non-zero (a zero
// reading counts as absent), zero otherwise; negativity is not validated.
func (r *Ride) MarkCompleted(at time.Time, endKM *float64) {
	r.Status = RideStatusCompleted
	r.CompletedAt = &at
	r.EndKM = endKM
	if r.StartKM != nil && *r.StartKM != 0 && r.EndKM != nil && *r.EndKM != 0 {
		r.Distance = *r.EndKM - *r.StartKM
	} else {
		r.Distance = 0
	}
}

// RideDetails is a Ride joined with its passenger and driver profiles for
// read responses.
type RideDetails struct {
	Ride      `bson:",inline"`
	Passenger *PassengerDetails `bson:"-" json:"passenger,omitempty"`
	Driver    *DriverDetails    `bson:"-" json:"driver,omitempty"`
}
