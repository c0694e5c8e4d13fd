package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Passenger is the profile record for a ride requester, referencing its
// User identity 1:1 via UserID.
type Passenger struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Rating     float64            `bson:"rating" json:"rating"`
	TotalRides int                `bson:"total_rides" json:"total_rides"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// PassengerDetails is a Passenger joined with its User for read responses.
type PassengerDetails struct {
	Passenger `bson:",inline"`
	User      *User `bson:"-" json:"user,omitempty"`
}
