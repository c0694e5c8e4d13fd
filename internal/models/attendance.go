package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatusPresent is the default status tag for a new record. The
// status domain is otherwise free-form.
const AttendanceStatusPresent = "present"

// DriverAttendance is a per-day check-in/check-out record for a driver,
// independent of ride activity.
type DriverAttendance struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DriverID string             `bson:"driver_id" json:"driver_id"`
	Date     time.Time          `bson:"date" json:"date"`
	CheckIn  *time.Time         `bson:"check_in,omitempty" json:"check_in,omitempty"`
	CheckOut *time.Time         `bson:"check_out,omitempty" json:"check_out,omitempty"`
	Status   string             `bson:"status" json:"status"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// AttendanceDetails is a DriverAttendance joined with the driver's display
// name.
type AttendanceDetails struct {
	DriverAttendance `bson:",inline"`
	DriverName       string `bson:"-" json:"driver_name"`
}
