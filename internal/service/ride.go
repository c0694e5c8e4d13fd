package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// RideService owns the ride lifecycle: request, assignment, start and
// completion, plus the joined listings the dashboards read.
type RideService struct {
	rides      db.RideCollection
	drivers    db.DriverCollection
	passengers db.PassengerCollection
	users      db.UserCollection
}

func NewRideService(rides db.RideCollection, drivers db.DriverCollection, passengers db.PassengerCollection, users db.UserCollection) *RideService {
	return &RideService{rides: rides, drivers: drivers, passengers: passengers, users: users}
}

type CreateRideInput struct {
	PassengerID      string
	PickupLatitude   float64
	PickupLongitude  float64
	PickupAddress    string
	DropoffLatitude  float64
	DropoffLongitude float64
	DropoffAddress   string
}

type CreateManualRideInput struct {
	CreateRideInput
	DriverID string
}

// Create records a new ride request on behalf of the named passenger.
// The passenger reference is stored as given and is not verified.
func (s *RideService) Create(ctx context.Context, in CreateRideInput) (*models.Ride, error) {
	if in.PassengerID == "" {
		return nil, domain.ValidationError{Field: "passenger_id", Msg: "passenger_id is required"}
	}
	ride := newRequestedRide(in, time.Now().UTC())
	return s.insert(ctx, ride)
}

// CreateManual creates a ride on behalf of a passenger and, when a driver
// is named, assigns it in the same call. The driver is resolved before
// anything is written, so a bad driver reference leaves no ride behind.
func (s *RideService) CreateManual(ctx context.Context, in CreateManualRideInput) (*models.Ride, error) {
	if in.PassengerID == "" {
		return nil, domain.ValidationError{Field: "passenger_id", Msg: "passenger_id is required"}
	}
	now := time.Now().UTC()
	ride := newRequestedRide(in.CreateRideInput, now)
	if in.DriverID != "" {
		if _, err := s.drivers.FindDriverByID(ctx, in.DriverID); err != nil {
			return nil, err
		}
		ride.MarkAssigned(in.DriverID, now)
	}
	return s.insert(ctx, ride)
}

func newRequestedRide(in CreateRideInput, at time.Time) models.Ride {
	return models.Ride{
		PassengerID:      in.PassengerID,
		PickupLatitude:   in.PickupLatitude,
		PickupLongitude:  in.PickupLongitude,
		PickupAddress:    in.PickupAddress,
		DropoffLatitude:  in.DropoffLatitude,
		DropoffLongitude: in.DropoffLongitude,
		DropoffAddress:   in.DropoffAddress,
		Status:           models.RideStatusRequested,
		RequestedAt:      at,
	}
}

func (s *RideService) insert(ctx context.Context, ride models.Ride) (*models.Ride, error) {
	id, err := s.rides.InsertRide(ctx, ride)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		ride.ID = oid
	}
	return &ride, nil
}

// ForceAssign puts the ride into ASSIGNED for the given driver regardless
// of its current status; a ride already assigned elsewhere is reassigned.
func (s *RideService) ForceAssign(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	ride, err := s.rides.FindRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if _, err := s.drivers.FindDriverByID(ctx, driverID); err != nil {
		return nil, err
	}
	ride.MarkAssigned(driverID, time.Now().UTC())
	if err := s.rides.ReplaceRide(ctx, rideID, *ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// Start transitions a ride to IN_PROGRESS. Only the driver the ride is
// assigned to may start it; the odometer reading at pickup, when supplied,
// is recorded.
func (s *RideService) Start(ctx context.Context, ident *models.Claims, rideID string, startKM *float64) (*models.Ride, error) {
	driver, err := s.drivers.FindDriverByUserID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	ride, err := s.rides.FindRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driver.ID.Hex() {
		return nil, domain.ForbiddenError{Msg: "not authorized to start this ride"}
	}
	ride.MarkStarted(time.Now().UTC(), startKM)
	if err := s.rides.ReplaceRide(ctx, rideID, *ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// Complete finishes a ride and rolls the odometer and ride count onto the
// driver record. The driver is saved before the ride, so a failed ride
// write leaves the driver stats already advanced.
func (s *RideService) Complete(ctx context.Context, ident *models.Claims, rideID string, endKM *float64) (*models.Ride, error) {
	driver, err := s.drivers.FindDriverByUserID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	ride, err := s.rides.FindRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driver.ID.Hex() {
		return nil, domain.ForbiddenError{Msg: "not authorized to complete this ride"}
	}
	ride.MarkCompleted(time.Now().UTC(), endKM)

	if endKM != nil {
		driver.CurrentKMReading = *endKM
	}
	driver.TotalRides++
	if err := s.drivers.ReplaceDriver(ctx, driver.ID.Hex(), *driver); err != nil {
		return nil, err
	}
	if err := s.rides.ReplaceRide(ctx, rideID, *ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// ListPending returns every ride still waiting for a driver, unjoined.
func (s *RideService) ListPending(ctx context.Context) ([]models.Ride, error) {
	return s.rides.FindRides(ctx, db.RideFilter{Statuses: []models.RideStatus{models.RideStatusRequested}})
}

// ListAssigned returns the calling driver's active rides (ASSIGNED or
// IN_PROGRESS) with passenger details joined in.
func (s *RideService) ListAssigned(ctx context.Context, ident *models.Claims) ([]models.RideDetails, error) {
	driver, err := s.drivers.FindDriverByUserID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	rides, err := s.rides.FindRides(ctx, db.RideFilter{
		DriverID: driver.ID.Hex(),
		Statuses: []models.RideStatus{models.RideStatusAssigned, models.RideStatusInProgress},
	})
	if err != nil {
		return nil, err
	}
	return s.joinDetails(ctx, rides, false)
}

// List returns rides matching the filter with passenger and driver
// details joined via bulk lookups.
func (s *RideService) List(ctx context.Context, filter db.RideFilter) ([]models.RideDetails, error) {
	rides, err := s.rides.FindRides(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.joinDetails(ctx, rides, true)
}

// joinDetails assembles RideDetails for a batch of rides with three
// round-trips: one per referenced collection, never one per ride.
func (s *RideService) joinDetails(ctx context.Context, rides []models.Ride, includeDrivers bool) ([]models.RideDetails, error) {
	passengerIDs := make([]string, 0, len(rides))
	driverIDs := make([]string, 0, len(rides))
	for _, r := range rides {
		if r.PassengerID != "" {
			passengerIDs = append(passengerIDs, r.PassengerID)
		}
		if includeDrivers && r.DriverID != "" {
			driverIDs = append(driverIDs, r.DriverID)
		}
	}

	passengers, err := s.passengers.FindPassengersByIDs(ctx, passengerIDs)
	if err != nil {
		return nil, err
	}
	passengerByID := make(map[string]*models.Passenger, len(passengers))
	userIDs := make([]string, 0, len(passengers)+len(driverIDs))
	for i := range passengers {
		passengerByID[passengers[i].ID.Hex()] = &passengers[i]
		userIDs = append(userIDs, passengers[i].UserID)
	}

	driverByID := make(map[string]*models.Driver)
	if includeDrivers {
		drivers, err := s.drivers.FindDriversByIDs(ctx, driverIDs)
		if err != nil {
			return nil, err
		}
		for i := range drivers {
			driverByID[drivers[i].ID.Hex()] = &drivers[i]
			userIDs = append(userIDs, drivers[i].UserID)
		}
	}

	users, err := s.users.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userByID := make(map[string]*models.User, len(users))
	for i := range users {
		userByID[users[i].ID.Hex()] = &users[i]
	}

	details := make([]models.RideDetails, 0, len(rides))
	for _, r := range rides {
		d := models.RideDetails{Ride: r}
		if p, ok := passengerByID[r.PassengerID]; ok {
			d.Passenger = &models.PassengerDetails{Passenger: *p, User: userByID[p.UserID]}
		}
		if drv, ok := driverByID[r.DriverID]; ok {
			d.Driver = &models.DriverDetails{Driver: *drv, User: userByID[drv.UserID]}
		}
		details = append(details, d)
	}
	return details, nil
}
