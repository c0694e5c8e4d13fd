package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

type rideFixture struct {
	svc        *RideService
	rides      *fakeRides
	drivers    *fakeDrivers
	passengers *fakePassengers
	users      *fakeUsers

	driverID    string
	driverUser  string
	passengerID string
}

func newRideFixture(t *testing.T) *rideFixture {
	t.Helper()
	f := &rideFixture{
		rides:      newFakeRides(),
		drivers:    newFakeDrivers(),
		passengers: newFakePassengers(),
		users:      newFakeUsers(),
	}
	f.svc = NewRideService(f.rides, f.drivers, f.passengers, f.users)

	f.driverUser = f.users.add(models.User{Name: "Dawit Bekele", Email: "dawit@example.com", Role: models.RoleDriver})
	f.driverID = f.drivers.add(models.Driver{UserID: f.driverUser, VehicleMake: "Toyota", LicensePlate: "AA-123", CurrentKMReading: 100})

	passengerUser := f.users.add(models.User{Name: "Sara Alem", Email: "sara@example.com", Role: models.RolePassenger})
	f.passengerID = f.passengers.add(models.Passenger{UserID: passengerUser})
	return f
}

func (f *rideFixture) driverClaims() *models.Claims {
	return &models.Claims{UserID: f.driverUser, Role: models.RoleDriver}
}

func TestRideCreate(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{
		PassengerID:   f.passengerID,
		PickupAddress: "Bole",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusRequested, ride.Status)
	assert.False(t, ride.RequestedAt.IsZero())
	assert.Nil(t, ride.AssignedAt)
	assert.Empty(t, ride.DriverID)
	assert.False(t, ride.ID.IsZero())
}

func TestRideCreateRequiresPassenger(t *testing.T) {
	f := newRideFixture(t)

	_, err := f.svc.Create(context.Background(), CreateRideInput{})
	assert.True(t, domain.IsValidation(err))
}

func TestRideCreateManualAssignsDriver(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.CreateManual(ctx, CreateManualRideInput{
		CreateRideInput: CreateRideInput{PassengerID: f.passengerID},
		DriverID:        f.driverID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAssigned, ride.Status)
	assert.Equal(t, f.driverID, ride.DriverID)
	assert.NotNil(t, ride.AssignedAt)
}

// A manual create with a driver that does not resolve fails before any
// write: nothing may be persisted on the error path.
func TestRideCreateManualUnknownDriverWritesNothing(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateManual(ctx, CreateManualRideInput{
		CreateRideInput: CreateRideInput{PassengerID: f.passengerID},
		DriverID:        "662f00000000000000000000",
	})
	assert.True(t, domain.IsNotFound(err))

	rides, err := f.rides.FindRides(ctx, db.RideFilter{})
	require.NoError(t, err)
	assert.Empty(t, rides)
}

// The single-call manual create persists exactly one ride, already
// assigned; no intermediate REQUESTED record is written first.
func TestRideCreateManualSingleInsert(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.CreateManual(ctx, CreateManualRideInput{
		CreateRideInput: CreateRideInput{PassengerID: f.passengerID},
		DriverID:        f.driverID,
	})
	require.NoError(t, err)

	stored, err := f.rides.FindRideByID(ctx, ride.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAssigned, stored.Status)
	assert.Equal(t, f.driverID, stored.DriverID)
	assert.NotNil(t, stored.AssignedAt)
}

func TestRideForceAssign(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)

	assigned, err := f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAssigned, assigned.Status)
	assert.Equal(t, f.driverID, assigned.DriverID)
	assert.NotNil(t, assigned.AssignedAt)
}

func TestRideForceAssignUnknownRide(t *testing.T) {
	f := newRideFixture(t)

	_, err := f.svc.ForceAssign(context.Background(), "662f00000000000000000000", f.driverID)
	assert.True(t, domain.IsNotFound(err))
}

func TestRideForceAssignUnknownDriver(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)

	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), "662f00000000000000000000")
	assert.True(t, domain.IsNotFound(err))
}

// Re-assignment of an already assigned ride overwrites the first driver;
// the last write wins and no conflict is reported.
func TestRideForceAssignLastWriterWins(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	otherUser := f.users.add(models.User{Name: "Lensa Tolosa", Email: "lensa@example.com", Role: models.RoleDriver})
	otherDriver := f.drivers.add(models.Driver{UserID: otherUser})

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)

	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)
	final, err := f.svc.ForceAssign(ctx, ride.ID.Hex(), otherDriver)
	require.NoError(t, err)

	assert.Equal(t, otherDriver, final.DriverID)
	assert.Equal(t, models.RideStatusAssigned, final.Status)

	stored, err := f.rides.FindRideByID(ctx, ride.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, otherDriver, stored.DriverID)
}

func TestRideStart(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)

	started, err := f.svc.Start(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(100))
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusInProgress, started.Status)
	assert.NotNil(t, started.PickedUpAt)
	require.NotNil(t, started.StartKM)
	assert.Equal(t, 100.0, *started.StartKM)
}

func TestRideStartWrongDriver(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	otherUser := f.users.add(models.User{Name: "Lensa Tolosa", Email: "lensa@example.com", Role: models.RoleDriver})
	f.drivers.add(models.Driver{UserID: otherUser})

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)

	_, err = f.svc.Start(ctx, &models.Claims{UserID: otherUser}, ride.ID.Hex(), float64Ptr(100))
	assert.True(t, domain.IsForbidden(err))
}

func TestRideCompleteDerivesDistance(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)
	_, err = f.svc.Start(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(100))
	require.NoError(t, err)

	done, err := f.svc.Complete(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(150))
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, done.Status)
	assert.Equal(t, 50.0, done.Distance)
	assert.NotNil(t, done.CompletedAt)

	driver, err := f.drivers.FindDriverByID(ctx, f.driverID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, driver.CurrentKMReading)
	assert.Equal(t, 1, driver.TotalRides)
}

// Completing a ride that never recorded a pickup reading leaves the
// distance at zero rather than guessing.
func TestRideCompleteWithoutStartKM(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)

	done, err := f.svc.Complete(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(150))
	require.NoError(t, err)
	assert.Equal(t, 0.0, done.Distance)
	require.NotNil(t, done.EndKM)
	assert.Equal(t, 150.0, *done.EndKM)
}

// An absent end reading never turns into a zero-kilometer odometer value:
// the distance stays zero and the driver's reading is left alone.
func TestRideCompleteWithoutEndKM(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)
	_, err = f.svc.Start(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(100))
	require.NoError(t, err)

	done, err := f.svc.Complete(ctx, f.driverClaims(), ride.ID.Hex(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, done.Status)
	assert.Equal(t, 0.0, done.Distance)
	assert.Nil(t, done.EndKM)

	driver, err := f.drivers.FindDriverByID(ctx, f.driverID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, driver.CurrentKMReading)
	assert.Equal(t, 1, driver.TotalRides)
}

// A zero end reading is treated as absent, not as a drive back to zero.
func TestRideCompleteZeroEndKM(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)
	_, err = f.svc.Start(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(100))
	require.NoError(t, err)

	done, err := f.svc.Complete(ctx, f.driverClaims(), ride.ID.Hex(), float64Ptr(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, done.Distance)
}

func TestRideCompleteWrongDriver(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	otherUser := f.users.add(models.User{Name: "Lensa Tolosa", Email: "lensa@example.com", Role: models.RoleDriver})
	f.drivers.add(models.Driver{UserID: otherUser})

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)

	_, err = f.svc.Complete(ctx, &models.Claims{UserID: otherUser}, ride.ID.Hex(), float64Ptr(150))
	assert.True(t, domain.IsForbidden(err))

	stored, err := f.rides.FindRideByID(ctx, ride.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAssigned, stored.Status)
}

func TestRideListPending(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	pending, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	assigned, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, assigned.ID.Hex(), f.driverID)
	require.NoError(t, err)

	rides, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, pending.ID, rides[0].ID)
}

func TestRideListAssignedJoinsPassenger(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)

	details, err := f.svc.ListAssigned(ctx, f.driverClaims())
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].Passenger)
	require.NotNil(t, details[0].Passenger.User)
	assert.Equal(t, "Sara Alem", details[0].Passenger.User.Name)
	assert.Nil(t, details[0].Driver)
}

func TestRideListJoinsDriverAndPassenger(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	ride, err := f.svc.Create(ctx, CreateRideInput{PassengerID: f.passengerID})
	require.NoError(t, err)
	_, err = f.svc.ForceAssign(ctx, ride.ID.Hex(), f.driverID)
	require.NoError(t, err)

	details, err := f.svc.List(ctx, db.RideFilter{})
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].Driver)
	require.NotNil(t, details[0].Driver.User)
	assert.Equal(t, "Dawit Bekele", details[0].Driver.User.Name)
	require.NotNil(t, details[0].Passenger)
}

// A ride whose passenger reference no longer resolves still lists; the
// missing join side is simply nil.
func TestRideListDanglingPassenger(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateRideInput{PassengerID: "662f00000000000000000000"})
	require.NoError(t, err)

	details, err := f.svc.List(ctx, db.RideFilter{})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Nil(t, details[0].Passenger)
}
