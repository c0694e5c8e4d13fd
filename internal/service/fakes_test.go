package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// In-memory collection fakes. Value semantics mirror the store layer:
// every read returns a copy, every write replaces the stored document.

type fakeUsers struct {
	byID map[string]models.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]models.User{}} }

func (f *fakeUsers) add(u models.User) string {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.byID[u.ID.Hex()] = u
	return u.ID.Hex()
}

func (f *fakeUsers) InsertUser(_ context.Context, u models.User) (string, error) {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return "", domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
	}
	return f.add(u), nil
}

func (f *fakeUsers) FindUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "user"}
	}
	return &u, nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "user"}
}

func (f *fakeUsers) FindUsersByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindAllUsers(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) ReplaceUser(_ context.Context, id string, u models.User) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	f.byID[id] = u
	return nil
}

type fakeDrivers struct {
	byID  map[string]models.Driver
	order []string
}

func newFakeDrivers() *fakeDrivers { return &fakeDrivers{byID: map[string]models.Driver{}} }

func (f *fakeDrivers) add(d models.Driver) string {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	id := d.ID.Hex()
	if _, ok := f.byID[id]; !ok {
		f.order = append(f.order, id)
	}
	f.byID[id] = d
	return id
}

func (f *fakeDrivers) InsertDriver(_ context.Context, d models.Driver) (string, error) {
	return f.add(d), nil
}

func (f *fakeDrivers) FindDriverByID(_ context.Context, id string) (*models.Driver, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "driver"}
	}
	return &d, nil
}

func (f *fakeDrivers) FindDriverByUserID(_ context.Context, userID string) (*models.Driver, error) {
	for _, d := range f.byID {
		if d.UserID == userID {
			d := d
			return &d, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "driver"}
}

func (f *fakeDrivers) FindDriversByIDs(_ context.Context, ids []string) ([]models.Driver, error) {
	var out []models.Driver
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if d, ok := f.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDrivers) FindAllDrivers(_ context.Context) ([]models.Driver, error) {
	out := make([]models.Driver, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeDrivers) ReplaceDriver(_ context.Context, id string, d models.Driver) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NotFoundError{Resource: "driver"}
	}
	f.byID[id] = d
	return nil
}

type fakePassengers struct {
	byID map[string]models.Passenger
}

func newFakePassengers() *fakePassengers {
	return &fakePassengers{byID: map[string]models.Passenger{}}
}

func (f *fakePassengers) add(p models.Passenger) string {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.byID[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (f *fakePassengers) InsertPassenger(_ context.Context, p models.Passenger) (string, error) {
	return f.add(p), nil
}

func (f *fakePassengers) FindPassengerByID(_ context.Context, id string) (*models.Passenger, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "passenger"}
	}
	return &p, nil
}

func (f *fakePassengers) FindPassengerByUserID(_ context.Context, userID string) (*models.Passenger, error) {
	for _, p := range f.byID {
		if p.UserID == userID {
			p := p
			return &p, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "passenger"}
}

func (f *fakePassengers) FindPassengersByIDs(_ context.Context, ids []string) ([]models.Passenger, error) {
	var out []models.Passenger
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePassengers) FindAllPassengers(_ context.Context) ([]models.Passenger, error) {
	out := make([]models.Passenger, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeAdmins struct {
	byID map[string]models.Admin
}

func newFakeAdmins() *fakeAdmins { return &fakeAdmins{byID: map[string]models.Admin{}} }

func (f *fakeAdmins) InsertAdmin(_ context.Context, a models.Admin) (string, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.byID[a.ID.Hex()] = a
	return a.ID.Hex(), nil
}

type fakeVehicles struct {
	byID  map[string]models.Vehicle
	order []string
}

func newFakeVehicles() *fakeVehicles { return &fakeVehicles{byID: map[string]models.Vehicle{}} }

func (f *fakeVehicles) InsertVehicle(_ context.Context, v models.Vehicle) (string, error) {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	id := v.ID.Hex()
	if _, ok := f.byID[id]; !ok {
		f.order = append(f.order, id)
	}
	f.byID[id] = v
	return id, nil
}

func (f *fakeVehicles) FindAllVehicles(_ context.Context) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

type fakeRides struct {
	byID map[string]models.Ride
}

func newFakeRides() *fakeRides { return &fakeRides{byID: map[string]models.Ride{}} }

func (f *fakeRides) InsertRide(_ context.Context, r models.Ride) (string, error) {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	f.byID[r.ID.Hex()] = r
	return r.ID.Hex(), nil
}

func (f *fakeRides) FindRideByID(_ context.Context, id string) (*models.Ride, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "ride"}
	}
	return &r, nil
}

func (f *fakeRides) FindRides(_ context.Context, filter db.RideFilter) ([]models.Ride, error) {
	ids := make([]string, 0, len(f.byID))
	for id := range f.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []models.Ride
	for _, id := range ids {
		r := f.byID[id]
		if filter.PassengerID != "" && r.PassengerID != filter.PassengerID {
			continue
		}
		if filter.DriverID != "" && r.DriverID != filter.DriverID {
			continue
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, st := range filter.Statuses {
				if r.Status == st {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRides) ReplaceRide(_ context.Context, id string, r models.Ride) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NotFoundError{Resource: "ride"}
	}
	f.byID[id] = r
	return nil
}

type fakeFuel struct {
	byID  map[string]models.FuelEntry
	order []string
}

func newFakeFuel() *fakeFuel { return &fakeFuel{byID: map[string]models.FuelEntry{}} }

func (f *fakeFuel) InsertFuelEntry(_ context.Context, e models.FuelEntry) (string, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	id := e.ID.Hex()
	if _, ok := f.byID[id]; !ok {
		f.order = append(f.order, id)
	}
	f.byID[id] = e
	return id, nil
}

func (f *fakeFuel) FindAllFuelEntries(_ context.Context) ([]models.FuelEntry, error) {
	out := make([]models.FuelEntry, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeFuel) ReplaceFuelEntry(_ context.Context, id string, e models.FuelEntry) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NotFoundError{Resource: "fuel entry"}
	}
	f.byID[id] = e
	return nil
}

type fakeAttendance struct {
	byID  map[string]models.DriverAttendance
	order []string
}

func newFakeAttendance() *fakeAttendance {
	return &fakeAttendance{byID: map[string]models.DriverAttendance{}}
}

func (f *fakeAttendance) InsertAttendance(_ context.Context, r models.DriverAttendance) (string, error) {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	id := r.ID.Hex()
	if _, ok := f.byID[id]; !ok {
		f.order = append(f.order, id)
	}
	f.byID[id] = r
	return id, nil
}

func (f *fakeAttendance) FindAttendanceByID(_ context.Context, id string) (*models.DriverAttendance, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "attendance record"}
	}
	return &r, nil
}

func (f *fakeAttendance) FindAttendance(_ context.Context, q db.AttendanceQuery) ([]models.DriverAttendance, error) {
	var out []models.DriverAttendance
	for _, id := range f.order {
		r := f.byID[id]
		if q.DriverID != "" && r.DriverID != q.DriverID {
			continue
		}
		if q.Start != nil && r.Date.Before(*q.Start) {
			continue
		}
		if q.End != nil && r.Date.After(*q.End) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendance) ReplaceAttendance(_ context.Context, id string, r models.DriverAttendance) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NotFoundError{Resource: "attendance record"}
	}
	f.byID[id] = r
	return nil
}

func (f *fakeAttendance) DeleteAttendance(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NotFoundError{Resource: "attendance record"}
	}
	delete(f.byID, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}
