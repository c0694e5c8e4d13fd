package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// FuelService maintains the fuel purchase ledger. Entries reference drivers
// by plain string id, so the ledger can accumulate dangling references; List
// papers over them for display and Reconcile repairs them in place.
type FuelService struct {
	fuel    db.FuelEntryCollection
	drivers db.DriverCollection
	users   db.UserCollection

	// strictRefs makes List flag entries with dangling driver references
	// instead of substituting the first driver on record.
	strictRefs bool
}

func NewFuelService(fuel db.FuelEntryCollection, drivers db.DriverCollection, users db.UserCollection, strictRefs bool) *FuelService {
	return &FuelService{fuel: fuel, drivers: drivers, users: users, strictRefs: strictRefs}
}

type AdminFuelInput struct {
	DriverID string
	Amount   *float64
	Cost     *float64
	Station  string
	Date     string // YYYY-MM-DD, defaults to now when absent or unparsable
}

type DriverFuelInput struct {
	Amount   *float64
	Cost     *float64
	Location string
	Date     string
}

// RecordForDriver creates a fuel entry on behalf of the named driver. The
// acting admin is recorded on the entry.
func (s *FuelService) RecordForDriver(ctx context.Context, ident *models.Claims, in AdminFuelInput) (*models.FuelEntry, error) {
	if in.DriverID == "" {
		return nil, domain.ValidationError{Field: "driver_id", Msg: "driver_id is required"}
	}
	// a zero reading counts as missing, same as an absent field
	if in.Amount == nil || *in.Amount == 0 {
		return nil, domain.ValidationError{Field: "fuel_amount", Msg: "fuel_amount is required"}
	}
	if in.Cost == nil || *in.Cost == 0 {
		return nil, domain.ValidationError{Field: "fuel_cost", Msg: "fuel_cost is required"}
	}
	location := in.Station
	if location == "" {
		location = "Unknown"
	}
	entry := models.FuelEntry{
		DriverID: in.DriverID,
		Amount:   *in.Amount,
		Cost:     *in.Cost,
		Location: location,
		Date:     parseFuelDate(in.Date),
		AddedBy:  "admin",
		AdminID:  ident.UserID,
	}
	return s.insert(ctx, entry)
}

// RecordOwn creates a fuel entry for the calling driver's own profile.
func (s *FuelService) RecordOwn(ctx context.Context, ident *models.Claims, in DriverFuelInput) (*models.FuelEntry, error) {
	if in.Amount == nil || *in.Amount == 0 {
		return nil, domain.ValidationError{Field: "amount", Msg: "amount is required"}
	}
	if in.Cost == nil || *in.Cost == 0 {
		return nil, domain.ValidationError{Field: "cost", Msg: "cost is required"}
	}
	if in.Location == "" {
		return nil, domain.ValidationError{Field: "location", Msg: "location is required"}
	}
	driver, err := s.drivers.FindDriverByUserID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	entry := models.FuelEntry{
		DriverID: driver.ID.Hex(),
		Amount:   *in.Amount,
		Cost:     *in.Cost,
		Location: in.Location,
		Date:     parseFuelDate(in.Date),
		AddedBy:  "driver",
		AdminID:  ident.UserID,
	}
	return s.insert(ctx, entry)
}

func (s *FuelService) insert(ctx context.Context, entry models.FuelEntry) (*models.FuelEntry, error) {
	id, err := s.fuel.InsertFuelEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		entry.ID = oid
	}
	return &entry, nil
}

// List returns every fuel entry joined with driver and user display fields.
// An entry whose driver reference no longer resolves is attributed to the
// first driver on record, or flagged inconsistent when strict references
// are enabled.
func (s *FuelService) List(ctx context.Context) ([]models.FuelEntryDetails, error) {
	entries, err := s.fuel.FindAllFuelEntries(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.drivers.FindAllDrivers(ctx)
	if err != nil {
		return nil, err
	}
	driverByID := make(map[string]*models.Driver, len(drivers))
	userIDs := make([]string, 0, len(drivers))
	for i := range drivers {
		driverByID[drivers[i].ID.Hex()] = &drivers[i]
		userIDs = append(userIDs, drivers[i].UserID)
	}
	users, err := s.users.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userByID := make(map[string]*models.User, len(users))
	for i := range users {
		userByID[users[i].ID.Hex()] = &users[i]
	}

	var fallback *models.Driver
	if len(drivers) > 0 {
		fallback = &drivers[0]
	}

	details := make([]models.FuelEntryDetails, 0, len(entries))
	for _, e := range entries {
		d := models.FuelEntryDetails{
			ID:          e.ID.Hex(),
			DriverID:    e.DriverID,
			DriverName:  "Unknown",
			FuelAmount:  e.Amount,
			FuelCost:    e.Cost,
			FuelStation: e.Location,
		}
		if !e.Date.IsZero() {
			date := e.Date
			d.Date = &date
		}
		driver := driverByID[e.DriverID]
		if driver == nil {
			if s.strictRefs {
				d.Inconsistent = true
				details = append(details, d)
				continue
			}
			driver = fallback
		}
		if driver != nil {
			d.VehicleMake = driver.VehicleMake
			d.LicensePlate = driver.LicensePlate
			if u := userByID[driver.UserID]; u != nil {
				d.DriverName = u.Name
			}
		}
		details = append(details, d)
	}
	return details, nil
}

// Reconcile rewrites every fuel entry whose driver reference does not
// resolve so that it points at the first driver on record, and reports how
// many entries were repaired. Running it twice fixes nothing the second
// time.
func (s *FuelService) Reconcile(ctx context.Context) (*models.ReconcileResult, error) {
	drivers, err := s.drivers.FindAllDrivers(ctx)
	if err != nil {
		return nil, err
	}
	if len(drivers) == 0 {
		return nil, domain.NotFoundError{Resource: "drivers"}
	}
	entries, err := s.fuel.FindAllFuelEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.NotFoundError{Resource: "fuel entries"}
	}

	known := make(map[string]struct{}, len(drivers))
	for _, d := range drivers {
		known[d.ID.Hex()] = struct{}{}
	}
	defaultID := drivers[0].ID.Hex()

	fixed := 0
	for _, e := range entries {
		if _, ok := known[e.DriverID]; ok {
			continue
		}
		e.DriverID = defaultID
		if err := s.fuel.ReplaceFuelEntry(ctx, e.ID.Hex(), e); err != nil {
			return nil, err
		}
		fixed++
	}
	return &models.ReconcileResult{FixedCount: fixed, TotalEntries: len(entries)}, nil
}
