package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// AttendanceService maintains the per-day driver attendance ledger. All
// date fields accept either ISO-8601 or DD-MM-YYYY input.
type AttendanceService struct {
	attendance db.AttendanceCollection
	drivers    db.DriverCollection
	users      db.UserCollection
}

func NewAttendanceService(attendance db.AttendanceCollection, drivers db.DriverCollection, users db.UserCollection) *AttendanceService {
	return &AttendanceService{attendance: attendance, drivers: drivers, users: users}
}

type AttendanceInput struct {
	DriverID string
	Date     string
	CheckIn  string
	CheckOut string
	Status   string
	Notes    string
}

// AttendanceUpdateInput carries partial updates; nil fields are left as
// they are.
type AttendanceUpdateInput struct {
	CheckIn  *string
	CheckOut *string
	Status   *string
	Notes    *string
}

type AttendanceListQuery struct {
	DriverID  string
	StartDate string
	EndDate   string
}

// Create records an attendance entry. The driver reference is stored as
// given and is not verified against the drivers collection.
func (s *AttendanceService) Create(ctx context.Context, in AttendanceInput) (*models.DriverAttendance, error) {
	if in.DriverID == "" {
		return nil, domain.ValidationError{Field: "driver_id", Msg: "driver_id is required"}
	}
	if in.Date == "" {
		return nil, domain.ValidationError{Field: "date", Msg: "date is required"}
	}
	date, err := parseFlexibleDate(in.Date)
	if err != nil {
		return nil, err
	}
	record := models.DriverAttendance{
		DriverID: in.DriverID,
		Date:     date,
		Status:   in.Status,
		Notes:    in.Notes,
	}
	if record.Status == "" {
		record.Status = models.AttendanceStatusPresent
	}
	if in.CheckIn != "" {
		t, err := parseFlexibleDate(in.CheckIn)
		if err != nil {
			return nil, domain.ValidationError{Field: "check_in", Msg: "invalid date format"}
		}
		record.CheckIn = &t
	}
	if in.CheckOut != "" {
		t, err := parseFlexibleDate(in.CheckOut)
		if err != nil {
			return nil, domain.ValidationError{Field: "check_out", Msg: "invalid date format"}
		}
		record.CheckOut = &t
	}
	id, err := s.attendance.InsertAttendance(ctx, record)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		record.ID = oid
	}
	return &record, nil
}

// List returns attendance records matching the query with driver names
// joined in. Unparsable range bounds are ignored rather than rejected.
func (s *AttendanceService) List(ctx context.Context, q AttendanceListQuery) ([]models.AttendanceDetails, error) {
	records, err := s.attendance.FindAttendance(ctx, db.AttendanceQuery{
		DriverID: q.DriverID,
		Start:    parseDateBound(q.StartDate),
		End:      parseDateBound(q.EndDate),
	})
	if err != nil {
		return nil, err
	}

	driverIDs := make([]string, 0, len(records))
	for _, r := range records {
		driverIDs = append(driverIDs, r.DriverID)
	}
	drivers, err := s.drivers.FindDriversByIDs(ctx, driverIDs)
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

	details := make([]models.AttendanceDetails, 0, len(records))
	for _, r := range records {
		d := models.AttendanceDetails{DriverAttendance: r, DriverName: "Unknown"}
		if drv := driverByID[r.DriverID]; drv != nil {
			if u := userByID[drv.UserID]; u != nil {
				d.DriverName = u.Name
			}
		}
		details = append(details, d)
	}
	return details, nil
}

// Update applies the provided fields to an existing record.
func (s *AttendanceService) Update(ctx context.Context, id string, in AttendanceUpdateInput) (*models.DriverAttendance, error) {
	record, err := s.attendance.FindAttendanceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CheckIn != nil {
		t, err := parseFlexibleDate(*in.CheckIn)
		if err != nil {
			return nil, domain.ValidationError{Field: "check_in", Msg: "invalid date format"}
		}
		record.CheckIn = &t
	}
	if in.CheckOut != nil {
		t, err := parseFlexibleDate(*in.CheckOut)
		if err != nil {
			return nil, domain.ValidationError{Field: "check_out", Msg: "invalid date format"}
		}
		record.CheckOut = &t
	}
	if in.Status != nil {
		record.Status = *in.Status
	}
	if in.Notes != nil {
		record.Notes = *in.Notes
	}
	if err := s.attendance.ReplaceAttendance(ctx, id, *record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes an attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	return s.attendance.DeleteAttendance(ctx, id)
}
