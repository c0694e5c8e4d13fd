package service

import (
	"context"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/models"
)

// DriverService covers driver availability and profile reads.
type DriverService struct {
	drivers db.DriverCollection
	users   db.UserCollection
}

func NewDriverService(drivers db.DriverCollection, users db.UserCollection) *DriverService {
	return &DriverService{drivers: drivers, users: users}
}

// SetOnline flips the caller's availability flag. Availability is a plain
// persisted boolean; it does not gate assignment.
func (s *DriverService) SetOnline(ctx context.Context, ident *models.Claims, online bool) (*models.Driver, error) {
	driver, err := s.drivers.FindDriverByUserID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	driver.IsOnline = online
	if err := s.drivers.ReplaceDriver(ctx, driver.ID.Hex(), *driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Me returns the caller's driver profile.
func (s *DriverService) Me(ctx context.Context, ident *models.Claims) (*models.Driver, error) {
	return s.drivers.FindDriverByUserID(ctx, ident.UserID)
}

// ListDrivers returns every driver with the owning user joined in.
func (s *DriverService) ListDrivers(ctx context.Context) ([]models.DriverDetails, error) {
	drivers, err := s.drivers.FindAllDrivers(ctx)
	if err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(drivers))
	for _, d := range drivers {
		userIDs = append(userIDs, d.UserID)
	}
	users, err := s.users.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userByID := make(map[string]*models.User, len(users))
	for i := range users {
		userByID[users[i].ID.Hex()] = &users[i]
	}
	details := make([]models.DriverDetails, 0, len(drivers))
	for _, d := range drivers {
		details = append(details, models.DriverDetails{Driver: d, User: userByID[d.UserID]})
	}
	return details, nil
}
