package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rectransport/rideshare-api/internal/auth"
	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// IdentityService handles login and administrative account management:
// users, their role profiles, and standalone vehicle records.
type IdentityService struct {
	users      db.UserCollection
	drivers    db.DriverCollection
	passengers db.PassengerCollection
	admins     db.AdminCollection
	vehicles   db.VehicleCollection
	auth       *auth.Service
}

func NewIdentityService(users db.UserCollection, drivers db.DriverCollection, passengers db.PassengerCollection, admins db.AdminCollection, vehicles db.VehicleCollection, authService *auth.Service) *IdentityService {
	return &IdentityService{
		users:      users,
		drivers:    drivers,
		passengers: passengers,
		admins:     admins,
		vehicles:   vehicles,
		auth:       authService,
	}
}

// Login verifies the credentials and issues a bearer token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !s.auth.CheckPassword(password, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}
	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{AccessToken: token, TokenType: "bearer", User: *user}, nil
}

// GetUser returns the user record behind a set of claims.
func (s *IdentityService) GetUser(ctx context.Context, ident *models.Claims) (*models.User, error) {
	return s.users.FindUserByID(ctx, ident.UserID)
}

type CreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     models.Role
	Avatar   string
}

type CreateDriverInput struct {
	CreateUserInput
	VehicleMake   string
	VehicleModel  string
	VehicleYear   int
	LicensePlate  string
	VehicleColor  string
	LicenseNumber string
	LicenseExpiry string // DD-MM-YYYY, optional
}

type CreateVehicleInput struct {
	VehicleMake   string
	VehicleModel  string
	VehicleYear   int
	LicensePlate  string
	VehicleColor  string
	LicenseNumber string
	LicenseExpiry string
}

// CreateUser creates a user account and the empty profile record matching
// its role. A taken email is a Conflict.
func (s *IdentityService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	user, err := s.insertUser(ctx, in)
	if err != nil {
		return nil, err
	}
	switch in.Role {
	case models.RoleDriver:
		if _, err := s.drivers.InsertDriver(ctx, models.Driver{UserID: user.ID.Hex()}); err != nil {
			return nil, err
		}
	case models.RolePassenger:
		if _, err := s.passengers.InsertPassenger(ctx, models.Passenger{UserID: user.ID.Hex()}); err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		if _, err := s.admins.InsertAdmin(ctx, models.Admin{UserID: user.ID.Hex(), Permissions: "all"}); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// CreateDriver creates a driver account together with its vehicle profile.
func (s *IdentityService) CreateDriver(ctx context.Context, in CreateDriverInput) (*models.DriverDetails, error) {
	in.Role = models.RoleDriver
	user, err := s.insertUser(ctx, in.CreateUserInput)
	if err != nil {
		return nil, err
	}
	driver := models.Driver{
		UserID:        user.ID.Hex(),
		VehicleMake:   in.VehicleMake,
		VehicleModel:  in.VehicleModel,
		VehicleYear:   in.VehicleYear,
		LicensePlate:  in.LicensePlate,
		VehicleColor:  in.VehicleColor,
		LicenseNumber: in.LicenseNumber,
	}
	if in.LicenseExpiry != "" {
		expiry, err := parseFlexibleDate(in.LicenseExpiry)
		if err != nil {
			return nil, domain.ValidationError{Field: "license_expiry", Msg: "invalid date format"}
		}
		driver.LicenseExpiry = &expiry
	}
	id, err := s.drivers.InsertDriver(ctx, driver)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		driver.ID = oid
	}
	return &models.DriverDetails{Driver: driver, User: user}, nil
}

// CreatePassenger creates a passenger account with its profile.
func (s *IdentityService) CreatePassenger(ctx context.Context, in CreateUserInput) (*models.PassengerDetails, error) {
	in.Role = models.RolePassenger
	user, err := s.insertUser(ctx, in)
	if err != nil {
		return nil, err
	}
	passenger := models.Passenger{UserID: user.ID.Hex()}
	id, err := s.passengers.InsertPassenger(ctx, passenger)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		passenger.ID = oid
	}
	return &models.PassengerDetails{Passenger: passenger, User: user}, nil
}

func (s *IdentityService) insertUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.Name == "" {
		return nil, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if in.Email == "" {
		return nil, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if err := s.auth.ValidateEmail(in.Email); err != nil {
		return nil, domain.ValidationError{Field: "email", Msg: "invalid email format"}
	}
	if in.Password == "" {
		return nil, domain.ValidationError{Field: "password", Msg: "password is required"}
	}
	if !models.IsValidRole(in.Role) {
		return nil, domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	if _, err := s.users.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         in.Role,
		Avatar:       in.Avatar,
		IsActive:     true,
	}
	id, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		user.ID = oid
	}
	return &user, nil
}

// ListPassengers returns every passenger with the owning user joined in.
func (s *IdentityService) ListPassengers(ctx context.Context) ([]models.PassengerDetails, error) {
	passengers, err := s.passengers.FindAllPassengers(ctx)
	if err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(passengers))
	for _, p := range passengers {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := s.users.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userByID := make(map[string]*models.User, len(users))
	for i := range users {
		userByID[users[i].ID.Hex()] = &users[i]
	}
	details := make([]models.PassengerDetails, 0, len(passengers))
	for _, p := range passengers {
		details = append(details, models.PassengerDetails{Passenger: p, User: userByID[p.UserID]})
	}
	return details, nil
}

// PassengerMe returns the caller's passenger profile.
func (s *IdentityService) PassengerMe(ctx context.Context, ident *models.Claims) (*models.Passenger, error) {
	return s.passengers.FindPassengerByUserID(ctx, ident.UserID)
}

// CreateVehicle registers a standalone fleet vehicle.
func (s *IdentityService) CreateVehicle(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	if in.LicensePlate == "" {
		return nil, domain.ValidationError{Field: "license_plate", Msg: "license_plate is required"}
	}
	vehicle := models.Vehicle{
		VehicleMake:   in.VehicleMake,
		VehicleModel:  in.VehicleModel,
		VehicleYear:   in.VehicleYear,
		LicensePlate:  in.LicensePlate,
		VehicleColor:  in.VehicleColor,
		LicenseNumber: in.LicenseNumber,
	}
	if in.LicenseExpiry != "" {
		expiry, err := parseFlexibleDate(in.LicenseExpiry)
		if err != nil {
			return nil, domain.ValidationError{Field: "license_expiry", Msg: "invalid date format"}
		}
		vehicle.LicenseExpiry = &expiry
	}
	id, err := s.vehicles.InsertVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		vehicle.ID = oid
	}
	return &vehicle, nil
}

// ListVehicles returns the fleet: standalone vehicle records plus the
// vehicles embedded in driver profiles, merged into one view.
func (s *IdentityService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.FindAllVehicles(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.drivers.FindAllDrivers(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range drivers {
		if d.LicensePlate == "" && d.VehicleMake == "" {
			continue
		}
		vehicles = append(vehicles, models.Vehicle{
			ID:            d.ID,
			VehicleMake:   d.VehicleMake,
			VehicleModel:  d.VehicleModel,
			VehicleYear:   d.VehicleYear,
			LicensePlate:  d.LicensePlate,
			VehicleColor:  d.VehicleColor,
			LicenseNumber: d.LicenseNumber,
			LicenseExpiry: d.LicenseExpiry,
			CreatedAt:     d.CreatedAt,
			UpdatedAt:     d.UpdatedAt,
		})
	}
	return vehicles, nil
}
