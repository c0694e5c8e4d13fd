package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/rectransport/rideshare-api/internal/auth"
	"github.com/rectransport/rideshare-api/internal/config"
	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/logger"
	"github.com/rectransport/rideshare-api/internal/models"
	"github.com/rectransport/rideshare-api/internal/service"
)

// Seeds one account per role so a fresh database is immediately usable.
func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	client, err := db.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	store := db.NewStore(client.Database(cfg.MongoDB))

	authSvc := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	identity := service.NewIdentityService(store.Users, store.Drivers, store.Passengers, store.Admins, store.Vehicles, authSvc)
	ctx := context.Background()

	accounts := []service.CreateUserInput{
		{Name: "Fleet Admin", Email: "admin@rideshare.local", Phone: "+251911000001", Password: "admin123", Role: models.RoleAdmin},
		{Name: "Default Driver", Email: "driver@rideshare.local", Phone: "+251911000002", Password: "driver123", Role: models.RoleDriver},
		{Name: "Default Passenger", Email: "passenger@rideshare.local", Phone: "+251911000003", Password: "passenger123", Role: models.RolePassenger},
	}

	for _, in := range accounts {
		user, err := identity.CreateUser(ctx, in)
		if err != nil {
			if domain.IsConflict(err) {
				log.WithField("email", in.Email).Info("account already exists, skipping")
				continue
			}
			log.WithError(err).WithField("email", in.Email).Fatal("seeding failed")
		}
		log.WithFields(log.Fields{"email": user.Email, "role": user.Role}).Info("account created")
	}
}
