package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/rectransport/rideshare-api/internal/auth"
	"github.com/rectransport/rideshare-api/internal/config"
	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/handlers"
	"github.com/rectransport/rideshare-api/internal/logger"
	"github.com/rectransport/rideshare-api/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	client, err := db.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("mongo disconnect")
		}
	}()
	store := db.NewStore(client.Database(cfg.MongoDB))

	authSvc := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	router := handlers.NewRouter(handlers.Services{
		Auth:       authSvc,
		Identity:   service.NewIdentityService(store.Users, store.Drivers, store.Passengers, store.Admins, store.Vehicles, authSvc),
		Rides:      service.NewRideService(store.Rides, store.Drivers, store.Passengers, store.Users),
		Drivers:    service.NewDriverService(store.Drivers, store.Users),
		Fuel:       service.NewFuelService(store.Fuel, store.Drivers, store.Users, cfg.StrictFuelRefs),
		Attendance: service.NewAttendanceService(store.Attendance, store.Drivers, store.Users),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
