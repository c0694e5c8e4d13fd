package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/auth"
	"github.com/rectransport/rideshare-api/internal/middleware"
	"github.com/rectransport/rideshare-api/internal/models"
	"github.com/rectransport/rideshare-api/internal/service"
)

// Services groups everything the router needs.
type Services struct {
	Auth       *auth.Service
	Identity   *service.IdentityService
	Rides      *service.RideService
	Drivers    *service.DriverService
	Fuel       *service.FuelService
	Attendance *service.AttendanceService
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	authMW := middleware.NewAuthMiddleware(svcs.Auth)
	adminOnly := []gin.HandlerFunc{authMW.Authenticate(), authMW.RequireRole(models.RoleAdmin)}
	driverOnly := []gin.HandlerFunc{authMW.Authenticate(), authMW.RequireRole(models.RoleDriver)}
	passengerOnly := []gin.HandlerFunc{authMW.Authenticate(), authMW.RequireRole(models.RolePassenger)}

	authHandler := NewAuthHandler(svcs.Identity)
	rideHandler := NewRideHandler(svcs.Rides)
	driverHandler := NewDriverHandler(svcs.Drivers, svcs.Identity)
	fuelHandler := NewFuelHandler(svcs.Fuel)
	attendanceHandler := NewAttendanceHandler(svcs.Attendance)
	userHandler := NewUserHandler(svcs.Identity)
	vehicleHandler := NewVehicleHandler(svcs.Identity)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/auth/login", authHandler.Login)
	router.GET("/auth/me", authMW.Authenticate(), authHandler.Me)

	// ride creation and the filtered listing carry no auth
	rides := router.Group("/rides")
	{
		rides.POST("", rideHandler.Create)
		rides.GET("", rideHandler.List)
		rides.GET("/pending", append(adminOnly, rideHandler.ListPending)...)
		rides.GET("/assigned", append(driverOnly, rideHandler.ListAssigned)...)
		rides.POST("/manual", append(adminOnly, rideHandler.CreateManual)...)
		rides.POST("/:id/assign", append(adminOnly, rideHandler.Assign)...)
		rides.POST("/:id/start", append(driverOnly, rideHandler.Start)...)
		rides.POST("/:id/complete", append(driverOnly, rideHandler.Complete)...)
	}

	drivers := router.Group("/drivers")
	{
		drivers.POST("", append(adminOnly, driverHandler.Create)...)
		drivers.GET("", append(adminOnly, driverHandler.List)...)
		drivers.GET("/me", append(driverOnly, driverHandler.Me)...)
		drivers.PUT("/me/status", append(driverOnly, driverHandler.SetStatus)...)
	}

	passengers := router.Group("/passengers")
	{
		passengers.POST("", append(adminOnly, userHandler.CreatePassenger)...)
		passengers.GET("", append(adminOnly, userHandler.ListPassengers)...)
		passengers.GET("/me", append(passengerOnly, userHandler.PassengerMe)...)
	}

	router.POST("/users", append(adminOnly, userHandler.Create)...)

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", append(adminOnly, vehicleHandler.Create)...)
		vehicles.GET("", append(adminOnly, vehicleHandler.List)...)
	}

	fuel := router.Group("/fuel-entries")
	{
		fuel.POST("", append(adminOnly, fuelHandler.CreateForDriver)...)
		fuel.POST("/me", append(driverOnly, fuelHandler.CreateOwn)...)
		fuel.GET("", append(adminOnly, fuelHandler.List)...)
	}

	attendance := router.Group("/attendance", adminOnly...)
	{
		attendance.POST("", attendanceHandler.Create)
		attendance.GET("", attendanceHandler.List)
		attendance.PUT("/:id", attendanceHandler.Update)
		attendance.DELETE("/:id", attendanceHandler.Delete)
	}

	// unauthenticated maintenance hook for ledger repair
	router.POST("/debug/fix-fuel-entries", fuelHandler.Fix)

	return router
}
