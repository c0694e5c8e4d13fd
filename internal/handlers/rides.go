package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/db"
	"github.com/rectransport/rideshare-api/internal/service"
)

// RideHandler serves the ride lifecycle endpoints.
type RideHandler struct {
	rides *service.RideService
}

func NewRideHandler(rides *service.RideService) *RideHandler {
	return &RideHandler{rides: rides}
}

type createRideRequest struct {
	PassengerID      string  `json:"passenger_id"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	PickupLongitude  float64 `json:"pickup_longitude"`
	PickupAddress    string  `json:"pickup_address"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	DropoffAddress   string  `json:"dropoff_address"`
}

type createManualRideRequest struct {
	createRideRequest
	DriverID string `json:"driver_id"`
}

// odometer readings are pointers so an absent field stays absent instead
// of turning into a zero reading
type odometerRequest struct {
	StartKM *float64 `json:"start_km"`
	EndKM   *float64 `json:"end_km"`
}

func (r createRideRequest) toInput() service.CreateRideInput {
	return service.CreateRideInput{
		PassengerID:      r.PassengerID,
		PickupLatitude:   r.PickupLatitude,
		PickupLongitude:  r.PickupLongitude,
		PickupAddress:    r.PickupAddress,
		DropoffLatitude:  r.DropoffLatitude,
		DropoffLongitude: r.DropoffLongitude,
		DropoffAddress:   r.DropoffAddress,
	}
}

// Create handles POST /rides.
func (h *RideHandler) Create(c *gin.Context) {
	var req createRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ride, err := h.rides.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ride)
}

// CreateManual handles POST /rides/manual.
func (h *RideHandler) CreateManual(c *gin.Context) {
	var req createManualRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ride, err := h.rides.CreateManual(c.Request.Context(), service.CreateManualRideInput{
		CreateRideInput: req.toInput(),
		DriverID:        req.DriverID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ride)
}

// Assign handles POST /rides/:id/assign?driver_id=.
func (h *RideHandler) Assign(c *gin.Context) {
	driverID := c.Query("driver_id")
	if driverID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "driver_id query parameter is required"})
		return
	}
	ride, err := h.rides.ForceAssign(c.Request.Context(), c.Param("id"), driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ride)
}

// Start handles POST /rides/:id/start.
func (h *RideHandler) Start(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var req odometerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ride, err := h.rides.Start(c.Request.Context(), claims, c.Param("id"), req.StartKM)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ride)
}

// Complete handles POST /rides/:id/complete.
func (h *RideHandler) Complete(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var req odometerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ride, err := h.rides.Complete(c.Request.Context(), claims, c.Param("id"), req.EndKM)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ride)
}

// List handles GET /rides?passenger_id=&driver_id=.
func (h *RideHandler) List(c *gin.Context) {
	details, err := h.rides.List(c.Request.Context(), db.RideFilter{
		PassengerID: c.Query("passenger_id"),
		DriverID:    c.Query("driver_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// ListPending handles GET /rides/pending.
func (h *RideHandler) ListPending(c *gin.Context) {
	rides, err := h.rides.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rides)
}

// ListAssigned handles GET /rides/assigned.
func (h *RideHandler) ListAssigned(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	details, err := h.rides.ListAssigned(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
