package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/service"
)

// VehicleHandler serves standalone vehicle registration and the merged
// fleet listing.
type VehicleHandler struct {
	identity *service.IdentityService
}

func NewVehicleHandler(identity *service.IdentityService) *VehicleHandler {
	return &VehicleHandler{identity: identity}
}

type createVehicleRequest struct {
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleYear   int    `json:"vehicle_year"`
	LicensePlate  string `json:"license_plate"`
	VehicleColor  string `json:"vehicle_color"`
	LicenseNumber string `json:"license_number"`
	LicenseExpiry string `json:"license_expiry"`
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	vehicle, err := h.identity.CreateVehicle(c.Request.Context(), service.CreateVehicleInput{
		VehicleMake:   req.VehicleMake,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		LicensePlate:  req.LicensePlate,
		VehicleColor:  req.VehicleColor,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// List handles GET /vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.identity.ListVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}
