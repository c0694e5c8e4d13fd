package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/service"
)

// DriverHandler serves driver availability and admin driver management.
type DriverHandler struct {
	drivers  *service.DriverService
	identity *service.IdentityService
}

func NewDriverHandler(drivers *service.DriverService, identity *service.IdentityService) *DriverHandler {
	return &DriverHandler{drivers: drivers, identity: identity}
}

type statusRequest struct {
	IsOnline bool `json:"is_online"`
}

type createDriverRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Password      string `json:"password"`
	Avatar        string `json:"avatar"`
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleYear   int    `json:"vehicle_year"`
	LicensePlate  string `json:"license_plate"`
	VehicleColor  string `json:"vehicle_color"`
	LicenseNumber string `json:"license_number"`
	LicenseExpiry string `json:"license_expiry"`
}

// SetStatus handles PUT /drivers/me/status.
func (h *DriverHandler) SetStatus(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	driver, err := h.drivers.SetOnline(c.Request.Context(), claims, req.IsOnline)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// Me handles GET /drivers/me.
func (h *DriverHandler) Me(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	driver, err := h.drivers.Me(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// List handles GET /drivers.
func (h *DriverHandler) List(c *gin.Context) {
	details, err := h.drivers.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Create handles POST /drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	details, err := h.identity.CreateDriver(c.Request.Context(), service.CreateDriverInput{
		CreateUserInput: service.CreateUserInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
			Avatar:   req.Avatar,
		},
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
	c.JSON(http.StatusCreated, details)
}
