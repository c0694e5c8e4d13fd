package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/service"
)

// FuelHandler serves the fuel ledger endpoints.
type FuelHandler struct {
	fuel *service.FuelService
}

func NewFuelHandler(fuel *service.FuelService) *FuelHandler {
	return &FuelHandler{fuel: fuel}
}

type adminFuelRequest struct {
	DriverID    string   `json:"driver_id"`
	FuelAmount  *float64 `json:"fuel_amount"`
	FuelCost    *float64 `json:"fuel_cost"`
	FuelStation string   `json:"fuel_station"`
	Date        string   `json:"date"`
}

type driverFuelRequest struct {
	Amount   *float64 `json:"amount"`
	Cost     *float64 `json:"cost"`
	Location string   `json:"location"`
	Date     string   `json:"date"`
}

// CreateForDriver handles POST /fuel-entries.
func (h *FuelHandler) CreateForDriver(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var req adminFuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry, err := h.fuel.RecordForDriver(c.Request.Context(), claims, service.AdminFuelInput{
		DriverID: req.DriverID,
		Amount:   req.FuelAmount,
		Cost:     req.FuelCost,
		Station:  req.FuelStation,
		Date:     req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// CreateOwn handles POST /fuel-entries/me.
func (h *FuelHandler) CreateOwn(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var req driverFuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry, err := h.fuel.RecordOwn(c.Request.Context(), claims, service.DriverFuelInput{
		Amount:   req.Amount,
		Cost:     req.Cost,
		Location: req.Location,
		Date:     req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List handles GET /fuel-entries.
func (h *FuelHandler) List(c *gin.Context) {
	details, err := h.fuel.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Fix handles POST /debug/fix-fuel-entries, the unauthenticated ledger
// repair hook.
func (h *FuelHandler) Fix(c *gin.Context) {
	result, err := h.fuel.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
