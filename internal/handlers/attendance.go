package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/service"
)

// AttendanceHandler serves the attendance ledger endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

type attendanceRequest struct {
	DriverID string `json:"driver_id"`
	Date     string `json:"date"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

type attendanceUpdateRequest struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

// Create handles POST /attendance.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record, err := h.attendance.Create(c.Request.Context(), service.AttendanceInput{
		DriverID: req.DriverID,
		Date:     req.Date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// List handles GET /attendance?driver_id=&start_date=&end_date=.
func (h *AttendanceHandler) List(c *gin.Context) {
	details, err := h.attendance.List(c.Request.Context(), service.AttendanceListQuery{
		DriverID:  c.Query("driver_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Update handles PUT /attendance/:id.
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req attendanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record, err := h.attendance.Update(c.Request.Context(), c.Param("id"), service.AttendanceUpdateInput{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /attendance/:id.
func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.attendance.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attendance record deleted"})
}
