package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rectransport/rideshare-api/internal/models"
	"github.com/rectransport/rideshare-api/internal/service"
)

// UserHandler serves admin account management and passenger endpoints.
type UserHandler struct {
	identity *service.IdentityService
}

func NewUserHandler(identity *service.IdentityService) *UserHandler {
	return &UserHandler{identity: identity}
}

type createUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Avatar   string      `json:"avatar"`
}

func (r createUserRequest) toInput() service.CreateUserInput {
	return service.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		Role:     r.Role,
		Avatar:   r.Avatar,
	}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user, err := h.identity.CreateUser(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// CreatePassenger handles POST /passengers.
func (h *UserHandler) CreatePassenger(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	details, err := h.identity.CreatePassenger(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, details)
}

// ListPassengers handles GET /passengers.
func (h *UserHandler) ListPassengers(c *gin.Context) {
	details, err := h.identity.ListPassengers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// PassengerMe handles GET /passengers/me.
func (h *UserHandler) PassengerMe(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	passenger, err := h.identity.PassengerMe(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}
