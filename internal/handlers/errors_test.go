package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rectransport/rideshare-api/internal/auth"
	"github.com/rectransport/rideshare-api/internal/domain"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ValidationError{Field: "date", Msg: "invalid date format"}, http.StatusBadRequest},
		{"forbidden", domain.ForbiddenError{Msg: "not authorized to start this ride"}, http.StatusForbidden},
		{"not found", domain.NotFoundError{Resource: "ride"}, http.StatusNotFound},
		{"conflict", domain.ConflictError{Resource: "user", Msg: "email already registered"}, http.StatusConflict},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRespondErrorHidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("mongo: connection reset"))
	assert.NotContains(t, rec.Body.String(), "mongo")
}

func TestRespondErrorWrappedDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, domain.NotFoundError{Resource: "driver", Err: errors.New("gone")})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
