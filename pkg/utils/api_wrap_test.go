package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandleServiceError(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(TraceIDKey, "trace-1")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrTokenMissing, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{fmt.Errorf("%w: bad sig", ErrTokenInvalid), http.StatusUnauthorized},
		{ErrAccountNotFound, http.StatusUnauthorized},
		{ErrNotAuthenticated, http.StatusUnauthorized},
		{ErrGoogleAuthFailed, http.StatusUnauthorized},
		{ErrInvalidID, http.StatusBadRequest},
		{ErrEmailAlreadyExists, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrGymAccessDenied, http.StatusForbidden},
		{ErrRouteAccessDenied, http.StatusForbidden},
		{ErrGymNotFound, http.StatusNotFound},
		{ErrRouteNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: conn refused", ErrDatabaseError), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w, body := runHandleServiceError(t, tc.err)
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestHandleServiceError_DoesNotLeakInternals(t *testing.T) {
	_, body := runHandleServiceError(t, fmt.Errorf("%w: pq: password authentication failed", ErrDatabaseError))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestHandleServiceError_ValidationMap(t *testing.T) {
	w, body := runHandleServiceError(t, NewValidationError("name", "Please add a gym name"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, map[string]string{"name": "Please add a gym name"}, body.Errors)
}
