package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

type APIResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

func RespondValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Errors:  fields,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, "Validation failed", verr.Fields)
	case errors.Is(err, ErrTokenMissing):
		RespondError(c, http.StatusUnauthorized, "Not authorized, no token")
	case errors.Is(err, ErrTokenExpired):
		RespondError(c, http.StatusUnauthorized, "Not authorized, token expired")
	case errors.Is(err, ErrTokenInvalid):
		RespondError(c, http.StatusUnauthorized, "Not authorized, token failed")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusUnauthorized, "Not authorized, user not found")
	case errors.Is(err, ErrNotAuthenticated):
		RespondError(c, http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, ErrGoogleAuthFailed):
		zap.L().Info("google sign-in rejected", zap.Error(err), zap.String(TraceIDKey, c.GetString(TraceIDKey)))
		RespondError(c, http.StatusUnauthorized, "Google authentication failed. Invalid token.")
	case errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrGymAccessDenied):
		RespondError(c, http.StatusForbidden, "Not authorized to access this gym")
	case errors.Is(err, ErrRouteAccessDenied):
		RespondError(c, http.StatusForbidden, "Not authorized to access this route")
	case errors.Is(err, ErrGymNotFound):
		RespondError(c, http.StatusNotFound, "Gym not found")
	case errors.Is(err, ErrRouteNotFound):
		RespondError(c, http.StatusNotFound, "Route not found")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String(TraceIDKey, c.GetString(TraceIDKey)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unexpected error", zap.Error(err), zap.String(TraceIDKey, c.GetString(TraceIDKey)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
