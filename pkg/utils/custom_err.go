package utils

import "errors"

var (
	ErrTokenMissing     = errors.New("no token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("token failed")
	ErrAccountNotFound  = errors.New("user not found")
	ErrNotAuthenticated = errors.New("user not authenticated")

	ErrInvalidID          = errors.New("invalid id")
	ErrGymNotFound        = errors.New("gym not found")
	ErrRouteNotFound      = errors.New("route not found")
	ErrGymAccessDenied    = errors.New("not authorized to access this gym")
	ErrRouteAccessDenied  = errors.New("not authorized to access this route")
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGoogleAuthFailed   = errors.New("google authentication failed")
	ErrDatabaseError      = errors.New("database error")
)
