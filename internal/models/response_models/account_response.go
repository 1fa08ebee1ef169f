package response_models

import "rockroutes/internal/models/db_models"

// AuthResponse is returned by every successful register, login and Google sign-in.
type AuthResponse struct {
	User  *db_models.Account `json:"user"`
	Token string             `json:"token"`
}
