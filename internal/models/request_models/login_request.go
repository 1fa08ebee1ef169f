package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=1,max=72"`
	Name       string `json:"name" binding:"omitempty,max=100"`
	GivenName  string `json:"given_name" binding:"omitempty,max=100"`
	FamilyName string `json:"family_name" binding:"omitempty,max=100"`
}

// GoogleAuthRequest carries the ID token the client obtained from Google Sign-In.
type GoogleAuthRequest struct {
	Token string `json:"token" binding:"required"`
}
