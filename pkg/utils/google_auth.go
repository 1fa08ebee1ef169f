package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// GoogleIdentity is the verified subset of a Google ID token we rely on.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	GivenName     string
	FamilyName    string
	Picture       string
}

type GoogleTokenVerifier interface {
	Verify(ctx context.Context, token string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	validator *idtoken.Validator
	audience  string
}

func NewGoogleVerifier(ctx context.Context, clientID string) (GoogleTokenVerifier, error) {
	if clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	// An explicit client keeps the validator from looking up default credentials.
	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
	if err != nil {
		return nil, fmt.Errorf("failed to create google token validator: %w", err)
	}

	return &googleVerifier{validator: v, audience: clientID}, nil
}

// Verify checks signature, expiry, issuer and audience. Any failure is reported
// as ErrGoogleAuthFailed.
func (g *googleVerifier) Verify(ctx context.Context, token string) (*GoogleIdentity, error) {
	if token == "" {
		return nil, ErrGoogleAuthFailed
	}

	payload, err := g.validator.Validate(ctx, token, g.audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoogleAuthFailed, err)
	}

	return identityFromClaims(payload.Subject, payload.Claims)
}

func identityFromClaims(subject string, claims map[string]interface{}) (*GoogleIdentity, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrGoogleAuthFailed)
	}

	id := &GoogleIdentity{
		Subject:    subject,
		Email:      stringClaim(claims, "email"),
		Name:       stringClaim(claims, "name"),
		GivenName:  stringClaim(claims, "given_name"),
		FamilyName: stringClaim(claims, "family_name"),
		Picture:    stringClaim(claims, "picture"),
	}
	if id.Email == "" {
		return nil, fmt.Errorf("%w: token has no email", ErrGoogleAuthFailed)
	}

	switch v := claims["email_verified"].(type) {
	case bool:
		id.EmailVerified = v
	case string:
		id.EmailVerified = v == "true"
	}

	return id, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
