package auth_fx

import (
	"context"

	"go.uber.org/fx"
	"rockroutes/internal/config"
	"rockroutes/internal/services"
	"rockroutes/pkg/utils"
)

var Module = fx.Provide(
	provideTokenManager,
	provideTokenIssuer,
	provideGoogleVerifier)

func provideTokenManager(cfg *config.Config) (*utils.TokenManager, error) {
	return utils.NewTokenManager(cfg.JWTSecret, utils.TokenTTL)
}

func provideTokenIssuer(tokens *utils.TokenManager) services.TokenIssuer {
	return tokens
}

func provideGoogleVerifier(cfg *config.Config) (utils.GoogleTokenVerifier, error) {
	return utils.NewGoogleVerifier(context.Background(), cfg.GoogleClientID)
}
