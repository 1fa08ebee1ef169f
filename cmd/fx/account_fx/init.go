package account_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"rockroutes/internal/repositories"
	"rockroutes/internal/services"
	"rockroutes/pkg/middleware"
	"rockroutes/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideAuthGate)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens services.TokenIssuer,
	google utils.GoogleTokenVerifier,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, google, log)
}

func provideAuthGate(tokens *utils.TokenManager, accountRepo repositories.AccountRepository) gin.HandlerFunc {
	return middleware.JWTAuthMiddleware(tokens, accountRepo)
}
