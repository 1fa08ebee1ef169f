package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"rockroutes/internal/models/db_models"
	"rockroutes/pkg/metrics"
	"rockroutes/pkg/utils"
)

const AccountKey = "account"

type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.Claims, error)
}

// AccountLoader must not return the password hash.
type AccountLoader interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
}

// JWTAuthMiddleware resolves the bearer token to an account and stores it on
// the context. Requests without a valid token never reach the handler.
func JWTAuthMiddleware(tokens TokenValidator, accounts AccountLoader) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(c, metrics.ReasonNoToken, utils.ErrTokenMissing)
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				reject(c, metrics.ReasonExpired, err)
			} else {
				reject(c, metrics.ReasonInvalid, err)
			}
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			reject(c, metrics.ReasonUserNotFound, utils.ErrAccountNotFound)
			return
		}

		account, err := accounts.FindById(c.Request.Context(), accountID)
		if err != nil {
			reject(c, metrics.ReasonLookupFailed, errors.Join(utils.ErrDatabaseError, err))
			return
		}
		if account == nil {
			reject(c, metrics.ReasonUserNotFound, utils.ErrAccountNotFound)
			return
		}

		c.Set(AccountKey, account)
		c.Next()
	}
}

func reject(c *gin.Context, reason string, err error) {
	metrics.AuthGateRejectionsTotal.WithLabelValues(reason).Inc()
	if reason != metrics.ReasonLookupFailed {
		zap.L().Debug("request rejected by auth gate",
			zap.String("reason", reason),
			zap.Error(err),
			zap.String(utils.TraceIDKey, c.GetString(utils.TraceIDKey)))
	}
	utils.HandleServiceError(c, err)
	c.Abort()
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CurrentAccount returns the account resolved by JWTAuthMiddleware.
func CurrentAccount(c *gin.Context) (*db_models.Account, bool) {
	v, ok := c.Get(AccountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*db_models.Account)
	if !ok || account == nil || account.ID == uuid.Nil {
		return nil, false
	}
	return account, true
}
