package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"rockroutes/internal/models/db_models"
	"rockroutes/internal/models/request_models"
	"rockroutes/internal/models/response_models"
	"rockroutes/internal/repositories"
	"rockroutes/pkg/metrics"
	"rockroutes/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GoogleLogin(ctx context.Context, request request_models.GoogleAuthRequest) (*response_models.AuthResponse, error)
}

type TokenIssuer interface {
	CreateToken(accountID string) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      TokenIssuer
	google      utils.GoogleTokenVerifier
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens TokenIssuer,
	google utils.GoogleTokenVerifier,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		google:      google,
		log:         log.Named("accounts"),
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, a.fail(metrics.FlowRegister, dbError(err))
	}
	if existingAccount != nil {
		return nil, a.fail(metrics.FlowRegister, utils.ErrEmailAlreadyExists)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, a.fail(metrics.FlowRegister, fmt.Errorf("hash password: %w", err))
	}

	newAccount := &db_models.Account{
		Email:        email,
		PasswordHash: &hashedPassword,
		Name:         strings.TrimSpace(request.Name),
		GivenName:    strings.TrimSpace(request.GivenName),
		FamilyName:   strings.TrimSpace(request.FamilyName),
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		// lost a race with a concurrent registration for the same email
		if repositories.IsDuplicateKey(err) {
			return nil, a.fail(metrics.FlowRegister, utils.ErrEmailAlreadyExists)
		}
		return nil, a.fail(metrics.FlowRegister, dbError(err))
	}

	a.log.Info("account registered", zap.String("account_id", newAccount.ID.String()))
	return a.issue(metrics.FlowRegister, newAccount)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, a.fail(metrics.FlowLogin, dbError(err))
	}

	// unknown email and wrong password are indistinguishable to the caller
	if account == nil || !account.ComparePassword(request.Password) {
		return nil, a.fail(metrics.FlowLogin, utils.ErrInvalidCredentials)
	}

	return a.issue(metrics.FlowLogin, account)
}

// GoogleLogin signs in with a Google ID token. The account is found by Google
// subject first, then by email; an email match without a linked Google id gets
// linked. Only identities whose email Google has verified may create or claim
// an account.
func (a *AccountService) GoogleLogin(ctx context.Context, request request_models.GoogleAuthRequest) (*response_models.AuthResponse, error) {
	identity, err := a.google.Verify(ctx, request.Token)
	if err != nil {
		if !errors.Is(err, utils.ErrGoogleAuthFailed) {
			err = fmt.Errorf("%w: %w", utils.ErrGoogleAuthFailed, err)
		}
		return nil, a.fail(metrics.FlowGoogle, err)
	}

	account, err := a.accountRepo.FindByGoogleId(ctx, identity.Subject)
	if err != nil {
		return nil, a.fail(metrics.FlowGoogle, dbError(err))
	}
	if account != nil {
		return a.issue(metrics.FlowGoogle, account)
	}

	if !identity.EmailVerified {
		return nil, a.fail(metrics.FlowGoogle, fmt.Errorf("%w: email %s is not verified by google", utils.ErrGoogleAuthFailed, identity.Email))
	}

	email := normalizeEmail(identity.Email)
	account, err = a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, a.fail(metrics.FlowGoogle, dbError(err))
	}

	if account == nil {
		account = &db_models.Account{
			Email:      email,
			GoogleID:   &identity.Subject,
			Name:       identity.Name,
			GivenName:  identity.GivenName,
			FamilyName: identity.FamilyName,
			Picture:    identity.Picture,
		}
		if err := a.accountRepo.InsertTx(account, ctx); err != nil {
			if repositories.IsDuplicateKey(err) {
				return nil, a.fail(metrics.FlowGoogle, utils.ErrEmailAlreadyExists)
			}
			return nil, a.fail(metrics.FlowGoogle, dbError(err))
		}
		a.log.Info("account created from google identity", zap.String("account_id", account.ID.String()))
		return a.issue(metrics.FlowGoogle, account)
	}

	if account.GoogleID != nil {
		// the email already belongs to a different Google identity
		return nil, a.fail(metrics.FlowGoogle, fmt.Errorf("%w: email linked to another google account", utils.ErrGoogleAuthFailed))
	}

	account.GoogleID = &identity.Subject
	fillProfile(account, identity)
	if err := a.accountRepo.Update(ctx, account); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, a.fail(metrics.FlowGoogle, fmt.Errorf("%w: google account already linked", utils.ErrGoogleAuthFailed))
		}
		return nil, a.fail(metrics.FlowGoogle, dbError(err))
	}
	a.log.Info("google identity linked to account", zap.String("account_id", account.ID.String()))

	return a.issue(metrics.FlowGoogle, account)
}

func (a *AccountService) issue(flow string, account *db_models.Account) (*response_models.AuthResponse, error) {
	token, err := a.tokens.CreateToken(account.ID.String())
	if err != nil {
		return nil, a.fail(flow, fmt.Errorf("create token: %w", err))
	}

	metrics.AuthAttemptsTotal.WithLabelValues(flow, metrics.OutcomeSuccess).Inc()
	return &response_models.AuthResponse{User: account, Token: token}, nil
}

func (a *AccountService) fail(flow string, err error) error {
	metrics.AuthAttemptsTotal.WithLabelValues(flow, metrics.OutcomeFailure).Inc()
	return err
}

// fillProfile only sets display fields the account does not have yet.
func fillProfile(account *db_models.Account, identity *utils.GoogleIdentity) {
	if account.Name == "" {
		account.Name = identity.Name
	}
	if account.GivenName == "" {
		account.GivenName = identity.GivenName
	}
	if account.FamilyName == "" {
		account.FamilyName = identity.FamilyName
	}
	if account.Picture == "" {
		account.Picture = identity.Picture
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
