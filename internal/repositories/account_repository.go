package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rockroutes/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	// Update writes profile and provider fields; email and password are never touched.
	Update(ctx context.Context, account *db_models.Account) error
	// FindById never loads the password hash.
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	// FindByEmail includes the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByGoogleId(ctx context.Context, googleId string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(account).Error
	})
}

func (a *accountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).
		Model(account).
		Select("google_id", "name", "given_name", "family_name", "picture").
		Updates(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Omit("password_hash").First(&account, "id = ?", id).Error

	return optional(&account, err)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	return optional(&account, err)
}

func (a *accountRepository) FindByGoogleId(ctx context.Context, googleId string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "google_id = ?", googleId).Error

	return optional(&account, err)
}

// optional turns gorm's not-found error into an absent result the caller
// has to check.
func optional[T any](record *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
