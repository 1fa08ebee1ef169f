package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violated")
)

// IsDuplicateKey works for gorm's translated errors and for the repository
// sentinels used by in-memory implementations.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, ErrForeignKey) || errors.Is(err, gorm.ErrForeignKeyViolated)
}
