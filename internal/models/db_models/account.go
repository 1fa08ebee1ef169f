package db_models

import "rockroutes/pkg/utils"

type Account struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash *string `gorm:"column:password_hash" json:"-"`
	GoogleID     *string `gorm:"uniqueIndex" json:"googleId,omitempty"`
	Name         string  `json:"name,omitempty"`
	GivenName    string  `json:"given_name,omitempty"`
	FamilyName   string  `json:"family_name,omitempty"`
	Picture      string  `json:"picture,omitempty"`
}

// ComparePassword never matches accounts that only sign in through a provider.
func (a *Account) ComparePassword(plain string) bool {
	if a.PasswordHash == nil {
		return false
	}
	return utils.PasswordMatches(*a.PasswordHash, plain)
}
