package utils

import "golang.org/x/crypto/bcrypt"

const passwordCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// PasswordMatches treats an empty hash as "no password set".
func PasswordMatches(hashedPassword string, plainPassword string) bool {
	if hashedPassword == "" {
		return false
	}
	return ComparePasswords(hashedPassword, plainPassword) == nil
}
