package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// GetHashForPassword generates a bcrypt hash for the given password
func GetHashForPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareHashAndPassword compares the hash to the password.
// Returns nil when they represent the same string, an error otherwise
func CompareHashAndPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
