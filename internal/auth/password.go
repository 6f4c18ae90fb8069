package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost matches the 10 rounds the platform has always used.
const HashCost = bcrypt.DefaultCost

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against its hash. Returns false for
// any mismatch or malformed hash; never errors out.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
