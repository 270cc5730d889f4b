package utils

import "golang.org/x/crypto/bcrypt"

// DefaultPasswordCost matches the work factor the site has always used.
const DefaultPasswordCost = 10

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// The salt is generated per call, so hashing the same password twice yields
// different digests.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultPasswordCost)
}

// HashPasswordWithCost hashes a plaintext password with the given bcrypt cost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash verifies a plaintext password against a bcrypt digest.
// Malformed digests simply fail verification; this never panics.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
