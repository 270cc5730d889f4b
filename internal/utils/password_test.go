package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	password := "password123"
	first, err := HashPassword(password)
	assert.NoError(t, err)
	second, err := HashPassword(password)
	assert.NoError(t, err)

	// Different salts produce different digests, both of which verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash(password, first))
	assert.True(t, CheckPasswordHash(password, second))
}

func TestHashPasswordWithCost(t *testing.T) {
	password := "password123"

	// The cost is embedded in the digest and honored by verification.
	cheap, err := HashPasswordWithCost(password, bcrypt.MinCost)
	assert.NoError(t, err)
	assert.Contains(t, cheap, "$04$")
	assert.True(t, CheckPasswordHash(password, cheap))

	// The default wrapper uses the configured work factor.
	standard, err := HashPassword(password)
	assert.NoError(t, err)
	assert.Contains(t, standard, "$10$")
}

func TestCheckPasswordHash(t *testing.T) {
	password := "password123"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("password123", "invalidhash"))
	assert.False(t, CheckPasswordHash("password123", ""))
}
