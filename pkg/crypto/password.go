package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used when none is configured
	DefaultCost = 10
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// PasswordHasher hashes and verifies passwords with a fixed bcrypt cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher for the given cost. Out of range costs fall back to DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the effective bcrypt cost
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash hashes a password
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// Check compares a password with a hash
func (h *PasswordHasher) Check(password, hash string) bool {
	return CheckPassword(password, hash)
}

// HashPassword hashes a password with DefaultCost
func HashPassword(password string) (string, error) {
	return NewPasswordHasher(DefaultCost).Hash(password)
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateRandomToken generates a random hex token from length random bytes
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateSessionID generates a 64-character session identifier
func GenerateSessionID() (string, error) {
	return GenerateRandomToken(32)
}
