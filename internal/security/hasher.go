// Package security hashes user credentials.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnwards/blogseed/internal/domain"
)

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost. Costs outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// HashPassword returns the bcrypt hash of plain for u.
func (h *BcryptHasher) HashPassword(u *domain.User, plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password for %s: %w", u.Username, err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches the hashed password stored on u.
func (h *BcryptHasher) Verify(u *domain.User, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
