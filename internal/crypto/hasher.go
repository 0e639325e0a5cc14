package crypto

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pwvault/internal/domain"
)

const (
	AlgorithmBcrypt = "bcrypt"
	AlgorithmScrypt = "scrypt"
)

var (
	// ErrMismatch is returned by Verify when the password does not match.
	ErrMismatch = errors.New("password does not match")
	// ErrUnknownAlgorithm is returned by NewHasher for an unsupported name.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// NewHasher returns the hasher named by algorithm. cost is the bcrypt work
// factor and is ignored for scrypt; zero selects the library default.
func NewHasher(algorithm string, cost int) (domain.Hasher, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmBcrypt:
		return NewBcryptHasher(cost)
	case AlgorithmScrypt:
		return NewScryptHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher validates cost and returns a BcryptHasher.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{Cost: cost}, nil
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// Compile-time assertion that BcryptHasher implements domain.Hasher.
var _ domain.Hasher = (*BcryptHasher)(nil)
