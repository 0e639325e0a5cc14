package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"

	"pwvault/internal/domain"
)

const (
	scryptPrefix  = "$scrypt$"
	scryptSaltLen = 16
	scryptKeyLen  = 32
)

var errMalformedScrypt = errors.New("malformed scrypt hash")

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// ScryptHasher hashes passwords with scrypt. Hashes are encoded as
//
//	$scrypt$<N>$<r>$<p>$<salt>$<key>
//
// with salt and key in unpadded base64, so verification does not depend on
// the hasher's current parameters.
type ScryptHasher struct {
	N, R, P int
}

// NewScryptHasher returns a ScryptHasher with the default parameters.
func NewScryptHasher() *ScryptHasher {
	N, r, p := scryptParamsDefault()
	return &ScryptHasher{N: N, R: r, P: p}
}

func (h *ScryptHasher) Hash(password string) (string, error) {
	var salt [scryptSaltLen]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt[:], h.N, h.R, h.P, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return fmt.Sprintf("%s%d$%d$%d$%s$%s", scryptPrefix, h.N, h.R, h.P, b64(salt[:]), b64(key)), nil
}

func (h *ScryptHasher) Verify(hash, password string) error {
	N, r, p, salt, want, err := parseScrypt(hash)
	if err != nil {
		return err
	}
	got, err := scrypt.Key([]byte(password), salt, N, r, p, len(want))
	if err != nil {
		return err
	}
	defer Wipe(got)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}

func parseScrypt(hash string) (N, r, p int, salt, key []byte, err error) {
	rest, ok := strings.CutPrefix(hash, scryptPrefix)
	if !ok {
		return 0, 0, 0, nil, nil, errMalformedScrypt
	}
	parts := strings.Split(rest, "$")
	if len(parts) != 5 {
		return 0, 0, 0, nil, nil, errMalformedScrypt
	}
	var params [3]int
	for i := range params {
		if params[i], err = strconv.Atoi(parts[i]); err != nil {
			return 0, 0, 0, nil, nil, errMalformedScrypt
		}
	}
	if salt, err = unb64(parts[3]); err != nil {
		return 0, 0, 0, nil, nil, errMalformedScrypt
	}
	if key, err = unb64(parts[4]); err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, errMalformedScrypt
	}
	return params[0], params[1], params[2], salt, key, nil
}

// Compile-time assertion that ScryptHasher implements domain.Hasher.
var _ domain.Hasher = (*ScryptHasher)(nil)
