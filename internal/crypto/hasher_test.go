package crypto_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"pwvault/internal/crypto"
	"pwvault/internal/domain"
)

func testHashers(t *testing.T) map[string]domain.Hasher {
	t.Helper()
	bh, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcryptHasher: %v", err)
	}
	return map[string]domain.Hasher{
		"bcrypt": bh,
		"scrypt": &crypto.ScryptHasher{N: 1 << 10, R: 8, P: 1},
	}
}

func TestHasher_HashThenVerify(t *testing.T) {
	for name, h := range testHashers(t) {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("hunter22")
			if err != nil {
				t.Fatalf("Hash: %v", err)
			}
			if hash == "hunter22" || strings.Contains(hash, "hunter22") {
				t.Fatalf("hash leaks plaintext: %q", hash)
			}
			if err := h.Verify(hash, "hunter22"); err != nil {
				t.Fatalf("Verify(correct): %v", err)
			}
			if err := h.Verify(hash, "hunter23"); !errors.Is(err, crypto.ErrMismatch) {
				t.Fatalf("Verify(wrong) = %v, want ErrMismatch", err)
			}
		})
	}
}

func TestHasher_SaltsEveryHash(t *testing.T) {
	for name, h := range testHashers(t) {
		t.Run(name, func(t *testing.T) {
			a, err := h.Hash("same-password")
			if err != nil {
				t.Fatal(err)
			}
			b, err := h.Hash("same-password")
			if err != nil {
				t.Fatal(err)
			}
			if a == b {
				t.Fatal("two hashes of the same password are identical")
			}
		})
	}
}

func TestScrypt_VerifyRejectsMalformed(t *testing.T) {
	h := &crypto.ScryptHasher{N: 1 << 10, R: 8, P: 1}
	for _, bad := range []string{"", "plain", "$scrypt$1$2$3", "$scrypt$x$8$1$AAAA$AAAA", "$scrypt$1024$8$1$AAAA$"} {
		if err := h.Verify(bad, "pw"); err == nil {
			t.Fatalf("Verify(%q) accepted malformed hash", bad)
		}
	}
}

func TestScrypt_VerifyUsesEncodedParams(t *testing.T) {
	small := &crypto.ScryptHasher{N: 1 << 10, R: 8, P: 1}
	hash, err := small.Hash("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	other := &crypto.ScryptHasher{N: 1 << 12, R: 4, P: 2}
	if err := other.Verify(hash, "hunter22"); err != nil {
		t.Fatalf("Verify with different hasher params: %v", err)
	}
}

func TestNewHasher(t *testing.T) {
	if h, err := crypto.NewHasher("", 0); err != nil {
		t.Fatalf("default: %v", err)
	} else if _, ok := h.(*crypto.BcryptHasher); !ok {
		t.Fatalf("default hasher = %T, want bcrypt", h)
	}
	if h, err := crypto.NewHasher("SCRYPT", 0); err != nil {
		t.Fatalf("scrypt: %v", err)
	} else if _, ok := h.(*crypto.ScryptHasher); !ok {
		t.Fatalf("scrypt hasher = %T", h)
	}
	if _, err := crypto.NewHasher("md5", 0); !errors.Is(err, crypto.ErrUnknownAlgorithm) {
		t.Fatalf("md5: %v", err)
	}
	if _, err := crypto.NewHasher("bcrypt", 99); err == nil {
		t.Fatal("bcrypt cost 99 accepted")
	}
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	crypto.Wipe(b)
	for _, c := range b {
		if c != 0 {
			t.Fatalf("not wiped: %v", b)
		}
	}
}
