package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// rawBytes is the entropy of an issued token: 256 bits, well past the
	// point where guessing is feasible.
	rawBytes = 32

	// DefaultCost is the default cost for bcrypt digests
	DefaultCost = bcrypt.DefaultCost
)

var ErrTokenMismatch = errors.New("confirmation token mismatch")

// Issue generates a single-use confirmation token. The raw value is what
// goes into the confirmation link; only the digest is ever stored.
func Issue() (raw, digest string, err error) {
	buf := make([]byte, rawBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)

	digestBytes, err := bcrypt.GenerateFromPassword([]byte(raw), DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to digest token: %w", err)
	}

	return raw, string(digestBytes), nil
}

// Verify checks a presented token against the stored digest. The bcrypt
// comparison is constant-time; expiry and state checks belong to the
// state machine, not here.
func Verify(digest, presented string) error {
	if digest == "" || presented == "" {
		return ErrTokenMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(presented))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrTokenMismatch
		}

		return fmt.Errorf("failed to verify token: %w", err)
	}

	return nil
}
