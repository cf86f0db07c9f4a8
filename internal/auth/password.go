// Package auth implements credential hashing and opaque token issuance.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes = 16

	// Derivation parameters are fixed for compatibility with existing
	// user records; changing them invalidates every stored digest.
	pbkdf2Iterations = 1000
	pbkdf2KeyLength  = 64
)

// HashPassword generates a fresh random salt and derives a digest for the
// given password. Both values are hex-encoded.
func HashPassword(password string) (salt string, digest string, err error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	salt = hex.EncodeToString(buf)
	return salt, HashPasswordWithSalt(password, salt), nil
}

// HashPasswordWithSalt derives the digest for a password using an existing
// salt. The derivation is deterministic: identical inputs always produce
// identical digests, which is what login verification relies on.
func HashPasswordWithSalt(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return hex.EncodeToString(key)
}
