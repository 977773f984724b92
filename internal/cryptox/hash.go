// Package cryptox implements the credential digest used by the user
// store. The digest is a deterministic SHA-256 hex string so that the
// same password always produces the same stored value, and login
// verification is a plain digest comparison.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of plaintext.
// The result is always 64 characters long.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether two digests are equal, in constant time.
func VerifyDigest(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
