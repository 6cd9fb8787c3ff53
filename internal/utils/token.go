package utils // package utils provides password hashing and session token helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// tokenBytes is the entropy of a session token: 32 bytes -> 64 hex chars,
// comfortably inside the 4–100 character token format.
const tokenBytes = 32

// NewToken returns a cryptographically random opaque session token.  The
// raw value goes to the client once; only HashToken(raw) is stored.
func NewToken() (string, error) {
	return randomHex(tokenBytes)
}

// HashToken returns the SHA-256 hex digest of a raw token.  A leaked
// users table therefore does not hand out live sessions.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns n bytes of crypto/rand output, hex encoded.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
