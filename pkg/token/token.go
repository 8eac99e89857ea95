// Package token generates and verifies single-use invite secrets.
// Plaintext tokens travel to the invitee by email only; the database sees
// nothing but their bcrypt digests.
package token

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// tokenBytes gives 256 bits of entropy, 64 hex characters on the wire.
// Hex keeps the input under bcrypt's 72-byte limit.
const tokenBytes = 32

// Generate returns a fresh random invite token, hex-encoded for transport.
func Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Hash computes the bcrypt digest that is stored in place of the token.
// Costs below bcrypt's default of 10 are bumped up to it.
func Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Matches reports whether plaintext is the token behind digest.
func Matches(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
