package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const refreshTokenSeparator = "."

// NewRefreshToken returns an opaque token of the form "<userID>.<secret>".
// Only its hash is stored.
func NewRefreshToken(userID string) (string, error) {
	secret, err := GenerateSecureRandomString(32)
	if err != nil {
		return "", err
	}
	return userID + refreshTokenSeparator + secret, nil
}

// RefreshTokenUserID extracts the user id a refresh token was issued to.
func RefreshTokenUserID(token string) (string, bool) {
	userID, secret, found := strings.Cut(token, refreshTokenSeparator)
	if !found || userID == "" || secret == "" {
		return "", false
	}
	return userID, true
}

// HashRefreshToken generates a SHA256 hash of a refresh token.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a plain refresh token with its stored SHA256 hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(storedHash)) == 1
}
