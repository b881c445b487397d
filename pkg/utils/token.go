package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	// ErrInvalidTokenLength indicates a requested token length below the minimum
	ErrInvalidTokenLength = errors.New("token length must be at least 16 bytes")
)

// unsubscribeTokenBytes is the entropy of a generated unsubscribe token.
// 32 bytes encodes to a 43-character URL-safe string.
const unsubscribeTokenBytes = 32

// NewUnsubscribeToken generates an opaque, URL-safe unsubscribe token.
// Tokens are never rotated once stored on a preferences row.
func NewUnsubscribeToken() (string, error) {
	return NewToken(unsubscribeTokenBytes)
}

// NewToken generates a URL-safe random token with n bytes of entropy
func NewToken(n int) (string, error) {
	if n < 16 {
		return "", ErrInvalidTokenLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
