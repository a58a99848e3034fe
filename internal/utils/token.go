// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for access-token generation, HTTP response writing,
// and HTTP client initialization.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// AccessTokenBytes is the number of random bytes behind one access token.
// 128 bytes hex-encode to a 256-character credential, far beyond brute-force
// reach.
const AccessTokenBytes = 128

// GenerateAccessToken returns a fresh opaque bearer token: AccessTokenBytes
// bytes from the OS CSPRNG, hex-encoded. Tokens are issued exactly once per
// user at creation time and compared by equality afterwards; there is no
// embedded structure, expiry, or signature.
func GenerateAccessToken() (string, error) {
	buf := make([]byte, AccessTokenBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for access token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
