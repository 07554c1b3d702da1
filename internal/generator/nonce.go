package generator

import (
	"crypto/rand"
	"encoding/base64"
)

// NonceSize is the number of random bytes behind every nonce.
const NonceSize = 18

// GenerateNonce returns a random URL-safe token. It is used as the per-response
// Content-Security-Policy nonce for inline scripts, so it must be unpredictable
// and fit the CSP base64-value grammar.
func GenerateNonce() (string, error) {
	b := make([]byte, NonceSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
