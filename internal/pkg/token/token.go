package token

import (
	"crypto/rand"
	"encoding/base64"
)

const accessTokenBytes = 32

// NewAccessToken generates an unguessable URL-safe token. The token is the
// sole credential for vendor-facing access, so it must come from crypto/rand.
func NewAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
