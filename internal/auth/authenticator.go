package auth

import (
	"crypto/subtle"
	"strings"
)

// Authenticator decides whether a presented secret grants admin access.
type Authenticator interface {
	Configured() bool
	Authenticate(secret string) bool
}

// SharedSecret is a single admin password. The login token handed back to the
// client is the password itself, so the same check serves login and bearer auth.
type SharedSecret struct {
	secret []byte
}

func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: []byte(secret)}
}

func (s *SharedSecret) Configured() bool {
	return s != nil && len(s.secret) > 0
}

func (s *SharedSecret) Authenticate(secret string) bool {
	if !s.Configured() || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare(s.secret, []byte(secret)) == 1
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

var _ Authenticator = (*SharedSecret)(nil)
