package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the bearer token without verifying its signature and
// returns the exp claim. The client has no signing key; it only reads the
// expiry to avoid presenting a session the backend will reject anyway.
// ok is false for opaque tokens and tokens without an exp claim.
func TokenExpiry(token string) (expiry time.Time, ok bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// TokenExpired reports whether the token carries an exp claim in the past.
// Opaque tokens are treated as not expired; the backend stays the authority.
func TokenExpired(token string) bool {
	expiry, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return time.Now().After(expiry)
}
