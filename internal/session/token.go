package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsTokenExpired inspects a JWT's exp claim without verifying the
// signature; validity is the backend's call, this only decides whether a
// stored token is worth sending. Malformed tokens are reported expired; a
// well-formed token with no exp claim is reported valid.
func IsTokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return !exp.After(time.Now())
}
