package services

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// ErrOpaqueToken means the stored token is not a JWT; it is still a valid
// session token, there is just nothing to read from it.
var ErrOpaqueToken = errors.New("services: token is not a JWT")

// SessionInfo is what the client can read from its own token. The signature
// is not checked; only the backend can do that.
type SessionInfo struct {
	Subject   string     `json:"subject,omitempty"`
	Username  string     `json:"username,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the token carries an expiry before now.
func (s SessionInfo) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// DescribeToken decodes the claims of a JWT session token.
func DescribeToken(token string) (SessionInfo, error) {
	claims := jwtv5.MapClaims{}
	if _, _, err := jwtv5.NewParser().ParseUnverified(token, claims); err != nil {
		return SessionInfo{}, ErrOpaqueToken
	}

	var info SessionInfo
	info.Subject, _ = claims["sub"].(string)
	for _, key := range []string{"username", "preferred_username", "name"} {
		if v, ok := claims[key].(string); ok && v != "" {
			info.Username = v
			break
		}
	}
	if info.Username == "" {
		info.Username = info.Subject
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return info, nil
}
