package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired gives a cheap, local, non-authoritative estimate of token
// liveness. It decodes the payload segment without verifying the signature,
// so it must never gate a server-side authorization decision; the session
// guard only consults it when the backend cannot be reached at all.
//
// Anything that fails to decode is reported as expired (fail closed). A
// payload without an exp claim is reported as not expired; tokens like that
// never age out locally, which is a known weak point we inherit from the
// backend's token shape.
func IsExpired(tokenString string) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return true
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return true
	}

	var body struct {
		Exp *float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return true
	}
	if body.Exp == nil {
		return false
	}

	return time.Now().UnixMilli() >= int64(*body.Exp*1000)
}

// Decode parses the claims out of a token without verifying the signature.
// Display-only: the authoritative record always comes from /auth/me.
func Decode(tokenString string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// JWT segments are unpadded base64url, but tolerate padded input too.
func decodeSegment(seg string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(seg)
}
