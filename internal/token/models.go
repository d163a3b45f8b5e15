package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/mehmetcc/oseek/internal/person"
)

// Claims is the payload shape OSEEK access tokens carry. The client never
// verifies signatures; the mock backend uses the same struct when issuing.
type Claims struct {
	Role  person.Role `json:"role"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	jwt.RegisteredClaims
}
