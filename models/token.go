package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind tells access and refresh tokens apart. It is embedded in the
// token's "typ" claim.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TokenClaims is the claim set of every token the gateway issues.
type TokenClaims struct {
	Kind TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// Token is a signed token together with its expiry.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string

	// ExpiresAt is the moment the "exp" claim points at.
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
