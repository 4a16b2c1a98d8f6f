package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-admin-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// TokenParams describes a token to be issued.
type TokenParams struct {
	Kind     models.TokenKind
	Issuer   string
	UserID   int64
	Duration time.Duration
	SignKey  string
	Now      time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - typ: access or refresh
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): p.Now
//   - ExpiresAt (exp): p.Now plus p.Duration
//
// Issuer, Duration and SignKey are required. A zero Now means time.Now().
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Kind: models.AccessToken, Issuer: "daoyi-gateway", UserID: 1,
//	    Duration: 4 * time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration <= 0 || p.SignKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	expiresAt := now.Add(p.Duration)

	claims := &models.TokenClaims{
		Kind: p.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, ExpiresAt: expiresAt}, nil
}
