package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// Claims are the token claims issued by the identity provider. The user id is
// carried in the standard "sub" claim.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator verifies HS256 bearer tokens
type TokenValidator struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenValidator creates a validator. An empty issuer disables the "iss" check.
func NewTokenValidator(secret, issuer string) (*TokenValidator, error) {
	if secret == "" {
		return nil, errors.New(ErrMsgEmptySecret)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &TokenValidator{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// Validate parses the token and returns its claims. Every failure wraps
// domain.ErrUnauthorized.
func (v *TokenValidator) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, fmt.Errorf(ErrMsgParseTokenFailed, err))
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, ErrMsgMissingSubject)
	}
	return claims, nil
}

// GenerateToken signs a token for userID. The service only verifies tokens;
// this exists for cmd/gen-token and tests.
func GenerateToken(secret, issuer, userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf(ErrMsgSignTokenFailed, err)
	}
	return signed, nil
}
