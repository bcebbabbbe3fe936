// Package tokens issues and verifies the HS256 access tokens that carry a
// caller's username and roles.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultExpiresIn = time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Config struct {
	Secret    string
	Issuer    string
	Audience  string
	ExpiresIn time.Duration
}

// Claims is the token body. Name and Subject both hold the username.
type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	cfg   Config
	clock ports.Clock
}

func NewJWTService(cfg Config, clock ports.Clock) (*JWTService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.ExpiresIn <= 0 {
		cfg.ExpiresIn = DefaultExpiresIn
	}
	return &JWTService{cfg: cfg, clock: clock}, nil
}

var _ ports.TokenIssuer = (*JWTService)(nil)

func (s *JWTService) Issue(username string, roles []string) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Name:  username,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.ExpiresIn)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature, issuer, audience and expiry of raw and
// returns the principal it names. Every failure wraps ErrInvalidToken.
func (s *JWTService) Parse(raw string) (identity.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return []byte(s.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return identity.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Name == "" {
		return identity.Principal{}, fmt.Errorf("%w: missing name claim", ErrInvalidToken)
	}

	return identity.NewPrincipal(claims.Name, claims.Roles...), nil
}
