package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

// Claims are the verified contents of a login token.
type Claims struct {
	UserID int
	Email  string
	Role   constants.UserRole
	JTI    string
	Expiry time.Time
}

// TokenBlacklist records revoked token IDs until their natural expiry.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenService issues and verifies HS256 login tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// access token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the user. Every token carries a fresh JTI
// so individual sessions can be revoked on logout.
func (s *TokenService) Issue(userID int, email string, role constants.UserRole) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		JTI:    uuid.NewString(),
		Expiry: now.Add(s.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"jti":   claims.JTI,
		"iat":   now.Unix(),
		"exp":   claims.Expiry.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Internal(err)
	}
	return signed, claims, nil
}

// Verify parses and validates a token string, returning its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("invalid or expired token").WithCause(err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Unauthorized("malformed claims")
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, errors.Unauthorized("missing sub claim")
	}
	jti, _ := mapClaims["jti"].(string)
	if jti == "" {
		return nil, errors.Unauthorized("missing jti claim")
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.Unauthorized("missing exp claim")
	}

	return &Claims{
		UserID: int(sub),
		Email:  email,
		Role:   constants.UserRole(role),
		JTI:    jti,
		Expiry: exp.Time,
	}, nil
}
