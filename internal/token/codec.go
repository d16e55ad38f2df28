// Package token signs and verifies the compact identity tokens carried in
// the auth cookie.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/skillwaves/skillwaves-server/internal/model"
)

var validate *validator.Validate = validator.New()

// ErrInvalidToken covers signature mismatch and malformed tokens.
// ErrExpiredToken covers tokens past their exp claim. Callers reject both the
// same way (401), but the split keeps log lines useful.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Codec issues and verifies HS256 JWTs over a shared secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given email, expiring after the configured TTL.
func (c *Codec) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the decoded payload.
func (c *Codec) Verify(tokenString string) (*model.JWTPayload, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Convert claims to the typed payload
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("claims marshaling failed: %w", err)
	}

	var payload model.JWTPayload
	if err := json.Unmarshal(claimsJSON, &payload); err != nil {
		return nil, fmt.Errorf("payload unmarshaling failed: %w", err)
	}

	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: payload validation failed: %w", ErrInvalidToken, err)
	}

	return &payload, nil
}
