package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jmorrow/cartwheel/internal/domain"
)

// MinTokenSecretLength guards against secrets short enough to brute-force.
const MinTokenSecretLength = 32

// ErrSecretTooShort is returned when the configured signing secret is too weak.
var ErrSecretTooShort = fmt.Errorf("token secret must be at least %d bytes", MinTokenSecretLength)

// TokenProvider issues and resolves signed bearer tokens binding a username
// to an expiry. The signing secret is fixed for the process lifetime;
// rotation requires a restart, and no revocation list is kept -- tokens stay
// valid until they expire.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenProvider creates a TokenProvider signing with HMAC-SHA256.
func NewTokenProvider(secret string, ttl time.Duration) (*TokenProvider, error) {
	if len(secret) < MinTokenSecretLength {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenProvider{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue produces a signed token for the given username. It is called only
// after credential verification has succeeded, so a valid username never
// fails here short of a signing error.
func (p *TokenProvider) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Resolve validates the token and returns the username it was issued for.
// Malformed input, a bad signature, an unexpected signing method and an
// expired token all collapse into domain.ErrInvalidToken.
func (p *TokenProvider) Resolve(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
