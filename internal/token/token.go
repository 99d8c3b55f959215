// Package token issues and verifies the signed, expiring identity tokens
// used for request authentication. Tokens are stateless; expiry is the only
// bound on their lifetime.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind selects the TTL policy for an issued token. Access tokens
// authenticate requests; refresh tokens authenticate only the refresh
// operation. Both share the signing key and wire format.
type Kind int

const (
	Access Kind = iota
	Refresh
)

var (
	ErrMalformed        = errors.New("token: malformed")
	ErrSignatureInvalid = errors.New("token: signature invalid")
	ErrExpired          = errors.New("token: expired")
)

// Claims is the verified view of a token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Codec signs and verifies tokens with a process-wide HMAC-SHA256 key. The
// key is set once at construction and never rotated mid-process.
type Codec struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	// Now is the clock used for issuance and expiry checks. Tests replace it.
	Now func() time.Time
}

func NewCodec(secret string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: empty signing secret")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token: TTLs must be positive")
	}
	return &Codec{
		key:        []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		Now:        time.Now,
	}, nil
}

func (c *Codec) ttl(kind Kind) time.Duration {
	if kind == Refresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

// Issue creates a signed token for the given subject with the kind-specific
// TTL.
func (c *Codec) Issue(subject string, kind Kind) (string, error) {
	if subject == "" {
		return "", errors.New("token: empty subject")
	}
	now := c.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl(kind))),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Verify checks signature integrity first, then expiry. Signature failure
// and expiry surface as distinct error kinds, but neither is valid for
// authentication.
func (c *Codec) Verify(tok string) (Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(
		tok,
		&claims,
		func(*jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, ErrMalformed
		}
	}
	return Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Subject returns the subject of a verified token. It never extracts claims
// from a token that fails verification.
func (c *Codec) Subject(tok string) (string, error) {
	claims, err := c.Verify(tok)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
