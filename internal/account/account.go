// Package account holds the identity and credential records this service
// authenticates against, and the stores that persist them.
package account

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Provider identifies where an account's identity was asserted. An account
// keeps the provider it was created under for its whole life; logging in via
// a different provider with the same email is an identity conflict, never a
// silent merge.
type Provider string

const (
	ProviderLocal  Provider = "LOCAL"
	ProviderGoogle Provider = "GOOGLE"
	ProviderNaver  Provider = "NAVER"
	ProviderKakao  Provider = "KAKAO"
	ProviderApple  Provider = "APPLE"
)

// ParseProvider maps a provider name to the fixed enumerated set,
// case-insensitively.
func ParseProvider(name string) (Provider, bool) {
	switch Provider(strings.ToUpper(strings.TrimSpace(name))) {
	case ProviderLocal:
		return ProviderLocal, true
	case ProviderGoogle:
		return ProviderGoogle, true
	case ProviderNaver:
		return ProviderNaver, true
	case ProviderKakao:
		return ProviderKakao, true
	case ProviderApple:
		return ProviderApple, true
	}
	return "", false
}

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Account is the persistent identity record. PasswordHash is empty for
// provider-only accounts; ProviderID is empty for LOCAL ones.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Provider     Provider
	ProviderID   string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrNotFound       = errors.New("account: not found")
	ErrDuplicateEmail = errors.New("account: email already registered")
)

// Repository is the key-by-id account store. Implementations must enforce
// email uniqueness themselves; Create returning ErrDuplicateEmail is the
// final arbiter for concurrent signups.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	ByEmail(ctx context.Context, email string) (*Account, error)
	ByProviderSubject(ctx context.Context, p Provider, providerID string) (*Account, error)
	UpdateName(ctx context.Context, id, name string) error
}
