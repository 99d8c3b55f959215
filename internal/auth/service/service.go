// Package service is the authentication facade. It composes the token
// codec, credential hasher, provider client and identity resolver into the
// four request-scoped flows: login, signup, social login and refresh.
package service

import (
	"context"
	"errors"
	"fmt"

	"travel-service/internal/account"
	"travel-service/internal/auth"
	"travel-service/internal/auth/credentials"
	"travel-service/internal/auth/provider"
	"travel-service/internal/auth/resolver"
	"travel-service/internal/logger"
	"travel-service/internal/token"
)

// Result is what every successful flow returns: an account summary plus a
// fresh access/refresh token pair.
type Result struct {
	Email        string
	Name         string
	Provider     account.Provider
	Role         account.Role
	AccessToken  string
	RefreshToken string
	TokenType    string
}

type Service struct {
	accounts  account.Repository
	hasher    credentials.Hasher
	tokens    *token.Codec
	providers *provider.Client
	resolver  resolver.Resolver
}

func New(
	accounts account.Repository,
	hasher credentials.Hasher,
	tokens *token.Codec,
	providers *provider.Client,
	identityResolver resolver.Resolver,
) *Service {
	return &Service{
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		providers: providers,
		resolver:  identityResolver,
	}
}

// Login authenticates a local email/password pair. Unknown email and wrong
// password are indistinguishable in the returned error so callers cannot
// enumerate registered addresses.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	acct, err := s.accounts.ByEmail(ctx, email)
	if errors.Is(err, account.ErrNotFound) {
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(password, acct.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueFor(acct)
}

// Signup registers a LOCAL account and logs it in. The store's unique
// email constraint is the final arbiter for concurrent signups; the
// pre-check only gives the common case a friendlier path.
func (s *Service) Signup(ctx context.Context, email, password, name string) (*Result, error) {
	_, err := s.accounts.ByEmail(ctx, email)
	if err == nil {
		return nil, auth.ErrDuplicateEmail
	}
	if !errors.Is(err, account.ErrNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := &account.Account{
		Email:        email,
		PasswordHash: digest,
		Name:         name,
		Provider:     account.ProviderLocal,
		Role:         account.RoleUser,
	}
	err = s.accounts.Create(ctx, acct)
	if errors.Is(err, account.ErrDuplicateEmail) {
		return nil, auth.ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}

	return s.issueFor(acct)
}

// SocialLogin exchanges a provider access token for a local session: fetch
// the provider's view of the user, normalize it, resolve it to an account,
// issue tokens.
func (s *Service) SocialLogin(ctx context.Context, providerName, providerAccessToken string) (*Result, error) {
	identity, err := s.providers.FetchIdentity(ctx, providerName, providerAccessToken)
	if err != nil {
		return nil, err
	}

	acct, err := s.resolver.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	logger.Info("social login resolved", map[string]any{
		"provider":   identity.Provider,
		"account_id": acct.ID,
	})

	return s.issueFor(acct)
}

// Refresh trades a valid refresh token for a new access/refresh pair.
// There is no revocation store; the old pair stays valid until expiry.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Result, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	acct, err := s.accounts.ByEmail(ctx, claims.Subject)
	if errors.Is(err, account.ErrNotFound) {
		return nil, fmt.Errorf("%w: subject %s", auth.ErrAccountNotFound, claims.Subject)
	}
	if err != nil {
		return nil, err
	}

	return s.issueFor(acct)
}

func (s *Service) issueFor(acct *account.Account) (*Result, error) {
	access, err := s.tokens.Issue(acct.Email, token.Access)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.Issue(acct.Email, token.Refresh)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &Result{
		Email:        acct.Email,
		Name:         acct.Name,
		Provider:     acct.Provider,
		Role:         acct.Role,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, nil
}
