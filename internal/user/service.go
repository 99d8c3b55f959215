// Package user exposes the profile operations of an authenticated account.
package user

import (
	"context"

	"travel-service/internal/account"
)

type Service struct {
	accounts account.Repository
}

func NewService(accounts account.Repository) *Service {
	return &Service{accounts: accounts}
}

// Get returns the account behind an authenticated email.
func (s *Service) Get(ctx context.Context, email string) (*account.Account, error) {
	return s.accounts.ByEmail(ctx, email)
}

// UpdateName changes the display name of the account behind an
// authenticated email.
func (s *Service) UpdateName(ctx context.Context, email, name string) error {
	acct, err := s.accounts.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.accounts.UpdateName(ctx, acct.ID, name)
}
