package resolver

import (
	"context"
	"errors"
	"fmt"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// StoreResolver resolves identities against the account store.
//
// Lookup order matters: the (provider, subject) pair is checked before the
// email so provider-scoped identities stay stable when a user changes
// their email at the provider, while pre-existing accounts that later log
// in socially under the same email are still found.
type StoreResolver struct {
	accounts account.Repository
}

func NewStoreResolver(accounts account.Repository) *StoreResolver {
	return &StoreResolver{accounts: accounts}
}

func (r *StoreResolver) Resolve(ctx context.Context, identity auth.Identity) (*account.Account, error) {
	if identity.Subject == "" {
		return nil, fmt.Errorf("identity for %s has no subject", identity.Provider)
	}

	// 1. Exact provider identity match. Returned unchanged, no field
	// refresh.
	acct, err := r.accounts.ByProviderSubject(ctx, identity.Provider, identity.Subject)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, account.ErrNotFound) {
		return nil, err
	}

	if identity.Email == "" {
		return nil, fmt.Errorf("identity for %s has no email to link or create with", identity.Provider)
	}

	// 2. Email match. Same provider: the subject changed upstream, return
	// the stored account as-is. Different provider: reject, accounts are
	// never silently merged across providers.
	acct, err = r.accounts.ByEmail(ctx, identity.Email)
	if err == nil {
		if acct.Provider != identity.Provider {
			return nil, fmt.Errorf("%w: %s already registered via %s", auth.ErrIdentityConflict, identity.Email, acct.Provider)
		}
		return acct, nil
	}
	if !errors.Is(err, account.ErrNotFound) {
		return nil, err
	}

	// 3. First login under this identity: create the account.
	acct = &account.Account{
		Email:      identity.Email,
		Name:       identity.Name,
		Provider:   identity.Provider,
		ProviderID: identity.Subject,
		Role:       account.RoleUser,
	}
	err = r.accounts.Create(ctx, acct)
	if errors.Is(err, account.ErrDuplicateEmail) {
		// lost a race with a concurrent signup; re-read and apply the same
		// provider-consistency check
		existing, lookupErr := r.accounts.ByEmail(ctx, identity.Email)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if existing.Provider != identity.Provider {
			return nil, fmt.Errorf("%w: %s already registered via %s", auth.ErrIdentityConflict, identity.Email, existing.Provider)
		}
		return existing, nil
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}
