package resolver

import (
	"context"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Resolver determines which local account an external identity belongs to.
// It is the only place where identity-to-account mapping logic lives.
type Resolver interface {
	Resolve(ctx context.Context, identity auth.Identity) (*account.Account, error)
}
